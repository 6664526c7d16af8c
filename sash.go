// Package sash is a retained-mode, declarative 2D GUI toolkit meant to be
// embedded into a host application that supplies a drawing surface and an
// input-event pump.
//
// A screen is a tree of value-type widgets. Each widget declares its geometry
// as a pair of fractional positions relative to other widgets (parent, an
// earlier sibling, or a tracked widget); the layout solver turns those into
// absolute pixel rectangles whenever the host window changes size. Drawing is
// a pre-order walk that emits directives through a host-provided DrawAdapter,
// and pointer input is routed to the struck widget, which hands back an
// up-event continuation the host drives until the button is released.
//
// The toolkit is single-threaded cooperative: exactly one goroutine owns the
// widget tree, the environment, and the draw adapter at any time. No
// operation blocks or spawns background work.
package sash

// Class names carried by the built-in widgets. The class name selects the
// per-class defaults (border, option bag) registered in the environment and
// the default behavior used when no method is installed.
const (
	ClassScreen       = "screen"
	ClassDialog       = "dialog"
	ClassPanel        = "panel"
	ClassLabel        = "label"
	ClassPushButton   = "pushButton"
	ClassCheckBox     = "checkBox"
	ClassBulletButton = "bulletButton"
	ClassTextEntry    = "textEntry"
	ClassList         = "list"
	ClassItem         = "item"
	ClassDropDown     = "dropDown"
	ClassCanvas       = "canvas"
)
