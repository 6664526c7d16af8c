package sash

import "fmt"

// WidgetId identifies a widget. The 16-bit value is paired with two flag
// bits: "set" and "relative". Absolute ids are handed out by the tree in a
// post-order numbering pass; relative ids index earlier siblings in a layout
// reference. The zero WidgetId is unset.
type WidgetId struct {
	value uint16
	flags uint8
}

const (
	idSet      uint8 = 1 << 0
	idRelative uint8 = 1 << 1
)

// Reserved relative sentinels usable anywhere a layout references another
// widget: Parent names the enclosing widget, Root the screen's root.
var (
	Parent = WidgetId{value: 0xffff, flags: idSet | idRelative}
	Root   = WidgetId{value: 0xfffe, flags: idSet | idRelative}
)

// ID returns a set, absolute widget id.
func ID(value uint16) WidgetId {
	return WidgetId{value: value, flags: idSet}
}

// Rel returns a set, relative widget id naming the value'th earlier sibling.
func Rel(value uint16) WidgetId {
	return WidgetId{value: value, flags: idSet | idRelative}
}

// IsSet reports whether the id carries a value. Constructors always produce
// normalized ids, so == implements equality: matching set-ness and, when
// set, matching relative-ness and value.
func (id WidgetId) IsSet() bool { return id.flags&idSet != 0 }

// IsRelative reports whether the id indexes siblings rather than the
// screen-wide numbering.
func (id WidgetId) IsRelative() bool { return id.flags&idRelative != 0 }

// Value returns the 16-bit numeric component.
func (id WidgetId) Value() uint16 { return id.value }

// Less orders ids by numeric value only, ignoring the flag bits.
func (id WidgetId) Less(other WidgetId) bool { return id.value < other.value }

// Next returns the id one past this one with the same flags.
func (id WidgetId) Next() WidgetId {
	id.value++
	return id
}

// IsParent reports whether the id is the Parent sentinel.
func (id WidgetId) IsParent() bool { return id == Parent }

// IsRoot reports whether the id is the Root sentinel.
func (id WidgetId) IsRoot() bool { return id == Root }

func (id WidgetId) String() string {
	switch {
	case !id.IsSet():
		return "unset"
	case id.IsParent():
		return "parent"
	case id.IsRoot():
		return "root"
	case id.IsRelative():
		return fmt.Sprintf("%dr", id.value)
	}
	return fmt.Sprintf("%d", id.value)
}

// WidgetRef names another widget in a layout position: either a WidgetId
// (absolute, relative sibling, or a sentinel) or a live Tracker.
type WidgetRef struct {
	id      WidgetId
	tracker *Tracker
}

// RefId makes a reference by widget id.
func RefId(id WidgetId) WidgetRef { return WidgetRef{id: id} }

// RefParent references the enclosing widget.
func RefParent() WidgetRef { return WidgetRef{id: Parent} }

// RefRoot references the screen's root widget.
func RefRoot() WidgetRef { return WidgetRef{id: Root} }

// RefTracker references whatever widget the tracker currently observes.
func RefTracker(t *Tracker) WidgetRef { return WidgetRef{tracker: t} }

// Id returns the id component; unset when the reference is a tracker.
func (r WidgetRef) Id() WidgetId { return r.id }

// Tracker returns the tracker component, or nil.
func (r WidgetRef) Tracker() *Tracker { return r.tracker }

func (r WidgetRef) String() string {
	if r.tracker != nil {
		return "tracker"
	}
	return r.id.String()
}
