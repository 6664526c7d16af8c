package sash

import "io"

// Pluggable per-widget methods. Widgets stay value types that can be moved
// and cloned freely, so behavior overrides are a small record of optional
// callables rather than an interface the widget must implement. A nil entry
// falls back to the default behavior for the widget's class.

// LayoutMethod overrides default rectangle resolution for one widget. The
// solver calls it with firstPass true during geometry resolution and false
// during the text-metrics pass; data is the widget's draw record to fill in.
type LayoutMethod func(data *DrawData, firstPass bool, self, parent *Widget, lo *Layout, adapter DrawAdapter) error

// DrawMethod overrides emission of the widget's draw directives.
type DrawMethod func(self *Widget, adapter DrawAdapter) error

// DownEventMethod overrides pointer-down handling. It returns the up-event
// continuation, or nil when the widget does not claim the point.
type DownEventMethod func(x, y float64, self *Widget) EventUpCb

// SerializeMethod overrides the widget's textual serialization. closeTag
// receives the element's closing text for the caller to emit after the
// children.
type SerializeMethod func(out io.Writer, closeTag *string, self *Widget, indent int)

// NewChildMethod is invoked after each AddChild until the tree is sealed.
type NewChildMethod func(child, self *Widget)

// Methods bundles a widget's installed overrides.
type Methods struct {
	Layout    LayoutMethod
	Draw      DrawMethod
	DownEvent DownEventMethod
	Serialize SerializeMethod
	NewChild  NewChildMethod
}

// names lists the installed entries for serialization.
func (m *Methods) names() []string {
	if m == nil {
		return nil
	}
	var out []string
	if m.Layout != nil {
		out = append(out, "layout")
	}
	if m.Draw != nil {
		out = append(out, "draw")
	}
	if m.DownEvent != nil {
		out = append(out, "downEvent")
	}
	if m.Serialize != nil {
		out = append(out, "serialize")
	}
	if m.NewChild != nil {
		out = append(out, "newChild")
	}
	return out
}
