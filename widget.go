package sash

// Widget is a node in the UI tree: a class name used to look up defaults, a
// declared layout, label data, the resolved draw record, owned children, an
// optional bundle of installed methods, and the trackee half of an observer
// pair. Widgets are value types - children are stored by value and moved
// when the slice grows - so external holders observe widgets through a
// Tracker, never a raw pointer.
type Widget struct {
	class     string
	id        WidgetId
	layout    Layout
	sizeGroup int
	data      DrawData
	input     InputHandler
	methods   *Methods
	children  []Widget
	tracked   Trackee
	sealed    bool
}

// NewWidget creates a widget of the given class with a declared layout.
func NewWidget(class string, lo Layout) Widget {
	return Widget{
		class:  class,
		layout: lo,
		data:   DrawData{Class: class},
	}
}

// Class returns the widget's class name.
func (w *Widget) Class() string { return w.class }

// Id returns the widget's assigned id; unset before the tree is numbered.
func (w *Widget) Id() WidgetId { return w.id }

// Layout returns the widget's declared layout.
func (w *Widget) Layout() Layout { return w.layout }

// Data returns the widget's resolved draw record.
func (w *Widget) Data() *DrawData { return &w.data }

// Children returns the widget's children. The slice is owned by the widget;
// element addresses are invalidated by the next AddChild.
func (w *Widget) Children() []Widget { return w.children }

// ============================================================================
// Builders
// ============================================================================

// AddChild appends a child by value and returns the widget for chaining.
// Until the tree is sealed by id assignment, an installed NewChildMethod is
// invoked with the freshly stored child.
func (w *Widget) AddChild(child Widget) *Widget {
	w.children = append(w.children, child)
	// Growing the slice may have relocated every child; re-point observers.
	for i := range w.children {
		w.children[i].relink()
	}
	if !w.sealed && w.methods != nil && w.methods.NewChild != nil {
		w.methods.NewChild(&w.children[len(w.children)-1], w)
	}
	return w
}

// Text sets the widget's label, character size group, and alignment.
func (w *Widget) Text(label string, sizeGroup int, align Align) *Widget {
	w.data.Label = label
	w.sizeGroup = sizeGroup
	w.data.Align = align
	return w
}

// Options attaches an option bag, overriding the class default. The bag is
// opaque to the core and interpreted by the draw adapter.
func (w *Widget) Options(options any) *Widget {
	w.data.Options = options
	return w
}

// AddMethod installs one entry of the pluggable-methods bundle. m must be a
// LayoutMethod, DrawMethod, DownEventMethod, SerializeMethod, or
// NewChildMethod; anything else is ignored.
func (w *Widget) AddMethod(m any) *Widget {
	if w.methods == nil {
		w.methods = &Methods{}
	}
	switch fn := m.(type) {
	case LayoutMethod:
		w.methods.Layout = fn
	case DrawMethod:
		w.methods.Draw = fn
	case DownEventMethod:
		w.methods.DownEvent = fn
	case SerializeMethod:
		w.methods.Serialize = fn
	case NewChildMethod:
		w.methods.NewChild = fn
	}
	return w
}

// SetMethods installs a whole methods bundle.
func (w *Widget) SetMethods(m *Methods) *Widget {
	w.methods = m
	return w
}

// Hidden marks the widget (and its subtree) as not drawn and not struck.
func (w *Widget) Hidden(hidden bool) *Widget {
	w.data.Hidden = hidden
	return w
}

// Disabled marks the widget as inert: the hit search passes through it.
func (w *Widget) Disabled(disabled bool) *Widget {
	w.data.Disabled = disabled
	return w
}

// Track binds a tracker to this widget, replacing any previous observer on
// either side.
func (w *Widget) Track(t *Tracker) *Widget {
	w.tracked.clear()
	if t != nil {
		t.Release()
		t.widget = w
		w.tracked.tracker = t
	}
	return w
}

// ============================================================================
// Tree operations
// ============================================================================

// relink re-points every observer in the subtree at the widgets' current
// storage. Called after any operation that can relocate widget values.
func (w *Widget) relink() {
	w.tracked.update(w)
	if w.input.entry != nil {
		w.input.entry.rebind(w)
	}
	for i := range w.children {
		w.children[i].relink()
	}
}

// dispose severs every observer pair in the subtree. Called when a dialog is
// popped or a screen is torn down so host-held trackers go cleanly dead
// instead of dangling.
func (w *Widget) dispose() {
	w.tracked.clear()
	if w.input.entry != nil {
		w.input.entry.unbind()
	}
	for i := range w.children {
		w.children[i].dispose()
	}
}

// assignIDs numbers the subtree post-order starting at next, so every child
// precedes its parent and the root receives the largest value assigned. It
// records each widget's child-index path and seals the subtree.
func (w *Widget) assignIDs(next uint16, paths map[uint16][]int, path []int) uint16 {
	for i := range w.children {
		next = w.children[i].assignIDs(next, paths, append(path, i))
	}
	w.id = ID(next)
	w.data.Id = w.id
	w.sealed = true
	if paths != nil {
		paths[next] = append([]int(nil), path...)
	}
	return next + 1
}

// Lookup returns a pointer to a descendant. An absolute id is searched for
// in the whole subtree; a relative id indexes this widget's children. The
// returned pointer is invalidated by the next tree mutation; hold a Tracker
// for anything longer-lived.
func (w *Widget) Lookup(id WidgetId) (*Widget, error) {
	if !id.IsSet() {
		return nil, widgetError(ErrInvalidWidgetId, id, "lookup with unset id")
	}
	if id.IsRelative() {
		if id.IsParent() || id.IsRoot() {
			return nil, widgetError(ErrInvalidWidgetId, id, "sentinel is not addressable")
		}
		if int(id.Value()) >= len(w.children) {
			return nil, widgetError(ErrInvalidWidgetId, id, "no such child")
		}
		return &w.children[id.Value()], nil
	}
	if found := w.findByID(id); found != nil {
		return found, nil
	}
	return nil, widgetError(ErrInvalidWidgetId, id, "not in tree")
}

func (w *Widget) findByID(id WidgetId) *Widget {
	if w.id == id {
		return w
	}
	for i := range w.children {
		if found := w.children[i].findByID(id); found != nil {
			return found
		}
	}
	return nil
}

// at navigates a child-index path as recorded during id assignment.
func (w *Widget) at(path []int) *Widget {
	node := w
	for _, i := range path {
		if i < 0 || i >= len(node.children) {
			return nil
		}
		node = &node.children[i]
	}
	return node
}

// Clone deep-copies the subtree. Ids, resolved rectangles, and labels carry
// over; trackers and entry bindings are not preserved - the copies start
// unobserved.
func (w *Widget) Clone() Widget {
	out := *w
	out.tracked = Trackee{}
	out.input.entry = nil
	out.children = make([]Widget, len(w.children))
	for i := range w.children {
		out.children[i] = w.children[i].Clone()
	}
	return out
}

// count returns the number of widgets in the subtree, itself included.
func (w *Widget) count() int {
	n := 1
	for i := range w.children {
		n += w.children[i].count()
	}
	return n
}
