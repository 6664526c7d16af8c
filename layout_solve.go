package sash

import "fmt"

var layoutTrace = false // flip for solver tracing during debugging

func tracef(format string, args ...any) {
	if layoutTrace {
		fmt.Printf(format+"\n", args...)
	}
}

// The solver turns declared layouts into pixel rectangles in one depth-first
// pass: a widget's own layout is evaluated after everything it references.
// Parent and root are resolved by the time any child is visited; a sibling
// reference must use a relative id strictly below the widget's own index;
// an absolute id or tracker reference must name a widget resolved earlier
// in the traversal. Anything else is an InvalidLayoutReference.
//
// A second, text-metrics pass follows geometry: labels are measured through
// the adapter, widgets sharing a size group settle on the group's smallest
// character size, and layout-method overrides run once more with firstPass
// false.

type solveState struct {
	root     *Widget
	screen   Rectangle
	adapter  DrawAdapter
	resolved map[uint16]bool
	groups   map[int]float64
}

// layoutTree resolves the whole tree against the current screen size. It is
// idempotent for a fixed size and re-run on every resize.
func (s *Screen) layoutTree(root *Widget) error {
	st := &solveState{
		root:     root,
		screen:   Rectangle{Width: s.width, Height: s.height},
		adapter:  s.adapter(),
		resolved: make(map[uint16]bool),
		groups:   make(map[int]float64),
	}

	// The root rectangle is the screen itself.
	applyDefaults(root)
	root.data.Rect = st.screen
	root.data.Border = pixelRound(effectiveBorder(root))
	st.resolved[root.id.Value()] = true
	tracef("root %s -> %dx%d", root.id, int(s.width), int(s.height))

	for i := range root.children {
		if err := st.solve(&root.children[i], root, i, true); err != nil {
			return err
		}
	}
	if err := st.measure(root); err != nil {
		return err
	}
	st.apply(root)
	for i := range root.children {
		if err := st.solve(&root.children[i], root, i, false); err != nil {
			return err
		}
	}
	return nil
}

// solve resolves one widget and then its children. With firstPass false it
// only re-runs layout-method overrides, geometry being already settled.
func (st *solveState) solve(w, parent *Widget, index int, firstPass bool) error {
	if firstPass {
		applyDefaults(w)
	}
	if w.methods != nil && w.methods.Layout != nil {
		lo := w.layout
		if err := w.methods.Layout(&w.data, firstPass, w, parent, &lo, st.adapter); err != nil {
			return err
		}
	} else if firstPass {
		if err := st.resolveRect(w, parent, index); err != nil {
			return err
		}
	}
	if firstPass {
		if !st.screen.Contains(w.data.Rect) {
			return widgetError(ErrInvalidLayoutReference, w.id,
				"resolved rectangle {%g,%g,%g,%g} outside screen",
				w.data.Rect.X, w.data.Rect.Y, w.data.Rect.Width, w.data.Rect.Height)
		}
		st.resolved[w.id.Value()] = true
	}
	for i := range w.children {
		if err := st.solve(&w.children[i], w, i, firstPass); err != nil {
			return err
		}
	}
	return nil
}

// resolveRect evaluates the widget's declared layout into its draw record.
func (st *solveState) resolveRect(w, parent *Widget, index int) error {
	ul, err := st.resolvePos(w.layout.UpperLeft, w, parent, index)
	if err != nil {
		return err
	}
	lr, err := st.resolvePos(w.layout.LowerRight, w, parent, index)
	if err != nil {
		return err
	}
	ul, lr = pinRectangle(ul, lr, w.layout.Pin)

	x := pixelRound(ul.X)
	y := pixelRound(ul.Y)
	w.data.Rect = Rectangle{
		X:      x,
		Y:      y,
		Width:  pixelRound(lr.X) - x,
		Height: pixelRound(lr.Y) - y,
	}
	w.data.Border = pixelRound(effectiveBorder(w))
	tracef("widget %s -> {%g,%g,%g,%g} border %g", w.id,
		w.data.Rect.X, w.data.Rect.Y, w.data.Rect.Width, w.data.Rect.Height, w.data.Border)
	return nil
}

// resolvePos maps one position onto its referenced widget's rectangle.
func (st *solveState) resolvePos(p Position, w, parent *Widget, index int) (Coordinates, error) {
	ref, err := st.reference(p.Ref, w, parent, index)
	if err != nil {
		return Coordinates{}, err
	}
	return resolvePoint(p, ref.data.Rect, ref.data.Border, ref == parent), nil
}

// reference resolves a WidgetRef to an already-laid-out widget.
func (st *solveState) reference(r WidgetRef, w, parent *Widget, index int) (*Widget, error) {
	if t := r.Tracker(); t != nil {
		target, err := t.Get()
		if err != nil {
			return nil, err
		}
		if !st.resolved[target.id.Value()] {
			return nil, widgetError(ErrInvalidLayoutReference, w.id,
				"tracked widget %s not yet resolved", target.id)
		}
		return target, nil
	}

	id := r.Id()
	switch {
	case !id.IsSet(), id.IsParent():
		return parent, nil

	case id.IsRoot():
		return st.root, nil

	case id.IsRelative():
		sib := int(id.Value())
		if sib >= index {
			e := widgetError(ErrInvalidLayoutReference, w.id,
				"sibling reference %s not before index %d", id, index)
			e.Index = sib
			return nil, e
		}
		return &parent.children[sib], nil
	}

	target := st.root.findByID(id)
	if target == nil {
		return nil, widgetError(ErrInvalidLayoutReference, w.id, "no widget %s", id)
	}
	if !st.resolved[id.Value()] {
		return nil, widgetError(ErrInvalidLayoutReference, w.id,
			"widget %s not yet resolved", id)
	}
	return target, nil
}

// ============================================================================
// Text metrics pass
// ============================================================================

// measure computes the character size for every labeled widget and folds
// widgets sharing a size group onto the group's minimum.
func (st *solveState) measure(w *Widget) error {
	if w.data.Label != "" {
		if st.adapter == nil {
			return widgetError(ErrAdapterAbsent, w.id, "text metrics need an adapter")
		}
		upper := w.data.Rect.Height - 2*w.data.Border
		if upper < 1 {
			upper = 1
		}
		var m TextMetrics
		if err := st.adapter.GetTextMetrics(&w.data, &m, Translate(w.data.Label), upper); err != nil {
			return err
		}
		size := m.CharSize
		avail := w.data.Rect.Width - 2*w.data.Border
		if m.Width > avail && m.Width > 0 {
			size *= avail / m.Width
		}
		w.data.CharSize = size
		if w.sizeGroup != 0 {
			if cur, ok := st.groups[w.sizeGroup]; !ok || size < cur {
				st.groups[w.sizeGroup] = size
			}
		}
	}
	for i := range w.children {
		if err := st.measure(&w.children[i]); err != nil {
			return err
		}
	}
	return nil
}

// apply settles grouped widgets onto their group's character size.
func (st *solveState) apply(w *Widget) {
	if w.sizeGroup != 0 {
		if size, ok := st.groups[w.sizeGroup]; ok {
			w.data.CharSize = size
		}
	}
	for i := range w.children {
		st.apply(&w.children[i])
	}
}

// applyDefaults fills environment-provided defaults the widget did not set.
func applyDefaults(w *Widget) {
	if w.data.Options == nil {
		w.data.Options = classDefaults(w.class).Options
	}
}

// effectiveBorder is the declared thickness, or the class default when the
// layout left it unset (negative).
func effectiveBorder(w *Widget) float64 {
	if w.layout.Thickness >= 0 {
		return w.layout.Thickness
	}
	return classDefaults(w.class).Border
}
