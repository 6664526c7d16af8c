package sash

// ============================================================================
// Input dispatch
// ============================================================================
//
// Pointer input enters through Screen.DownEvent, which hit-tests the tree
// and hands the host an up-event continuation. The continuation is the sole
// drag-tracking mechanism: the host calls it with up=false while the button
// is held and exactly once with up=true to finalize (or drops it, which is
// treated as an up outside the rectangle - no click fires). There is no
// global event state.

// EventUpCb is the continuation returned by a pointer-down event. x and y
// are the current pointer position; up is true on the terminating call.
type EventUpCb func(x, y float64, up bool)

// Action classifies how a widget's input handler responds to a pointer-down.
type Action uint8

const (
	// ActionInvalid widgets do not claim the point; the hit search
	// continues past them.
	ActionInvalid Action = iota

	// ActionClick fires the click callback when the up point is still
	// inside the widget's rectangle.
	ActionClick

	// ActionToggle flips the selection flag on a valid up-event.
	ActionToggle

	// ActionBullet makes the widget the exclusive winner of its sibling
	// group on a valid up-event.
	ActionBullet

	// ActionEntry transfers keyboard focus to the struck text entry.
	ActionEntry
)

// ClickCb is the callback fired by click, toggle, and bullet widgets. The
// widget pointer is valid for the duration of the call.
type ClickCb func(w *Widget)

// InputHandler is a widget's input classification plus its callback. The
// callback record holds one of several shapes keyed by Action - a tagged
// variant rather than an interface, so widgets remain plain values.
type InputHandler struct {
	Action  Action
	OnClick ClickCb
	entry   *TextEntry
}

// OnClick installs a click handler and classifies the widget ActionClick.
func (w *Widget) OnClick(cb ClickCb) *Widget {
	w.input.Action = ActionClick
	w.input.OnClick = cb
	return w
}

// SetAction classifies the widget's input handling without a callback.
func (w *Widget) SetAction(a Action) *Widget {
	w.input.Action = a
	return w
}

// downEvent searches the subtree for the topmost enabled widget whose
// rectangle contains the point: children before parent, last child first.
// parent is the widget owning w's storage (nil at the root). The returned
// continuation is nil when nothing in the subtree claims the point.
func (s *Screen) downEvent(x, y float64, w, parent *Widget) EventUpCb {
	if w.data.Hidden {
		return nil
	}
	for i := len(w.children) - 1; i >= 0; i-- {
		if cb := s.downEvent(x, y, &w.children[i], w); cb != nil {
			return cb
		}
	}
	if w.methods != nil && w.methods.DownEvent != nil {
		return w.methods.DownEvent(x, y, w)
	}
	if w.data.Disabled || !w.data.Rect.Inside(x, y) {
		return nil
	}
	switch w.input.Action {
	case ActionClick:
		return s.clickContinuation(w)
	case ActionToggle:
		return s.toggleContinuation(w)
	case ActionBullet:
		return s.bulletContinuation(w, parent)
	case ActionEntry:
		return s.entryContinuation(w)
	}
	return nil
}

// clickContinuation holds the widget visually selected while the button is
// down and fires the callback if the release lands inside the rectangle.
func (s *Screen) clickContinuation(w *Widget) EventUpCb {
	w.data.Selected = true
	return func(x, y float64, up bool) {
		if !up {
			w.data.Selected = w.data.Rect.Inside(x, y)
			return
		}
		w.data.Selected = false
		if w.data.Rect.Inside(x, y) && w.input.OnClick != nil {
			w.input.OnClick(w)
		}
	}
}

// toggleContinuation flips the selection flag on a valid up-event.
func (s *Screen) toggleContinuation(w *Widget) EventUpCb {
	return func(x, y float64, up bool) {
		if !up || !w.data.Rect.Inside(x, y) {
			return
		}
		w.data.Selected = !w.data.Selected
		if w.input.OnClick != nil {
			w.input.OnClick(w)
		}
	}
}

// bulletContinuation selects the widget and clears every other bullet in
// the same sibling group on a valid up-event.
func (s *Screen) bulletContinuation(w, parent *Widget) EventUpCb {
	return func(x, y float64, up bool) {
		if !up || !w.data.Rect.Inside(x, y) {
			return
		}
		if parent != nil {
			for i := range parent.children {
				sib := &parent.children[i]
				if sib.input.Action == ActionBullet {
					sib.data.Selected = false
				}
			}
		}
		w.data.Selected = true
		if w.input.OnClick != nil {
			w.input.OnClick(w)
		}
	}
}

// entryContinuation grants keyboard focus to the struck entry on a valid
// up-event.
func (s *Screen) entryContinuation(w *Widget) EventUpCb {
	entry := w.input.entry
	return func(x, y float64, up bool) {
		if !up || !w.data.Rect.Inside(x, y) || entry == nil {
			return
		}
		s.SetFocus(entry)
	}
}
