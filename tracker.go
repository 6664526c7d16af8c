package sash

// Tracker observes a single widget while the widget is freely moved in
// memory. Widgets are value types: growing a parent's children slice
// relocates every widget stored in it, so a raw pointer taken during screen
// construction would dangle. The Tracker/Trackee pair encodes the relation
// instead: the Trackee is embedded in the widget and re-points its partner
// whenever the widget's storage moves, and clearing either side clears the
// other. A live tracker therefore always yields the widget's current
// address, and a dead one reports ErrUnboundTracker rather than dangling.
type Tracker struct {
	widget *Widget
}

// Trackee is the widget-resident half of the pair. At most one tracker
// observes a widget at a time.
type Trackee struct {
	tracker *Tracker
}

// NewTracker returns an empty tracker. Bind it to a widget with
// Widget.Track.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Live reports whether the tracker currently observes a widget.
func (t *Tracker) Live() bool { return t != nil && t.widget != nil }

// Get returns the tracked widget's current address, or ErrUnboundTracker if
// the tracker was cleared or never bound.
func (t *Tracker) Get() (*Widget, error) {
	if !t.Live() {
		return nil, newError(ErrUnboundTracker, "tracker has no widget")
	}
	return t.widget, nil
}

// Release drops the observation, clearing the widget-side pointer too. Safe
// on a cleared tracker.
func (t *Tracker) Release() {
	if t == nil || t.widget == nil {
		return
	}
	t.widget.tracked.tracker = nil
	t.widget = nil
}

// update re-points the tracker at the widget's new storage. Invoked by the
// tree whenever widget storage relocates.
func (te *Trackee) update(w *Widget) {
	if te.tracker != nil {
		te.tracker.widget = w
	}
}

// clear severs the pair from the widget side.
func (te *Trackee) clear() {
	if te.tracker != nil {
		te.tracker.widget = nil
		te.tracker = nil
	}
}
