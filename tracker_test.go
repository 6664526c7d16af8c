package sash

import "testing"

func TestTrackerFollowsStorageMoves(t *testing.T) {
	root := NewWidget(ClassPanel, FillParent())
	tracked := NewWidget(ClassLabel, FillParent())
	tr := NewTracker()
	tracked.Track(tr)
	root.AddChild(tracked)

	first, err := tr.Get()
	if err != nil {
		t.Fatalf("Get after AddChild: %v", err)
	}
	if first != &root.children[0] {
		t.Fatal("tracker should point into the parent's storage")
	}

	// Appending this much forces the children slice to reallocate.
	for len(root.children) < 32 {
		root.AddChild(NewWidget(ClassPanel, FillParent()))
	}
	got, err := tr.Get()
	if err != nil {
		t.Fatalf("Get after growth: %v", err)
	}
	if got != &root.children[0] {
		t.Error("tracker did not follow the relocated widget")
	}
	if got.class != ClassLabel {
		t.Errorf("tracker landed on class %q", got.class)
	}
}

func TestTrackerRelease(t *testing.T) {
	w := NewWidget(ClassPanel, FillParent())
	tr := NewTracker()
	w.Track(tr)
	if !tr.Live() {
		t.Fatal("tracker should be live after Track")
	}
	tr.Release()
	if tr.Live() {
		t.Error("tracker should be dead after Release")
	}
	if w.tracked.tracker != nil {
		t.Error("widget side should be cleared too")
	}
	if _, err := tr.Get(); !IsKind(err, ErrUnboundTracker) {
		t.Errorf("Get on released tracker: %v", err)
	}
	tr.Release() // safe twice
}

func TestTrackerClearedByDispose(t *testing.T) {
	root := NewWidget(ClassPanel, FillParent())
	child := NewWidget(ClassLabel, FillParent())
	tr := NewTracker()
	child.Track(tr)
	root.AddChild(child)

	root.dispose()
	if tr.Live() {
		t.Error("dispose should clear host-held trackers")
	}
	if _, err := tr.Get(); !IsKind(err, ErrUnboundTracker) {
		t.Errorf("want ErrUnboundTracker, got %v", err)
	}
}

func TestTrackRebindsSingleObserver(t *testing.T) {
	a := NewWidget(ClassPanel, FillParent())
	b := NewWidget(ClassPanel, FillParent())
	tr := NewTracker()
	a.Track(tr)
	b.Track(tr)

	if a.tracked.tracker != nil {
		t.Error("first widget should have lost its observer")
	}
	got, err := tr.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != &b {
		t.Error("tracker should observe the second widget")
	}
}

func TestCloneStartsUnobserved(t *testing.T) {
	w := NewWidget(ClassPanel, FillParent())
	tr := NewTracker()
	w.Track(tr)
	child := NewWidget(ClassLabel, FillParent())
	w.AddChild(child)

	dup := w.Clone()
	if dup.tracked.tracker != nil {
		t.Error("clone must not steal the original's observer")
	}
	if got, _ := tr.Get(); got != &w {
		t.Error("original observation must survive cloning")
	}
	if len(dup.children) != 1 || dup.children[0].class != ClassLabel {
		t.Error("clone should deep-copy children")
	}
	// Mutating the clone's subtree must not touch the original.
	dup.children[0].data.Label = "changed"
	if w.children[0].data.Label == "changed" {
		t.Error("clone shares child storage with the original")
	}
}
