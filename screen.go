package sash

// PanelFunc builds a screen's root widget. It runs once, during Setup; the
// screen pointer lets the construction wire widgets that later need the
// screen (drop-downs pushing popups, handlers pushing dialogs).
type PanelFunc func(s *Screen) Widget

// Screen owns one widget tree and its interaction state: the id counter,
// the current size, the focus holder, and the modal dialog stack. Lifecycle
// is Setup once, Activate with the initial size, then any interleaving of
// Resize, Draw, DownEvent, and InputEvent; calls out of order fail with the
// misuse error.
type Screen struct {
	name        string
	panel       PanelFunc
	root        Widget
	paths       map[uint16][]int
	nextID      uint16
	width       float64
	height      float64
	drawAdapter DrawAdapter
	focus       *TextEntry
	dialogs     []dialogFrame
	isSetup     bool
	activated   bool
	inEvent     bool
}

// dialogFrame remembers the id counter to restore when its dialog pops.
type dialogFrame struct {
	saved uint16
}

// NewScreen makes a screen that will build its widget tree with panel.
func NewScreen(name string, panel PanelFunc) *Screen {
	return &Screen{name: name, panel: panel}
}

// Name returns the screen's name.
func (s *Screen) Name() string { return s.name }

// Root returns the root widget. The pointer stays valid for the screen's
// lifetime; pointers into its children do not survive tree mutation.
func (s *Screen) Root() *Widget { return &s.root }

// Size returns the current screen extent.
func (s *Screen) Size() Bounds { return Bounds{Width: s.width, Height: s.height} }

// WidgetIdValue returns the next absolute id value to be assigned. A
// balanced dialog push/pop pair leaves it exactly where it was.
func (s *Screen) WidgetIdValue() uint16 { return s.nextID }

// SetAdapter installs the screen's draw adapter, overriding the
// environment's default. The adapter must outlive the screen's use of it.
func (s *Screen) SetAdapter(a DrawAdapter) { s.drawAdapter = a }

func (s *Screen) adapter() DrawAdapter {
	if s.drawAdapter != nil {
		return s.drawAdapter
	}
	return envAdapter()
}

// ============================================================================
// Lifecycle
// ============================================================================

// Setup builds the widget tree and numbers it. Must be called exactly once,
// before any other screen operation.
func (s *Screen) Setup() error {
	if s.isSetup {
		return newError(ErrMisuseBeforeSetup, "screen %q set up twice", s.name)
	}
	s.root = s.panel(s)
	s.paths = make(map[uint16][]int)
	s.nextID = s.root.assignIDs(1, s.paths, nil)
	s.root.relink()
	s.isSetup = true
	return nil
}

// Activate runs the first layout against the given size. Draw and event
// routing are available afterwards.
func (s *Screen) Activate(width, height float64) error {
	if !s.isSetup {
		return newError(ErrMisuseBeforeSetup, "activate before setup")
	}
	s.width, s.height = width, height
	if err := s.layoutTree(&s.root); err != nil {
		return err
	}
	s.activated = true
	return nil
}

// Resize re-runs the layout solver for a new screen size. Observationally
// idempotent for a fixed size.
func (s *Screen) Resize(width, height float64) error {
	if !s.activated {
		return newError(ErrMisuseBeforeSetup, "resize before activate")
	}
	s.width, s.height = width, height
	return s.layoutTree(&s.root)
}

// Draw walks the tree pre-order, emitting every visible widget through the
// adapter: the explicit argument, else the screen's, else the
// environment's.
func (s *Screen) Draw(adapter ...DrawAdapter) error {
	if !s.activated {
		return newError(ErrMisuseBeforeSetup, "draw before activate")
	}
	target := s.adapter()
	if len(adapter) > 0 && adapter[0] != nil {
		target = adapter[0]
	}
	if target == nil {
		return newError(ErrAdapterAbsent, "draw with no adapter")
	}
	return s.root.draws(target)
}

// ============================================================================
// Input routing
// ============================================================================

// DownEvent routes a pointer-down to the widget owning the struck region
// and returns the up-event continuation, or nil when nothing was struck.
// While a dialog is up, only the topmost dialog receives input. Calling
// DownEvent from inside a handler is a misuse error.
func (s *Screen) DownEvent(x, y float64) (EventUpCb, error) {
	if !s.activated {
		return nil, newError(ErrMisuseBeforeSetup, "event before activate")
	}
	if s.inEvent {
		return nil, newError(ErrMisuseBeforeSetup, "re-entrant down event")
	}
	target := &s.root
	parent := (*Widget)(nil)
	if n := len(s.dialogs); n > 0 {
		target = &s.root.children[len(s.root.children)-1]
		parent = &s.root
	}
	s.inEvent = true
	cb := s.downEvent(x, y, target, parent)
	s.inEvent = false
	if cb == nil {
		return nil, nil
	}
	// Handler effects must settle before the continuation returns to the
	// host, and handlers must not re-enter the dispatcher.
	return func(ux, uy float64, up bool) {
		s.inEvent = true
		cb(ux, uy, up)
		s.inEvent = false
	}, nil
}

// SetFocus moves keyboard focus to the given entry; nil clears focus. At
// most one widget holds focus per screen.
func (s *Screen) SetFocus(e *TextEntry) {
	if s.focus == e {
		return
	}
	if s.focus != nil {
		s.focus.focusOut()
	}
	s.focus = e
	if e != nil {
		e.focusIn()
	}
}

// Focus returns the entry holding keyboard focus, or nil.
func (s *Screen) Focus() *TextEntry { return s.focus }

// InputEvent delivers one character to the focus holder. It reports whether
// the character was consumed. When the entry releases focus and names a
// next entry, focus transfers there atomically.
func (s *Screen) InputEvent(r rune) (bool, error) {
	if !s.activated {
		return false, newError(ErrMisuseBeforeSetup, "input before activate")
	}
	e := s.focus
	if e == nil {
		return false, nil
	}
	if e.inputChar(r) {
		return true, nil
	}
	s.focus = nil
	if e.next != nil {
		s.SetFocus(e.next)
	}
	return true, nil
}

// ============================================================================
// Dialog stack
// ============================================================================

// PushDialog layers a dialog-class widget over the screen. The dialog is
// appended as a root child, numbered from the current id counter, and laid
// out against the current size; earlier children keep drawing but receive
// no input until it pops. A widget of any other class is rejected by
// returning an unset id.
func (s *Screen) PushDialog(d Widget) WidgetId {
	if d.class != ClassDialog || !s.isSetup {
		return WidgetId{}
	}
	frame := dialogFrame{saved: s.nextID}
	s.root.children = append(s.root.children, d)
	s.root.relink()
	index := len(s.root.children) - 1
	dlg := &s.root.children[index]
	s.nextID = dlg.assignIDs(s.nextID, s.paths, []int{index})
	if s.activated {
		if err := s.layoutTree(&s.root); err != nil {
			// Reject a dialog that cannot be laid out.
			s.root.children = s.root.children[:index]
			s.root.relink()
			s.pruneIDs(frame.saved)
			s.nextID = frame.saved
			return WidgetId{}
		}
	}
	s.dialogs = append(s.dialogs, frame)
	return dlg.id
}

// PopDialog removes and destroys the topmost dialog and restores the id
// counter to its pre-push value. A no-op with no dialog up.
func (s *Screen) PopDialog() {
	n := len(s.dialogs)
	if n == 0 {
		return
	}
	frame := s.dialogs[n-1]
	s.dialogs = s.dialogs[:n-1]

	last := len(s.root.children) - 1
	s.root.children[last].dispose()
	s.root.children = s.root.children[:last]
	s.root.relink()
	s.pruneIDs(frame.saved)
	s.nextID = frame.saved
}

// DialogsUp returns the number of dialogs on the stack.
func (s *Screen) DialogsUp() int { return len(s.dialogs) }

// pruneIDs drops the path entries of every id at or above floor.
func (s *Screen) pruneIDs(floor uint16) {
	for id := range s.paths {
		if id >= floor {
			delete(s.paths, id)
		}
	}
}

// ============================================================================
// Lookup
// ============================================================================

// Lookup returns a pointer to the widget holding the given absolute id,
// using the path index built during id assignment. The pointer is
// invalidated by the next tree mutation.
func (s *Screen) Lookup(id WidgetId) (*Widget, error) {
	if !s.isSetup {
		return nil, newError(ErrMisuseBeforeSetup, "lookup before setup")
	}
	if !id.IsSet() || id.IsRelative() {
		return nil, widgetError(ErrInvalidWidgetId, id, "screen lookup needs an absolute id")
	}
	path, ok := s.paths[id.Value()]
	if !ok {
		return nil, widgetError(ErrInvalidWidgetId, id, "not in tree")
	}
	w := s.root.at(path)
	if w == nil || w.id != id {
		return nil, widgetError(ErrInvalidWidgetId, id, "stale path")
	}
	return w, nil
}
