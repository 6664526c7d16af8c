package sash

import "unicode/utf8"

// EntryState is the text entry's focus/editing state.
type EntryState uint8

const (
	EntryInactive EntryState = iota
	EntryFocusedEmpty
	EntryFocusedEditing
	EntryFocusedRejected
)

func (s EntryState) String() string {
	switch s {
	case EntryFocusedEmpty:
		return "focusedEmpty"
	case EntryFocusedEditing:
		return "focusedEditing"
	case EntryFocusedRejected:
		return "focusedRejected"
	}
	return "inactive"
}

// InputVerifier is consulted for each incoming character before it is
// appended. Returning false rejects the character; rejection is a normal
// outcome, not an error.
type InputVerifier func(e *TextEntry, r rune) bool

// EnterHandler is consulted when the entry receives an enter character, a
// tab, or fills to its maximum length. enterKey is false only for tab. The
// handler may rewrite the entry's string; its return value is whether the
// entry keeps focus.
type EnterHandler func(e *TextEntry, enterKey bool) bool

// TextEntry is the editing state behind a textEntry-class widget: the
// bounded rune buffer, the per-character verifier, the enter handler, and
// the optional next entry that receives focus when this one releases it.
// Characters are UTF-32 code points carried in UTF-8 strings.
type TextEntry struct {
	maxLen     int
	buf        []rune
	verifier   InputVerifier
	onEnter    EnterHandler
	enterChars []rune
	next       *TextEntry
	focused    bool
	state      EntryState
	widget     *Widget
}

// NewTextEntry makes an entry accepting at most maxLen characters; zero
// means unbounded. Enter defaults to carriage return and newline.
func NewTextEntry(maxLen int) *TextEntry {
	return &TextEntry{
		maxLen:     maxLen,
		enterChars: []rune{'\r', '\n'},
	}
}

// Verifier installs the per-character verifier.
func (e *TextEntry) Verifier(v InputVerifier) *TextEntry {
	e.verifier = v
	return e
}

// OnEnter installs the enter handler.
func (e *TextEntry) OnEnter(h EnterHandler) *TextEntry {
	e.onEnter = h
	return e
}

// EnterChars replaces the set of characters treated as enter.
func (e *TextEntry) EnterChars(chars ...rune) *TextEntry {
	e.enterChars = chars
	return e
}

// Next names the entry that receives focus when this one releases it.
func (e *TextEntry) Next(next *TextEntry) *TextEntry {
	e.next = next
	return e
}

// Entry returns the current string.
func (e *TextEntry) Entry() string { return string(e.buf) }

// SetEntry replaces the current string, truncating to the maximum length.
func (e *TextEntry) SetEntry(s string) *TextEntry {
	e.buf = []rune(s)
	if e.maxLen > 0 && len(e.buf) > e.maxLen {
		e.buf = e.buf[:e.maxLen]
	}
	e.syncWidget()
	if e.focused {
		e.state = editingState(len(e.buf))
	}
	return e
}

// State returns the entry's focus/editing state.
func (e *TextEntry) State() EntryState { return e.state }

// Focused reports whether the entry holds keyboard focus.
func (e *TextEntry) Focused() bool { return e.focused }

// NewWidget makes the textEntry-class widget backed by this entry. The
// widget and entry stay bound across widget storage moves.
func (e *TextEntry) NewWidget(lo Layout) Widget {
	w := NewWidget(ClassTextEntry, lo)
	w.input.Action = ActionEntry
	w.input.entry = e
	w.data.Label = e.Entry()
	return w
}

// Widget returns the bound widget's current address, or nil when the entry
// is not in a tree.
func (e *TextEntry) Widget() *Widget { return e.widget }

// rebind is invoked by the tree whenever the bound widget's storage moves.
func (e *TextEntry) rebind(w *Widget) { e.widget = w }

// unbind is invoked when the bound widget is destroyed.
func (e *TextEntry) unbind() { e.widget = nil }

func (e *TextEntry) syncWidget() {
	if e.widget != nil {
		e.widget.data.Label = string(e.buf)
	}
}

func editingState(n int) EntryState {
	if n == 0 {
		return EntryFocusedEmpty
	}
	return EntryFocusedEditing
}

// focusIn marks the entry focused. The bound widget shows the cursor via
// its selection flag.
func (e *TextEntry) focusIn() {
	e.focused = true
	e.state = editingState(len(e.buf))
	if e.widget != nil {
		e.widget.data.Selected = true
	}
}

// focusOut releases focus.
func (e *TextEntry) focusOut() {
	e.focused = false
	e.state = EntryInactive
	if e.widget != nil {
		e.widget.data.Selected = false
	}
}

func (e *TextEntry) isEnterChar(r rune) bool {
	for _, c := range e.enterChars {
		if c == r {
			return true
		}
	}
	return false
}

// inputChar runs one character through the entry's state machine and
// reports whether the entry keeps focus.
//
// Order of business: backspace edits; enter/tab consults the handler; an
// over-length character is dropped before the verifier runs; a verified
// character is appended, and filling the buffer to its maximum consults the
// handler as an enter.
func (e *TextEntry) inputChar(r rune) bool {
	switch {
	case r == '\b' || r == 0x7f:
		if len(e.buf) > 0 {
			e.buf = e.buf[:len(e.buf)-1]
		}
		e.state = editingState(len(e.buf))
		e.syncWidget()
		return true

	case r == '\t' || e.isEnterChar(r):
		return e.consultEnter(r != '\t')
	}

	if e.maxLen > 0 && len(e.buf) >= e.maxLen {
		return true
	}
	if e.verifier != nil && !e.verifier(e, r) {
		e.state = EntryFocusedRejected
		return true
	}
	e.buf = append(e.buf, r)
	e.state = EntryFocusedEditing
	e.syncWidget()
	if e.maxLen > 0 && len(e.buf) == e.maxLen {
		return e.consultEnter(true)
	}
	return true
}

func (e *TextEntry) consultEnter(enterKey bool) bool {
	keep := false
	if e.onEnter != nil {
		keep = e.onEnter(e, enterKey)
	}
	e.syncWidget()
	if !keep {
		e.focusOut()
	}
	return keep
}

// CharBytes returns the UTF-8 encoded size of a code point: a pure function
// of the character, 1 through 4 bytes.
func CharBytes(r rune) int {
	return utf8.RuneLen(r)
}
