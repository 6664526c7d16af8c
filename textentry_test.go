package sash

import (
	"strconv"
	"testing"
)

func digitVerifier(e *TextEntry, r rune) bool {
	return r >= '0' && r <= '9'
}

func TestEntryTypingAndBackspace(t *testing.T) {
	e := NewTextEntry(8)
	e.focusIn()
	for _, r := range "hey" {
		e.inputChar(r)
	}
	if e.Entry() != "hey" {
		t.Errorf("entry = %q", e.Entry())
	}
	if e.State() != EntryFocusedEditing {
		t.Errorf("state = %v", e.State())
	}
	e.inputChar('\b')
	e.inputChar(0x7f)
	if e.Entry() != "h" {
		t.Errorf("after backspace = %q", e.Entry())
	}
	e.inputChar('\b')
	if e.State() != EntryFocusedEmpty {
		t.Errorf("emptied state = %v", e.State())
	}
	e.inputChar('\b') // empty buffer; no-op
	if e.Entry() != "" {
		t.Errorf("entry = %q", e.Entry())
	}
}

func TestEntryVerifierRejection(t *testing.T) {
	e := NewTextEntry(4).Verifier(digitVerifier)
	e.focusIn()
	if keep := e.inputChar('x'); !keep {
		t.Error("rejection must not release focus")
	}
	if e.State() != EntryFocusedRejected {
		t.Errorf("state = %v", e.State())
	}
	if e.Entry() != "" {
		t.Errorf("rejected char was appended: %q", e.Entry())
	}
	e.inputChar('7')
	if e.State() != EntryFocusedEditing || e.Entry() != "7" {
		t.Errorf("recovery: state=%v entry=%q", e.State(), e.Entry())
	}
}

func TestEntryOverLengthDroppedBeforeVerifier(t *testing.T) {
	verified := 0
	e := NewTextEntry(2).
		Verifier(func(e *TextEntry, r rune) bool { verified++; return true }).
		OnEnter(func(e *TextEntry, enterKey bool) bool { return true })
	e.focusIn()
	e.inputChar('a')
	e.inputChar('b')
	if verified != 2 {
		t.Fatalf("verifier calls = %d", verified)
	}
	e.inputChar('c')
	if verified != 2 {
		t.Error("over-length character must be dropped before the verifier")
	}
	if e.Entry() != "ab" {
		t.Errorf("entry = %q", e.Entry())
	}
	if e.State() == EntryFocusedRejected {
		t.Error("a dropped character is not a rejection")
	}
}

func TestEntryEnterAndTab(t *testing.T) {
	var gotEnterKey []bool
	e := NewTextEntry(8).OnEnter(func(e *TextEntry, enterKey bool) bool {
		gotEnterKey = append(gotEnterKey, enterKey)
		return false
	})
	e.focusIn()
	if keep := e.inputChar('\t'); keep {
		t.Error("handler returned false; focus should release")
	}
	e.focusIn()
	if keep := e.inputChar('\n'); keep {
		t.Error("newline should consult the handler")
	}
	if len(gotEnterKey) != 2 || gotEnterKey[0] != false || gotEnterKey[1] != true {
		t.Errorf("enterKey flags = %v", gotEnterKey)
	}
}

func TestEntryCustomEnterChars(t *testing.T) {
	entered := 0
	e := NewTextEntry(8).
		EnterChars(';').
		OnEnter(func(e *TextEntry, enterKey bool) bool { entered++; return true })
	e.focusIn()
	e.inputChar('\r')
	if entered != 0 {
		t.Error("carriage return was replaced as an enter char")
	}
	if e.Entry() != "\r" {
		t.Errorf("entry = %q", e.Entry())
	}
	e.inputChar(';')
	if entered != 1 {
		t.Error("custom enter char should consult the handler")
	}
}

func TestEntrySetEntryTruncates(t *testing.T) {
	e := NewTextEntry(3)
	e.SetEntry("abcdef")
	if e.Entry() != "abc" {
		t.Errorf("entry = %q", e.Entry())
	}
	unbounded := NewTextEntry(0)
	unbounded.SetEntry("abcdef")
	if unbounded.Entry() != "abcdef" {
		t.Errorf("unbounded entry = %q", unbounded.Entry())
	}
}

func TestEntryWidgetLabelStaysInSync(t *testing.T) {
	e := NewTextEntry(8)
	panel := func(*Screen) Widget {
		root := NewWidget(ClassScreen, FillParent().Border(0))
		root.AddChild(e.NewWidget(FillParent().Border(0)))
		return root
	}
	s := activated(t, panel, 800, 600)
	s.SetFocus(e)
	for _, r := range "abc" {
		if ok, err := s.InputEvent(r); !ok || err != nil {
			t.Fatalf("input %q: %v", r, err)
		}
	}
	w := e.Widget()
	if w == nil {
		t.Fatal("entry should be bound to its widget")
	}
	if w.data.Label != "abc" {
		t.Errorf("widget label = %q", w.data.Label)
	}
	if !w.data.Selected {
		t.Error("focused entry widget should show the cursor flag")
	}
	s.SetFocus(nil)
	if w.data.Selected {
		t.Error("cursor flag should clear with focus")
	}
}

// dateEntries wires the month/day/year chain: two digits, two digits, four
// digits, each field auto-advancing when it fills and refusing to advance
// while its range check fails. The chain is circular, so finishing the year
// hands focus back to the month.
func dateEntries() (month, day, year *TextEntry) {
	rangeCheck := func(lo, hi int) EnterHandler {
		return func(e *TextEntry, enterKey bool) bool {
			n, err := strconv.Atoi(e.Entry())
			// Keep focus until the field holds a value in range.
			return err != nil || n < lo || n > hi
		}
	}
	month = NewTextEntry(2).Verifier(digitVerifier).OnEnter(rangeCheck(1, 12))
	day = NewTextEntry(2).Verifier(digitVerifier).OnEnter(rangeCheck(1, 31))
	year = NewTextEntry(4).Verifier(digitVerifier).OnEnter(rangeCheck(1, 9999))
	month.Next(day)
	day.Next(year)
	year.Next(month)
	return month, day, year
}

func TestDateChainAutoAdvance(t *testing.T) {
	month, day, year := dateEntries()
	panel := func(*Screen) Widget {
		root := NewWidget(ClassScreen, FillParent().Border(0))
		third := func(i int) Layout {
			lo := -1 + 2*float64(i)/3
			hi := -1 + 2*float64(i+1)/3
			return LayoutOf(Pos(lo, -1), Pos(hi, 1)).Border(0)
		}
		root.AddChild(month.NewWidget(third(0)))
		root.AddChild(day.NewWidget(third(1)))
		root.AddChild(year.NewWidget(third(2)))
		return root
	}
	s := activated(t, panel, 900, 600)
	s.SetFocus(month)

	for _, r := range "02292020" {
		if ok, err := s.InputEvent(r); !ok || err != nil {
			t.Fatalf("input %q: ok=%v err=%v", r, ok, err)
		}
	}
	if month.Entry() != "02" || day.Entry() != "29" || year.Entry() != "2020" {
		t.Errorf("fields = %q/%q/%q", month.Entry(), day.Entry(), year.Entry())
	}
	if s.Focus() != month {
		t.Error("completing the year should hand focus back to the month")
	}
}

func TestDateFieldRejectsOutOfRange(t *testing.T) {
	month, _, _ := dateEntries()
	panel := func(*Screen) Widget {
		root := NewWidget(ClassScreen, FillParent().Border(0))
		root.AddChild(month.NewWidget(FillParent().Border(0)))
		return root
	}
	s := activated(t, panel, 800, 600)
	s.SetFocus(month)

	s.InputEvent('9')
	s.InputEvent('9')
	if s.Focus() != month {
		t.Error("an invalid month must keep focus")
	}
	if month.Entry() != "99" {
		t.Errorf("out-of-range value stays visible, got %q", month.Entry())
	}
	// Editing back into range releases the field.
	s.InputEvent('\b')
	s.InputEvent('\b')
	s.InputEvent('1')
	s.InputEvent('2')
	if s.Focus() == month {
		t.Error("a valid month should advance")
	}
	if month.Entry() != "12" {
		t.Errorf("month = %q", month.Entry())
	}
}

func TestCharBytes(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'$', 1},          // U+0024
		{'¢', 2},          // U+00A2
		{'€', 3},          // U+20AC
		{'\U00010348', 4}, // Gothic hwair
	}
	for _, tt := range tests {
		if got := CharBytes(tt.r); got != tt.want {
			t.Errorf("CharBytes(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestEntryAcceptsMultiByteRunes(t *testing.T) {
	e := NewTextEntry(3)
	e.focusIn()
	for _, r := range "€¢$" {
		e.inputChar(r)
	}
	if e.Entry() != "€¢$" {
		t.Errorf("entry = %q", e.Entry())
	}
	e.inputChar('\b')
	if e.Entry() != "€¢" {
		t.Errorf("backspace must remove one code point, got %q", e.Entry())
	}
}
