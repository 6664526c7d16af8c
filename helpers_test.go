package sash

import (
	"fmt"
	"strings"
)

// testAdapter is a deterministic DrawAdapter for tests: every character
// measures half the character size wide, and each Draw call is recorded as
// one compact line.
type testAdapter struct {
	lines []string
}

func (a *testAdapter) Draw(data *DrawData, text string) error {
	line := fmt.Sprintf("%s %s {%g,%g,%g,%g}", data.Id, data.Class,
		data.Rect.X, data.Rect.Y, data.Rect.Width, data.Rect.Height)
	if text != "" {
		line += " " + text
	}
	a.lines = append(a.lines, line)
	return nil
}

func (a *testAdapter) GetTextMetrics(data *DrawData, metrics *TextMetrics, text string, upperLimit float64) error {
	metrics.CharSize = upperLimit
	metrics.Height = upperLimit
	metrics.Width = 0.5 * upperLimit * float64(len([]rune(text)))
	return nil
}

func (a *testAdapter) reset() { a.lines = nil }

func (a *testAdapter) dump() string { return strings.Join(a.lines, "\n") }

// quadPanel builds a root panel holding four children, one per screen
// quadrant.
func quadPanel(border float64) PanelFunc {
	quarter := func(ulx, uly, lrx, lry float64) Widget {
		return NewWidget(ClassPanel, LayoutOf(Pos(ulx, uly), Pos(lrx, lry)).Border(border))
	}
	return func(*Screen) Widget {
		root := NewWidget(ClassScreen, FillParent().Border(0))
		root.AddChild(quarter(-1, -1, 0, 0))
		root.AddChild(quarter(0, -1, 1, 0))
		root.AddChild(quarter(-1, 0, 0, 1))
		root.AddChild(quarter(0, 0, 1, 1))
		return root
	}
}

// activated builds, sets up, and activates a screen or fails the test.
type fatalfer interface {
	Helper()
	Fatalf(format string, args ...any)
}

func activated(t fatalfer, panel PanelFunc, w, h float64) *Screen {
	t.Helper()
	s := NewScreen("test", panel)
	s.SetAdapter(&testAdapter{})
	if err := s.Setup(); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := s.Activate(w, h); err != nil {
		t.Fatalf("activate: %v", err)
	}
	return s
}
