package sash

import (
	"strings"
	"testing"
)

func TestDrawStreamDirectives(t *testing.T) {
	var out strings.Builder
	d := NewDrawStream(&out)

	data := &DrawData{
		Id:     ID(4),
		Class:  ClassPushButton,
		Rect:   Rectangle{10, 20, 100, 50},
		Border: 2,
		Align:  AlignLeft,
	}
	if err := d.Draw(data, "go"); err != nil {
		t.Fatalf("draw: %v", err)
	}
	want := "<draw id='4' class='pushButton' x='10' y='20' width='100' height='50' border='2' align='left' charSize='0'>go</draw>\n"
	if out.String() != want {
		t.Errorf("directive = %q, want %q", out.String(), want)
	}

	out.Reset()
	data = &DrawData{
		Id:       ID(5),
		Class:    ClassCheckBox,
		Rect:     Rectangle{0, 0, 30, 30},
		Selected: true,
		Mark:     MarkCheck,
	}
	if err := d.Draw(data, ""); err != nil {
		t.Fatalf("draw: %v", err)
	}
	want = "<draw id='5' class='checkBox' x='0' y='0' width='30' height='30' border='0' selected='true' mark='check'/>\n"
	if out.String() != want {
		t.Errorf("directive = %q, want %q", out.String(), want)
	}
}

func TestDrawStreamMetricsScale(t *testing.T) {
	d := NewDrawStream(&strings.Builder{})
	var m TextMetrics
	// Face7x13 advances 7 pixels per glyph; at char size 26 that doubles.
	if err := d.GetTextMetrics(&DrawData{}, &m, "abc", 26); err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if m.CharSize != 26 || m.Height != 26 {
		t.Errorf("char size/height = %g/%g", m.CharSize, m.Height)
	}
	if m.Width != 42 {
		t.Errorf("width = %g, want 42", m.Width)
	}
}

func TestDrawStreamMetricsClampLimit(t *testing.T) {
	d := NewDrawStream(&strings.Builder{})
	var m TextMetrics
	if err := d.GetTextMetrics(&DrawData{}, &m, "x", 0); err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if m.CharSize != 1 {
		t.Errorf("char size = %g, want floor of 1", m.CharSize)
	}
}

func TestDrawStreamBacksAScreen(t *testing.T) {
	var out strings.Builder
	s := NewScreen("stream", quadPanel(1))
	s.SetAdapter(NewDrawStream(&out))
	if err := s.Setup(); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := s.Activate(1280, 720); err != nil {
		t.Fatalf("activate: %v", err)
	}
	if err := s.Draw(); err != nil {
		t.Fatalf("draw: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("directive count = %d, want 5:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "class='screen'") {
		t.Errorf("root draws first: %q", lines[0])
	}
	if !strings.Contains(lines[1], "x='0' y='0' width='640' height='360'") {
		t.Errorf("first quadrant: %q", lines[1])
	}
}
