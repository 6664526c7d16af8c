package sash

import (
	"fmt"
	"io"
	"strings"
)

// Serialize writes the widget tree as indented XML-like text, one element
// per widget. The format is diagnostic output: stable enough for golden
// tests, not a persistence format.
func (s *Screen) Serialize(out io.Writer) error {
	if !s.isSetup {
		return newError(ErrMisuseBeforeSetup, "serialize before setup")
	}
	fmt.Fprintf(out, "<screen name='%s' width='%s' height='%s'>\n",
		escapeText(s.name), fmtNum(s.width), fmtNum(s.height))
	s.root.serialize(out, 1, 0)
	fmt.Fprintf(out, "</screen>\n")
	return nil
}

// Serialize writes the subtree rooted at w.
func (w *Widget) Serialize(out io.Writer) {
	w.serialize(out, 0, 0)
}

// rid is the widget's child index within its parent, emitted alongside the
// absolute id so sibling-relative layout references can be read off the dump.
func (w *Widget) serialize(out io.Writer, indent, rid int) {
	var closeTag string
	if w.methods != nil && w.methods.Serialize != nil {
		w.methods.Serialize(out, &closeTag, w, indent)
	} else {
		w.serializeDefault(out, &closeTag, indent, rid)
	}
	for i := range w.children {
		w.children[i].serialize(out, indent+1, i)
	}
	if closeTag != "" {
		io.WriteString(out, closeTag)
	}
}

// serializeDefault emits the element for one widget: its identity line, the
// declared layout, any label metadata, and the installed-methods list.
// closeTag receives the closing element for the caller to emit after the
// children.
func (w *Widget) serializeDefault(out io.Writer, closeTag *string, indent, rid int) {
	pad := strings.Repeat("  ", indent)
	fmt.Fprintf(out, "%s<%s id='%s' rid='%d'>\n", pad, w.class, w.id, rid)

	inner := pad + "  "
	fmt.Fprintf(out, "%s<layout border='%s' pin='%s'>\n",
		inner, fmtNum(w.layout.Thickness), w.layout.Pin)
	serializePos(out, inner+"  ", "ul", w.layout.UpperLeft)
	serializePos(out, inner+"  ", "lr", w.layout.LowerRight)
	fmt.Fprintf(out, "%s</layout>\n", inner)

	if w.data.Label != "" || w.sizeGroup != 0 {
		fmt.Fprintf(out, "%s<text align='%s' group='%d' charSize='%s'>%s</text>\n",
			inner, w.data.Align, w.sizeGroup, fmtNum(w.data.CharSize),
			escapeText(w.data.Label))
	}
	if names := w.methods.names(); len(names) > 0 {
		fmt.Fprintf(out, "%s<methods installed='%s'/>\n", inner, strings.Join(names, ","))
	}
	*closeTag = fmt.Sprintf("%s</%s>\n", pad, w.class)
}

func serializePos(out io.Writer, pad, tag string, p Position) {
	fmt.Fprintf(out, "%s<%s sx='%s' sy='%s' ref='%s' normx='%s' normy='%s'/>\n",
		pad, tag, fmtNum(p.SX), fmtNum(p.SY), p.Ref, p.NormX, p.NormY)
}

// fmtNum renders a coordinate without trailing zeros.
func fmtNum(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", f), "0"), ".")
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
