package sash

import (
	"fmt"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DrawStream is a DrawAdapter that writes each directive as one line of
// XML-like text. It backs golden tests and headless runs; text metrics come
// from the fixed 7x13 bitmap face scaled to the requested character size.
type DrawStream struct {
	out io.Writer
}

// NewDrawStream makes a stream adapter writing to out.
func NewDrawStream(out io.Writer) *DrawStream {
	return &DrawStream{out: out}
}

// Draw writes one directive line.
func (d *DrawStream) Draw(data *DrawData, text string) error {
	_, err := fmt.Fprintf(d.out,
		"<draw id='%s' class='%s' x='%s' y='%s' width='%s' height='%s' border='%s'",
		data.Id, data.Class,
		fmtNum(data.Rect.X), fmtNum(data.Rect.Y),
		fmtNum(data.Rect.Width), fmtNum(data.Rect.Height),
		fmtNum(data.Border))
	if err != nil {
		return err
	}
	if data.Selected {
		fmt.Fprintf(d.out, " selected='true'")
	}
	if data.Disabled {
		fmt.Fprintf(d.out, " disabled='true'")
	}
	if data.Mark != MarkNone {
		fmt.Fprintf(d.out, " mark='%s'", data.Mark)
	}
	if text != "" {
		fmt.Fprintf(d.out, " align='%s' charSize='%s'>%s</draw>\n",
			data.Align, fmtNum(data.CharSize), escapeText(text))
		return nil
	}
	_, err = fmt.Fprintf(d.out, "/>\n")
	return err
}

// streamFaceHeight is the line height of the bitmap face the stream
// measures with.
const streamFaceHeight = 13

// GetTextMetrics measures text with the 7x13 face and reports the extent it
// would have when scaled to a character size of upperLimit.
func (d *DrawStream) GetTextMetrics(data *DrawData, metrics *TextMetrics, text string, upperLimit float64) error {
	if upperLimit <= 0 {
		upperLimit = 1
	}
	advance := font.MeasureString(basicfont.Face7x13, text)
	base := float64(advance) / 64

	metrics.CharSize = upperLimit
	metrics.Height = upperLimit
	metrics.Width = base * upperLimit / streamFaceHeight
	return nil
}
