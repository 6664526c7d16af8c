package sash

// Align positions a widget's label within its rectangle.
type Align uint8

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	}
	return "center"
}

// BulletMark selects the mark drawn ahead of a label.
type BulletMark uint8

const (
	MarkNone BulletMark = iota
	MarkCheck
	MarkRound
)

func (m BulletMark) String() string {
	switch m {
	case MarkCheck:
		return "check"
	case MarkRound:
		return "round"
	}
	return "none"
}

// DrawData is the resolved, per-widget record handed to the draw adapter:
// the pixel rectangle and border, the label and its resolved character size
// and alignment, the mark kind, the interaction flags, and the class's
// option bag. The option bag is opaque to the core; adapters interpret it.
type DrawData struct {
	Id       WidgetId
	Class    string
	Rect     Rectangle
	Border   float64
	Label    string
	CharSize float64
	Align    Align
	Mark     BulletMark
	Selected bool
	Disabled bool
	Hidden   bool
	Options  any
}

// DrawAdapter is the host-supplied render target. Adapters are
// single-threaded and stateless between calls; the toolkit never caches
// directives.
type DrawAdapter interface {
	// Draw renders one positioned rectangle/text record.
	Draw(data *DrawData, text string) error

	// GetTextMetrics fills metrics with the natural extent of text at a
	// character size no larger than upperLimit, without touching the render
	// target. Called repeatedly during layout.
	GetTextMetrics(data *DrawData, metrics *TextMetrics, text string, upperLimit float64) error
}

// draw walks the subtree pre-order, emitting directives for every visible
// widget. A hidden widget suppresses its whole subtree.
func (w *Widget) draws(adapter DrawAdapter) error {
	if w.data.Hidden {
		return nil
	}
	if w.methods != nil && w.methods.Draw != nil {
		if err := w.methods.Draw(w, adapter); err != nil {
			return err
		}
	} else if err := adapter.Draw(&w.data, Translate(w.data.Label)); err != nil {
		return err
	}
	for i := range w.children {
		if err := w.children[i].draws(adapter); err != nil {
			return err
		}
	}
	return nil
}
