package sash

// Normalize selects where along the referenced widget's edge a fractional
// coordinate is measured. A widget's stored rectangle spans its outer extent
// (border included), so the modes differ by how far the interpolation span
// is inset by the referenced widget's border.
type Normalize uint8

const (
	// NormalizeDefault measures against the inner border edge when the
	// reference is the widget's own parent, and the outer edge when it is a
	// peer. Children land inside the parent's border; neighbors abut it.
	NormalizeDefault Normalize = iota

	// NormalizeOuter measures against the outside edge of the border.
	NormalizeOuter

	// NormalizeMiddle measures against the middle of the border.
	NormalizeMiddle

	// NormalizeInner measures against the inside edge of the border.
	NormalizeInner

	// NormalizeTight measures against the raw rectangle edge, ignoring the
	// border entirely.
	NormalizeTight
)

func (n Normalize) String() string {
	switch n {
	case NormalizeOuter:
		return "outer"
	case NormalizeMiddle:
		return "middle"
	case NormalizeInner:
		return "inner"
	case NormalizeTight:
		return "tight"
	}
	return "default"
}

// Vertex names one of nine anchor points of a rectangle, or none.
type Vertex uint8

const (
	VertexNone Vertex = iota
	VertexUpperLeft
	VertexUpperCenter
	VertexUpperRight
	VertexCenterLeft
	VertexCenter
	VertexCenterRight
	VertexLowerLeft
	VertexLowerCenter
	VertexLowerRight
)

var vertexNames = [...]string{
	"none", "upperLeft", "upperCenter", "upperRight",
	"centerLeft", "center", "centerRight",
	"lowerLeft", "lowerCenter", "lowerRight",
}

func (v Vertex) String() string {
	if int(v) < len(vertexNames) {
		return vertexNames[v]
	}
	return "none"
}

// factors returns the anchor's fractional offsets within a rectangle:
// 0, 0.5, or 1 on each axis.
func (v Vertex) factors() (fx, fy float64) {
	switch v {
	case VertexUpperLeft:
		return 0, 0
	case VertexUpperCenter:
		return 0.5, 0
	case VertexUpperRight:
		return 1, 0
	case VertexCenterLeft:
		return 0, 0.5
	case VertexCenter:
		return 0.5, 0.5
	case VertexCenterRight:
		return 1, 0.5
	case VertexLowerLeft:
		return 0, 1
	case VertexLowerCenter:
		return 0.5, 1
	case VertexLowerRight:
		return 1, 1
	}
	return 0, 0
}

// Position is one corner of a declared layout: a fraction in [-1,1] on each
// axis of the referenced widget, plus the reference itself and the per-axis
// normalization modes.
type Position struct {
	SX, SY       float64
	Ref          WidgetRef
	NormX, NormY Normalize
}

// Pos makes a parent-relative position with default normalization.
func Pos(sx, sy float64) Position {
	return Position{SX: sx, SY: sy, Ref: RefParent()}
}

// PosOf makes a position relative to an arbitrary reference.
func PosOf(sx, sy float64, ref WidgetRef) Position {
	return Position{SX: sx, SY: sy, Ref: ref}
}

// Normalized returns a copy with both axes set to the given mode.
func (p Position) Normalized(n Normalize) Position {
	p.NormX, p.NormY = n, n
	return p
}

// Layout declares a widget's rectangle: two positions (upper-left and
// lower-right corners), an optional pin vertex, and a border thickness. A
// negative thickness means "use the class default from the environment".
type Layout struct {
	UpperLeft  Position
	LowerRight Position
	Pin        Vertex
	Thickness  float64
}

// LayoutOf declares a rectangle by its two corner positions.
func LayoutOf(upperLeft, lowerRight Position) Layout {
	return Layout{UpperLeft: upperLeft, LowerRight: lowerRight, Thickness: -1}
}

// FillParent spans the whole parent.
func FillParent() Layout {
	return LayoutOf(Pos(-1, -1), Pos(1, 1))
}

// Centered declares a rectangle of the given parent-relative fractional
// size, pinned to the parent's center.
func Centered(width, height float64) Layout {
	lo := LayoutOf(Pos(-width, -height), Pos(width, height))
	lo.Pin = VertexCenter
	return lo
}

// Border returns a copy with the border thickness set in pixels.
func (lo Layout) Border(thickness float64) Layout {
	lo.Thickness = thickness
	return lo
}

// Pinned returns a copy pinned to the given vertex.
func (lo Layout) Pinned(v Vertex) Layout {
	lo.Pin = v
	return lo
}

// ============================================================================
// Resolution math
// ============================================================================

// axisSpan returns the interpolation span along one axis of the referenced
// rectangle, selected by the normalization mode. lo/hi are the rect's outer
// edges on that axis and border is the referenced widget's border thickness.
func axisSpan(lo, hi, border float64, mode Normalize, refIsParent bool) (float64, float64) {
	if mode == NormalizeDefault {
		if refIsParent {
			mode = NormalizeInner
		} else {
			mode = NormalizeOuter
		}
	}
	switch mode {
	case NormalizeInner:
		return lo + border, hi - border
	case NormalizeMiddle:
		return lo + border/2, hi - border/2
	}
	// Outer and Tight both measure the outer extent: the stored rectangle
	// already spans the outside edge of the border.
	return lo, hi
}

// resolvePoint maps a position's fractions onto a referenced rectangle.
// refIsParent selects the Default normalization behavior.
func resolvePoint(p Position, ref Rectangle, refBorder float64, refIsParent bool) Coordinates {
	lx, hx := axisSpan(ref.X, ref.X+ref.Width, refBorder, p.NormX, refIsParent)
	ly, hy := axisSpan(ref.Y, ref.Y+ref.Height, refBorder, p.NormY, refIsParent)
	return Coordinates{
		X: lx + (p.SX+1)/2*(hx-lx),
		Y: ly + (p.SY+1)/2*(hy-ly),
	}
}

// pinRectangle translates the corner pair so the layout's pin vertex lands
// on the midpoint of the two resolved corners. With VertexNone the corners
// are used as-is.
func pinRectangle(ul, lr Coordinates, pin Vertex) (Coordinates, Coordinates) {
	if pin == VertexNone {
		return ul, lr
	}
	w := lr.X - ul.X
	h := lr.Y - ul.Y
	mx := (ul.X + lr.X) / 2
	my := (ul.Y + lr.Y) / 2
	fx, fy := pin.factors()
	x := mx - fx*w
	y := my - fy*h
	return Coordinates{x, y}, Coordinates{x + w, y + h}
}
