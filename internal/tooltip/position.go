package tooltip

// Point is a position in the host's units, pixels or terminal cells.
type Point struct {
	X, Y int
}

// Size is a width and height in the same units as Point.
type Size struct {
	W, H int
}

// Geometry sets the pointer offset and the viewport padding.
type Geometry struct {
	OffsetX int
	OffsetY int
	Padding int
}

// PixelGeometry suits pointer coordinates in pixels.
var PixelGeometry = Geometry{OffsetX: 14, OffsetY: 18, Padding: 12}

// CellGeometry suits terminal cells.
var CellGeometry = Geometry{OffsetX: 2, OffsetY: 1, Padding: 0}

// Place returns the tooltip's top-left corner for a pointer at p. The box
// sits below and to the right of the pointer, flips to the other side on
// an axis where it would leave the viewport, and never starts inside the
// padding.
func (g Geometry) Place(p Point, box, viewport Size) Point {
	left := p.X + g.OffsetX
	top := p.Y + g.OffsetY
	if left+box.W+g.Padding > viewport.W {
		left = p.X - box.W - g.OffsetX
	}
	if top+box.H+g.Padding > viewport.H {
		top = p.Y - box.H - g.OffsetY
	}
	return Point{X: max(g.Padding, left), Y: max(g.Padding, top)}
}
