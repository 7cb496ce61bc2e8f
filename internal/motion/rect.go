package motion

import "math"

// Rect is an axis-aligned rectangle in fractional grid units.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether (x, y) is inside r. Left and top edges are inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Scale returns r with positions and sizes multiplied by (sx, sy).
func (r Rect) Scale(sx, sy float64) Rect {
	return Rect{X: r.X * sx, Y: r.Y * sy, W: r.W * sx, H: r.H * sy}
}

// Lerp interpolates from r to o by t in [0, 1].
func (r Rect) Lerp(o Rect, t float64) Rect {
	return Rect{
		X: r.X + (o.X-r.X)*t,
		Y: r.Y + (o.Y-r.Y)*t,
		W: r.W + (o.W-r.W)*t,
		H: r.H + (o.H-r.H)*t,
	}
}

// Cells rounds r to whole terminal cells.
func (r Rect) Cells() (x, y, w, h int) {
	return int(math.Round(r.X)), int(math.Round(r.Y)), int(math.Round(r.W)), int(math.Round(r.H))
}

// Near reports whether every component of r is within eps of o.
func (r Rect) Near(o Rect, eps float64) bool {
	return math.Abs(r.X-o.X) <= eps && math.Abs(r.Y-o.Y) <= eps &&
		math.Abs(r.W-o.W) <= eps && math.Abs(r.H-o.H) <= eps
}

func (r Rect) components() [4]float64 { return [4]float64{r.X, r.Y, r.W, r.H} }

func rectOf(c [4]float64) Rect { return Rect{X: c[0], Y: c[1], W: c[2], H: c[3]} }
