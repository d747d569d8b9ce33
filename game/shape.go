package game

// ShapeKind tags the collision shape variant.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape is a tagged collision shape. Rects are anchored at their top-left
// corner; circles at their center.
type Shape struct {
	Kind ShapeKind
	X, Y float64
	W, H float64 // rect extents
	R    float64 // circle radius
}

// RectShape builds an axis-aligned rectangle shape.
func RectShape(x, y, w, h float64) Shape {
	return Shape{Kind: ShapeRect, X: x, Y: y, W: w, H: h}
}

// CircleShape builds a circle shape.
func CircleShape(x, y, r float64) Shape {
	return Shape{Kind: ShapeCircle, X: x, Y: y, R: r}
}

type collideFunc func(a, b Shape) bool

// collisionTable dispatches on the pair of shape kinds.
var collisionTable = map[[2]ShapeKind]collideFunc{
	{ShapeRect, ShapeRect}:     rectRect,
	{ShapeCircle, ShapeCircle}: circleCircle,
	{ShapeRect, ShapeCircle}:   func(a, b Shape) bool { return circleRect(b, a) },
	{ShapeCircle, ShapeRect}:   func(a, b Shape) bool { return circleRect(a, b) },
}

// Intersects reports whether two shapes overlap. Shapes that merely touch at
// an edge do not overlap.
func Intersects(a, b Shape) bool {
	return collisionTable[[2]ShapeKind{a.Kind, b.Kind}](a, b)
}

// rectRect is the standard AABB separating-axis test: the rects overlap iff
// their extents overlap on both axes.
func rectRect(a, b Shape) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func circleCircle(a, b Shape) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	rr := a.R + b.R
	return dx*dx+dy*dy < rr*rr
}

// circleRect clamps the circle center into the rect and compares the
// remaining distance against the radius.
func circleRect(c, r Shape) bool {
	cx := clampf(c.X, r.X, r.X+r.W)
	cy := clampf(c.Y, r.Y, r.Y+r.H)
	dx := c.X - cx
	dy := c.Y - cy
	return dx*dx+dy*dy < c.R*c.R
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
