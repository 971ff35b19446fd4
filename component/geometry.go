package component

// Point is a location in world or local coordinates.
type Point struct {
	X, Y float64
}

// Vector is a signed 2D quantity such as a velocity.
type Vector struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rectangle is an axis-aligned box anchored at its top-left origin.
type Rectangle struct {
	Origin Point
	Size   Size
}

// Rect is shorthand for building a Rectangle.
func Rect(x, y, width, height float64) Rectangle {
	return Rectangle{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// Right returns the x coordinate of the right edge.
func (r Rectangle) Right() float64 {
	return r.Origin.X + r.Size.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rectangle) Bottom() float64 {
	return r.Origin.Y + r.Size.Height
}

// Center returns the midpoint of the rectangle.
func (r Rectangle) Center() Point {
	return Point{
		X: r.Origin.X + r.Size.Width/2,
		Y: r.Origin.Y + r.Size.Height/2,
	}
}

// Overlaps reports whether two rectangles touch or intersect on both axes.
// Shared edges count as overlap.
func (r Rectangle) Overlaps(other Rectangle) bool {
	return overlapsOnAxis(r.Origin.X, r.Size.Width, other.Origin.X, other.Size.Width) &&
		overlapsOnAxis(r.Origin.Y, r.Size.Height, other.Origin.Y, other.Size.Height)
}

// IsOutside reports whether r lies entirely beyond any edge of bounds.
// Touching an edge is still inside.
func (r Rectangle) IsOutside(bounds Rectangle) bool {
	return r.Right() < bounds.Origin.X ||
		r.Origin.X > bounds.Right() ||
		r.Bottom() < bounds.Origin.Y ||
		r.Origin.Y > bounds.Bottom()
}

// Contains reports whether p lies inside r, edges included.
func (r Rectangle) Contains(p Point) bool {
	return inRange(p.X, r.Origin.X, r.Size.Width) && inRange(p.Y, r.Origin.Y, r.Size.Height)
}

func overlapsOnAxis(aPos, aSize, bPos, bSize float64) bool {
	return aPos <= bPos+bSize && aPos+aSize >= bPos
}

func inRange(v, start, size float64) bool {
	return start <= v && v <= start+size
}

// ShapeKind tags which variant a Shape holds.
type ShapeKind uint8

const (
	ShapeNone ShapeKind = iota
	ShapeRectangle
	ShapeCircle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeRectangle:
		return "rectangle"
	case ShapeCircle:
		return "circle"
	default:
		return "none"
	}
}

// Shape is a tagged variant: a rectangle uses Size, a circle uses Radius.
// Origin is relative to the owning entity's position.
type Shape struct {
	Kind   ShapeKind
	Origin Point
	Size   Size
	Radius float64
}

// RectShape builds a rectangle shape with the given local origin and size.
func RectShape(originX, originY, width, height float64) Shape {
	return Shape{
		Kind:   ShapeRectangle,
		Origin: Point{X: originX, Y: originY},
		Size:   Size{Width: width, Height: height},
	}
}

// CircleShape builds a circle shape with the given local origin and radius.
func CircleShape(originX, originY, radius float64) Shape {
	return Shape{
		Kind:   ShapeCircle,
		Origin: Point{X: originX, Y: originY},
		Radius: radius,
	}
}

// Valid reports whether the shape holds a known variant.
func (s Shape) Valid() bool {
	return s.Kind == ShapeRectangle || s.Kind == ShapeCircle
}

// Translate returns a copy of the shape with its origin offset by p.
func (s Shape) Translate(p Point) Shape {
	s.Origin.X += p.X
	s.Origin.Y += p.Y
	return s
}

// Rectangle returns the rectangle variant. ok is false for any other kind.
func (s Shape) Rectangle() (rect Rectangle, ok bool) {
	if s.Kind != ShapeRectangle {
		return Rectangle{}, false
	}
	return Rectangle{Origin: s.Origin, Size: s.Size}, true
}
