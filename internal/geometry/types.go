package geometry

import (
	"image"
	"math"
)

// Point is a position in screen coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is a two dimensional extent.
//
// The value methods return new sizes and never modify their operands. The
// *Assign methods mutate the receiver in place and return it so calls can
// be chained.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Sz is shorthand for Size{w, h}.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Add returns s+o.
func (s Size) Add(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// Sub returns s-o.
func (s Size) Sub(o Size) Size {
	return Size{Width: s.Width - o.Width, Height: s.Height - o.Height}
}

// AddScalar adds v to both components.
func (s Size) AddScalar(v float64) Size {
	return Size{Width: s.Width + v, Height: s.Height + v}
}

// SubScalar subtracts v from both components.
func (s Size) SubScalar(v float64) Size {
	return Size{Width: s.Width - v, Height: s.Height - v}
}

// SubFrom returns v-s, i.e. each component subtracted from v.
func (s Size) SubFrom(v float64) Size {
	return Size{Width: v - s.Width, Height: v - s.Height}
}

// Mul multiplies s component-wise by o.
func (s Size) Mul(o Size) Size {
	return Size{Width: s.Width * o.Width, Height: s.Height * o.Height}
}

// MulInt multiplies s component-wise by an integer size pair, with X
// scaling the width and Y the height.
func (s Size) MulInt(o image.Point) Size {
	return Size{Width: s.Width * float64(o.X), Height: s.Height * float64(o.Y)}
}

// Scale multiplies both components by v.
func (s Size) Scale(v float64) Size {
	return Size{Width: s.Width * v, Height: s.Height * v}
}

// Log10 applies the base 10 logarithm to each component.
func (s Size) Log10() Size {
	return Size{Width: math.Log10(s.Width), Height: math.Log10(s.Height)}
}

// Floor applies math.Floor to each component.
func (s Size) Floor() Size {
	return Size{Width: math.Floor(s.Width), Height: math.Floor(s.Height)}
}

// AddAssign adds o to s in place.
func (s *Size) AddAssign(o Size) *Size {
	s.Width += o.Width
	s.Height += o.Height
	return s
}

// SubAssign subtracts o from s in place.
func (s *Size) SubAssign(o Size) *Size {
	s.Width -= o.Width
	s.Height -= o.Height
	return s
}

// MulAssign multiplies s component-wise by o in place.
func (s *Size) MulAssign(o Size) *Size {
	s.Width *= o.Width
	s.Height *= o.Height
	return s
}

// Rect is a rectangle given by its four edges. The edges are stored as
// given; nothing requires Top <= Bottom or Left <= Right.
type Rect struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// NewRect returns a rectangle with the given edges.
func NewRect(top, bottom, left, right float64) Rect {
	return Rect{Top: top, Bottom: bottom, Left: left, Right: right}
}

// Width returns Right-Left. It is negative for an inverted rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns Bottom-Top. It is negative for an inverted rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}
