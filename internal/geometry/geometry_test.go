package geometry

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-7

func TestSizeZeroAndConstruct(t *testing.T) {
	var s Size
	assert.Equal(t, 0.0, s.Width)
	assert.Equal(t, 0.0, s.Height)

	s = Sz(1, 2)
	assert.Equal(t, Size{Width: 1, Height: 2}, s)
}

func TestSizeArithmetic(t *testing.T) {
	a := Sz(10, 11)

	assert.Equal(t, Sz(15, 17), a.Add(Sz(5, 6)))
	assert.Equal(t, Sz(7, 5), a.Sub(Sz(3, 6)))
	assert.Equal(t, Sz(23, 24), a.AddScalar(13))
	assert.Equal(t, Sz(8, 9), a.SubScalar(2))
	assert.Equal(t, Sz(20, 33), a.Mul(Sz(2, 3)))
	assert.Equal(t, Sz(20, 33), a.MulInt(image.Pt(2, 3)))
	assert.Equal(t, Sz(20, 22), a.Scale(2))
	assert.Equal(t, Sz(189, 155), Sz(11, 45).SubFrom(200))

	// operands are untouched
	assert.Equal(t, Sz(10, 11), a)
}

func TestSizeAssign(t *testing.T) {
	s := Sz(10, 11)
	s.AddAssign(Sz(5, 6))
	assert.Equal(t, Sz(15, 17), s)

	s = Sz(10, 11)
	s.SubAssign(Sz(3, 6))
	assert.Equal(t, Sz(7, 5), s)

	s = Sz(10, 11)
	s.MulAssign(Sz(3, 6))
	assert.Equal(t, Sz(30, 66), s)

	s = Sz(1, 1)
	got := s.AddAssign(Sz(1, 1)).MulAssign(Sz(2, 3))
	assert.Same(t, &s, got)
	assert.Equal(t, Sz(4, 6), s)
}

func TestSizeLog10Floor(t *testing.T) {
	l := Sz(1000, 100).Log10()
	assert.InDelta(t, 3.0, l.Width, tol)
	assert.InDelta(t, 2.0, l.Height, tol)

	assert.Equal(t, Sz(12, 4), Sz(12.98, 4.01).Floor())
}

func TestSizeProperties(t *testing.T) {
	sizes := []Size{Sz(0, 0), Sz(1.5, -2.25), Sz(1e6, 3e-3), Sz(-7.125, 42)}
	for _, a := range sizes {
		for _, b := range sizes {
			r := a.Add(b).Sub(b)
			assert.InDelta(t, a.Width, r.Width, 1e-6)
			assert.InDelta(t, a.Height, r.Height, 1e-6)
		}
		assert.Equal(t, a, a.Scale(1.0))
	}
}

func TestRect(t *testing.T) {
	var r Rect
	assert.Equal(t, Rect{}, r)

	r = NewRect(1, 2, 3, 4)
	assert.Equal(t, 1.0, r.Top)
	assert.Equal(t, 2.0, r.Bottom)
	assert.Equal(t, 3.0, r.Left)
	assert.Equal(t, 4.0, r.Right)
	assert.Equal(t, 1.0, r.Width())
	assert.Equal(t, 1.0, r.Height())

	inverted := NewRect(10, 0, 5, 1)
	assert.Equal(t, -4.0, inverted.Width())
	assert.Equal(t, -10.0, inverted.Height())
}

func TestPoint(t *testing.T) {
	var p Point
	assert.Equal(t, Point{}, p)
	assert.Equal(t, Pt(4, 6), Pt(1, 2).Add(Pt(3, 4)))
	assert.Equal(t, Pt(-2, -2), Pt(1, 2).Sub(Pt(3, 4)))
}

func TestLength(t *testing.T) {
	assert.Equal(t, 0.0, Length(0, 0))
	assert.InDelta(t, 2.2360679774997898, Length(1, 2), tol)
	assert.InDelta(t, 0.86023252670426265, Length(0.5, 0.7), tol)
	assert.InDelta(t, 2.2360679774997898, Length(-1, -2), tol)

	p0, p1, p2 := Pt(0, 0), Pt(1, 2), Pt(2, 4)
	assert.Equal(t, 0.0, LengthBetween(p0, p0))
	assert.InDelta(t, 2.2360679774997898, LengthBetween(p1, p2), tol)
	assert.Equal(t, LengthBetween(p1, p2), LengthBetween(p2, p1))
}

func TestCircumference(t *testing.T) {
	assert.Equal(t, 0.0, Circumference(0))
	assert.InDelta(t, 6.2831853071795862, Circumference(1), tol)
	assert.InDelta(t, 97.389372261283583, Circumference(15.5), tol)
}

func TestSector(t *testing.T) {
	origin := Pt(1, 2)

	tests := []struct {
		name       string
		dx, dy     float64
		want       int
		horizontal bool
	}{
		{"0 degrees", 1, 0, 1, true},
		{"27 degrees", 2, 1, 1, true},
		{"45 degrees", 1, 1, 2, false},
		{"63 degrees", 1, 2, 2, false},
		{"90 degrees", 0, 1, 3, false},
		{"117 degrees", -1, 2, 3, false},
		{"135 degrees", -1, 1, 4, true},
		{"153 degrees", -2, 1, 4, true},
		{"180 degrees", -1, 0, -4, true},
		{"207 degrees", -2, -1, -4, true},
		{"225 degrees", -1, -1, -4, true},
		{"243 degrees", -1, -2, -3, false},
		{"270 degrees", 0, -1, -3, false},
		{"297 degrees", 1, -2, -2, false},
		{"315 degrees", 1, -1, -2, false},
		{"333 degrees", 2, -1, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pt(origin.X+tt.dx, origin.Y+tt.dy)
			assert.Equal(t, tt.want, Sector(origin, p))
			assert.Equal(t, tt.horizontal, IsHorizontallyOriented(origin, p))
			assert.Equal(t, !tt.horizontal, IsVerticallyOriented(origin, p))
		})
	}

	t.Run("coincident", func(t *testing.T) {
		assert.Equal(t, 0, Sector(origin, origin))
		assert.False(t, IsHorizontallyOriented(origin, origin))
		assert.False(t, IsVerticallyOriented(origin, origin))
	})
}

func TestSectorMatchesAngleBands(t *testing.T) {
	origin := Pt(-3, 7)
	// Sample directions away from the exact band edges and check the
	// octant agrees with the atan2 angle.
	for deg := 0.5; deg < 360; deg += 3 {
		rad := Radians(deg)
		p := Pt(origin.X+10*math.Cos(rad), origin.Y+10*math.Sin(rad))
		band := int(deg / 45)
		want := band + 1
		if band >= 4 {
			want = band - 8
		}
		assert.Equal(t, want, Sector(origin, p), "angle %v", deg)
		assert.NotEqual(t, IsHorizontallyOriented(origin, p), IsVerticallyOriented(origin, p))
	}
}

func TestAngle(t *testing.T) {
	p0 := Pt(1, 2)

	tests := []struct {
		name   string
		dx, dy float64
		want   float64
	}{
		{"27 degrees", 2, 1, 0.46364761},
		{"63 degrees", 1, 2, 1.10714872},
		{"117 degrees", -1, 2, 2.03444393},
		{"153 degrees", -2, 1, 2.67794504},
		{"207 degrees", -2, -1, -2.67794504},
		{"243 degrees", -1, -2, -2.03444393},
		{"297 degrees", 1, -2, -1.10714872},
		{"333 degrees", 2, -1, -0.46364761},
		{"0 degrees", 1, 0, 0},
		{"45 degrees", 1, 1, 0.78539816},
		{"90 degrees", 0, 1, 1.57079633},
		{"135 degrees", -1, 1, 2.35619449},
		{"180 degrees", -1, 0, 3.14159265},
		{"225 degrees", -1, -1, -2.35619449},
		{"270 degrees", 0, -1, -1.57079633},
		{"315 degrees", 1, -1, -0.78539816},
	}

	assert.Equal(t, 0.0, Angle(p0, p0))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Angle(p0, Pt(p0.X+tt.dx, p0.Y+tt.dy)), tol)
		})
	}
}

func TestAngleReverse(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(1, 2), Pt(-4, 3.5), Pt(10, -10), Pt(0.25, 7)}
	for _, a := range points {
		for _, b := range points {
			if a == b {
				continue
			}
			d := Angle(a, b) - Angle(b, a)
			assert.InDelta(t, math.Pi, math.Abs(d), 1e-9, "%v -> %v", a, b)
		}
	}
}

func TestAngleBetween(t *testing.T) {
	p0 := Pt(1, 2)
	assert.Equal(t, 0.0, AngleBetween(p0, p0, p0))

	p1 := Pt(5, 6)
	assert.InDelta(t, 0.0, AngleBetween(p0, p1, p1), tol)

	p2, p3 := Pt(4, -1), Pt(5, 6)
	assert.InDelta(t, 1.57079633, AngleBetween(p0, p2, p3), tol)
	assert.InDelta(t, -1.57079633, AngleBetween(p0, p3, p2), tol)

	p4, p5 := Pt(1, 5), Pt(5, 2)
	assert.InDelta(t, -1.57079633, AngleBetween(p0, p4, p5), tol)
	assert.InDelta(t, 1.57079633, AngleBetween(p0, p5, p4), tol)

	p6, p7 := Pt(5, -2), Pt(-4, 4)
	assert.InDelta(t, -2.73670086, AngleBetween(p0, p6, p7), tol)
	assert.InDelta(t, 2.73670086, AngleBetween(p0, p7, p6), tol)
}

func TestAngleBetweenDegenerate(t *testing.T) {
	v := Pt(3, 3)
	assert.Equal(t, 0.0, AngleBetween(v, v, v))
	for _, x := range []Point{Pt(0, 0), Pt(4, 3), Pt(3, 10), Pt(-1, -8)} {
		assert.Equal(t, 0.0, AngleBetween(v, x, x))
		// a ray of zero length sweeps nothing
		assert.Equal(t, 0.0, AngleBetween(v, v, x))
		assert.Equal(t, 0.0, AngleBetween(v, x, v))
	}

	// coincident points on either side, including a direction of exactly π
	assert.Equal(t, 0.0, AngleBetween(v, v, Pt(4, 4)))
	assert.Equal(t, 0.0, AngleBetween(v, v, Pt(2, 3)))
	assert.Equal(t, 0.0, AngleBetween(v, Pt(2, 3), v))
}

func TestAngleBetweenRange(t *testing.T) {
	v := Pt(0, 0)
	for a := 0.0; a < 360; a += 15 {
		for b := 0.0; b < 360; b += 15 {
			pa := Pt(math.Cos(Radians(a)), math.Sin(Radians(a)))
			pb := Pt(math.Cos(Radians(b)), math.Sin(Radians(b)))
			got := AngleBetween(v, pa, pb)
			assert.Greater(t, got, -math.Pi-1e-12)
			assert.LessOrEqual(t, got, math.Pi+1e-12)
		}
	}
}

func TestDegreesRadians(t *testing.T) {
	assert.InDelta(t, 180.0, Degrees(math.Pi), tol)
	assert.InDelta(t, math.Pi/2, Radians(90), tol)
}
