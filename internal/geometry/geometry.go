package geometry

import "math"

// Length returns the length of the vector (dx, dy).
func Length(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// LengthBetween returns the distance from p1 to p2.
func LengthBetween(p1, p2 Point) float64 {
	return Length(p2.X-p1.X, p2.Y-p1.Y)
}

// Circumference returns the circumference of a circle with the given radius.
func Circumference(radius float64) float64 {
	return 2.0 * math.Pi * radius
}

// Sector classifies the direction from origin to point into one of eight
// octants, returning 1..4 for angles in [0, 180) and -4..-1 for angles in
// [180, 360). It returns 0 when the points coincide. See the package
// documentation for the band boundaries.
//
// The classification compares the vector components directly rather than
// the atan2 result so that exact diagonals always land on the same side of
// a boundary.
func Sector(origin, point Point) int {
	dx := point.X - origin.X
	dy := point.Y - origin.Y

	switch {
	case dx == 0 && dy == 0:
		return 0

	// [0, 180): below the origin on screen, or straight right.
	case dy > 0 || (dy == 0 && dx > 0):
		switch {
		case dx > 0 && dy < dx:
			return 1
		case dx > 0:
			return 2
		case dy > -dx:
			return 3
		default:
			return 4
		}

	// [180, 360)
	default:
		up := -dy
		switch {
		case dx < 0 && up <= -dx:
			return -4
		case dx <= 0:
			return -3
		case up >= dx:
			return -2
		default:
			return -1
		}
	}
}

// Angle returns the angle of the vector from origin to point, in radians in
// the range (-π, π]. A zero-length vector has angle 0.
func Angle(origin, point Point) float64 {
	dx := point.X - origin.X
	dy := point.Y - origin.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(dy, dx)
}

// AngleBetween returns the signed angle swept from the ray vertex→p1 to the
// ray vertex→p2, normalised into (-π, π]. If either point coincides with
// the vertex there is no angle to sweep and the result is 0.
func AngleBetween(vertex, p1, p2 Point) float64 {
	if p1 == vertex || p2 == vertex {
		return 0
	}
	a := Angle(vertex, p2) - Angle(vertex, p1)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// IsHorizontallyOriented reports whether the direction from origin to point
// is closer to the horizontal axis (sectors ±1 and ±4).
func IsHorizontallyOriented(origin, point Point) bool {
	switch Sector(origin, point) {
	case 1, 4, -1, -4:
		return true
	}
	return false
}

// IsVerticallyOriented reports whether the direction from origin to point
// is closer to the vertical axis (sectors ±2 and ±3).
func IsVerticallyOriented(origin, point Point) bool {
	switch Sector(origin, point) {
	case 2, 3, -2, -3:
		return true
	}
	return false
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
