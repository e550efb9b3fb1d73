package capture

import (
	"math"

	"github.com/ironsheep/screen-measure-mcp/internal/geometry"
)

// Orientation names reported by the line tool.
const (
	OrientationHorizontal = "horizontal"
	OrientationVertical   = "vertical"
	OrientationNone       = "none"
)

// LineResult is the line tool readout between two points.
type LineResult struct {
	Start        geometry.Point `json:"start"`
	End          geometry.Point `json:"end"`
	Length       float64        `json:"length"`
	DeltaX       float64        `json:"delta_x"`
	DeltaY       float64        `json:"delta_y"`
	AngleRadians float64        `json:"angle_radians"`
	AngleDegrees float64        `json:"angle_degrees"`
	Sector       int            `json:"sector"`
	Orientation  string         `json:"orientation"`
}

// MeasureLine measures from start to end. The angle is the screen angle
// (0 = right, 90 = down) and orientation says whether a label for the line
// should run horizontally or vertically.
func MeasureLine(start, end geometry.Point) *LineResult {
	angle := geometry.Angle(start, end)
	return &LineResult{
		Start:        start,
		End:          end,
		Length:       round(geometry.LengthBetween(start, end), 2),
		DeltaX:       end.X - start.X,
		DeltaY:       end.Y - start.Y,
		AngleRadians: angle,
		AngleDegrees: round(geometry.Degrees(angle), 1),
		Sector:       geometry.Sector(start, end),
		Orientation:  orientation(start, end),
	}
}

func orientation(start, end geometry.Point) string {
	switch {
	case geometry.IsHorizontallyOriented(start, end):
		return OrientationHorizontal
	case geometry.IsVerticallyOriented(start, end):
		return OrientationVertical
	}
	return OrientationNone
}

// AngleResult is the protractor readout.
type AngleResult struct {
	Vertex       geometry.Point `json:"vertex"`
	Point1       geometry.Point `json:"point1"`
	Point2       geometry.Point `json:"point2"`
	AngleRadians float64        `json:"angle_radians"`
	AngleDegrees float64        `json:"angle_degrees"`
	Ray1Length   float64        `json:"ray1_length"`
	Ray2Length   float64        `json:"ray2_length"`
}

// MeasureAngle measures the signed angle swept from the ray vertex→p1 to
// the ray vertex→p2. Positive angles sweep clockwise on screen.
func MeasureAngle(vertex, p1, p2 geometry.Point) *AngleResult {
	angle := geometry.AngleBetween(vertex, p1, p2)
	return &AngleResult{
		Vertex:       vertex,
		Point1:       p1,
		Point2:       p2,
		AngleRadians: angle,
		AngleDegrees: round(geometry.Degrees(angle), 1),
		Ray1Length:   round(geometry.LengthBetween(vertex, p1), 2),
		Ray2Length:   round(geometry.LengthBetween(vertex, p2), 2),
	}
}

// CircleResult is the circle tool readout.
type CircleResult struct {
	Center        geometry.Point `json:"center"`
	Radius        float64        `json:"radius"`
	Diameter      float64        `json:"diameter"`
	Circumference float64        `json:"circumference"`
	Area          float64        `json:"area"`
}

// MeasureCircle measures a circle centred on center passing through edge.
func MeasureCircle(center, edge geometry.Point) *CircleResult {
	r := geometry.LengthBetween(center, edge)
	return &CircleResult{
		Center:        center,
		Radius:        round(r, 2),
		Diameter:      round(2*r, 2),
		Circumference: round(geometry.Circumference(r), 2),
		Area:          round(math.Pi*r*r, 2),
	}
}

// AlignmentResult contains alignment check information.
type AlignmentResult struct {
	HorizontallyAligned bool    `json:"horizontally_aligned"`
	VerticallyAligned   bool    `json:"vertically_aligned"`
	HorizontalVariance  float64 `json:"horizontal_variance"`
	VerticalVariance    float64 `json:"vertical_variance"`
	AverageY            float64 `json:"average_y"`
	AverageX            float64 `json:"average_x"`
}

// CheckAlignment reports whether points line up horizontally (their Y
// values deviate by at most tolerance) or vertically (likewise for X). The
// deviation is the population standard deviation. Fewer than two points
// are trivially aligned both ways.
func CheckAlignment(points []geometry.Point, tolerance float64) *AlignmentResult {
	if len(points) < 2 {
		return &AlignmentResult{
			HorizontallyAligned: true,
			VerticallyAligned:   true,
		}
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))
	avgX := sumX / n
	avgY := sumY / n

	var varX, varY float64
	for _, p := range points {
		dx := p.X - avgX
		dy := p.Y - avgY
		varX += dx * dx
		varY += dy * dy
	}
	varX = math.Sqrt(varX / n)
	varY = math.Sqrt(varY / n)

	return &AlignmentResult{
		HorizontallyAligned: varY <= tolerance,
		VerticallyAligned:   varX <= tolerance,
		HorizontalVariance:  round(varY, 2),
		VerticalVariance:    round(varX, 2),
		AverageY:            round(avgY, 2),
		AverageX:            round(avgX, 2),
	}
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
