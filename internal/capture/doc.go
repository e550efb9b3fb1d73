// Package capture provides the measurement readouts and the operations on
// screen captures used by the MCP server.
//
// Readouts (MeasureLine, MeasureAngle, MeasureCircle, CheckAlignment) turn
// tool positions into the numbers shown to the user using the geometry
// package. Capture operations (SampleColor, SampleAverage, Magnify) work on
// screenshots loaded through ImageCache and report colors with the colors
// package.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward. Regions are half open:
// (X1,Y1) is inclusive and (X2,Y2) is exclusive.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The other functions are stateless.
//
// # Rounding
//
// Readout values are rounded for display: lengths to 2 decimal places and
// angles to 1 decimal place of a degree. Radian values are not rounded.
package capture
