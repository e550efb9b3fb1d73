// Package geometry provides planar value types and the length, angle and
// direction calculations used to place and orient measurement overlays.
//
// # Coordinate System
//
// All coordinates are float64 screen coordinates: X increases rightward and
// Y increases downward. Angles are therefore measured clockwise on screen
// even though they are computed with the usual atan2(dy, dx) formula.
//
// # Sectors
//
// The direction from one point to another is classified into one of eight
// 45 degree octants by Sector:
//
//	angle (degrees)    sector   orientation
//	[0, 45)              1      horizontal
//	[45, 90)             2      vertical
//	[90, 135)            3      vertical
//	[135, 180)           4      horizontal
//	[180, 225]          -4      horizontal
//	(225, 270]          -3      vertical
//	(270, 315]          -2      vertical
//	(315, 360)          -1      horizontal
//
// Note the lower half of the circle closes its bands on the far side. A
// zero-length vector has sector 0 and no orientation.
//
// # Thread Safety
//
// Every function in this package is pure and safe for concurrent use.
package geometry
