// Package colors holds the color model used by the measurement overlays:
// RGB and HSL conversion, HSL interpolation, and the palette of named
// color roles.
//
// # Conversion
//
// RGBToHSL and HSLToRGB use the classic min/max decomposition with every
// HSL component normalised to [0,1]. HSLToRGB truncates rather than rounds
// when scaling back to 8-bit channels, so a round trip can lose one unit
// per channel.
//
// # Palette
//
// A Palette maps each Role to an RGB value. The default colors are fixed
// except for the two opacity roles, whose default depends on whether the
// display supports translucent windows. Palettes are persisted through a
// ProfileStore using each role's Key, with colors packed as 0x00BBGGRR
// integers.
package colors
