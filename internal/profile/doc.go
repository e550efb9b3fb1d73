// Package profile implements the key-value stores that palette colors are
// persisted to.
//
// File keeps its values in a small YAML document:
//
//	values:
//	  LineFore: 255
//	  RulerBack: 0xFFFFFF
//
// Values that are missing, non-numeric or out of range read back as the
// caller's default; the store never reports a bad value as an error.
// Memory is an in-process store used for previews and tests.
//
// Both stores carry a user-initiated flag. A store opened for a transient
// session the user started (for example previewing someone else's profile)
// is user initiated, and palettes will neither load from nor save to it.
package profile
