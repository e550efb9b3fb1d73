// Package server implements the MCP (Model Context Protocol) server for the
// screen measurement tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Geometry (screen coordinates, Y increasing downward):
//   - measure_line: Length, angle, sector and label orientation of a line
//   - measure_angle: Protractor angle between two rays
//   - measure_circle: Radius, diameter, circumference and area
//   - classify_direction: Eight-way sector of a direction
//   - check_alignment: Horizontal/vertical alignment of points
//
// Color model:
//   - color_rgb_to_hsl, color_hsl_to_rgb: Conversions
//   - color_interpolate: HSL blend between two colors
//
// Palette:
//   - palette_get, palette_set, palette_reset: Inspect and edit overlay colors
//   - palette_save, palette_load: Persist the palette to the profile file
//
// Screen captures:
//   - image_load: Load a capture and get metadata
//   - image_sample_color, image_sample_colors_multi: Color under pixels
//   - image_sample_average: Mean color of a region
//   - image_magnify: Loupe view around a point
//
// # Palette and Profile
//
// The server owns one palette. Its default opacities depend on whether the
// display supports layered windows (config.Config.Layered). LoadProfile
// reads the configured profile at startup; palette_save and palette_load
// take a user_initiated flag, and a user-initiated session never reads or
// writes the profile.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(config.FromEnv(os.Getenv))
//	if err := srv.LoadProfile(); err != nil {
//	    log.Printf("Using default palette: %v", err)
//	}
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
