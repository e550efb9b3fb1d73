package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// lineSchema is shared by the tools that take a start and end point.
func lineSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"x1": map[string]interface{}{
				"type":        "number",
				"description": "Start X coordinate (screen pixels, increasing right)",
			},
			"y1": map[string]interface{}{
				"type":        "number",
				"description": "Start Y coordinate (screen pixels, increasing down)",
			},
			"x2": map[string]interface{}{
				"type":        "number",
				"description": "End X coordinate",
			},
			"y2": map[string]interface{}{
				"type":        "number",
				"description": "End Y coordinate",
			},
		},
		"required": []string{"x1", "y1", "x2", "y2"},
	}
}

// profileSchema is shared by palette_save and palette_load.
func profileSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"user_initiated": map[string]interface{}{
				"type":        "boolean",
				"description": "True when the session was started by the user. The profile is then left untouched.",
				"default":     false,
			},
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Geometry
		{
			Name:        "measure_line",
			Description: "Measure the line between two points: length, deltas, screen angle (0 = right, 90 = down), direction sector and label orientation.",
			InputSchema: lineSchema(),
		},
		{
			Name:        "measure_angle",
			Description: "Protractor: the signed angle swept from the ray vertex→(x1,y1) to the ray vertex→(x2,y2), in the range (-180, 180]. Positive is clockwise on screen.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"vertex_x": map[string]interface{}{
						"type":        "number",
						"description": "Vertex X coordinate",
					},
					"vertex_y": map[string]interface{}{
						"type":        "number",
						"description": "Vertex Y coordinate",
					},
					"x1": map[string]interface{}{
						"type":        "number",
						"description": "X coordinate of a point on the first ray",
					},
					"y1": map[string]interface{}{
						"type":        "number",
						"description": "Y coordinate of a point on the first ray",
					},
					"x2": map[string]interface{}{
						"type":        "number",
						"description": "X coordinate of a point on the second ray",
					},
					"y2": map[string]interface{}{
						"type":        "number",
						"description": "Y coordinate of a point on the second ray",
					},
				},
				"required": []string{"vertex_x", "vertex_y", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "measure_circle",
			Description: "Measure a circle from its center and a point on its edge: radius, diameter, circumference and area.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"center_x": map[string]interface{}{
						"type":        "number",
						"description": "Center X coordinate",
					},
					"center_y": map[string]interface{}{
						"type":        "number",
						"description": "Center Y coordinate",
					},
					"edge_x": map[string]interface{}{
						"type":        "number",
						"description": "X coordinate of a point on the circle",
					},
					"edge_y": map[string]interface{}{
						"type":        "number",
						"description": "Y coordinate of a point on the circle",
					},
				},
				"required": []string{"center_x", "center_y", "edge_x", "edge_y"},
			},
		},
		{
			Name:        "classify_direction",
			Description: "Classify the direction from (x1,y1) to (x2,y2) into one of eight sectors (1..4 below or right of the origin, -4..-1 above, 0 for coincident points) and say whether it is closer to horizontal or vertical.",
			InputSchema: lineSchema(),
		},
		{
			Name:        "check_alignment",
			Description: "Check whether points are horizontally or vertically aligned within a pixel tolerance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x": map[string]interface{}{"type": "number"},
								"y": map[string]interface{}{"type": "number"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Points to check",
					},
					"tolerance": map[string]interface{}{
						"type":        "number",
						"description": "Maximum deviation in pixels. Default 5",
						"default":     5,
					},
				},
				"required": []string{"points"},
			},
		},

		// Color model
		{
			Name:        "color_rgb_to_hsl",
			Description: "Convert a #RRGGBB color to HSL. Returns normalized HSL (0-1) and display units (degrees, percent).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Color as #RRGGBB",
					},
				},
				"required": []string{"color"},
			},
		},
		{
			Name:        "color_hsl_to_rgb",
			Description: "Convert normalized HSL (each component 0-1) to RGB.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"h": map[string]interface{}{
						"type":        "number",
						"description": "Hue, 0-1 (fraction of a turn)",
					},
					"s": map[string]interface{}{
						"type":        "number",
						"description": "Saturation, 0-1",
					},
					"l": map[string]interface{}{
						"type":        "number",
						"description": "Lightness, 0-1",
					},
				},
				"required": []string{"h", "s", "l"},
			},
		},
		{
			Name:        "color_interpolate",
			Description: "Blend two colors in HSL space. Each component is interpolated linearly; hue does not wrap around the color wheel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"start": map[string]interface{}{
						"type":        "string",
						"description": "Start color as #RRGGBB",
					},
					"end": map[string]interface{}{
						"type":        "string",
						"description": "End color as #RRGGBB",
					},
					"percent": map[string]interface{}{
						"type":        "integer",
						"description": "Position between start (0) and end (100)",
						"minimum":     0,
						"maximum":     100,
					},
				},
				"required": []string{"start", "end", "percent"},
			},
		},

		// Palette
		{
			Name:        "palette_get",
			Description: "Get the overlay palette, or a single role. Opacity roles report their opacity rather than a color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"role": map[string]interface{}{
						"type":        "string",
						"description": "Optional role name or profile key (e.g. LineForeground or LineFore). Omit for the whole palette.",
					},
				},
			},
		},
		{
			Name:        "palette_set",
			Description: "Change one palette role. Color roles take a #RRGGBB color, opacity roles take an opacity from 0 to 255.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"role": map[string]interface{}{
						"type":        "string",
						"description": "Role name or profile key",
					},
					"color": map[string]interface{}{
						"type":        "string",
						"description": "New color as #RRGGBB (color roles)",
					},
					"opacity": map[string]interface{}{
						"type":        "integer",
						"description": "New opacity (opacity roles)",
						"minimum":     0,
						"maximum":     255,
					},
				},
				"required": []string{"role"},
			},
		},
		{
			Name:        "palette_reset",
			Description: "Restore every palette role to its default.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "palette_save",
			Description: "Save the palette to the profile file.",
			InputSchema: profileSchema(),
		},
		{
			Name:        "palette_load",
			Description: "Load the palette from the profile file. Roles missing from the profile fall back to their defaults.",
			InputSchema: profileSchema(),
		},

		// Screen captures
		{
			Name:        "image_load",
			Description: "Load a screen capture and return its dimensions and format. The image is cached for the other image tools.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the exact color at a pixel: hex, RGB, packed integer and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colors_multi",
			Description: "Sample colors at several labeled points in one call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"points": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
						"description": "Points to sample",
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_sample_average",
			Description: "Get the mean color of a rectangular region.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_magnify",
			Description: "Magnify the pixels around a point, like the color finder's loupe. Returns a base64-encoded PNG where each source pixel is a zoom×zoom block, plus the color under the center.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Center X coordinate",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Center Y coordinate",
					},
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Source pixels shown on each side of the center. Default 8",
						"default":     8,
					},
					"zoom": map[string]interface{}{
						"type":        "integer",
						"description": "Output pixels per source pixel, 1-32. Default 8. (2*radius+1)*zoom may not exceed 2048",
						"default":     8,
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
