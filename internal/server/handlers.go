package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/screen-measure-mcp/internal/capture"
	"github.com/ironsheep/screen-measure-mcp/internal/colors"
	"github.com/ironsheep/screen-measure-mcp/internal/geometry"
	"github.com/ironsheep/screen-measure-mcp/internal/profile"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "measure_line", "palette_get").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// Defaults for optional tool arguments.
const (
	defaultAlignmentTolerance = 5.0
	defaultMagnifyRadius      = 8
	defaultMagnifyZoom        = 8
)

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.debugf("%s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Geometry
	case "measure_line":
		return s.handleMeasureLine(args)
	case "measure_angle":
		return s.handleMeasureAngle(args)
	case "measure_circle":
		return s.handleMeasureCircle(args)
	case "classify_direction":
		return s.handleClassifyDirection(args)
	case "check_alignment":
		return s.handleCheckAlignment(args)

	// Color model
	case "color_rgb_to_hsl":
		return s.handleColorRGBToHSL(args)
	case "color_hsl_to_rgb":
		return s.handleColorHSLToRGB(args)
	case "color_interpolate":
		return s.handleColorInterpolate(args)

	// Palette
	case "palette_get":
		return s.handlePaletteGet(args)
	case "palette_set":
		return s.handlePaletteSet(args)
	case "palette_reset":
		return s.handlePaletteReset(args)
	case "palette_save":
		return s.handlePaletteSave(args)
	case "palette_load":
		return s.handlePaletteLoad(args)

	// Screen captures
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_sample_colors_multi":
		return s.handleImageSampleColorsMulti(args)
	case "image_sample_average":
		return s.handleImageSampleAverage(args)
	case "image_magnify":
		return s.handleImageMagnify(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Geometry Handlers ===

type lineArgs struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

func (a lineArgs) points() (geometry.Point, geometry.Point) {
	return geometry.Pt(a.X1, a.Y1), geometry.Pt(a.X2, a.Y2)
}

func (s *Server) handleMeasureLine(args json.RawMessage) (interface{}, error) {
	var a lineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return capture.MeasureLine(a.points()), nil
}

type measureAngleArgs struct {
	VertexX float64 `json:"vertex_x"`
	VertexY float64 `json:"vertex_y"`
	X1      float64 `json:"x1"`
	Y1      float64 `json:"y1"`
	X2      float64 `json:"x2"`
	Y2      float64 `json:"y2"`
}

func (s *Server) handleMeasureAngle(args json.RawMessage) (interface{}, error) {
	var a measureAngleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return capture.MeasureAngle(
		geometry.Pt(a.VertexX, a.VertexY),
		geometry.Pt(a.X1, a.Y1),
		geometry.Pt(a.X2, a.Y2),
	), nil
}

type measureCircleArgs struct {
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	EdgeX   float64 `json:"edge_x"`
	EdgeY   float64 `json:"edge_y"`
}

func (s *Server) handleMeasureCircle(args json.RawMessage) (interface{}, error) {
	var a measureCircleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return capture.MeasureCircle(geometry.Pt(a.CenterX, a.CenterY), geometry.Pt(a.EdgeX, a.EdgeY)), nil
}

// directionResult is the classify_direction readout.
type directionResult struct {
	Sector               int     `json:"sector"`
	Orientation          string  `json:"orientation"`
	HorizontallyOriented bool    `json:"horizontally_oriented"`
	VerticallyOriented   bool    `json:"vertically_oriented"`
	AngleDegrees         float64 `json:"angle_degrees"`
}

func (s *Server) handleClassifyDirection(args json.RawMessage) (interface{}, error) {
	var a lineArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	origin, point := a.points()
	line := capture.MeasureLine(origin, point)
	return &directionResult{
		Sector:               line.Sector,
		Orientation:          line.Orientation,
		HorizontallyOriented: geometry.IsHorizontallyOriented(origin, point),
		VerticallyOriented:   geometry.IsVerticallyOriented(origin, point),
		AngleDegrees:         line.AngleDegrees,
	}, nil
}

type checkAlignmentArgs struct {
	Points    []geometry.Point `json:"points"`
	Tolerance float64          `json:"tolerance"`
}

func (s *Server) handleCheckAlignment(args json.RawMessage) (interface{}, error) {
	var a checkAlignmentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Tolerance == 0 {
		a.Tolerance = defaultAlignmentTolerance
	}
	if a.Tolerance < 0 {
		return nil, fmt.Errorf("tolerance must not be negative")
	}
	return capture.CheckAlignment(a.Points, a.Tolerance), nil
}

// === Color Model Handlers ===

type colorArgs struct {
	Color string `json:"color"`
}

func (s *Server) handleColorRGBToHSL(args json.RawMessage) (interface{}, error) {
	var a colorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := colors.ParseHex(a.Color)
	if err != nil {
		return nil, err
	}
	return capture.NewColorResult(c), nil
}

type hslArgs struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

func (s *Server) handleColorHSLToRGB(args json.RawMessage) (interface{}, error) {
	var a hslArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	for _, v := range []float64{a.H, a.S, a.L} {
		if v < 0 || v > 1 {
			return nil, fmt.Errorf("h, s and l must be in the range 0-1")
		}
	}
	return capture.NewColorResult(colors.HSLToRGB(colors.HSL{Hue: a.H, Saturation: a.S, Lightness: a.L})), nil
}

type colorInterpolateArgs struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Percent int    `json:"percent"`
}

// interpolateResult is a blended color and the percentage it was taken at.
type interpolateResult struct {
	Percent int                 `json:"percent"`
	Color   capture.ColorResult `json:"color"`
}

func (s *Server) handleColorInterpolate(args json.RawMessage) (interface{}, error) {
	var a colorInterpolateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Percent < 0 || a.Percent > 100 {
		return nil, fmt.Errorf("percent %d out of range 0-100", a.Percent)
	}
	start, err := colors.ParseHex(a.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start color: %w", err)
	}
	end, err := colors.ParseHex(a.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end color: %w", err)
	}
	return &interpolateResult{
		Percent: a.Percent,
		Color:   capture.NewColorResult(colors.Interpolate(start, end, a.Percent)),
	}, nil
}

// === Palette Handlers ===

// paletteEntry describes one palette role. Color roles carry Color and
// opacity roles carry Opacity.
type paletteEntry struct {
	Role      string               `json:"role"`
	Key       string               `json:"key"`
	Color     *capture.ColorResult `json:"color,omitempty"`
	Opacity   *opacityReadout      `json:"opacity,omitempty"`
	IsDefault bool                 `json:"is_default"`
}

type opacityReadout struct {
	Value   uint8 `json:"value"`
	Percent int   `json:"percent"`
}

func (s *Server) paletteEntry(role colors.Role) paletteEntry {
	c := s.palette.Get(role)
	e := paletteEntry{
		Role:      role.String(),
		Key:       role.Key(),
		IsDefault: c == s.palette.Default(role),
	}
	if role.IsOpacity() {
		e.Opacity = &opacityReadout{Value: c.R, Percent: colors.OpacityPercent(c.R)}
	} else {
		res := capture.NewColorResult(c)
		e.Color = &res
	}
	return e
}

func (s *Server) paletteEntries() []paletteEntry {
	entries := make([]paletteEntry, 0, colors.NumRoles)
	for _, role := range colors.Roles() {
		entries = append(entries, s.paletteEntry(role))
	}
	return entries
}

type paletteGetArgs struct {
	Role string `json:"role"`
}

func (s *Server) handlePaletteGet(args json.RawMessage) (interface{}, error) {
	var a paletteGetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Role == "" {
		return map[string]interface{}{"palette": s.paletteEntries()}, nil
	}
	role, err := colors.ParseRole(a.Role)
	if err != nil {
		return nil, err
	}
	return s.paletteEntry(role), nil
}

type paletteSetArgs struct {
	Role    string `json:"role"`
	Color   string `json:"color"`
	Opacity *int   `json:"opacity"`
}

func (s *Server) handlePaletteSet(args json.RawMessage) (interface{}, error) {
	var a paletteSetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	role, err := colors.ParseRole(a.Role)
	if err != nil {
		return nil, err
	}

	if role.IsOpacity() {
		if a.Opacity == nil {
			return nil, fmt.Errorf("%s requires an opacity", role)
		}
		if *a.Opacity < 0 || *a.Opacity > 255 {
			return nil, fmt.Errorf("opacity %d out of range 0-255", *a.Opacity)
		}
		if err := s.palette.SetOpacity(role, uint8(*a.Opacity)); err != nil {
			return nil, err
		}
		return s.paletteEntry(role), nil
	}

	if a.Color == "" {
		return nil, fmt.Errorf("%s requires a color", role)
	}
	c, err := colors.ParseHex(a.Color)
	if err != nil {
		return nil, err
	}
	s.palette.Set(role, c)
	return s.paletteEntry(role), nil
}

func (s *Server) handlePaletteReset(args json.RawMessage) (interface{}, error) {
	s.palette.Reset()
	return map[string]interface{}{"palette": s.paletteEntries()}, nil
}

type paletteProfileArgs struct {
	UserInitiated bool `json:"user_initiated"`
}

// profileResult reports a palette save or load. Applied is false when the
// session was user initiated and the profile was left alone.
type profileResult struct {
	Path    string         `json:"path"`
	Applied bool           `json:"applied"`
	Palette []paletteEntry `json:"palette"`
}

var errNoProfile = errors.New("no profile path configured")

func (s *Server) openProfile(args json.RawMessage) (*profile.File, error) {
	var a paletteProfileArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if s.cfg.ProfilePath == "" {
		return nil, errNoProfile
	}
	return profile.Open(s.cfg.ProfilePath, a.UserInitiated)
}

func (s *Server) handlePaletteSave(args json.RawMessage) (interface{}, error) {
	store, err := s.openProfile(args)
	if err != nil {
		return nil, err
	}
	saved := s.palette.Save(store)
	if err := store.Flush(); err != nil {
		return nil, err
	}
	s.debugf("palette_save %s applied=%v", store.Path(), saved)
	return &profileResult{Path: store.Path(), Applied: saved, Palette: s.paletteEntries()}, nil
}

func (s *Server) handlePaletteLoad(args json.RawMessage) (interface{}, error) {
	store, err := s.openProfile(args)
	if err != nil {
		return nil, err
	}
	loaded := s.palette.Load(store)
	s.debugf("palette_load %s applied=%v", store.Path(), loaded)
	return &profileResult{Path: store.Path(), Applied: loaded, Palette: s.paletteEntries()}, nil
}

// === Screen Capture Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return capture.LoadImageInfo(s.cache, a.Path)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return capture.SampleColor(img, a.X, a.Y)
}

type imageSampleColorsMultiArgs struct {
	Path   string                 `json:"path"`
	Points []capture.LabeledPoint `json:"points"`
}

func (s *Server) handleImageSampleColorsMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorsMultiArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	samples, err := capture.SampleColorsMulti(img, a.Points)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"samples": samples}, nil
}

type imageSampleAverageArgs struct {
	Path string `json:"path"`
	capture.Region
}

func (s *Server) handleImageSampleAverage(args json.RawMessage) (interface{}, error) {
	var a imageSampleAverageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return capture.SampleAverage(img, a.Region)
}

type imageMagnifyArgs struct {
	Path   string `json:"path"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Radius *int   `json:"radius"`
	Zoom   int    `json:"zoom"`
}

func (s *Server) handleImageMagnify(args json.RawMessage) (interface{}, error) {
	var a imageMagnifyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	radius := defaultMagnifyRadius
	if a.Radius != nil {
		radius = *a.Radius
	}
	if a.Zoom == 0 {
		a.Zoom = defaultMagnifyZoom
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return capture.Magnify(img, a.X, a.Y, radius, a.Zoom)
}
