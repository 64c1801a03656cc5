package server

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ironsheep/string-avatar/internal/avatar"
	"github.com/ironsheep/string-avatar/internal/geometry"
	"github.com/ironsheep/string-avatar/internal/hue"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "string_value", "avatar_generate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

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
		if s.debug {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Calls the appropriate hue/geometry/avatar function
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Color Derivation
	case "string_value":
		return s.handleStringValue(args)
	case "rgb_from_value":
		return s.handleRGBFromValue(args)
	case "colors_from_string":
		return s.handleColorsFromString(args)

	// Geometry
	case "geometric_transform":
		return s.handleGeometricTransform(args)

	// Avatars
	case "avatar_generate":
		return s.handleAvatarGenerate(args)
	case "avatar_sample_color":
		return s.handleAvatarSampleColor(args)

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

// decodeArgs unmarshals tool arguments, treating absent arguments as an empty object.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		return nil
	}
	return json.Unmarshal(args, v)
}

// === Color Derivation Handlers ===

type colorJSON struct {
	Hex string  `json:"hex"`
	RGB hue.RGB `json:"rgb"`
}

func newColorJSON(c hue.RGB) colorJSON {
	return colorJSON{Hex: c.Hex(), RGB: c}
}

type stringValueArgs struct {
	Text string `json:"text"`
}

type stringValueResult struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

func (s *Server) handleStringValue(args json.RawMessage) (interface{}, error) {
	var a stringValueArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return &stringValueResult{Text: a.Text, Value: hue.StringValue(a.Text)}, nil
}

type rgbFromValueArgs struct {
	Value float64 `json:"value"`
}

type rgbFromValueResult struct {
	Value float64 `json:"value"`
	colorJSON
}

func (s *Server) handleRGBFromValue(args json.RawMessage) (interface{}, error) {
	var a rgbFromValueArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return &rgbFromValueResult{Value: a.Value, colorJSON: newColorJSON(hue.RGBFromValue(a.Value))}, nil
}

type colorsFromStringArgs struct {
	Text   string `json:"text"`
	Unique *bool  `json:"unique"`
}

type colorsFromStringResult struct {
	Count  int         `json:"count"`
	Unique bool        `json:"unique"`
	Colors []colorJSON `json:"colors"`
}

func (s *Server) handleColorsFromString(args json.RawMessage) (interface{}, error) {
	var a colorsFromStringArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	unique := true
	if a.Unique != nil {
		unique = *a.Unique
	}

	colors := hue.ColorsFromString(a.Text, unique)
	out := make([]colorJSON, len(colors))
	for i, c := range colors {
		out[i] = newColorJSON(c)
	}
	return &colorsFromStringResult{Count: len(out), Unique: unique, Colors: out}, nil
}

// === Geometry Handlers ===

type geometricTransformArgs struct {
	InputX  [2]float64 `json:"input_x"`
	InputY  [2]float64 `json:"input_y"`
	OutputX [2]float64 `json:"output_x"`
	OutputY [2]float64 `json:"output_y"`
	X       float64    `json:"x"`
	Y       float64    `json:"y"`
}

type geometricTransformResult struct {
	Input  geometry.Point `json:"input"`
	Output geometry.Point `json:"output"`
}

func (s *Server) handleGeometricTransform(args json.RawMessage) (interface{}, error) {
	var a geometricTransformArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	t, err := geometry.NewTransformation(
		axisRange(a.InputX), axisRange(a.InputY),
		axisRange(a.OutputX), axisRange(a.OutputY),
	)
	if err != nil {
		return nil, err
	}

	in := geometry.Point{X: a.X, Y: a.Y}
	return &geometricTransformResult{Input: in, Output: t.Apply(in)}, nil
}

func axisRange(r [2]float64) geometry.AxisRange {
	return geometry.AxisRange{From: r[0], To: r[1]}
}

// === Avatar Handlers ===

type avatarArgs struct {
	Text         string `json:"text"`
	Style        string `json:"style"`
	Size         int    `json:"size"`
	Background   string `json:"background"`
	FontColor    string `json:"font_color"`
	OutlineColor string `json:"outline_color"`
	OutlineWidth *int   `json:"outline_width"`
	FontPath     string `json:"font_path"`
}

// options turns tool arguments into avatar options. Colors given explicitly
// override the style's defaults.
func (s *Server) options(a avatarArgs) (avatar.Options, error) {
	var opts avatar.Options
	switch a.Style {
	case "", "char":
		opts = avatar.CharOptions(a.Text)
	case "plain":
		opts = avatar.DefaultOptions(a.Text)
	default:
		return avatar.Options{}, fmt.Errorf("unknown style: %s", a.Style)
	}

	if a.Size != 0 {
		opts.Size = a.Size
	}
	opts.FontPath = s.fontPath
	if a.FontPath != "" {
		opts.FontPath = a.FontPath
	}
	if a.OutlineWidth != nil {
		opts.OutlineWidth = *a.OutlineWidth
	}

	overrides := []struct {
		name  string
		value string
		dst   *hue.RGB
	}{
		{"background", a.Background, &opts.Background},
		{"font_color", a.FontColor, &opts.FontColor},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		c, err := hue.ParseColor(o.value)
		if err != nil {
			return avatar.Options{}, fmt.Errorf("invalid %s: %w", o.name, err)
		}
		*o.dst = c
	}

	if a.OutlineColor != "" {
		c, err := hue.ParseColor(a.OutlineColor)
		if err != nil {
			return avatar.Options{}, fmt.Errorf("invalid outline_color: %w", err)
		}
		opts.OutlineColor = &c
	}

	return opts, opts.Validate()
}

type avatarGenerateArgs struct {
	avatarArgs
	OutputPath string `json:"output_path"`
}

type avatarGenerateResult struct {
	avatar.Result
	Letter       string `json:"letter"`
	Background   string `json:"background"`
	FontColor    string `json:"font_color"`
	OutlineColor string `json:"outline_color,omitempty"`
	OutlineWidth int    `json:"outline_width"`
	SavedPath    string `json:"saved_path,omitempty"`
}

func (s *Server) handleAvatarGenerate(args json.RawMessage) (interface{}, error) {
	var a avatarGenerateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	opts, err := s.options(a.avatarArgs)
	if err != nil {
		return nil, err
	}

	img, err := avatar.Generate(s.fonts, opts)
	if err != nil {
		return nil, err
	}
	encoded, err := avatar.Encode(img)
	if err != nil {
		return nil, err
	}

	result := &avatarGenerateResult{
		Result:       *encoded,
		Letter:       avatar.Letter(opts.Text),
		Background:   opts.Background.Hex(),
		FontColor:    opts.FontColor.Hex(),
		OutlineWidth: opts.OutlineWidth,
	}
	if opts.OutlineWidth > 0 {
		result.OutlineColor = opts.Outline().Hex()
	}

	if a.OutputPath != "" {
		if err := avatar.Save(img, a.OutputPath); err != nil {
			return nil, err
		}
		result.SavedPath = a.OutputPath
	}
	return result, nil
}

type samplePoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type avatarSampleColorArgs struct {
	avatarArgs
	Points []samplePoint `json:"points"`
}

type avatarSampleColorResult struct {
	Samples []avatar.ColorSample `json:"samples"`
}

func (s *Server) handleAvatarSampleColor(args json.RawMessage) (interface{}, error) {
	var a avatarSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	opts, err := s.options(a.avatarArgs)
	if err != nil {
		return nil, err
	}

	img, err := avatar.Generate(s.fonts, opts)
	if err != nil {
		return nil, err
	}

	// Without points, sample the center.
	if len(a.Points) == 0 {
		a.Points = []samplePoint{{X: opts.Size / 2, Y: opts.Size / 2}}
	}

	samples := make([]avatar.ColorSample, 0, len(a.Points))
	for _, p := range a.Points {
		sample, err := avatar.SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		samples = append(samples, *sample)
	}
	return &avatarSampleColorResult{Samples: samples}, nil
}
