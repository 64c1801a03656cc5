package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// axisRangeSchema describes a [from, to] coordinate range.
func axisRangeSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "number"},
		"minItems":    2,
		"maxItems":    2,
		"description": description,
	}
}

// avatarProperties are the rendering parameters shared by the avatar tools.
func avatarProperties() map[string]interface{} {
	return map[string]interface{}{
		"text": map[string]interface{}{
			"type":        "string",
			"description": "Source string. Its first character, uppercased, is drawn",
		},
		"style": map[string]interface{}{
			"type":        "string",
			"enum":        []string{"char", "plain"},
			"description": "char derives all colors from the text with a white outline; plain is white on black. Default char",
			"default":     "char",
		},
		"size": map[string]interface{}{
			"type":        "integer",
			"description": "Width and height in pixels. Default 250",
			"default":     250,
		},
		"background": map[string]interface{}{
			"type":        "string",
			"description": "Background color override: a color name or #rgb / #rrggbb",
		},
		"font_color": map[string]interface{}{
			"type":        "string",
			"description": "Letter color override: a color name or #rgb / #rrggbb",
		},
		"outline_color": map[string]interface{}{
			"type":        "string",
			"description": "Outline color override. Defaults to the letter color when an outline width is set",
		},
		"outline_width": map[string]interface{}{
			"type":        "integer",
			"description": "Outline width in pixels, 0 disables the outline",
		},
		"font_path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to a TrueType/OpenType font. Defaults to the server font",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	generateProps := avatarProperties()
	generateProps["output_path"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional file to write the avatar to; format follows the extension (.png, .jpg, .gif, .bmp, .tif)",
	}

	sampleProps := avatarProperties()
	sampleProps["points"] = map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"x": map[string]interface{}{"type": "integer"},
				"y": map[string]interface{}{"type": "integer"},
			},
			"required": []string{"x", "y"},
		},
		"description": "Pixels to sample. Defaults to the center",
	}

	return []Tool{
		// Color Derivation
		{
			Name:        "string_value",
			Description: "Return the reproducible value in [0,1) derived from a string. Identical strings always give the identical value.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Input string (the empty string is allowed)",
					},
				},
				"required": []string{"text"},
			},
		},
		{
			Name:        "rgb_from_value",
			Description: "Convert a hue fraction (wrapping modulo 1) to an RGB color at full saturation and 50% lightness.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": map[string]interface{}{
						"type":        "number",
						"description": "Hue as a fraction of the color wheel, 0 = red, 0.5 = cyan",
					},
				},
				"required": []string{"value"},
			},
		},
		{
			Name:        "colors_from_string",
			Description: "Return one color per character of a string, optionally once per distinct character.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": map[string]interface{}{
						"type":        "string",
						"description": "Input string",
					},
					"unique": map[string]interface{}{
						"type":        "boolean",
						"description": "Drop repeated characters. Default true",
						"default":     true,
					},
				},
				"required": []string{"text"},
			},
		},

		// Geometry
		{
			Name:        "geometric_transform",
			Description: "Map a point from an input coordinate range to an output range, each axis linearly. Ranges may be reversed (max, min).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"input_x":  axisRangeSchema("Input x range [from, to]; must not have zero width"),
					"input_y":  axisRangeSchema("Input y range [from, to]; must not have zero width"),
					"output_x": axisRangeSchema("Output x range [from, to]"),
					"output_y": axisRangeSchema("Output y range [from, to]"),
					"x": map[string]interface{}{
						"type":        "number",
						"description": "X coordinate to transform",
					},
					"y": map[string]interface{}{
						"type":        "number",
						"description": "Y coordinate to transform",
					},
				},
				"required": []string{"input_x", "input_y", "output_x", "output_y", "x", "y"},
			},
		},

		// Avatars
		{
			Name:        "avatar_generate",
			Description: "Render a square avatar showing the first character of a string and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": generateProps,
				"required":   []string{"text"},
			},
		},
		{
			Name:        "avatar_sample_color",
			Description: "Render an avatar and return the exact colors at the given pixels.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sampleProps,
				"required":   []string{"text"},
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
