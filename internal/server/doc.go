// Package server implements the MCP (Model Context Protocol) server for string avatars.
//
// This package provides a JSON-RPC 2.0 server that exposes the color derivation,
// coordinate transformation and avatar rendering operations as MCP tools.
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
// Color Derivation:
//   - string_value: Reproducible value in [0,1) for a string
//   - rgb_from_value: Hue fraction to RGB color
//   - colors_from_string: One color per (unique) character
//
// Geometry:
//   - geometric_transform: Map a point between coordinate ranges
//
// Avatars:
//   - avatar_generate: Render an avatar as base64 PNG, optionally saved to disk
//   - avatar_sample_color: Read pixel colors of a rendered avatar
//
// # Font Caching
//
// Parsed fonts are cached by path for the lifetime of the server process.
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
//	srv := server.New(server.Config{})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
