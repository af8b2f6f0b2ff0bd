// Package mcp provides an MCP (Model Context Protocol) server adapter for aufbau.
// It lets AI assistants compute electron configurations and describe atoms.
package mcp

import "errors"

// ErrMissingConfigurationService is returned when the configuration service is not provided.
var ErrMissingConfigurationService = errors.New("mcp: configuration service is required")
