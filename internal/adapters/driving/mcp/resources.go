package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for aufbau resources.
	uriScheme = "aufbau://"

	configurationsPrefix = uriScheme + "configurations/"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: configurationsPrefix + "{electrons}",
		Name:        "configuration",
		Description: "Electron configuration for an electron count",
		MIMEType:    "application/json",
	}, s.handleConfigurationResource)
}

// handleConfigurationResource returns the configuration named by the URI.
func (s *Server) handleConfigurationResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	electrons, ok := extractElectrons(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	notation, err := s.notation("")
	if err != nil {
		return nil, err
	}

	c, err := s.ports.Configuration.Compute(ctx, electrons)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(newConfigurationOutput(c, notation, false), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling configuration: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractElectrons parses the count from aufbau://configurations/{electrons}.
func extractElectrons(uri string) (int, bool) {
	if !strings.HasPrefix(uri, configurationsPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(uri, configurationsPrefix))
	if err != nil {
		return 0, false
	}
	return n, true
}
