// Package mcp provides an MCP (Model Context Protocol) server adapter for helix.
// It lets AI assistants search the reference store and align sequences.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingAlignService is returned when the align service is not provided.
var ErrMissingAlignService = errors.New("mcp: align service is required")
