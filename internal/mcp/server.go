// ABOUTME: MCP server setup for the training analytics engine.
// ABOUTME: Wraps the engine, store, and profile store for agent access.
package mcp

import (
	"context"

	"github.com/harperreed/biome/internal/analytics"
	"github.com/harperreed/biome/internal/profile"
	"github.com/harperreed/biome/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with engine and store access.
type Server struct {
	mcpServer *mcp.Server
	engine    *analytics.Engine
	store     *storage.DB
	profiles  *profile.Store
}

// NewServer creates a new MCP server over the given engine and stores.
func NewServer(engine *analytics.Engine, store *storage.DB, profiles *profile.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "biome",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		engine:    engine,
		store:     store,
		profiles:  profiles,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
