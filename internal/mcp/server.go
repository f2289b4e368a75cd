// Package mcp exposes the advisor engine as Model Context Protocol tools so
// AI assistants can ask for setup recommendations directly.
package mcp

import (
	"context"
	"errors"

	mcp "github.com/fredcamaral/gomcp-sdk"
	"github.com/fredcamaral/gomcp-sdk/server"

	"lerian-claude-advisor/internal/catalog"
	"lerian-claude-advisor/internal/logging"
	"lerian-claude-advisor/internal/recommend"
)

// AdvisorServer wraps the MCP server with the advisor's tool handlers.
type AdvisorServer struct {
	mcpServer *server.Server
	store     *catalog.Store
	generator *recommend.Generator
	logger    logging.Logger
}

// NewAdvisorServer creates the MCP server and registers the advisor tools.
func NewAdvisorServer(store *catalog.Store, logger logging.Logger) (*AdvisorServer, error) {
	mcpServer := mcp.NewServer("claude-advisor", "1.0.0")
	if mcpServer == nil {
		return nil, errors.New("failed to create MCP server instance")
	}

	s := &AdvisorServer{
		mcpServer: mcpServer,
		store:     store,
		generator: recommend.NewGenerator(store),
		logger:    logger.WithComponent("mcp"),
	}
	s.registerTools()
	return s, nil
}

// GetMCPServer returns the underlying MCP server for transport wiring.
func (s *AdvisorServer) GetMCPServer() *server.Server {
	return s.mcpServer
}

func (s *AdvisorServer) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(
		"analyze_task",
		"Analyze a development task description and recommend Claude Code features (agents, skills, MCP servers, hooks, commands, settings, CLAUDE.md templates) ranked by relevance, with the reasons each feature matched.",
		mcp.ObjectSchema("Task analysis parameters", map[string]interface{}{
			"task": map[string]interface{}{
				"type":        "string",
				"description": "Free-text description of the development task, at least 3 characters",
			},
		}, []string{"task"}),
	), mcp.ToolHandlerFunc(s.handleAnalyzeTask))

	s.mcpServer.AddTool(mcp.NewTool(
		"quick_analyze",
		"Lightweight task analysis: detected keywords (max 10), top category ids (max 3), and an estimated complexity. Use while the task description is still being drafted.",
		mcp.ObjectSchema("Quick analysis parameters", map[string]interface{}{
			"task": map[string]interface{}{
				"type":        "string",
				"description": "Free-text description of the development task, at least 3 characters",
			},
		}, []string{"task"}),
	), mcp.ToolHandlerFunc(s.handleQuickAnalyze))

	s.mcpServer.AddTool(mcp.NewTool(
		"list_categories",
		"List the task categories the advisor recognizes, with their keywords.",
		mcp.ObjectSchema("Category listing parameters", map[string]interface{}{}, []string{}),
	), mcp.ToolHandlerFunc(s.handleListCategories))

	s.mcpServer.AddTool(mcp.NewTool(
		"search_features",
		"Search the feature catalog by name, description, keyword, or usage guidance. Returns up to 20 features sorted by match score.",
		mcp.ObjectSchema("Feature search parameters", map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Search query",
			},
			"type": map[string]interface{}{
				"type":        "string",
				"description": "Optional feature type filter (agent, skill, mcp, hook, command, setting, claudemd)",
			},
		}, []string{"query"}),
	), mcp.ToolHandlerFunc(s.handleSearchFeatures))
}

// Start runs the MCP server until the context is canceled. The transport
// must be set by the caller beforehand.
func (s *AdvisorServer) Start(ctx context.Context) error {
	s.logger.Info("starting advisor MCP server",
		"categories", len(s.store.Categories()),
		"features", s.store.FeatureCount(),
	)
	return s.mcpServer.Start(ctx)
}
