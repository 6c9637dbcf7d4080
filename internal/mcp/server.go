// Package mcp exposes the Trakt client as MCP tools and resources over the
// stdio transport.
package mcp

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/amaumene/trakt-mcp/internal/config"
	"github.com/amaumene/trakt-mcp/internal/errs"
	"github.com/amaumene/trakt-mcp/internal/pagination"
	"github.com/amaumene/trakt-mcp/internal/render"
	"github.com/amaumene/trakt-mcp/internal/services/trakt"
)

const serverVersion = "1.0.0"

// Server wraps the MCP server with the Trakt client and configuration.
type Server struct {
	cfg    *config.Config
	trakt  *trakt.Client
	logger *logrus.Logger
	server *server.MCPServer
}

// NewServer creates the MCP server and registers all tools and resources.
func NewServer(cfg *config.Config, client *trakt.Client, logger *logrus.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		trakt:  client,
		logger: logger,
	}

	s.server = server.NewMCPServer(
		"trakt-mcp",
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerAuthTools()
	s.registerMovieTools()
	s.registerShowTools()
	s.registerSearchTools()
	s.registerSyncTools()
	s.registerRecommendationTools()
	s.registerResources()

	return s
}

// Serve runs the MCP server over stdio until the transport closes.
func (s *Server) Serve() error {
	s.logger.Info("Serving MCP over stdio")
	return server.ServeStdio(s.server)
}

// argString reads an optional string argument.
func argString(req mcp.CallToolRequest, key, def string) string {
	args := req.GetArguments()
	if v, ok := args[key].(string); ok {
		return v
	}
	return def
}

// argInt reads an optional integer argument. JSON numbers arrive as
// float64; an absent key yields def, so limit=0 stays distinguishable from
// "no limit given".
func argInt(req mcp.CallToolRequest, key string, def int) int {
	args := req.GetArguments()
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

// errorResult turns a failure into an MCP error result. Invalid arguments
// and missing authentication are caller problems and logged at debug only.
func (s *Server) errorResult(err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, errs.ErrInvalidArgument):
		s.logger.WithError(err).Debug("Invalid tool arguments")
	case errors.Is(err, errs.ErrAuthRequired):
		s.logger.WithError(err).Debug("Tool call without authentication")
		return mcp.NewToolResultError("Not authenticated. Use the start_device_auth tool first.")
	default:
		s.logger.WithError(err).Error("Tool call failed")
	}
	return mcp.NewToolResultError(err.Error())
}

// runList drives a paged list tool: it reads limit/page from the request,
// routes the fetch through the paginator, renders the items and appends the
// page summary when an explicit page was requested.
func runList[T any](ctx context.Context, s *Server, req mcp.CallToolRequest, fetch pagination.FetchFunc[T], renderFn func([]T) string) (*mcp.CallToolResult, error) {
	limit := argInt(req, "limit", s.cfg.DefaultLimit)
	page := argInt(req, "page", 0)

	res, err := pagination.Paginate(ctx, fetch, limit, page, s.cfg.Pagination())
	if err != nil {
		return s.errorResult(err), nil
	}

	md := render.PageFooter(renderFn(res.Items), res.Page)
	return mcp.NewToolResultText(md), nil
}

// limitOption and pageOption are the shared parameter declarations of every
// list tool.
func limitOption() mcp.ToolOption {
	return mcp.WithNumber("limit",
		mcp.Description("Maximum number of items to return. 0 fetches everything, up to a safety cap."),
	)
}

func pageOption() mcp.ToolOption {
	return mcp.WithNumber("page",
		mcp.Description("Page number (1-indexed). When given, a single page is returned with pagination info; requires limit > 0."),
	)
}
