package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/amaumene/trakt-mcp/internal/services/trakt"
)

func (s *Server) registerAuthTools() {
	s.server.AddTool(mcp.NewTool("start_device_auth",
		mcp.WithDescription("Start the Trakt device authentication flow. Returns a verification URL and a user code to enter there."),
	), s.handleStartDeviceAuth)

	s.server.AddTool(mcp.NewTool("check_auth_status",
		mcp.WithDescription("Check whether the device authentication started earlier has been completed. Call this after the user entered the code."),
	), s.handleCheckAuthStatus)

	s.server.AddTool(mcp.NewTool("clear_auth",
		mcp.WithDescription("Remove the stored Trakt token, signing the user out."),
	), s.handleClearAuth)
}

func (s *Server) handleStartDeviceAuth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.trakt.IsAuthenticated() {
		return mcp.NewToolResultText("✅ Already authenticated with Trakt."), nil
	}

	code, err := s.trakt.StartDeviceAuth(ctx)
	if err != nil {
		return s.errorResult(err), nil
	}

	msg := fmt.Sprintf("🔐 **Trakt Device Authentication**\n\n"+
		"1. Open %s\n"+
		"2. Enter the code: **%s**\n\n"+
		"The code expires in %d minutes. Use check_auth_status once the code has been entered.",
		code.VerificationURL, code.UserCode, code.ExpiresIn/60)
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleCheckAuthStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.trakt.IsAuthenticated() {
		return mcp.NewToolResultText("✅ Authenticated with Trakt."), nil
	}

	_, err := s.trakt.CheckDeviceAuth(ctx)
	if errors.Is(err, trakt.ErrAuthPending) {
		return mcp.NewToolResultText("⏳ Authorization pending. Enter the code on trakt.tv, then check again."), nil
	}
	if err != nil {
		return s.errorResult(err), nil
	}
	return mcp.NewToolResultText("✅ Authentication complete. Trakt tools are now available."), nil
}

func (s *Server) handleClearAuth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.trakt.ClearAuth(); err != nil {
		return s.errorResult(err), nil
	}
	return mcp.NewToolResultText("✅ Stored Trakt token removed."), nil
}
