package server

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/window-getter/internal/logging"
	"github.com/mj1618/window-getter/internal/model"
	"github.com/mj1618/window-getter/internal/output"
	"github.com/mj1618/window-getter/window"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List on-screen windows in front-to-back order with id, title, owner app, pid and bounds"),
			mcp.WithNumber("pid", mcp.Description("Filter by owner process ID")),
			mcp.WithString("app", mcp.Description("Filter by owner application name (case-insensitive)")),
			mcp.WithString("title", mcp.Description("Filter by title substring (case-insensitive)")),
			mcp.WithBoolean("details", mcp.Description("Include layer, alpha and other captured properties")),
			mcp.WithBoolean("frame", mcp.Description("Include the raw frame rectangle")),
			mcp.WithBoolean("verify_owner", mcp.Description("Mark windows whose owner pid is not running as stale")),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_window",
			mcp.WithDescription("Get one window by its numeric id"),
			mcp.WithNumber("id", mcp.Required(), mcp.Description("Window ID from list_windows")),
			mcp.WithBoolean("details", mcp.Description("Include captured properties")),
		),
		s.handleGetWindow,
	)

	s.mcp.AddTool(
		mcp.NewTool("window_at",
			mcp.WithDescription("Get the frontmost window containing a screen point"),
			mcp.WithNumber("x", mcp.Required(), mcp.Description("Screen X coordinate")),
			mcp.WithNumber("y", mcp.Required(), mcp.Description("Screen Y coordinate")),
		),
		s.handleWindowAt,
	)

	s.mcp.AddTool(
		mcp.NewTool("screen_capture_access",
			mcp.WithDescription("Check whether window titles and owner names are readable; optionally request access"),
			mcp.WithBoolean("request", mcp.Description("Prompt the user for access if not granted")),
		),
		s.handleScreenCaptureAccess,
	)
}

func toText(v interface{}) (*mcp.CallToolResult, error) {
	text, err := output.Marshal(output.FormatYAML, v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

// listRecords enumerates and converts every window while holding srcMu.
func (s *Server) listRecords(opts model.RecordOptions) ([]model.Window, error) {
	s.srcMu.Lock()
	defer s.srcMu.Unlock()

	ws, err := s.src.Windows()
	if err != nil {
		return nil, err
	}
	recs := model.FromWindows(ws, opts)
	for _, r := range recs {
		for field, msg := range r.Errors {
			s.log.Debug("window accessor failed", logging.WindowError(r.ID, field, msg)...)
		}
	}
	return recs, nil
}

func (s *Server) handleListWindows(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	filter := model.Filter{
		App:   stringParam(params, "app", ""),
		Title: stringParam(params, "title", ""),
	}
	if pid, ok := uint32Param(params, "pid"); ok {
		filter.PID = pid
	}
	opts := model.RecordOptions{
		Details: boolParam(params, "details", false),
		Frame:   boolParam(params, "frame", false),
	}

	recs, err := s.listRecords(opts)
	if err != nil {
		s.log.Warn("list windows failed", logging.ErrorFields(err)...)
		return mcp.NewToolResultError(err.Error()), nil
	}
	recs = model.FilterWindows(recs, filter)

	result := output.ListResult{
		TS:            time.Now().Unix(),
		ScreenCapture: s.src.HasScreenCaptureAccess(),
		Count:         len(recs),
		Windows:       recs,
	}
	if boolParam(params, "verify_owner", false) {
		model.MarkStale(recs, s.running)
		result.Stale = model.CountStale(recs)
	}
	return toText(result)
}

func (s *Server) handleGetWindow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	raw, ok := uint32Param(params, "id")
	if !ok {
		return mcp.NewToolResultError("id must be a window id between 0 and 4294967295"), nil
	}
	opts := model.RecordOptions{Details: boolParam(params, "details", false), Frame: true}

	s.srcMu.Lock()
	defer s.srcMu.Unlock()

	w, found, err := s.src.Window(window.IDFromUint32(raw))
	if err != nil {
		s.log.Warn("get window failed", logging.ErrorFields(err)...)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("window %d not found", raw)), nil
	}
	return toText(model.FromWindow(w, opts))
}

func (s *Server) handleWindowAt(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	x, okX := floatParam(params, "x")
	y, okY := floatParam(params, "y")
	if !okX || !okY {
		return mcp.NewToolResultError("x and y are required"), nil
	}

	recs, err := s.listRecords(model.RecordOptions{})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rec, found := model.FrontmostAt(recs, x, y)
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("no window at (%g, %g)", x, y)), nil
	}
	return toText(rec)
}

func (s *Server) handleScreenCaptureAccess(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	result := output.PermissionResult{ScreenCapture: s.src.HasScreenCaptureAccess()}
	if !result.ScreenCapture && boolParam(params, "request", false) {
		result.Requested = true
		result.ScreenCapture = s.src.RequestScreenCaptureAccess()
	}
	return toText(result)
}
