// Copyright (c) 2024-2026 Xplainable Pty Ltd and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mcp

// In this file: discovery and diagnostics tools.

import (
	"context"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/xplainable-io/xmcp/internal/normalize"
	"github.com/xplainable-io/xmcp/internal/platform"
)

// platformHealthOpts collects the health check switches.  All subsystems are
// probed unless explicitly switched off.
func platformHealthOpts(req mcplib.CallToolRequest) platform.HealthCheckOptions {
	return platform.HealthCheckOptions{
		Database: boolArg(req, "check_database", true),
		Storage:  boolArg(req, "check_storage", true),
		Compute:  boolArg(req, "check_compute", true),
	}
}

func (s *Server) toolListTools() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("list_tools",
			mcplib.WithDescription("Lists all available tools grouped by category, with their descriptions and whether they require write access."),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
		),
		Handler: s.handleListTools,
	}
}

func (s *Server) handleListTools(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	categories := make(map[string][]map[string]any)
	var total int
	for _, e := range s.entries() {
		if e.write && !s.writeTools {
			continue
		}
		categories[e.category] = append(categories[e.category], map[string]any{
			"name":        e.tool.Tool.Name,
			"description": e.tool.Tool.Description,
			"write":       e.write,
		})
		total++
	}
	s.logInvocation(ctx, "list_tools", outcomeSuccess, total, nil)
	return resultJSON(map[string]any{
		"server":              serverName,
		"version":             serverVersion,
		"write_tools_enabled": s.writeTools,
		"total_tools":         total,
		"categories":          categories,
	})
}

func (s *Server) toolGetConnectionInfo() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("get_connection_info",
			mcplib.WithDescription("Returns information about the authenticated platform connection: user, hostname, organisation and team. Never includes credentials."),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleGetConnectionInfo,
	}
}

func (s *Server) handleGetConnectionInfo(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "get_connection_info"
	info, err := s.client.ConnectionInfo(ctx)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	row, ok := normalize.Mapping(info)
	if !ok {
		s.logInvocation(ctx, op, outcomeEmpty, 0, nil)
		return resultText("connection information is not available"), nil
	}
	s.logInvocation(ctx, op, outcomeSuccess, 1, nil)
	return resultJSON(row)
}

func (s *Server) toolGetVersionInfo() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("get_version_info",
			mcplib.WithDescription("Returns version information of the connected platform (xplainable, python and API versions)."),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithIdempotentHintAnnotation(true),
		),
		Handler: s.handleGetVersionInfo,
	}
}

func (s *Server) handleGetVersionInfo(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "get_version_info"
	info, err := s.client.VersionInfo(ctx)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	row, ok := normalize.Mapping(info)
	if !ok {
		s.logInvocation(ctx, op, outcomeEmpty, 0, nil)
		return resultText("version information is not available"), nil
	}
	s.logInvocation(ctx, op, outcomeSuccess, 1, nil)
	return resultJSON(row)
}

func (s *Server) toolPingServer() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("ping_server",
			mcplib.WithDescription("Pings the platform API server and returns its status response."),
			mcplib.WithString("hostname", mcplib.Description("Platform hostname to ping. Defaults to the configured host.")),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handlePingServer,
	}
}

func (s *Server) handlePingServer(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "ping_server"
	hostname, _ := stringArg(req, "hostname")
	status, err := s.client.PingServer(ctx, hostname)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	status = normalize.CoerceMap(status)
	s.logInvocation(ctx, op, outcomeFor(len(status)), len(status), nil)
	return resultJSON(status)
}

func (s *Server) toolPingGateway() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("ping_gateway",
			mcplib.WithDescription("Pings the inference gateway and returns its status response."),
			mcplib.WithString("hostname", mcplib.Description("Gateway hostname to ping. Defaults to the configured gateway host.")),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handlePingGateway,
	}
}

func (s *Server) handlePingGateway(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "ping_gateway"
	hostname, _ := stringArg(req, "hostname")
	status, err := s.client.PingGateway(ctx, hostname)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	status = normalize.CoerceMap(status)
	s.logInvocation(ctx, op, outcomeFor(len(status)), len(status), nil)
	return resultJSON(status)
}

func (s *Server) toolHealthCheck() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("health_check",
			mcplib.WithDescription("Runs a health check of the platform backend subsystems and returns per-subsystem status."),
			mcplib.WithBoolean("check_database", mcplib.Description("Probe the database subsystem (default true).")),
			mcplib.WithBoolean("check_storage", mcplib.Description("Probe the storage subsystem (default true).")),
			mcplib.WithBoolean("check_compute", mcplib.Description("Probe the compute subsystem (default true).")),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleHealthCheck,
	}
}

func (s *Server) handleHealthCheck(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "health_check"
	opts := platformHealthOpts(req)
	status, err := s.client.HealthCheck(ctx, opts)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	status = normalize.CoerceMap(status)
	s.logInvocation(ctx, op, outcomeFor(len(status)), len(status), nil)
	return resultJSON(status)
}
