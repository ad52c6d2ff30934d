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

// In this file: MCP server construction, transport management and shared
// handler helpers.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/xplainable-io/xmcp/internal/platform"
)

const (
	serverName    = "xplainable-mcp"
	serverVersion = "0.2.0"
)

// Transport selects how the MCP server communicates with its client.
type Transport string

const (
	// TransportStdio uses stdin/stdout for communication (default, suitable
	// for local agent integrations such as Claude Desktop).
	TransportStdio Transport = "stdio"
	// TransportHTTP uses Streamable HTTP transport (suitable for remote
	// agents or when multiple concurrent clients are needed).
	TransportHTTP Transport = "http"
)

// Server wraps an MCP server and the platform client it delegates to.
type Server struct {
	mcp        *mcpsrv.MCPServer
	client     platform.Platform
	logger     *slog.Logger
	writeTools bool
}

// Option is the signature of the server option-setting function.
type Option func(*Server)

// WithLogger sets the logger.  A nil logger falls back to slog.Default().
func WithLogger(lg *slog.Logger) Option {
	return func(s *Server) {
		if lg != nil {
			s.logger = lg
		}
	}
}

// WithWriteTools enables registration of the write tool set.  Write tools
// are disabled by default: the server is read-only unless the operator
// explicitly opts in.
func WithWriteTools(enabled bool) Option {
	return func(s *Server) {
		s.writeTools = enabled
	}
}

// New creates a new MCP server delegating to the given platform client.
// The server is populated with all registered tools but does not start
// listening until one of the Serve* methods is called.
func New(client platform.Platform, opts ...Option) *Server {
	s := &Server{
		client: client,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	mcpServer := mcpsrv.NewMCPServer(
		serverName,
		serverVersion,
		mcpsrv.WithInstructions(instructions(s.writeTools)),
	)

	for _, e := range s.entries() {
		if e.write && !s.writeTools {
			continue
		}
		mcpServer.AddTool(e.tool.Tool, e.tool.Handler)
	}

	s.mcp = mcpServer
	return s
}

// instructions returns the server instructions that describe the platform
// connection to the connecting agent.
func instructions(writeTools bool) string {
	mode := "Write tools are disabled: all registered tools are read-only."
	if writeTools {
		mode = "Write tools are ENABLED: tools that deploy versions, manage deploy keys, collections and scenarios, and generate GPT content are registered alongside the read-only tools."
	}
	return fmt.Sprintf(`You are connected to an Xplainable platform MCP server.

Available tools allow you to inspect models, model versions, deployments,
preprocessors, scenario collections and datasets of the connected team, and
to run platform diagnostics. Call list_tools for the full tool surface by
category.

%s

Identifiers (model_id, version_id, deployment_id, ...) are opaque strings
assigned by the platform; list tools return them alongside human-readable
names.
`, mode)
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
// This is the standard transport used by local agent integrations.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio", "write_tools", s.writeTools)
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server as a Streamable HTTP server on addr until
// ctx is cancelled.  addr should be a host:port string such as "127.0.0.1:8493".
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpSrv := &http.Server{Addr: addr}
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp,
		mcpsrv.WithStreamableHTTPServer(httpSrv),
	)

	s.logger.InfoContext(ctx, "mcp server listening on http", "addr", addr, "write_tools", s.writeTools)

	errCh := make(chan error, 1)
	go func() {
		if err := streamSrv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "mcp server shutting down")
		if err := streamSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// toolEntry is a registered tool together with its registry metadata, used
// for registration and for the list_tools discovery tool.
type toolEntry struct {
	category string
	write    bool
	tool     mcpsrv.ServerTool
}

// entries returns all tools known to the server, including write tools
// regardless of the gate.  Registration and list_tools apply the gate.
func (s *Server) entries() []toolEntry {
	return []toolEntry{
		// discovery and diagnostics
		{category: "discovery", tool: s.toolListTools()},
		{category: "diagnostics", tool: s.toolGetConnectionInfo()},
		{category: "diagnostics", tool: s.toolGetVersionInfo()},
		{category: "diagnostics", tool: s.toolPingServer()},
		{category: "diagnostics", tool: s.toolPingGateway()},
		{category: "diagnostics", tool: s.toolHealthCheck()},
		// models
		{category: "models", tool: s.toolListTeamModels()},
		{category: "models", tool: s.toolGetModel()},
		{category: "models", tool: s.toolListModelVersions()},
		{category: "models", tool: s.toolListModelVersionPartitions()},
		{category: "models", write: true, tool: s.toolLinkPreprocessor()},
		// deployments
		{category: "deployments", tool: s.toolListDeployments()},
		{category: "deployments", tool: s.toolGetActiveDeployKeysCount()},
		{category: "deployments", write: true, tool: s.toolDeployModelVersion()},
		{category: "deployments", write: true, tool: s.toolActivateDeployment()},
		{category: "deployments", write: true, tool: s.toolDeactivateDeployment()},
		{category: "deployments", write: true, tool: s.toolGenerateDeployKey()},
		{category: "deployments", write: true, tool: s.toolGetDeploymentPayload()},
		// preprocessing
		{category: "preprocessing", tool: s.toolListPreprocessors()},
		{category: "preprocessing", tool: s.toolGetPreprocessor()},
		// collections
		{category: "collections", tool: s.toolGetModelCollections()},
		{category: "collections", tool: s.toolGetTeamCollections()},
		{category: "collections", tool: s.toolGetCollectionScenarios()},
		{category: "collections", write: true, tool: s.toolCreateCollection()},
		{category: "collections", write: true, tool: s.toolDeleteCollection()},
		{category: "collections", write: true, tool: s.toolUpdateCollectionName()},
		{category: "collections", write: true, tool: s.toolUpdateCollectionDescription()},
		{category: "collections", write: true, tool: s.toolCreateScenarios()},
		// datasets
		{category: "datasets", tool: s.toolListDatasets()},
		{category: "datasets", tool: s.toolListTeamDatasets()},
		{category: "datasets", tool: s.toolLoadDataset()},
		// gpt
		{category: "gpt", write: true, tool: s.toolGPTGenerateReport()},
		{category: "gpt", write: true, tool: s.toolGPTExplainModel()},
		{category: "gpt", write: true, tool: s.toolGPTGenerateDocumentation()},
	}
}

// AddTool adds an additional tool to the MCP server.  This can be called
// after New but before serving starts.  It is intended for CLI-layer tools.
func (s *Server) AddTool(tool mcpsrv.ServerTool) {
	s.mcp.AddTool(tool.Tool, tool.Handler)
}

// outcome classifies a completed tool invocation for logging.
type outcome string

const (
	outcomeSuccess outcome = "success"
	outcomeEmpty   outcome = "empty"
	outcomeError   outcome = "error"
)

// outcomeFor returns the outcome for a result of n items.
func outcomeFor(n int) outcome {
	if n == 0 {
		return outcomeEmpty
	}
	return outcomeSuccess
}

// logInvocation emits the one-line invocation summary.  Errors are logged
// at error level, everything else at info level.
func (s *Server) logInvocation(ctx context.Context, op string, oc outcome, items int, err error) {
	if oc == outcomeError {
		s.logger.ErrorContext(ctx, "tool call failed", "op", op, "error", err)
		return
	}
	s.logger.InfoContext(ctx, "tool call", "op", op, "outcome", string(oc), "items", items)
}

// resultText is a helper that wraps text in a successful CallToolResult.
func resultText(text string) *mcplib.CallToolResult {
	return mcplib.NewToolResultText(text)
}

// resultErr is a helper that wraps an error in a CallToolResult with IsError=true.
func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(err.Error())},
		IsError: true,
	}
}

// resultJSON is a helper that serialises v to JSON and returns a CallToolResult.
func resultJSON(v any) (*mcplib.CallToolResult, error) {
	return mcplib.NewToolResultJSON(v)
}

// stringArg extracts a named string argument from a tool call request.
// Returns ("", false) if the argument is absent or not a string.
func stringArg(req mcplib.CallToolRequest, name string) (string, bool) {
	args := req.GetArguments()
	if args == nil {
		return "", false
	}
	v, ok := args[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// intArg extracts a named int argument from a tool call request.  The MCP
// protocol serialises numbers as float64, so we convert accordingly.
func intArg(req mcplib.CallToolRequest, name string, defaultVal int) int {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	v, ok := args[name]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return defaultVal
}

// floatArg extracts a named float argument from a tool call request.
func floatArg(req mcplib.CallToolRequest, name string, defaultVal float64) float64 {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	v, ok := args[name]
	if !ok {
		return defaultVal
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return defaultVal
}

// boolArg extracts a named bool argument from a tool call request.
func boolArg(req mcplib.CallToolRequest, name string, defaultVal bool) bool {
	args := req.GetArguments()
	if args == nil {
		return defaultVal
	}
	v, ok := args[name]
	if !ok {
		return defaultVal
	}
	b, ok := v.(bool)
	if !ok {
		return defaultVal
	}
	return b
}

// mapListArg extracts a named argument that is an array of objects.
func mapListArg(req mcplib.CallToolRequest, name string) ([]map[string]any, bool) {
	args := req.GetArguments()
	if args == nil {
		return nil, false
	}
	v, ok := args[name]
	if !ok {
		return nil, false
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		out = append(out, m)
	}
	return out, true
}
