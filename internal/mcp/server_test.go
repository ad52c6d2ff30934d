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

import (
	"context"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/xplainable-io/xmcp/internal/platform/mock_platform"
)

// newTestServer creates a *Server backed by a MockPlatform.  Write tools are
// enabled so that every handler can be exercised directly.
func newTestServer(t *testing.T, ctrl *gomock.Controller) (*Server, *mock_platform.MockPlatform) {
	t.Helper()
	m := mock_platform.NewMockPlatform(ctrl)
	srv := New(m, WithLogger(nil), WithWriteTools(true))
	require.NotNil(t, srv)
	return srv, m
}

// toolReq builds a CallToolRequest with the given argument map.
func toolReq(args map[string]any) mcplib.CallToolRequest {
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// isErrorResult returns true when the result carries IsError=true.
func isErrorResult(r *mcplib.CallToolResult) bool {
	return r != nil && r.IsError
}

// firstText returns the text of the first TextContent in the result.
func firstText(t *testing.T, r *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, r.Content, "result has no content")
	txt, ok := r.Content[0].(mcplib.TextContent)
	require.True(t, ok, "first content item is not TextContent")
	return txt.Text
}

// ─── New / options ────────────────────────────────────────────────────────────

func TestNew_noOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_platform.NewMockPlatform(ctrl)
	srv := New(m)
	require.NotNil(t, srv)
	assert.NotNil(t, srv.mcp)
	assert.NotNil(t, srv.logger)
	assert.False(t, srv.writeTools, "write tools must be off by default")
}

func TestNew_withLogger_nil(t *testing.T) {
	// A nil logger must not panic and must fall back to slog.Default().
	ctrl := gomock.NewController(t)
	m := mock_platform.NewMockPlatform(ctrl)
	assert.NotPanics(t, func() {
		srv := New(m, WithLogger(nil))
		assert.NotNil(t, srv.logger)
	})
}

func TestNew_writeTools(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_platform.NewMockPlatform(ctrl)
	srv := New(m, WithWriteTools(true))
	assert.True(t, srv.writeTools)
}

func TestAddTool(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv, _ := newTestServer(t, ctrl)

	extra := mcpsrv.ServerTool{
		Tool: mcplib.NewTool("extra_tool", mcplib.WithDescription("extra")),
		Handler: func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
			return resultText("ok"), nil
		},
	}
	assert.NotPanics(t, func() {
		srv.AddTool(extra)
	})
}

func TestInstructions(t *testing.T) {
	t.Run("read-only", func(t *testing.T) {
		got := instructions(false)
		assert.Contains(t, got, "read-only")
		assert.Contains(t, got, "list_tools")
	})
	t.Run("write enabled", func(t *testing.T) {
		got := instructions(true)
		assert.Contains(t, got, "ENABLED")
	})
}

// ─── tool registration gate ───────────────────────────────────────────────────

func TestEntries_writeGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_platform.NewMockPlatform(ctrl)

	var wantWrite, wantRead int
	for _, e := range New(m).entries() {
		if e.write {
			wantWrite++
		} else {
			wantRead++
		}
	}
	require.NotZero(t, wantWrite, "there must be write tools in the registry")
	require.NotZero(t, wantRead, "there must be read tools in the registry")

	// Every write tool must say so in its description, so agents know why a
	// tool may be missing.
	for _, e := range New(m).entries() {
		if e.write {
			assert.Contains(t, e.tool.Tool.Description, "write access", "tool %s", e.tool.Tool.Name)
		}
	}
}

func TestListTools_gateReflected(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_platform.NewMockPlatform(ctrl)

	// Read-only server must not list write tools.
	ro := New(m)
	result, err := ro.handleListTools(t.Context(), mcplib.CallToolRequest{})
	require.NoError(t, err)
	text := firstText(t, result)
	assert.NotContains(t, text, "deploy_model_version")
	assert.Contains(t, text, "list_team_models")
	assert.Contains(t, text, `"write_tools_enabled":false`)

	// Write-enabled server lists everything.
	rw := New(m, WithWriteTools(true))
	result, err = rw.handleListTools(t.Context(), mcplib.CallToolRequest{})
	require.NoError(t, err)
	text = firstText(t, result)
	assert.Contains(t, text, "deploy_model_version")
	assert.Contains(t, text, "gpt_generate_report")
}

// ─── result helpers ───────────────────────────────────────────────────────────

func TestResultText(t *testing.T) {
	r := resultText("hello")
	require.NotNil(t, r)
	assert.False(t, r.IsError)
	require.Len(t, r.Content, 1)
	txt, ok := r.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	assert.Equal(t, "hello", txt.Text)
}

func TestResultErr(t *testing.T) {
	r := resultErr(assert.AnError)
	require.NotNil(t, r)
	assert.True(t, r.IsError)
	require.Len(t, r.Content, 1)
	txt, ok := r.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	assert.Equal(t, assert.AnError.Error(), txt.Text)
}

func TestResultJSON(t *testing.T) {
	type payload struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	r, err := resultJSON(payload{ID: "m1", Name: "churn"})
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.False(t, r.IsError)
	require.Len(t, r.Content, 1)
	txt, ok := r.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	assert.Contains(t, txt.Text, "m1")
	assert.Contains(t, txt.Text, "churn")
}

// ─── argument helpers ─────────────────────────────────────────────────────────

func TestStringArg(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		argName string
		wantVal string
		wantOK  bool
	}{
		{
			name:    "present string",
			args:    map[string]any{"key": "value"},
			argName: "key",
			wantVal: "value",
			wantOK:  true,
		},
		{
			name:    "missing key",
			args:    map[string]any{},
			argName: "key",
			wantVal: "",
			wantOK:  false,
		},
		{
			name:    "wrong type",
			args:    map[string]any{"key": 42},
			argName: "key",
			wantVal: "",
			wantOK:  false,
		},
		{
			name:    "nil args",
			args:    nil,
			argName: "key",
			wantVal: "",
			wantOK:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := toolReq(tt.args)
			got, ok := stringArg(req, tt.argName)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantVal, got)
		})
	}
}

func TestIntArg(t *testing.T) {
	tests := []struct {
		name       string
		args       map[string]any
		argName    string
		defaultVal int
		want       int
	}{
		{
			name:       "float64 value",
			args:       map[string]any{"n": float64(42)},
			argName:    "n",
			defaultVal: 0,
			want:       42,
		},
		{
			name:       "int value",
			args:       map[string]any{"n": 7},
			argName:    "n",
			defaultVal: 0,
			want:       7,
		},
		{
			name:       "missing key uses default",
			args:       map[string]any{},
			argName:    "n",
			defaultVal: 99,
			want:       99,
		},
		{
			name:       "nil args uses default",
			args:       nil,
			argName:    "n",
			defaultVal: 5,
			want:       5,
		},
		{
			name:       "wrong type uses default",
			args:       map[string]any{"n": "not-a-number"},
			argName:    "n",
			defaultVal: 3,
			want:       3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := toolReq(tt.args)
			got := intArg(req, tt.argName, tt.defaultVal)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloatArg(t *testing.T) {
	tests := []struct {
		name       string
		args       map[string]any
		argName    string
		defaultVal float64
		want       float64
	}{
		{
			name:       "float64 value",
			args:       map[string]any{"t": 0.3},
			argName:    "t",
			defaultVal: 0.7,
			want:       0.3,
		},
		{
			name:       "int value",
			args:       map[string]any{"t": 1},
			argName:    "t",
			defaultVal: 0.7,
			want:       1,
		},
		{
			name:       "missing key uses default",
			args:       map[string]any{},
			argName:    "t",
			defaultVal: 0.7,
			want:       0.7,
		},
		{
			name:       "wrong type uses default",
			args:       map[string]any{"t": "hot"},
			argName:    "t",
			defaultVal: 0.7,
			want:       0.7,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := toolReq(tt.args)
			got := floatArg(req, tt.argName, tt.defaultVal)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoolArg(t *testing.T) {
	tests := []struct {
		name       string
		args       map[string]any
		argName    string
		defaultVal bool
		want       bool
	}{
		{
			name:       "true value",
			args:       map[string]any{"flag": true},
			argName:    "flag",
			defaultVal: false,
			want:       true,
		},
		{
			name:       "false value",
			args:       map[string]any{"flag": false},
			argName:    "flag",
			defaultVal: true,
			want:       false,
		},
		{
			name:       "missing key uses default true",
			args:       map[string]any{},
			argName:    "flag",
			defaultVal: true,
			want:       true,
		},
		{
			name:       "nil args uses default",
			args:       nil,
			argName:    "flag",
			defaultVal: true,
			want:       true,
		},
		{
			name:       "wrong type uses default",
			args:       map[string]any{"flag": "yes"},
			argName:    "flag",
			defaultVal: false,
			want:       false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := toolReq(tt.args)
			got := boolArg(req, tt.argName, tt.defaultVal)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapListArg(t *testing.T) {
	tests := []struct {
		name   string
		args   map[string]any
		want   []map[string]any
		wantOK bool
	}{
		{
			name:   "array of objects",
			args:   map[string]any{"scenarios": []any{map[string]any{"age": float64(30)}}},
			want:   []map[string]any{{"age": float64(30)}},
			wantOK: true,
		},
		{
			name:   "empty array",
			args:   map[string]any{"scenarios": []any{}},
			want:   []map[string]any{},
			wantOK: true,
		},
		{
			name:   "missing key",
			args:   map[string]any{},
			wantOK: false,
		},
		{
			name:   "not an array",
			args:   map[string]any{"scenarios": "nope"},
			wantOK: false,
		},
		{
			name:   "array with non-object element",
			args:   map[string]any{"scenarios": []any{"nope"}},
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := toolReq(tt.args)
			got, ok := mapListArg(req, "scenarios")
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
