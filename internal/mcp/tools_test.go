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
	"errors"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/xplainable-io/xmcp/internal/platform"
	"github.com/xplainable-io/xmcp/internal/platform/mock_platform"
)

// ─── handleListTeamModels ─────────────────────────────────────────────────────

func TestHandleListTeamModels(t *testing.T) {
	tests := []struct {
		name        string
		args        map[string]any
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string // substring expected in first text content
	}{
		{
			name: "returns model list as JSON",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListTeamModels(gomock.Any(), "").Return([]platform.ModelSummary{
					{ModelID: "m1", Name: "churn", ModelType: "binary_classification"},
					{ModelID: "m2", Name: "ltv", ModelType: "regression"},
				}, nil)
			},
			wantText: "m1",
		},
		{
			name: "team_id is passed through",
			args: map[string]any{"team_id": "team-9"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListTeamModels(gomock.Any(), "team-9").Return([]platform.ModelSummary{}, nil)
			},
			wantText: "[]",
		},
		{
			name: "null collection becomes empty JSON array",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListTeamModels(gomock.Any(), "").Return(nil, platform.ErrNullCollection)
			},
			wantText: "[]",
		},
		{
			name: "generic error returns error result",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListTeamModels(gomock.Any(), "").Return(nil, errors.New("auth failure"))
			},
			wantIsError: true,
			wantText:    "auth failure",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleListTeamModels(t.Context(), toolReq(tt.args))
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}

// ─── handleGetModel ───────────────────────────────────────────────────────────

func TestHandleGetModel(t *testing.T) {
	tests := []struct {
		name        string
		args        map[string]any
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
	}{
		{
			name:        "missing model_id returns error result",
			args:        nil,
			setup:       func(m *mock_platform.MockPlatform) {},
			wantIsError: true,
			wantText:    "model_id",
		},
		{
			name: "returns model JSON",
			args: map[string]any{"model_id": "m1"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().GetModel(gomock.Any(), "m1").Return(&platform.Model{
					ModelSummary: platform.ModelSummary{ModelID: "m1", Name: "churn", ModelType: "binary_classification"},
				}, nil)
			},
			wantText: "churn",
		},
		{
			name: "ErrNotFound returns error result naming the model",
			args: map[string]any{"model_id": "m404"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().GetModel(gomock.Any(), "m404").Return(nil, platform.ErrNotFound)
			},
			wantIsError: true,
			wantText:    "not found",
		},
		{
			name: "absent model is a lookup miss, not an empty mapping",
			args: map[string]any{"model_id": "m77"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().GetModel(gomock.Any(), "m77").Return(nil, nil)
			},
			wantIsError: true,
			wantText:    "m77",
		},
		{
			name: "generic error returns error result",
			args: map[string]any{"model_id": "m1"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().GetModel(gomock.Any(), "m1").Return(nil, errors.New("backend down"))
			},
			wantIsError: true,
			wantText:    "backend down",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleGetModel(t.Context(), toolReq(tt.args))
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}

// ─── handleListModelVersions ──────────────────────────────────────────────────

func TestHandleListModelVersions(t *testing.T) {
	tests := []struct {
		name        string
		args        map[string]any
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
	}{
		{
			name:        "missing model_id returns error result",
			args:        nil,
			setup:       func(m *mock_platform.MockPlatform) {},
			wantIsError: true,
			wantText:    "model_id",
		},
		{
			name: "returns version list as JSON",
			args: map[string]any{"model_id": "m1"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListModelVersions(gomock.Any(), "m1").Return([]platform.ModelVersion{
					{VersionID: "v1", VersionNumber: 1},
					{VersionID: "v2", VersionNumber: 2},
				}, nil)
			},
			wantText: "v2",
		},
		{
			name: "null collection becomes empty JSON array",
			args: map[string]any{"model_id": "m1"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListModelVersions(gomock.Any(), "m1").Return(nil, platform.ErrNullCollection)
			},
			wantText: "[]",
		},
		{
			name: "generic error returns error result",
			args: map[string]any{"model_id": "m1"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListModelVersions(gomock.Any(), "m1").Return(nil, errors.New("timeout"))
			},
			wantIsError: true,
			wantText:    "timeout",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleListModelVersions(t.Context(), toolReq(tt.args))
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}

// ─── handleListModelVersionPartitions ─────────────────────────────────────────

func TestHandleListModelVersionPartitions(t *testing.T) {
	tests := []struct {
		name        string
		args        map[string]any
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
	}{
		{
			name:        "missing version_id returns error result",
			args:        nil,
			setup:       func(m *mock_platform.MockPlatform) {},
			wantIsError: true,
			wantText:    "version_id",
		},
		{
			name: "returns partition list as JSON",
			args: map[string]any{"version_id": "v1"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListVersionPartitions(gomock.Any(), "v1").Return([]platform.Partition{
					{PartitionID: "p1", Partition: "__dataset__"},
				}, nil)
			},
			wantText: "__dataset__",
		},
		{
			name: "null collection becomes empty JSON array",
			args: map[string]any{"version_id": "v1"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListVersionPartitions(gomock.Any(), "v1").Return(nil, platform.ErrNullCollection)
			},
			wantText: "[]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleListModelVersionPartitions(t.Context(), toolReq(tt.args))
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}

// ─── handleListDeployments ────────────────────────────────────────────────────

func TestHandleListDeployments(t *testing.T) {
	tests := []struct {
		name        string
		args        map[string]any
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
	}{
		{
			name: "returns deployment list as JSON",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListDeployments(gomock.Any(), "").Return([]platform.Deployment{
					{DeploymentID: "d1", ModelID: "m1", VersionID: "v1", Active: true},
				}, nil)
			},
			wantText: "d1",
		},
		{
			name: "null collection becomes empty JSON array",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListDeployments(gomock.Any(), "").Return(nil, platform.ErrNullCollection)
			},
			wantText: "[]",
		},
		{
			name: "generic error returns error result",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListDeployments(gomock.Any(), "").Return(nil, errors.New("gateway unavailable"))
			},
			wantIsError: true,
			wantText:    "gateway unavailable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleListDeployments(t.Context(), toolReq(tt.args))
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}

// ─── handleGetActiveDeployKeysCount ───────────────────────────────────────────

func TestHandleGetActiveDeployKeysCount(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
	}{
		{
			name: "returns the count",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ActiveDeployKeyCount(gomock.Any(), "").Return(3, nil)
			},
			wantText: `"count":3`,
		},
		{
			name: "zero count is a valid result",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ActiveDeployKeyCount(gomock.Any(), "").Return(0, nil)
			},
			wantText: `"count":0`,
		},
		{
			name: "generic error returns error result",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ActiveDeployKeyCount(gomock.Any(), "").Return(0, errors.New("boom"))
			},
			wantIsError: true,
			wantText:    "boom",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleGetActiveDeployKeysCount(t.Context(), mcplib.CallToolRequest{})
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}

// ─── handleListPreprocessors / handleGetPreprocessor ──────────────────────────

func TestHandleListPreprocessors(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
	}{
		{
			name: "returns preprocessor list as JSON",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListPreprocessors(gomock.Any(), "").Return([]platform.Preprocessor{
					{PreprocessorID: "pp1", Name: "clean"},
				}, nil)
			},
			wantText: "pp1",
		},
		{
			name: "null collection becomes empty JSON array",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListPreprocessors(gomock.Any(), "").Return(nil, platform.ErrNullCollection)
			},
			wantText: "[]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleListPreprocessors(t.Context(), mcplib.CallToolRequest{})
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}

func TestHandleGetPreprocessor(t *testing.T) {
	tests := []struct {
		name        string
		args        map[string]any
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
	}{
		{
			name:        "missing preprocessor_id returns error result",
			args:        nil,
			setup:       func(m *mock_platform.MockPlatform) {},
			wantIsError: true,
			wantText:    "preprocessor_id",
		},
		{
			name: "returns preprocessor JSON",
			args: map[string]any{"preprocessor_id": "pp1"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().GetPreprocessor(gomock.Any(), "pp1").Return(&platform.Preprocessor{
					PreprocessorID: "pp1", Name: "clean",
				}, nil)
			},
			wantText: "clean",
		},
		{
			name: "absent preprocessor is a lookup miss",
			args: map[string]any{"preprocessor_id": "pp404"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().GetPreprocessor(gomock.Any(), "pp404").Return(nil, nil)
			},
			wantIsError: true,
			wantText:    "pp404",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleGetPreprocessor(t.Context(), toolReq(tt.args))
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}

// ─── collections (read) ───────────────────────────────────────────────────────

func TestHandleGetModelCollections(t *testing.T) {
	tests := []struct {
		name        string
		args        map[string]any
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
	}{
		{
			name:        "missing model_id returns error result",
			args:        nil,
			setup:       func(m *mock_platform.MockPlatform) {},
			wantIsError: true,
			wantText:    "model_id",
		},
		{
			name: "returns collection list as JSON",
			args: map[string]any{"model_id": "m1"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ModelCollections(gomock.Any(), "m1").Return([]platform.Collection{
					{CollectionID: "c1", Name: "baseline"},
				}, nil)
			},
			wantText: "baseline",
		},
		{
			name: "null collection becomes empty JSON array",
			args: map[string]any{"model_id": "m1"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ModelCollections(gomock.Any(), "m1").Return(nil, platform.ErrNullCollection)
			},
			wantText: "[]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleGetModelCollections(t.Context(), toolReq(tt.args))
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}

func TestHandleGetTeamCollections(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
	}{
		{
			name: "returns collection list as JSON",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().TeamCollections(gomock.Any()).Return([]platform.Collection{
					{CollectionID: "c1", ModelID: "m1", Name: "baseline"},
					{CollectionID: "c2", ModelID: "m2", Name: "stress"},
				}, nil)
			},
			wantText: "stress",
		},
		{
			name: "null collection becomes empty JSON array",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().TeamCollections(gomock.Any()).Return(nil, platform.ErrNullCollection)
			},
			wantText: "[]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleGetTeamCollections(t.Context(), mcplib.CallToolRequest{})
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}

func TestHandleGetCollectionScenarios(t *testing.T) {
	tests := []struct {
		name        string
		args        map[string]any
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
	}{
		{
			name:        "missing collection_id returns error result",
			args:        nil,
			setup:       func(m *mock_platform.MockPlatform) {},
			wantIsError: true,
			wantText:    "collection_id",
		},
		{
			name: "returns scenarios as JSON",
			args: map[string]any{"collection_id": "c1"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().CollectionScenarios(gomock.Any(), "c1").Return([]map[string]any{
					{"scenario_id": "s1", "age": 42},
				}, nil)
			},
			wantText: "s1",
		},
		{
			name: "null collection becomes empty JSON array",
			args: map[string]any{"collection_id": "c1"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().CollectionScenarios(gomock.Any(), "c1").Return(nil, platform.ErrNullCollection)
			},
			wantText: "[]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleGetCollectionScenarios(t.Context(), toolReq(tt.args))
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}

// ─── datasets ─────────────────────────────────────────────────────────────────

func TestHandleListDatasets(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
	}{
		{
			name: "returns dataset list as JSON",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListDatasets(gomock.Any()).Return([]platform.Dataset{
					{Name: "titanic", Rows: 891, Columns: 12},
				}, nil)
			},
			wantText: "titanic",
		},
		{
			name: "null collection becomes empty JSON array",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ListDatasets(gomock.Any()).Return(nil, platform.ErrNullCollection)
			},
			wantText: "[]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleListDatasets(t.Context(), mcplib.CallToolRequest{})
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}

func TestHandleLoadDataset(t *testing.T) {
	tests := []struct {
		name        string
		args        map[string]any
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
	}{
		{
			name:        "missing name returns error result",
			args:        nil,
			setup:       func(m *mock_platform.MockPlatform) {},
			wantIsError: true,
			wantText:    "name",
		},
		{
			name: "returns dataset metadata as JSON",
			args: map[string]any{"name": "titanic"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().LoadDataset(gomock.Any(), "titanic").Return(&platform.Dataset{
					Name: "titanic", Rows: 891, Columns: 12, Target: "Survived",
				}, nil)
			},
			wantText: "Survived",
		},
		{
			name: "absent dataset is a lookup miss",
			args: map[string]any{"name": "unknown"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().LoadDataset(gomock.Any(), "unknown").Return(nil, nil)
			},
			wantIsError: true,
			wantText:    "unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleLoadDataset(t.Context(), toolReq(tt.args))
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}

// ─── diagnostics ──────────────────────────────────────────────────────────────

func TestHandleGetConnectionInfo(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
		notWantText string
	}{
		{
			name: "returns connection info without credentials",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ConnectionInfo(gomock.Any()).Return(&platform.ConnectionInfo{
					Username: "alice",
					Hostname: "https://platform.xplainable.io",
					TeamID:   "team-1",
				}, nil)
			},
			wantText:    "alice",
			notWantText: "api_key",
		},
		{
			name: "absent info returns informational text",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ConnectionInfo(gomock.Any()).Return(nil, nil)
			},
			wantText: "not available",
		},
		{
			name: "generic error returns error result",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().ConnectionInfo(gomock.Any()).Return(nil, errors.New("conn refused"))
			},
			wantIsError: true,
			wantText:    "conn refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleGetConnectionInfo(t.Context(), mcplib.CallToolRequest{})
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
			if tt.notWantText != "" {
				assert.NotContains(t, firstText(t, result), tt.notWantText)
			}
		})
	}
}

func TestHandleGetVersionInfo(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
	}{
		{
			name: "returns version info as JSON",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().VersionInfo(gomock.Any()).Return(&platform.VersionInfo{
					Xplainable: "1.3.0", API: "v1",
				}, nil)
			},
			wantText: "1.3.0",
		},
		{
			name: "absent info returns informational text",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().VersionInfo(gomock.Any()).Return(nil, nil)
			},
			wantText: "not available",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleGetVersionInfo(t.Context(), mcplib.CallToolRequest{})
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}

func TestHandlePingServer(t *testing.T) {
	tests := []struct {
		name        string
		args        map[string]any
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
	}{
		{
			name: "returns status as JSON",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().PingServer(gomock.Any(), "").Return(map[string]any{"status": "ok"}, nil)
			},
			wantText: "ok",
		},
		{
			name: "custom hostname is passed through",
			args: map[string]any{"hostname": "staging.xplainable.io"},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().PingServer(gomock.Any(), "staging.xplainable.io").Return(map[string]any{"status": "ok"}, nil)
			},
			wantText: "ok",
		},
		{
			name: "absent status becomes empty JSON object",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().PingServer(gomock.Any(), "").Return(nil, nil)
			},
			wantText: "{}",
		},
		{
			name: "generic error returns error result",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().PingServer(gomock.Any(), "").Return(nil, errors.New("unreachable"))
			},
			wantIsError: true,
			wantText:    "unreachable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handlePingServer(t.Context(), toolReq(tt.args))
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}

func TestHandleHealthCheck(t *testing.T) {
	tests := []struct {
		name        string
		args        map[string]any
		setup       func(m *mock_platform.MockPlatform)
		wantIsError bool
		wantText    string
	}{
		{
			name: "all subsystems probed by default",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().HealthCheck(gomock.Any(), platform.HealthCheckOptions{
					Database: true, Storage: true, Compute: true,
				}).Return(map[string]any{"database": "ok", "storage": "ok", "compute": "ok"}, nil)
			},
			wantText: "database",
		},
		{
			name: "subsystems can be switched off",
			args: map[string]any{"check_storage": false, "check_compute": false},
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().HealthCheck(gomock.Any(), platform.HealthCheckOptions{
					Database: true,
				}).Return(map[string]any{"database": "ok"}, nil)
			},
			wantText: "ok",
		},
		{
			name: "absent status becomes empty JSON object",
			setup: func(m *mock_platform.MockPlatform) {
				m.EXPECT().HealthCheck(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantText: "{}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			srv, mock := newTestServer(t, ctrl)
			tt.setup(mock)

			result, err := srv.handleHealthCheck(t.Context(), toolReq(tt.args))
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantIsError, isErrorResult(result))
			if tt.wantText != "" {
				assert.Contains(t, firstText(t, result), tt.wantText)
			}
		})
	}
}
