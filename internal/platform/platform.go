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

// Package platform is the client for the Xplainable platform REST API.  It is
// the upstream that the MCP tool layer delegates all substantive work to.
//
// The client is deliberately transparent: it does not retry, it does not
// cache, and it does not paper over backend inconsistencies.  The one known
// inconsistency — some endpoints return a literal JSON null where an empty
// collection is expected — is reported as a typed sentinel error
// (ErrNullCollection) so that the caller can decide how to treat it.  The
// normalize package is the intended consumer of that sentinel.
package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock_platform/mock_platform.go . Platform

// Sentinel errors returned by the client.
var (
	// ErrNullCollection is returned when the backend sends a literal JSON
	// null where an array was expected.  This is a known defect class of
	// local and development backends; it is narrowly matched downstream and
	// must never absorb other failure modes.
	ErrNullCollection = errors.New("backend returned null where a collection was expected")

	// ErrNotFound is returned when the backend responds with 404.
	ErrNotFound = errors.New("not found")
)

// APIError is any other non-2xx platform response (auth, validation, server
// errors).  It is never suppressed downstream.
type APIError struct {
	Status  int    // HTTP status code
	Message string // message reported by the backend, if any
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("platform API error: status %d", e.Status)
	}
	return fmt.Sprintf("platform API error: status %d: %s", e.Status, e.Message)
}

// Platform is the set of platform client methods that the MCP tool layer
// relies on.  *Client is the production implementation.
type Platform interface {
	// Diagnostics.
	ConnectionInfo(ctx context.Context) (*ConnectionInfo, error)
	VersionInfo(ctx context.Context) (*VersionInfo, error)
	PingServer(ctx context.Context, hostname string) (map[string]any, error)
	PingGateway(ctx context.Context, hostname string) (map[string]any, error)
	HealthCheck(ctx context.Context, opts HealthCheckOptions) (map[string]any, error)

	// Models.
	ListTeamModels(ctx context.Context, teamID string) ([]ModelSummary, error)
	GetModel(ctx context.Context, modelID string) (*Model, error)
	ListModelVersions(ctx context.Context, modelID string) ([]ModelVersion, error)
	ListVersionPartitions(ctx context.Context, versionID string) ([]Partition, error)
	LinkPreprocessor(ctx context.Context, versionID, preprocessorVersionID string) (map[string]any, error)

	// Deployments.
	ListDeployments(ctx context.Context, teamID string) ([]Deployment, error)
	DeployVersion(ctx context.Context, versionID string) (*Deployment, error)
	ActivateDeployment(ctx context.Context, deploymentID string) (map[string]any, error)
	DeactivateDeployment(ctx context.Context, deploymentID string) (map[string]any, error)
	GenerateDeployKey(ctx context.Context, deploymentID, description string, daysUntilExpiry int) (uuid.UUID, error)
	ActiveDeployKeyCount(ctx context.Context, teamID string) (int, error)
	DeploymentPayload(ctx context.Context, deploymentID string) ([]map[string]any, error)

	// Preprocessing.
	ListPreprocessors(ctx context.Context, teamID string) ([]Preprocessor, error)
	GetPreprocessor(ctx context.Context, preprocessorID string) (*Preprocessor, error)

	// Collections and scenarios.
	ModelCollections(ctx context.Context, modelID string) ([]Collection, error)
	TeamCollections(ctx context.Context) ([]Collection, error)
	CreateCollection(ctx context.Context, modelID, name, description string) (*Collection, error)
	DeleteCollection(ctx context.Context, modelID, collectionID string) error
	UpdateCollectionName(ctx context.Context, modelID, collectionID, name string) error
	UpdateCollectionDescription(ctx context.Context, modelID, collectionID, description string) error
	CollectionScenarios(ctx context.Context, collectionID string) ([]map[string]any, error)
	CreateScenarios(ctx context.Context, collectionID string, scenarios []map[string]any) ([]map[string]any, error)

	// Datasets.
	ListDatasets(ctx context.Context) ([]Dataset, error)
	ListTeamDatasets(ctx context.Context, teamID string) ([]Dataset, error)
	LoadDataset(ctx context.Context, name string) (*Dataset, error)

	// GPT tooling.
	ExplainModel(ctx context.Context, modelID, versionID string, p ExplainParams) (*GPTReport, error)
	GenerateReport(ctx context.Context, modelID, versionID string, p ReportParams) (*GPTReport, error)
	GenerateDocumentation(ctx context.Context, modelID, versionID string, p DocumentationParams) (*GPTReport, error)
}
