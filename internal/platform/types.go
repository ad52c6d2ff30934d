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

package platform

// In this file: response model types.  Every response model implements
// AsMap, the explicit conversion to a plain mapping used by the normalize
// package.

import "encoding/json"

// ModelSummary is a single entry of the team model listing.
type ModelSummary struct {
	ModelID     string `json:"model_id"`
	Name        string `json:"model_name"`
	Description string `json:"model_description,omitempty"`
	ModelType   string `json:"model_type"`
	TargetName  string `json:"target_name,omitempty"`
	CreatedBy   string `json:"created_by,omitempty"`
	Created     string `json:"created,omitempty"`
	Versions    int    `json:"number_of_versions,omitempty"`
}

func (m ModelSummary) AsMap() map[string]any { return asMap(m) }

// Model is the detailed model information.
type Model struct {
	ModelSummary
	ActiveVersionID string   `json:"active_version_id,omitempty"`
	Archived        bool     `json:"archived,omitempty"`
	Contributors    []string `json:"contributors,omitempty"`
}

func (m Model) AsMap() map[string]any { return asMap(m) }

// ModelVersion is a single version of a model.
type ModelVersion struct {
	VersionID          string `json:"version_id"`
	VersionNumber      int    `json:"version_number"`
	Created            string `json:"created,omitempty"`
	PartitionOn        string `json:"partition_on,omitempty"`
	XplainableVersion  string `json:"xplainable_version,omitempty"`
	PythonVersion      string `json:"python_version,omitempty"`
	LinkedPreprocessor string `json:"linked_preprocessor_id,omitempty"`
}

func (v ModelVersion) AsMap() map[string]any { return asMap(v) }

// Partition is a single partition of a model version.
type Partition struct {
	PartitionID string `json:"partition_id"`
	Partition   string `json:"partition"`
	SampleSize  int    `json:"sample_size,omitempty"`
}

func (p Partition) AsMap() map[string]any { return asMap(p) }

// Deployment is a deployed model version.
type Deployment struct {
	DeploymentID string `json:"deployment_id"`
	ModelID      string `json:"model_id"`
	VersionID    string `json:"version_id"`
	Active       bool   `json:"active"`
	Location     string `json:"location,omitempty"`
	Created      string `json:"created,omitempty"`
}

func (d Deployment) AsMap() map[string]any { return asMap(d) }

// Preprocessor is a preprocessing pipeline stored on the platform.
type Preprocessor struct {
	PreprocessorID string `json:"preprocessor_id"`
	Name           string `json:"preprocessor_name"`
	Description    string `json:"preprocessor_description,omitempty"`
	Created        string `json:"created,omitempty"`
	Versions       int    `json:"number_of_versions,omitempty"`
}

func (p Preprocessor) AsMap() map[string]any { return asMap(p) }

// Collection is a scenario collection attached to a model.
type Collection struct {
	CollectionID string `json:"collection_id"`
	ModelID      string `json:"model_id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Scenarios    int    `json:"scenario_count,omitempty"`
	Created      string `json:"created,omitempty"`
}

func (c Collection) AsMap() map[string]any { return asMap(c) }

// Dataset is a sample or team dataset available on the platform.
type Dataset struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Rows        int64  `json:"rows,omitempty"`
	Columns     int    `json:"columns,omitempty"`
	Target      string `json:"target,omitempty"`
}

func (d Dataset) AsMap() map[string]any { return asMap(d) }

// VersionInfo is the platform version information.
type VersionInfo struct {
	Xplainable string `json:"xplainable_version"`
	Python     string `json:"python_version,omitempty"`
	API        string `json:"api_version,omitempty"`
}

func (v VersionInfo) AsMap() map[string]any { return asMap(v) }

// ConnectionInfo describes the authenticated connection.  It deliberately
// contains no secrets: the API key never round-trips through it.
type ConnectionInfo struct {
	Username      string `json:"username"`
	Hostname      string `json:"hostname"`
	OrgID         string `json:"org_id,omitempty"`
	TeamID        string `json:"team_id,omitempty"`
	APIKeyExpires string `json:"api_key_expires,omitempty"`
	Version       string `json:"xplainable_version,omitempty"`
}

func (c ConnectionInfo) AsMap() map[string]any { return asMap(c) }

// GPTReport is the output of the GPT report/explanation/documentation
// endpoints.
type GPTReport struct {
	ModelID   string `json:"model_id"`
	VersionID string `json:"version_id"`
	Content   string `json:"content"`
	Format    string `json:"format,omitempty"`
	Created   string `json:"created,omitempty"`
}

func (r GPTReport) AsMap() map[string]any { return asMap(r) }

// ExplainParams are the parameters of the GPT model explanation.
type ExplainParams struct {
	Language    string `json:"language"`
	DetailLevel string `json:"detail_level"`
}

// ReportParams are the parameters of the GPT report generation.
type ReportParams struct {
	TargetDescription string  `json:"target_description"`
	ProjectObjective  string  `json:"project_objective"`
	MaxFeatures       int     `json:"max_features"`
	Temperature       float64 `json:"temperature"`
}

// DocumentationParams are the parameters of the GPT documentation
// generation.
type DocumentationParams struct {
	IncludeTechnical bool   `json:"include_technical"`
	IncludeBusiness  bool   `json:"include_business"`
	Format           string `json:"format"`
}

// HealthCheckOptions select which backend subsystems the health check
// should probe.
type HealthCheckOptions struct {
	Database bool `json:"check_database"`
	Storage  bool `json:"check_storage"`
	Compute  bool `json:"check_compute"`
}

// asMap converts a response model to a plain mapping through its JSON
// representation, so that the mapping keys always match the wire names.
func asMap(v any) map[string]any {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil
	}
	return m
}
