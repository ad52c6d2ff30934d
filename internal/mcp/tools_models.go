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

// In this file: model and preprocessor tools.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/xplainable-io/xmcp/internal/normalize"
	"github.com/xplainable-io/xmcp/internal/platform"
)

func (s *Server) toolListTeamModels() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("list_team_models",
			mcplib.WithDescription("Lists all models of the team, with their identifiers, names, types and version counts."),
			mcplib.WithString("team_id", mcplib.Description("Team identifier. Defaults to the configured team.")),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleListTeamModels,
	}
}

func (s *Server) handleListTeamModels(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "list_team_models"
	teamID, _ := stringArg(req, "team_id")
	models, _, err := normalize.CallSafely(ctx, s.logger, op, func(ctx context.Context) ([]platform.ModelSummary, error) {
		return s.client.ListTeamModels(ctx, teamID)
	})
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	rows := normalize.MappingList(models)
	s.logInvocation(ctx, op, outcomeFor(len(rows)), len(rows), nil)
	return resultJSON(rows)
}

func (s *Server) toolGetModel() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("get_model",
			mcplib.WithDescription("Returns detailed information about a single model."),
			mcplib.WithString("model_id", mcplib.Description("Model identifier."), mcplib.Required()),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleGetModel,
	}
}

func (s *Server) handleGetModel(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "get_model"
	modelID, ok := stringArg(req, "model_id")
	if !ok || modelID == "" {
		return resultErr(errors.New("model_id is required")), nil
	}
	model, err := s.client.GetModel(ctx, modelID)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	row, ok := normalize.Mapping(model)
	if !ok {
		// absent single object is a lookup miss, not an empty result.
		s.logInvocation(ctx, op, outcomeEmpty, 0, nil)
		return resultErr(fmt.Errorf("%s: model %q not found", op, modelID)), nil
	}
	s.logInvocation(ctx, op, outcomeSuccess, 1, nil)
	return resultJSON(row)
}

func (s *Server) toolListModelVersions() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("list_model_versions",
			mcplib.WithDescription("Lists all versions of a model."),
			mcplib.WithString("model_id", mcplib.Description("Model identifier."), mcplib.Required()),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleListModelVersions,
	}
}

func (s *Server) handleListModelVersions(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "list_model_versions"
	modelID, ok := stringArg(req, "model_id")
	if !ok || modelID == "" {
		return resultErr(errors.New("model_id is required")), nil
	}
	versions, _, err := normalize.CallSafely(ctx, s.logger, op, func(ctx context.Context) ([]platform.ModelVersion, error) {
		return s.client.ListModelVersions(ctx, modelID)
	})
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	rows := normalize.MappingList(versions)
	s.logInvocation(ctx, op, outcomeFor(len(rows)), len(rows), nil)
	return resultJSON(rows)
}

func (s *Server) toolListModelVersionPartitions() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("list_model_version_partitions",
			mcplib.WithDescription("Lists all partitions of a model version."),
			mcplib.WithString("version_id", mcplib.Description("Model version identifier."), mcplib.Required()),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleListModelVersionPartitions,
	}
}

func (s *Server) handleListModelVersionPartitions(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "list_model_version_partitions"
	versionID, ok := stringArg(req, "version_id")
	if !ok || versionID == "" {
		return resultErr(errors.New("version_id is required")), nil
	}
	partitions, _, err := normalize.CallSafely(ctx, s.logger, op, func(ctx context.Context) ([]platform.Partition, error) {
		return s.client.ListVersionPartitions(ctx, versionID)
	})
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	rows := normalize.MappingList(partitions)
	s.logInvocation(ctx, op, outcomeFor(len(rows)), len(rows), nil)
	return resultJSON(rows)
}

func (s *Server) toolListPreprocessors() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("list_preprocessors",
			mcplib.WithDescription("Lists all preprocessing pipelines of the team."),
			mcplib.WithString("team_id", mcplib.Description("Team identifier. Defaults to the configured team.")),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleListPreprocessors,
	}
}

func (s *Server) handleListPreprocessors(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "list_preprocessors"
	teamID, _ := stringArg(req, "team_id")
	pps, _, err := normalize.CallSafely(ctx, s.logger, op, func(ctx context.Context) ([]platform.Preprocessor, error) {
		return s.client.ListPreprocessors(ctx, teamID)
	})
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	rows := normalize.MappingList(pps)
	s.logInvocation(ctx, op, outcomeFor(len(rows)), len(rows), nil)
	return resultJSON(rows)
}

func (s *Server) toolGetPreprocessor() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("get_preprocessor",
			mcplib.WithDescription("Returns detailed information about a single preprocessing pipeline."),
			mcplib.WithString("preprocessor_id", mcplib.Description("Preprocessor identifier."), mcplib.Required()),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleGetPreprocessor,
	}
}

func (s *Server) handleGetPreprocessor(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "get_preprocessor"
	ppID, ok := stringArg(req, "preprocessor_id")
	if !ok || ppID == "" {
		return resultErr(errors.New("preprocessor_id is required")), nil
	}
	pp, err := s.client.GetPreprocessor(ctx, ppID)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	row, ok := normalize.Mapping(pp)
	if !ok {
		s.logInvocation(ctx, op, outcomeEmpty, 0, nil)
		return resultErr(fmt.Errorf("%s: preprocessor %q not found", op, ppID)), nil
	}
	s.logInvocation(ctx, op, outcomeSuccess, 1, nil)
	return resultJSON(row)
}

func (s *Server) toolLinkPreprocessor() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("link_preprocessor",
			mcplib.WithDescription("Links a preprocessor version to a model version, so that inference runs the preprocessing pipeline first. Requires write access."),
			mcplib.WithString("version_id", mcplib.Description("Model version identifier."), mcplib.Required()),
			mcplib.WithString("preprocessor_version_id", mcplib.Description("Preprocessor version identifier."), mcplib.Required()),
		),
		Handler: s.handleLinkPreprocessor,
	}
}

func (s *Server) handleLinkPreprocessor(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "link_preprocessor"
	versionID, ok := stringArg(req, "version_id")
	if !ok || versionID == "" {
		return resultErr(errors.New("version_id is required")), nil
	}
	ppVersionID, ok := stringArg(req, "preprocessor_version_id")
	if !ok || ppVersionID == "" {
		return resultErr(errors.New("preprocessor_version_id is required")), nil
	}
	res, err := s.client.LinkPreprocessor(ctx, versionID, ppVersionID)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	res = normalize.CoerceMap(res)
	s.logInvocation(ctx, op, outcomeSuccess, len(res), nil)
	return resultJSON(res)
}
