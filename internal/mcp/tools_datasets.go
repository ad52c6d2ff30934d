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

// In this file: dataset tools.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/xplainable-io/xmcp/internal/normalize"
	"github.com/xplainable-io/xmcp/internal/platform"
)

func (s *Server) toolListDatasets() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("list_datasets",
			mcplib.WithDescription("Lists the sample datasets available on the platform."),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleListDatasets,
	}
}

func (s *Server) handleListDatasets(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "list_datasets"
	datasets, _, err := normalize.CallSafely(ctx, s.logger, op, func(ctx context.Context) ([]platform.Dataset, error) {
		return s.client.ListDatasets(ctx)
	})
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	rows := normalize.MappingList(datasets)
	s.logInvocation(ctx, op, outcomeFor(len(rows)), len(rows), nil)
	return resultJSON(rows)
}

func (s *Server) toolListTeamDatasets() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("list_team_datasets",
			mcplib.WithDescription("Lists the datasets uploaded by the team."),
			mcplib.WithString("team_id", mcplib.Description("Team identifier. Defaults to the configured team.")),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleListTeamDatasets,
	}
}

func (s *Server) handleListTeamDatasets(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "list_team_datasets"
	teamID, _ := stringArg(req, "team_id")
	datasets, _, err := normalize.CallSafely(ctx, s.logger, op, func(ctx context.Context) ([]platform.Dataset, error) {
		return s.client.ListTeamDatasets(ctx, teamID)
	})
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	rows := normalize.MappingList(datasets)
	s.logInvocation(ctx, op, outcomeFor(len(rows)), len(rows), nil)
	return resultJSON(rows)
}

func (s *Server) toolLoadDataset() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("load_dataset",
			mcplib.WithDescription("Returns the metadata of a named dataset (row and column counts, target column)."),
			mcplib.WithString("name", mcplib.Description("Dataset name."), mcplib.Required()),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleLoadDataset,
	}
}

func (s *Server) handleLoadDataset(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "load_dataset"
	name, ok := stringArg(req, "name")
	if !ok || name == "" {
		return resultErr(errors.New("name is required")), nil
	}
	ds, err := s.client.LoadDataset(ctx, name)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	row, ok := normalize.Mapping(ds)
	if !ok {
		s.logInvocation(ctx, op, outcomeEmpty, 0, nil)
		return resultErr(fmt.Errorf("%s: dataset %q not found", op, name)), nil
	}
	s.logInvocation(ctx, op, outcomeSuccess, 1, nil)
	return resultJSON(row)
}
