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

// In this file: scenario collection tools, including the write-gated ones.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/xplainable-io/xmcp/internal/normalize"
	"github.com/xplainable-io/xmcp/internal/platform"
)

func (s *Server) toolGetModelCollections() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("get_model_collections",
			mcplib.WithDescription("Lists all scenario collections of a model."),
			mcplib.WithString("model_id", mcplib.Description("Model identifier."), mcplib.Required()),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleGetModelCollections,
	}
}

func (s *Server) handleGetModelCollections(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "get_model_collections"
	modelID, ok := stringArg(req, "model_id")
	if !ok || modelID == "" {
		return resultErr(errors.New("model_id is required")), nil
	}
	collections, _, err := normalize.CallSafely(ctx, s.logger, op, func(ctx context.Context) ([]platform.Collection, error) {
		return s.client.ModelCollections(ctx, modelID)
	})
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	rows := normalize.MappingList(collections)
	s.logInvocation(ctx, op, outcomeFor(len(rows)), len(rows), nil)
	return resultJSON(rows)
}

func (s *Server) toolGetTeamCollections() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("get_team_collections",
			mcplib.WithDescription("Lists all scenario collections of the team across all models."),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleGetTeamCollections,
	}
}

func (s *Server) handleGetTeamCollections(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "get_team_collections"
	collections, _, err := normalize.CallSafely(ctx, s.logger, op, func(ctx context.Context) ([]platform.Collection, error) {
		return s.client.TeamCollections(ctx)
	})
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	rows := normalize.MappingList(collections)
	s.logInvocation(ctx, op, outcomeFor(len(rows)), len(rows), nil)
	return resultJSON(rows)
}

func (s *Server) toolGetCollectionScenarios() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("get_collection_scenarios",
			mcplib.WithDescription("Lists all scenarios of a collection."),
			mcplib.WithString("collection_id", mcplib.Description("Collection identifier."), mcplib.Required()),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleGetCollectionScenarios,
	}
}

func (s *Server) handleGetCollectionScenarios(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "get_collection_scenarios"
	collectionID, ok := stringArg(req, "collection_id")
	if !ok || collectionID == "" {
		return resultErr(errors.New("collection_id is required")), nil
	}
	scenarios, _, err := normalize.CallSafely(ctx, s.logger, op, func(ctx context.Context) ([]map[string]any, error) {
		return s.client.CollectionScenarios(ctx, collectionID)
	})
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	scenarios = normalize.CoerceList(scenarios)
	s.logInvocation(ctx, op, outcomeFor(len(scenarios)), len(scenarios), nil)
	return resultJSON(scenarios)
}

func (s *Server) toolCreateCollection() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("create_collection",
			mcplib.WithDescription("Creates a new scenario collection on a model. Requires write access."),
			mcplib.WithString("model_id", mcplib.Description("Model identifier."), mcplib.Required()),
			mcplib.WithString("name", mcplib.Description("Collection name."), mcplib.Required()),
			mcplib.WithString("description", mcplib.Description("Collection description.")),
		),
		Handler: s.handleCreateCollection,
	}
}

func (s *Server) handleCreateCollection(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "create_collection"
	modelID, ok := stringArg(req, "model_id")
	if !ok || modelID == "" {
		return resultErr(errors.New("model_id is required")), nil
	}
	name, ok := stringArg(req, "name")
	if !ok || name == "" {
		return resultErr(errors.New("name is required")), nil
	}
	description, _ := stringArg(req, "description")
	collection, err := s.client.CreateCollection(ctx, modelID, name, description)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	row, ok := normalize.Mapping(collection)
	if !ok {
		s.logInvocation(ctx, op, outcomeEmpty, 0, nil)
		return resultErr(fmt.Errorf("%s: backend returned no collection for %q", op, name)), nil
	}
	s.logInvocation(ctx, op, outcomeSuccess, 1, nil)
	return resultJSON(row)
}

func (s *Server) toolDeleteCollection() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("delete_collection",
			mcplib.WithDescription("Deletes a scenario collection and all of its scenarios. This cannot be undone. Requires write access."),
			mcplib.WithString("model_id", mcplib.Description("Model identifier."), mcplib.Required()),
			mcplib.WithString("collection_id", mcplib.Description("Collection identifier."), mcplib.Required()),
			mcplib.WithDestructiveHintAnnotation(true),
		),
		Handler: s.handleDeleteCollection,
	}
}

func (s *Server) handleDeleteCollection(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "delete_collection"
	modelID, ok := stringArg(req, "model_id")
	if !ok || modelID == "" {
		return resultErr(errors.New("model_id is required")), nil
	}
	collectionID, ok := stringArg(req, "collection_id")
	if !ok || collectionID == "" {
		return resultErr(errors.New("collection_id is required")), nil
	}
	if err := s.client.DeleteCollection(ctx, modelID, collectionID); err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	s.logInvocation(ctx, op, outcomeSuccess, 1, nil)
	return resultText(fmt.Sprintf("Collection %q deleted.", collectionID)), nil
}

func (s *Server) toolUpdateCollectionName() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("update_collection_name",
			mcplib.WithDescription("Renames a scenario collection. Requires write access."),
			mcplib.WithString("model_id", mcplib.Description("Model identifier."), mcplib.Required()),
			mcplib.WithString("collection_id", mcplib.Description("Collection identifier."), mcplib.Required()),
			mcplib.WithString("name", mcplib.Description("New collection name."), mcplib.Required()),
			mcplib.WithIdempotentHintAnnotation(true),
		),
		Handler: s.handleUpdateCollectionName,
	}
}

func (s *Server) handleUpdateCollectionName(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "update_collection_name"
	modelID, ok := stringArg(req, "model_id")
	if !ok || modelID == "" {
		return resultErr(errors.New("model_id is required")), nil
	}
	collectionID, ok := stringArg(req, "collection_id")
	if !ok || collectionID == "" {
		return resultErr(errors.New("collection_id is required")), nil
	}
	name, ok := stringArg(req, "name")
	if !ok || name == "" {
		return resultErr(errors.New("name is required")), nil
	}
	if err := s.client.UpdateCollectionName(ctx, modelID, collectionID, name); err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	s.logInvocation(ctx, op, outcomeSuccess, 1, nil)
	return resultText(fmt.Sprintf("Collection %q renamed to %q.", collectionID, name)), nil
}

func (s *Server) toolUpdateCollectionDescription() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("update_collection_description",
			mcplib.WithDescription("Updates the description of a scenario collection. Requires write access."),
			mcplib.WithString("model_id", mcplib.Description("Model identifier."), mcplib.Required()),
			mcplib.WithString("collection_id", mcplib.Description("Collection identifier."), mcplib.Required()),
			mcplib.WithString("description", mcplib.Description("New collection description."), mcplib.Required()),
			mcplib.WithIdempotentHintAnnotation(true),
		),
		Handler: s.handleUpdateCollectionDescription,
	}
}

func (s *Server) handleUpdateCollectionDescription(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "update_collection_description"
	modelID, ok := stringArg(req, "model_id")
	if !ok || modelID == "" {
		return resultErr(errors.New("model_id is required")), nil
	}
	collectionID, ok := stringArg(req, "collection_id")
	if !ok || collectionID == "" {
		return resultErr(errors.New("collection_id is required")), nil
	}
	description, ok := stringArg(req, "description")
	if !ok {
		return resultErr(errors.New("description is required")), nil
	}
	if err := s.client.UpdateCollectionDescription(ctx, modelID, collectionID, description); err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	s.logInvocation(ctx, op, outcomeSuccess, 1, nil)
	return resultText(fmt.Sprintf("Collection %q description updated.", collectionID)), nil
}

func (s *Server) toolCreateScenarios() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("create_scenarios",
			mcplib.WithDescription("Adds scenarios to a collection. Each scenario is an object of feature name to value pairs. Requires write access."),
			mcplib.WithString("collection_id", mcplib.Description("Collection identifier."), mcplib.Required()),
			mcplib.WithArray("scenarios", mcplib.Description("Scenarios to add, as an array of objects."), mcplib.Required()),
		),
		Handler: s.handleCreateScenarios,
	}
}

func (s *Server) handleCreateScenarios(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "create_scenarios"
	collectionID, ok := stringArg(req, "collection_id")
	if !ok || collectionID == "" {
		return resultErr(errors.New("collection_id is required")), nil
	}
	scenarios, ok := mapListArg(req, "scenarios")
	if !ok {
		return resultErr(errors.New("scenarios is required and must be an array of objects")), nil
	}
	if len(scenarios) == 0 {
		return resultErr(errors.New("scenarios must not be empty")), nil
	}
	created, _, err := normalize.CallSafely(ctx, s.logger, op, func(ctx context.Context) ([]map[string]any, error) {
		return s.client.CreateScenarios(ctx, collectionID, scenarios)
	})
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	created = normalize.CoerceList(created)
	s.logInvocation(ctx, op, outcomeFor(len(created)), len(created), nil)
	return resultJSON(created)
}
