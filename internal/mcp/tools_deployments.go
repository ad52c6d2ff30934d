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

// In this file: deployment tools, including the write-gated ones.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/xplainable-io/xmcp/internal/normalize"
	"github.com/xplainable-io/xmcp/internal/platform"
)

// defKeyExpiryDays is the default validity of a generated deploy key.
const defKeyExpiryDays = 90

func (s *Server) toolListDeployments() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("list_deployments",
			mcplib.WithDescription("Lists all deployments of the team, active and inactive."),
			mcplib.WithString("team_id", mcplib.Description("Team identifier. Defaults to the configured team.")),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleListDeployments,
	}
}

func (s *Server) handleListDeployments(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "list_deployments"
	teamID, _ := stringArg(req, "team_id")
	deployments, _, err := normalize.CallSafely(ctx, s.logger, op, func(ctx context.Context) ([]platform.Deployment, error) {
		return s.client.ListDeployments(ctx, teamID)
	})
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	rows := normalize.MappingList(deployments)
	s.logInvocation(ctx, op, outcomeFor(len(rows)), len(rows), nil)
	return resultJSON(rows)
}

func (s *Server) toolGetActiveDeployKeysCount() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("get_active_deploy_keys_count",
			mcplib.WithDescription("Returns the number of active deploy keys of the team."),
			mcplib.WithString("team_id", mcplib.Description("Team identifier. Defaults to the configured team.")),
			mcplib.WithReadOnlyHintAnnotation(true),
		),
		Handler: s.handleGetActiveDeployKeysCount,
	}
}

func (s *Server) handleGetActiveDeployKeysCount(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "get_active_deploy_keys_count"
	teamID, _ := stringArg(req, "team_id")
	count, err := s.client.ActiveDeployKeyCount(ctx, teamID)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	s.logInvocation(ctx, op, outcomeFor(count), count, nil)
	return resultJSON(map[string]any{"count": count})
}

func (s *Server) toolDeployModelVersion() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("deploy_model_version",
			mcplib.WithDescription("Deploys a model version to the inference gateway. Requires write access."),
			mcplib.WithString("version_id", mcplib.Description("Model version identifier to deploy."), mcplib.Required()),
		),
		Handler: s.handleDeployModelVersion,
	}
}

func (s *Server) handleDeployModelVersion(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "deploy_model_version"
	versionID, ok := stringArg(req, "version_id")
	if !ok || versionID == "" {
		return resultErr(errors.New("version_id is required")), nil
	}
	dep, err := s.client.DeployVersion(ctx, versionID)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	row, ok := normalize.Mapping(dep)
	if !ok {
		// a deploy that came back empty is a failure, not an empty result.
		s.logInvocation(ctx, op, outcomeEmpty, 0, nil)
		return resultErr(fmt.Errorf("%s: backend returned no deployment for version %q", op, versionID)), nil
	}
	s.logInvocation(ctx, op, outcomeSuccess, 1, nil)
	return resultJSON(row)
}

func (s *Server) toolActivateDeployment() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("activate_deployment",
			mcplib.WithDescription("Activates a deployment so it starts serving inference requests. Requires write access."),
			mcplib.WithString("deployment_id", mcplib.Description("Deployment identifier."), mcplib.Required()),
			mcplib.WithIdempotentHintAnnotation(true),
		),
		Handler: s.handleActivateDeployment,
	}
}

func (s *Server) handleActivateDeployment(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	return s.toggleDeployment(ctx, req, "activate_deployment", s.client.ActivateDeployment)
}

func (s *Server) toolDeactivateDeployment() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("deactivate_deployment",
			mcplib.WithDescription("Deactivates a deployment so it stops serving inference requests. Requires write access."),
			mcplib.WithString("deployment_id", mcplib.Description("Deployment identifier."), mcplib.Required()),
			mcplib.WithIdempotentHintAnnotation(true),
		),
		Handler: s.handleDeactivateDeployment,
	}
}

func (s *Server) handleDeactivateDeployment(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	return s.toggleDeployment(ctx, req, "deactivate_deployment", s.client.DeactivateDeployment)
}

// toggleDeployment is the shared handler body of activate and deactivate.
// An absent response means the toggle was accepted without detail, which is
// a valid empty result.
func (s *Server) toggleDeployment(ctx context.Context, req mcplib.CallToolRequest, op string, fn func(context.Context, string) (map[string]any, error)) (*mcplib.CallToolResult, error) {
	deploymentID, ok := stringArg(req, "deployment_id")
	if !ok || deploymentID == "" {
		return resultErr(errors.New("deployment_id is required")), nil
	}
	res, err := fn(ctx, deploymentID)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	res = normalize.CoerceMap(res)
	s.logInvocation(ctx, op, outcomeFor(len(res)), len(res), nil)
	return resultJSON(res)
}

func (s *Server) toolGenerateDeployKey() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("generate_deploy_key",
			mcplib.WithDescription("Generates a new deploy key for a deployment and returns it. The key is shown once and cannot be retrieved again. Requires write access."),
			mcplib.WithString("deployment_id", mcplib.Description("Deployment identifier."), mcplib.Required()),
			mcplib.WithString("description", mcplib.Description("Free-form description of what the key is for.")),
			mcplib.WithNumber("days_until_expiry", mcplib.Description("Key validity in days (default 90).")),
		),
		Handler: s.handleGenerateDeployKey,
	}
}

func (s *Server) handleGenerateDeployKey(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "generate_deploy_key"
	deploymentID, ok := stringArg(req, "deployment_id")
	if !ok || deploymentID == "" {
		return resultErr(errors.New("deployment_id is required")), nil
	}
	description, _ := stringArg(req, "description")
	days := intArg(req, "days_until_expiry", defKeyExpiryDays)
	if days < 1 {
		return resultErr(errors.New("days_until_expiry must be at least 1")), nil
	}
	key, err := s.client.GenerateDeployKey(ctx, deploymentID, description, days)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	s.logInvocation(ctx, op, outcomeSuccess, 1, nil)
	return resultJSON(map[string]any{
		"deploy_key":        key.String(),
		"deployment_id":     deploymentID,
		"days_until_expiry": days,
	})
}

func (s *Server) toolGetDeploymentPayload() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("get_deployment_payload",
			mcplib.WithDescription("Returns example inference payload data for a deployment. Requires write access because payload generation samples training data."),
			mcplib.WithString("deployment_id", mcplib.Description("Deployment identifier."), mcplib.Required()),
		),
		Handler: s.handleGetDeploymentPayload,
	}
}

func (s *Server) handleGetDeploymentPayload(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "get_deployment_payload"
	deploymentID, ok := stringArg(req, "deployment_id")
	if !ok || deploymentID == "" {
		return resultErr(errors.New("deployment_id is required")), nil
	}
	payload, _, err := normalize.CallSafely(ctx, s.logger, op, func(ctx context.Context) ([]map[string]any, error) {
		return s.client.DeploymentPayload(ctx, deploymentID)
	})
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	payload = normalize.CoerceList(payload)
	s.logInvocation(ctx, op, outcomeFor(len(payload)), len(payload), nil)
	return resultJSON(payload)
}
