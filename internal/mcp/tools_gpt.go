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

// In this file: GPT content generation tools.  All of them are write-gated
// because they consume platform GPT credits.

import (
	"context"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/xplainable-io/xmcp/internal/normalize"
	"github.com/xplainable-io/xmcp/internal/platform"
)

// GPT generation defaults.
const (
	defReportMaxFeatures = 15
	defReportTemperature = 0.7
	defExplainLanguage   = "en"
	defExplainDetail     = "medium"
	defDocFormat         = "markdown"
)

// gptIDs extracts the model and version identifiers shared by all GPT tools.
func gptIDs(req mcplib.CallToolRequest) (modelID, versionID string, err error) {
	modelID, ok := stringArg(req, "model_id")
	if !ok || modelID == "" {
		return "", "", errors.New("model_id is required")
	}
	versionID, ok = stringArg(req, "version_id")
	if !ok || versionID == "" {
		return "", "", errors.New("version_id is required")
	}
	return modelID, versionID, nil
}

func (s *Server) toolGPTGenerateReport() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("gpt_generate_report",
			mcplib.WithDescription("Generates a GPT analysis report for a model version. Consumes platform GPT credits. Requires write access."),
			mcplib.WithString("model_id", mcplib.Description("Model identifier."), mcplib.Required()),
			mcplib.WithString("version_id", mcplib.Description("Model version identifier."), mcplib.Required()),
			mcplib.WithString("target_description", mcplib.Description("Description of the target variable.")),
			mcplib.WithString("project_objective", mcplib.Description("Objective of the modelling project.")),
			mcplib.WithNumber("max_features", mcplib.Description("Maximum number of features to analyse (default 15).")),
			mcplib.WithNumber("temperature", mcplib.Description("Generation temperature between 0 and 1 (default 0.7).")),
		),
		Handler: s.handleGPTGenerateReport,
	}
}

func (s *Server) handleGPTGenerateReport(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "gpt_generate_report"
	modelID, versionID, err := gptIDs(req)
	if err != nil {
		return resultErr(err), nil
	}
	targetDescription, _ := stringArg(req, "target_description")
	projectObjective, _ := stringArg(req, "project_objective")
	p := platform.ReportParams{
		TargetDescription: targetDescription,
		ProjectObjective:  projectObjective,
		MaxFeatures:       intArg(req, "max_features", defReportMaxFeatures),
		Temperature:       floatArg(req, "temperature", defReportTemperature),
	}
	if p.Temperature < 0 || p.Temperature > 1 {
		return resultErr(errors.New("temperature must be between 0 and 1")), nil
	}
	report, err := s.client.GenerateReport(ctx, modelID, versionID, p)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	return s.gptResult(ctx, op, report)
}

func (s *Server) toolGPTExplainModel() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("gpt_explain_model",
			mcplib.WithDescription("Generates a GPT natural-language explanation of a model version. Consumes platform GPT credits. Requires write access."),
			mcplib.WithString("model_id", mcplib.Description("Model identifier."), mcplib.Required()),
			mcplib.WithString("version_id", mcplib.Description("Model version identifier."), mcplib.Required()),
			mcplib.WithString("language", mcplib.Description("Output language code (default \"en\").")),
			mcplib.WithString("detail_level", mcplib.Description("Level of detail: low, medium or high (default \"medium\").")),
		),
		Handler: s.handleGPTExplainModel,
	}
}

func (s *Server) handleGPTExplainModel(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "gpt_explain_model"
	modelID, versionID, err := gptIDs(req)
	if err != nil {
		return resultErr(err), nil
	}
	p := platform.ExplainParams{
		Language:    defExplainLanguage,
		DetailLevel: defExplainDetail,
	}
	if lang, ok := stringArg(req, "language"); ok && lang != "" {
		p.Language = lang
	}
	if detail, ok := stringArg(req, "detail_level"); ok && detail != "" {
		p.DetailLevel = detail
	}
	report, err := s.client.ExplainModel(ctx, modelID, versionID, p)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	return s.gptResult(ctx, op, report)
}

func (s *Server) toolGPTGenerateDocumentation() mcpsrv.ServerTool {
	return mcpsrv.ServerTool{
		Tool: mcplib.NewTool("gpt_generate_documentation",
			mcplib.WithDescription("Generates GPT documentation for a model version. Consumes platform GPT credits. Requires write access."),
			mcplib.WithString("model_id", mcplib.Description("Model identifier."), mcplib.Required()),
			mcplib.WithString("version_id", mcplib.Description("Model version identifier."), mcplib.Required()),
			mcplib.WithBoolean("include_technical", mcplib.Description("Include the technical section (default true).")),
			mcplib.WithBoolean("include_business", mcplib.Description("Include the business section (default true).")),
			mcplib.WithString("format", mcplib.Description("Output format: markdown or html (default \"markdown\").")),
		),
		Handler: s.handleGPTGenerateDocumentation,
	}
}

func (s *Server) handleGPTGenerateDocumentation(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	const op = "gpt_generate_documentation"
	modelID, versionID, err := gptIDs(req)
	if err != nil {
		return resultErr(err), nil
	}
	p := platform.DocumentationParams{
		IncludeTechnical: boolArg(req, "include_technical", true),
		IncludeBusiness:  boolArg(req, "include_business", true),
		Format:           defDocFormat,
	}
	if format, ok := stringArg(req, "format"); ok && format != "" {
		p.Format = format
	}
	report, err := s.client.GenerateDocumentation(ctx, modelID, versionID, p)
	if err != nil {
		s.logInvocation(ctx, op, outcomeError, 0, err)
		return resultErr(fmt.Errorf("%s: %w", op, err)), nil
	}
	return s.gptResult(ctx, op, report)
}

// gptResult finishes a GPT tool invocation.  A generation that came back
// empty is a failure: the platform charges credits for it, so the agent
// must know it got nothing.
func (s *Server) gptResult(ctx context.Context, op string, report *platform.GPTReport) (*mcplib.CallToolResult, error) {
	row, ok := normalize.Mapping(report)
	if !ok {
		s.logInvocation(ctx, op, outcomeEmpty, 0, nil)
		return resultErr(fmt.Errorf("%s: backend returned no content", op)), nil
	}
	s.logInvocation(ctx, op, outcomeSuccess, 1, nil)
	return resultJSON(row)
}
