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

// Package mcp implements the Model Context Protocol (MCP) server for the
// Xplainable platform.  It exposes platform client methods as MCP tools
// that AI agents can call to inspect models, versions, deployments,
// preprocessors, collections and datasets, and — when write tools are
// enabled — to perform a restricted set of mutations (deploying versions,
// managing deploy keys, collections and scenarios, GPT content generation).
//
// The tool layer owns no state beyond the injected platform client: every
// handler is a thin dispatch through the normalize package, which converts
// the platform's one known response defect (null where an empty collection
// is expected) into empty results and lets every other failure surface as
// an MCP error result.
//
// Transport: the server supports two transports selectable at runtime:
//   - stdio  – standard MCP stdio transport (default); suitable for local
//     agent integration (e.g. Claude Desktop, VS Code Copilot).
//   - http   – Streamable HTTP transport; suitable for remote agents or when
//     multiple concurrent clients are needed.
package mcp
