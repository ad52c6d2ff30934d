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

// Command xmcp is the Xplainable platform MCP server.  It connects to the
// platform with an API key and exposes the platform operations as MCP
// tools over stdio (default) or Streamable HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rusq/osenv/v2"

	"github.com/xplainable-io/xmcp/internal/mcp"
	"github.com/xplainable-io/xmcp/internal/network"
	"github.com/xplainable-io/xmcp/internal/platform"
)

const (
	envAPIKey = "XPLAINABLE_API_KEY"
	envHost   = "XPLAINABLE_HOST"
	envOrgID  = "XPLAINABLE_ORG_ID"
	envTeamID = "XPLAINABLE_TEAM_ID"
)

const defListenAddr = "127.0.0.1:8493"

var build = "dev"

// secrets defines the names of the supported secret files that we load our
// secrets from.  Inexperienced windows users might have bad experience trying
// to create .env file with the notepad as it will battle for having the
// "txt" extension.  Let it have it.
var secrets = []string{".env", ".env.txt", "secrets.txt"}

// params is the command line parameters.
type params struct {
	apiKey string
	host   string
	orgID  string
	teamID string

	writeTools bool
	rateLimit  bool
	boost      uint
	burst      uint

	transport  string
	listenAddr string

	logFile      string
	jsonLog      bool
	verbose      bool
	traceFile    string
	printVersion bool
}

func main() {
	loadSecrets(secrets)

	p, err := parseCmdLine(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if p.printVersion {
		fmt.Println(build)
		return
	}

	lg, err := initLog(p.logFile, p.jsonLog, p.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, lg, p); err != nil {
		lg.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, lg *slog.Logger, p params) error {
	stopTrace := initTrace(p.traceFile)
	defer stopTrace()

	if p.apiKey == "" {
		return fmt.Errorf("an API key is required: set the %s environment variable (or put it in one of %v)", envAPIKey, secrets)
	}

	limits := network.DefLimits
	limits.Boost = p.boost
	if p.burst > 0 {
		limits.Burst = p.burst
	}
	copts := []platform.Option{
		platform.WithLogger(lg),
		platform.WithLimits(limits),
	}
	if !p.rateLimit {
		copts = append(copts, platform.WithoutRateLimit())
	}
	client, err := platform.New(platform.Config{
		APIKey: p.apiKey,
		Host:   p.host,
		OrgID:  p.orgID,
		TeamID: p.teamID,
	}, copts...)
	if err != nil {
		return err
	}

	if p.writeTools {
		lg.Warn("write tools are enabled, agents can modify platform state")
	}
	srv := mcp.New(client,
		mcp.WithLogger(lg),
		mcp.WithWriteTools(p.writeTools),
	)

	switch mcp.Transport(p.transport) {
	case mcp.TransportStdio:
		return srv.ServeStdio(ctx)
	case mcp.TransportHTTP:
		return srv.ServeHTTP(ctx, p.listenAddr)
	default:
		return fmt.Errorf("unknown transport %q, must be %q or %q", p.transport, mcp.TransportStdio, mcp.TransportHTTP)
	}
}

// loadSecrets load secrets from the files in secrets slice.
func loadSecrets(files []string) {
	for _, f := range files {
		godotenv.Load(f)
	}
}

// parseCmdLine parses the command line arguments.
func parseCmdLine(args []string) (params, error) {
	fs := flag.NewFlagSet("xmcp", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(
			fs.Output(),
			"xmcp %s\n"+
				"MCP server for the Xplainable platform.  Exposes models, versions,\n"+
				"deployments, preprocessors, collections and datasets as MCP tools.\n\n"+
				"The API key is read from the %s environment variable or one of\n"+
				"the secret files %v.\n\n"+
				"Usage:  %s [flags]\n\n",
			build, envAPIKey, secrets, filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	var p params
	fs.StringVar(&p.host, "host", osenv.Value(envHost, platform.DefHost), "platform API `URL` (environment: "+envHost+")")
	fs.StringVar(&p.orgID, "org", osenv.Value(envOrgID, ""), "organisation `ID` to scope requests to (environment: "+envOrgID+")")
	fs.StringVar(&p.teamID, "team", osenv.Value(envTeamID, ""), "default team `ID` to scope requests to (environment: "+envTeamID+")")

	fs.BoolVar(&p.writeTools, "write-tools", osenv.Value("ENABLE_WRITE_TOOLS", false), "enable tools that modify platform state (deploy, keys, collections,\nscenarios, GPT generation).  Off by default.")
	fs.BoolVar(&p.rateLimit, "rate-limit", osenv.Value("RATE_LIMIT_ENABLED", true), "client side rate limiting.  On by default, use -rate-limit=false to\ndisable (environment: RATE_LIMIT_ENABLED)")
	fs.UintVar(&p.boost, "limiter-boost", 0, "rate limiter boost in `requests` per minute, added to the base\nper-minute value")
	fs.UintVar(&p.burst, "limiter-burst", uint(network.DefLimits.Burst), "allow up to `N` burst requests.  Default value is safe.")

	fs.StringVar(&p.transport, "transport", string(mcp.TransportStdio), "MCP `transport`: stdio or http")
	fs.StringVar(&p.listenAddr, "listen", defListenAddr, "listen `address` for the http transport")

	fs.StringVar(&p.logFile, "log", osenv.Value("LOG_FILE", ""), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&p.jsonLog, "json", osenv.Value("JSON_LOG", false), "log in JSON format")
	fs.BoolVar(&p.verbose, "v", osenv.Value("DEBUG", false), "verbose messages")
	fs.StringVar(&p.traceFile, "trace", osenv.Value("TRACE_FILE", ""), "trace `file` (optional)")
	fs.BoolVar(&p.printVersion, "V", false, "print version and exit")

	// The key is deliberately not a flag: it would show up in process
	// listings and shell history.
	p.apiKey = osenv.Secret(envAPIKey, "")

	if err := fs.Parse(args); err != nil {
		return p, err
	}
	return p, nil
}
