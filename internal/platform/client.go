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

// In this file: HTTP client construction and the endpoint methods.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/xplainable-io/xmcp/internal/network"
)

const (
	// DefHost is the default platform API host.
	DefHost = "https://platform.xplainable.io"
	// DefGatewayHost is the default inference gateway host.
	DefGatewayHost = "https://inference.xplainable.io"

	defTimeout = 60 * time.Second
)

// ErrNoAPIKey is returned by New when the configuration carries no API key.
var ErrNoAPIKey = errors.New("no API key provided")

// Config is the client configuration.  APIKey is mandatory, everything else
// has a usable default.
type Config struct {
	APIKey string
	Host   string // platform host, DefHost if empty
	OrgID  string // optional organisation scope
	TeamID string // optional default team scope
}

// Client is the Xplainable platform API client.  The zero value is not
// usable, construct with New.  A Client is safe for concurrent use.
type Client struct {
	cfg    Config
	cl     *http.Client
	lim    *rate.Limiter // nil when rate limiting is disabled
	lg     *slog.Logger
	limits network.Limits
}

var _ Platform = (*Client)(nil)

// Option is the signature of the client option-setting function.
type Option func(*Client)

// WithHTTPClient sets the HTTP client to use.  Useful for tests and for
// callers that need custom transport behaviour.
func WithHTTPClient(cl *http.Client) Option {
	return func(c *Client) {
		if cl != nil {
			c.cl = cl
		}
	}
}

// WithLimits sets the API limits.  The limits are validated by New: invalid
// values fail the construction rather than silently running on defaults.
func WithLimits(l network.Limits) Option {
	return func(c *Client) {
		c.limits = l
	}
}

// WithLogger sets the logger.  If not given, slog.Default() is used.
func WithLogger(lg *slog.Logger) Option {
	return func(c *Client) {
		if lg != nil {
			c.lg = lg
		}
	}
}

// WithoutRateLimit disables client-side rate limiting.  The platform will
// still throttle server-side.
func WithoutRateLimit() Option {
	return func(c *Client) {
		c.lim = nil
	}
}

// New creates a new platform client.  It performs no network calls; use
// ConnectionInfo to verify the credentials.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if cfg.Host == "" {
		cfg.Host = DefHost
	}
	cfg.Host = strings.TrimRight(cfg.Host, "/")

	c := &Client{
		cfg:    cfg,
		cl:     &http.Client{Timeout: defTimeout},
		lg:     slog.Default(),
		limits: network.DefLimits,
	}
	// limiter must be non-nil before options run, so that WithoutRateLimit
	// can knock it out.
	c.lim = network.NewLimiter(c.limits)
	for _, opt := range opts {
		opt(c)
	}
	if err := c.limits.Validate(); err != nil {
		return nil, fmt.Errorf("API limits failed validation: %w", err)
	}
	if c.lim != nil {
		c.lim = network.NewLimiter(c.limits)
	}
	return c, nil
}

// Host returns the configured platform host.
func (c *Client) Host() string { return c.cfg.Host }

// team returns the team to scope the request to: the override if given,
// otherwise the configured default.
func (c *Client) team(override string) string {
	if override != "" {
		return override
	}
	return c.cfg.TeamID
}

// do performs a single HTTP request against host (the configured platform
// host when empty) and stores the raw response body in dst, if dst is not
// nil.  404 is reported as ErrNotFound, any other non-2xx status as
// *APIError.  No retries are attempted.
func (c *Client) do(ctx context.Context, method, host, path string, q url.Values, body any, dst *json.RawMessage) error {
	if c.lim != nil {
		if err := c.lim.Wait(ctx); err != nil {
			return err
		}
	}
	if host == "" {
		host = c.cfg.Host
	}
	u := host + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode request: %w", method, path, err)
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rdr)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	req.Header.Set("x-api-key", c.cfg.APIKey)
	if c.cfg.OrgID != "" {
		req.Header.Set("x-org-id", c.cfg.OrgID)
	}
	if c.cfg.TeamID != "" {
		req.Header.Set("x-team-id", c.cfg.TeamID)
	}
	req.Header.Set("accept", "application/json")
	if body != nil {
		req.Header.Set("content-type", "application/json")
	}

	resp, err := c.cl.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: %w", method, path, apiError(resp))
	}
	if dst == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read response: %w", method, path, err)
	}
	*dst = raw
	return nil
}

// apiError builds an *APIError from a non-2xx response, picking up the
// backend message when the body is the usual {"message": ...} envelope.
func apiError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}
	var envelope struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		apiErr.Message = envelope.Message
		if apiErr.Message == "" {
			apiErr.Message = envelope.Detail
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	return apiErr
}

// isNull reports whether the raw response body is a literal JSON null (or
// empty, which some endpoints produce instead).
func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// reqList performs a request that expects a JSON array of T.  A literal
// null body is reported as ErrNullCollection; the caller is expected to
// treat that sentinel as "empty", not as a failure, where appropriate.
func reqList[T any](ctx context.Context, c *Client, method, path string, q url.Values, body any) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, method, "", path, q, body, &raw); err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrNullCollection)
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return out, nil
}

// reqObject performs a request that expects a single JSON object of T.  A
// literal null body yields (nil, nil): the backend reported an absent
// object, and the caller decides whether absence is an error.
func reqObject[T any](ctx context.Context, c *Client, method, path string, q url.Values, body any) (*T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, method, "", path, q, body, &raw); err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return &out, nil
}

// reqMap is reqObject for endpoints that return untyped JSON objects.
func reqMap(ctx context.Context, c *Client, method, host, path string, q url.Values, body any) (map[string]any, error) {
	var raw json.RawMessage
	if err := c.do(ctx, method, host, path, q, body, &raw); err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return out, nil
}

// ─── diagnostics ──────────────────────────────────────────────────────────────

func (c *Client) ConnectionInfo(ctx context.Context) (*ConnectionInfo, error) {
	return reqObject[ConnectionInfo](ctx, c, http.MethodGet, "/v1/whoami", nil, nil)
}

func (c *Client) VersionInfo(ctx context.Context) (*VersionInfo, error) {
	return reqObject[VersionInfo](ctx, c, http.MethodGet, "/v1/version-info", nil, nil)
}

// PingServer pings the platform API server at hostname, or the configured
// host when hostname is empty.
func (c *Client) PingServer(ctx context.Context, hostname string) (map[string]any, error) {
	return reqMap(ctx, c, http.MethodGet, pingHost(hostname, c.cfg.Host), "/v1/ping", nil, nil)
}

// PingGateway pings the inference gateway at hostname, or the default
// gateway when hostname is empty.
func (c *Client) PingGateway(ctx context.Context, hostname string) (map[string]any, error) {
	return reqMap(ctx, c, http.MethodGet, pingHost(hostname, DefGatewayHost), "/v1/ping", nil, nil)
}

func pingHost(hostname, def string) string {
	if hostname == "" {
		return def
	}
	if !strings.Contains(hostname, "://") {
		hostname = "https://" + hostname
	}
	return strings.TrimRight(hostname, "/")
}

func (c *Client) HealthCheck(ctx context.Context, opts HealthCheckOptions) (map[string]any, error) {
	q := url.Values{
		"database": []string{strconv.FormatBool(opts.Database)},
		"storage":  []string{strconv.FormatBool(opts.Storage)},
		"compute":  []string{strconv.FormatBool(opts.Compute)},
	}
	return reqMap(ctx, c, http.MethodGet, "", "/v1/health", q, nil)
}

// ─── models ───────────────────────────────────────────────────────────────────

func (c *Client) ListTeamModels(ctx context.Context, teamID string) ([]ModelSummary, error) {
	return reqList[ModelSummary](ctx, c, http.MethodGet, "/v1/teams/"+url.PathEscape(c.team(teamID))+"/models", nil, nil)
}

func (c *Client) GetModel(ctx context.Context, modelID string) (*Model, error) {
	return reqObject[Model](ctx, c, http.MethodGet, "/v1/models/"+url.PathEscape(modelID), nil, nil)
}

func (c *Client) ListModelVersions(ctx context.Context, modelID string) ([]ModelVersion, error) {
	return reqList[ModelVersion](ctx, c, http.MethodGet, "/v1/models/"+url.PathEscape(modelID)+"/versions", nil, nil)
}

func (c *Client) ListVersionPartitions(ctx context.Context, versionID string) ([]Partition, error) {
	return reqList[Partition](ctx, c, http.MethodGet, "/v1/versions/"+url.PathEscape(versionID)+"/partitions", nil, nil)
}

func (c *Client) LinkPreprocessor(ctx context.Context, versionID, preprocessorVersionID string) (map[string]any, error) {
	body := map[string]string{"preprocessor_version_id": preprocessorVersionID}
	return reqMap(ctx, c, http.MethodPut, "", "/v1/versions/"+url.PathEscape(versionID)+"/preprocessor", nil, body)
}

// ─── deployments ──────────────────────────────────────────────────────────────

func (c *Client) ListDeployments(ctx context.Context, teamID string) ([]Deployment, error) {
	return reqList[Deployment](ctx, c, http.MethodGet, "/v1/teams/"+url.PathEscape(c.team(teamID))+"/deployments", nil, nil)
}

func (c *Client) DeployVersion(ctx context.Context, versionID string) (*Deployment, error) {
	body := map[string]string{"version_id": versionID}
	return reqObject[Deployment](ctx, c, http.MethodPost, "/v1/deployments", nil, body)
}

func (c *Client) ActivateDeployment(ctx context.Context, deploymentID string) (map[string]any, error) {
	return reqMap(ctx, c, http.MethodPut, "", "/v1/deployments/"+url.PathEscape(deploymentID)+"/activate", nil, nil)
}

func (c *Client) DeactivateDeployment(ctx context.Context, deploymentID string) (map[string]any, error) {
	return reqMap(ctx, c, http.MethodPut, "", "/v1/deployments/"+url.PathEscape(deploymentID)+"/deactivate", nil, nil)
}

func (c *Client) GenerateDeployKey(ctx context.Context, deploymentID, description string, daysUntilExpiry int) (uuid.UUID, error) {
	body := map[string]any{
		"description":       description,
		"days_until_expiry": daysUntilExpiry,
	}
	type keyResponse struct {
		DeployKey string `json:"deploy_key"`
	}
	resp, err := reqObject[keyResponse](ctx, c, http.MethodPost, "/v1/deployments/"+url.PathEscape(deploymentID)+"/deploy-key", nil, body)
	if err != nil {
		return uuid.Nil, err
	}
	if resp == nil {
		return uuid.Nil, fmt.Errorf("generate deploy key for %s: empty response from backend", deploymentID)
	}
	key, err := uuid.Parse(resp.DeployKey)
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate deploy key for %s: malformed key: %w", deploymentID, err)
	}
	return key, nil
}

func (c *Client) ActiveDeployKeyCount(ctx context.Context, teamID string) (int, error) {
	type countResponse struct {
		Count int `json:"count"`
	}
	resp, err := reqObject[countResponse](ctx, c, http.MethodGet, "/v1/teams/"+url.PathEscape(c.team(teamID))+"/deploy-keys/count", nil, nil)
	if err != nil {
		return 0, err
	}
	if resp == nil {
		return 0, nil
	}
	return resp.Count, nil
}

func (c *Client) DeploymentPayload(ctx context.Context, deploymentID string) ([]map[string]any, error) {
	return reqList[map[string]any](ctx, c, http.MethodGet, "/v1/deployments/"+url.PathEscape(deploymentID)+"/payload", nil, nil)
}

// ─── preprocessing ────────────────────────────────────────────────────────────

func (c *Client) ListPreprocessors(ctx context.Context, teamID string) ([]Preprocessor, error) {
	return reqList[Preprocessor](ctx, c, http.MethodGet, "/v1/teams/"+url.PathEscape(c.team(teamID))+"/preprocessors", nil, nil)
}

func (c *Client) GetPreprocessor(ctx context.Context, preprocessorID string) (*Preprocessor, error) {
	return reqObject[Preprocessor](ctx, c, http.MethodGet, "/v1/preprocessors/"+url.PathEscape(preprocessorID), nil, nil)
}

// ─── collections ──────────────────────────────────────────────────────────────

func (c *Client) ModelCollections(ctx context.Context, modelID string) ([]Collection, error) {
	return reqList[Collection](ctx, c, http.MethodGet, "/v1/models/"+url.PathEscape(modelID)+"/collections", nil, nil)
}

func (c *Client) TeamCollections(ctx context.Context) ([]Collection, error) {
	return reqList[Collection](ctx, c, http.MethodGet, "/v1/teams/"+url.PathEscape(c.team(""))+"/collections", nil, nil)
}

func (c *Client) CreateCollection(ctx context.Context, modelID, name, description string) (*Collection, error) {
	body := map[string]string{"name": name, "description": description}
	return reqObject[Collection](ctx, c, http.MethodPost, "/v1/models/"+url.PathEscape(modelID)+"/collections", nil, body)
}

func (c *Client) DeleteCollection(ctx context.Context, modelID, collectionID string) error {
	return c.do(ctx, http.MethodDelete, "", "/v1/models/"+url.PathEscape(modelID)+"/collections/"+url.PathEscape(collectionID), nil, nil, nil)
}

func (c *Client) UpdateCollectionName(ctx context.Context, modelID, collectionID, name string) error {
	body := map[string]string{"name": name}
	return c.do(ctx, http.MethodPut, "", "/v1/models/"+url.PathEscape(modelID)+"/collections/"+url.PathEscape(collectionID)+"/name", nil, body, nil)
}

func (c *Client) UpdateCollectionDescription(ctx context.Context, modelID, collectionID, description string) error {
	body := map[string]string{"description": description}
	return c.do(ctx, http.MethodPut, "", "/v1/models/"+url.PathEscape(modelID)+"/collections/"+url.PathEscape(collectionID)+"/description", nil, body, nil)
}

func (c *Client) CollectionScenarios(ctx context.Context, collectionID string) ([]map[string]any, error) {
	return reqList[map[string]any](ctx, c, http.MethodGet, "/v1/collections/"+url.PathEscape(collectionID)+"/scenarios", nil, nil)
}

func (c *Client) CreateScenarios(ctx context.Context, collectionID string, scenarios []map[string]any) ([]map[string]any, error) {
	body := map[string]any{"scenarios": scenarios}
	return reqList[map[string]any](ctx, c, http.MethodPost, "/v1/collections/"+url.PathEscape(collectionID)+"/scenarios", nil, body)
}

// ─── datasets ─────────────────────────────────────────────────────────────────

func (c *Client) ListDatasets(ctx context.Context) ([]Dataset, error) {
	return reqList[Dataset](ctx, c, http.MethodGet, "/v1/datasets", nil, nil)
}

func (c *Client) ListTeamDatasets(ctx context.Context, teamID string) ([]Dataset, error) {
	return reqList[Dataset](ctx, c, http.MethodGet, "/v1/teams/"+url.PathEscape(c.team(teamID))+"/datasets", nil, nil)
}

func (c *Client) LoadDataset(ctx context.Context, name string) (*Dataset, error) {
	return reqObject[Dataset](ctx, c, http.MethodGet, "/v1/datasets/"+url.PathEscape(name), nil, nil)
}

// ─── gpt ──────────────────────────────────────────────────────────────────────

func (c *Client) ExplainModel(ctx context.Context, modelID, versionID string, p ExplainParams) (*GPTReport, error) {
	return reqObject[GPTReport](ctx, c, http.MethodPost, gptPath(modelID, versionID, "explain"), nil, p)
}

func (c *Client) GenerateReport(ctx context.Context, modelID, versionID string, p ReportParams) (*GPTReport, error) {
	return reqObject[GPTReport](ctx, c, http.MethodPost, gptPath(modelID, versionID, "report"), nil, p)
}

func (c *Client) GenerateDocumentation(ctx context.Context, modelID, versionID string, p DocumentationParams) (*GPTReport, error) {
	return reqObject[GPTReport](ctx, c, http.MethodPost, gptPath(modelID, versionID, "documentation"), nil, p)
}

func gptPath(modelID, versionID, op string) string {
	return "/v1/models/" + url.PathEscape(modelID) + "/versions/" + url.PathEscape(versionID) + "/gpt/" + op
}
