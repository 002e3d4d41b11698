// Package backend implements the generation, deploy and cleanup collaborators.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sitegen-workers/internal/common/errors"
	apphttp "sitegen-workers/internal/common/http"
	"sitegen-workers/internal/common/logger"
	"sitegen-workers/internal/models"
)

// DefaultTimeout matches the router bound for generation calls.
const DefaultTimeout = 5 * time.Minute

// Client talks to the remote generation service.
type Client struct {
	baseURL string
	http    *apphttp.Client
	log     logger.Logger
}

// NewClient builds a client for baseURL. apiKey is sent as a bearer token when set.
func NewClient(baseURL, apiKey string, timeout time.Duration, log logger.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	hc := apphttp.NewClient(timeout)
	if apiKey != "" {
		hc = hc.WithHeader("Authorization", "Bearer "+apiKey)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		log:     log,
	}
}

func (c *Client) Assemble(ctx context.Context, req models.AssemblyRequest) (*models.BackendResult, error) {
	var out models.BackendResult
	if err := c.call(ctx, http.MethodPost, "/api/assemble", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Orchestrate(ctx context.Context, req models.OrchestrationRequest) (*models.BackendResult, error) {
	var out models.BackendResult
	if err := c.call(ctx, http.MethodPost, "/api/orchestrate", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Rebuild(ctx context.Context, req models.RebuildRequest) (*models.BackendResult, error) {
	var out models.BackendResult
	if err := c.call(ctx, http.MethodPost, "/api/rebuild", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type deployRequest struct {
	ProjectName string `json:"projectName"`
}

func (c *Client) DeployProject(ctx context.Context, name string) (*models.DeployResult, error) {
	var out models.DeployResult
	if err := c.call(ctx, http.MethodPost, "/api/deploy", deployRequest{ProjectName: name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(ctx context.Context, name string, opts models.CleanupOptions) error {
	path := "/api/projects/" + url.PathEscape(name) + "?localOnly=" + strconv.FormatBool(opts.LocalOnly)
	return c.call(ctx, http.MethodDelete, path, nil, nil)
}

type errorBody struct {
	Error string `json:"error"`
}

// call sends one request. Non-2xx responses with a JSON "error" field become
// BackendError; everything else that fails is a TransportError.
func (c *Client) call(ctx context.Context, method, path string, in, out interface{}) error {
	start := time.Now()
	resp, err := c.http.DoJSON(ctx, method, c.baseURL+path, in)
	if err != nil {
		c.log.Warn("Generation backend request failed", map[string]interface{}{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		})
		return errors.NewTransportError(err.Error(), err)
	}

	c.log.Debug("Generation backend responded", map[string]interface{}{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(start).String(),
	})

	if !resp.OK() {
		var eb errorBody
		if json.Unmarshal(resp.Body, &eb) == nil && eb.Error != "" {
			return errors.NewBackendError(eb.Error, resp.StatusCode)
		}
		return errors.NewTransportError(fmt.Sprintf("%s %s: %s", method, path, resp.Status), nil)
	}

	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return errors.NewTransportError(fmt.Sprintf("decode %s response: %v", path, err), err)
	}
	return nil
}
