// Package appwrite is a minimal REST client for the few Appwrite surfaces
// this service touches: storage file upload, TablesDB row creation, and
// function execution status.
package appwrite

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const requestTimeout = 30 * time.Second

// Client is scoped to one project and one API key. Keys arrive per request on
// the x-appwrite-key header, so construction must stay cheap.
type Client struct {
	endpoint   string
	projectID  string
	apiKey     string
	httpClient *http.Client
}

// New returns a client for the given endpoint (e.g.
// "https://fra.cloud.appwrite.io/v1"), project, and API key.
func New(endpoint, projectID, apiKey string) *Client {
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		projectID:  projectID,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// Endpoint returns the configured API base URL.
func (c *Client) Endpoint() string { return c.endpoint }

// ProjectID returns the configured project id.
func (c *Client) ProjectID() string { return c.projectID }

// do issues a request against path, decorates it with project/key headers,
// and decodes the JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("X-Appwrite-Project", c.projectID)
	req.Header.Set("X-Appwrite-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "appwrite %s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("appwrite %s %s: status %d: %s", method, path, resp.StatusCode, apiErr.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "appwrite %s %s: decoding response", method, path)
	}
	return nil
}
