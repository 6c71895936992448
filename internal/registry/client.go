// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package registry is the HTTP transport for the public identity registry.
// It builds requests, executes them with bounded retry, classifies HTTP
// outcomes into a closed error taxonomy, and decodes response bodies into
// generic JSON trees.
package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/orcid-engine/internal/httputil"
	"github.com/pdiddy/orcid-engine/internal/jsontree"
	"github.com/pdiddy/orcid-engine/pkg/types"
)

// DefaultBaseURL is the production public registry API root. Declared as a
// var so tests can substitute an httptest server.
var DefaultBaseURL = "https://pub.orcid.org/v3.0"

const defaultUserAgent = "orcid-engine/0.1"

// maxErrorBody caps how much of an error response body is read for the
// server-provided description.
const maxErrorBody = 8 << 10

// Client issues read requests against the registry. The zero value is
// usable and talks to the production registry with default settings.
// Credentials are never read from the environment; a bearer token is
// attached only when the caller passes one explicitly.
type Client struct {
	// BaseURL overrides DefaultBaseURL when non-empty, e.g. to point at
	// the sandbox registry or a test double.
	BaseURL string

	// HTTPClient defaults to http.DefaultClient when nil.
	HTTPClient *http.Client

	// UserAgent defaults to the product identifier when empty.
	UserAgent string
}

// NewClient builds a Client from cfg. Zero fields keep the package
// defaults, so NewClient of an empty config behaves like the zero Client.
func NewClient(cfg types.RegistryConfig) *Client {
	c := &Client{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
	}
	if cfg.Timeout > 0 {
		c.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	return c
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimSuffix(c.BaseURL, "/")
	}
	return strings.TrimSuffix(DefaultBaseURL, "/")
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) userAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}
	return defaultUserAgent
}

// FetchSection retrieves one section of a researcher record and decodes it
// into a generic JSON tree. The identifier must already be in canonical
// dashed form.
func (c *Client) FetchSection(ctx context.Context, identifier, endpoint, token string) (jsontree.Value, error) {
	u := c.baseURL() + "/" + identifier + "/" + endpoint
	return c.fetchJSON(ctx, u, identifier, endpoint, token)
}

// Search queries a registry search endpoint ("expanded-search" or
// "search") with the given query string, passing start/rows through as
// paging parameters.
func (c *Client) Search(ctx context.Context, endpoint, query string, start, rows int, token string) (jsontree.Value, error) {
	params := url.Values{"q": {query}}
	if start > 0 {
		params.Set("start", fmt.Sprintf("%d", start))
	}
	if rows > 0 {
		params.Set("rows", fmt.Sprintf("%d", rows))
	}
	u := c.baseURL() + "/" + endpoint + "?" + params.Encode()
	return c.fetchJSON(ctx, u, "", endpoint, token)
}

// Status probes the registry root and reports "OK" for a 2xx response.
// Any other status is returned as the raw HTTP status string. Request
// construction and retry follow the same rules as record fetches.
func (c *Client) Status(ctx context.Context) (string, error) {
	resp, err := c.do(ctx, c.baseURL(), "")
	if err != nil {
		return "", &Error{Kind: KindConnection, Endpoint: "status", Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return "OK", nil
	}
	return resp.Status, nil
}

func (c *Client) fetchJSON(ctx context.Context, u, identifier, endpoint, token string) (jsontree.Value, error) {
	resp, err := c.do(ctx, u, token)
	if err != nil {
		return jsontree.Absent, &Error{Kind: KindConnection, Identifier: identifier, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return jsontree.Absent, classifyStatus(resp, identifier, endpoint)
	}

	v, err := jsontree.Decode(resp.Body)
	if err != nil {
		return jsontree.Absent, &Error{Kind: KindMalformed, Identifier: identifier, Endpoint: endpoint, Err: err}
	}
	return v, nil
}

func (c *Client) do(ctx context.Context, u, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return httputil.DoWithRetry(ctx, c.httpClient(), req)
}

// classifyStatus maps an HTTP error status onto the closed taxonomy,
// carrying the server-provided description when one can be extracted.
func classifyStatus(resp *http.Response, identifier, endpoint string) *Error {
	e := &Error{
		Identifier:  identifier,
		Endpoint:    endpoint,
		Status:      resp.StatusCode,
		Description: errorDescription(resp.Body),
	}
	switch resp.StatusCode {
	case http.StatusNotFound:
		e.Kind = KindNotFound
	case http.StatusUnauthorized:
		e.Kind = KindAuthentication
	case http.StatusTooManyRequests:
		e.Kind = KindRateLimited
	default:
		e.Kind = KindAPI
	}
	return e
}

// errorDescription pulls a human-readable message out of a registry error
// body. The registry wraps errors in JSON with developer-message and
// user-message fields; a non-JSON body is returned as trimmed text.
func errorDescription(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	v, err := jsontree.Decode(strings.NewReader(string(data)))
	if err != nil {
		return strings.TrimSpace(string(data))
	}
	for _, key := range []string{"developer-message", "user-message", "error-description", "error"} {
		if s := v.Get(key).Str(); s != "" {
			return s
		}
	}
	return strings.TrimSpace(string(data))
}
