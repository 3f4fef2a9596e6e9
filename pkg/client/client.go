// Package client is the thin HTTP adapter every domain service talks
// through: JSON over HTTPS against the zaakafhandelcomponent REST
// backend, with cookie-based session credentials and the CSRF token
// header the backend requires on mutating calls.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds every backend call.
const DefaultTimeout = 30 * time.Second

// MaxResponseSize is the max bytes read from a response body (10MB).
const MaxResponseSize = 10 * 1024 * 1024

// CSRFHeader is the header mutating requests must carry.
const CSRFHeader = "X-CSRFToken"

// CSRFCookie is the cookie the CSRF header value is sourced from.
const CSRFCookie = "csrftoken"

// SessionCookie is the cookie carrying the authenticated session.
const SessionCookie = "sessionid"

// Client issues JSON requests against the backend API. All domain
// services share one Client so they share the session. Safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithTransport overrides the HTTP transport, mainly for tests.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// New creates a Client for the given base URL (scheme and host, no
// trailing slash required). The client keeps a cookie jar so the
// session and CSRF cookies set by the backend persist across calls.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("client base URL cannot be empty")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetSession installs the session and CSRF cookies for the backend
// host, e.g. from a config file or a browser-copied cookie value.
func (c *Client) SetSession(sessionID, csrfToken string) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}

	cookies := []*http.Cookie{}
	if sessionID != "" {
		cookies = append(cookies, &http.Cookie{Name: SessionCookie, Value: sessionID, Path: "/"})
	}
	if csrfToken != "" {
		cookies = append(cookies, &http.Cookie{Name: CSRFCookie, Value: csrfToken, Path: "/"})
	}
	c.httpClient.Jar.SetCookies(u, cookies)
	return nil
}

// csrfToken returns the current csrftoken cookie value, empty when the
// backend has not set one.
func (c *Client) csrfToken() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}
	for _, cookie := range c.httpClient.Jar.Cookies(u) {
		if cookie.Name == CSRFCookie {
			return cookie.Value
		}
	}
	return ""
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	_, err := c.do(ctx, http.MethodGet, endpoint, nil, out)
	return err
}

// GetWithHeaders issues a GET, decodes into out, and returns the
// response headers. Callers use this where a header gates behavior,
// like the X-Kownsl-Submitted resubmission flag.
func (c *Client) GetWithHeaders(ctx context.Context, endpoint string, out any) (http.Header, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into
// out. A nil out discards the response body.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	_, err := c.do(ctx, http.MethodPost, endpoint, body, out)
	return err
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body, out any) error {
	_, err := c.do(ctx, http.MethodPut, endpoint, body, out)
	return err
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, endpoint string, body, out any) error {
	_, err := c.do(ctx, http.MethodPatch, endpoint, body, out)
	return err
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, endpoint string) error {
	_, err := c.do(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}

// do performs one request. Mutating methods carry Content-Type and the
// X-CSRFToken header sourced from the csrftoken cookie.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) (http.Header, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s: %w", method, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	if method != http.MethodGet {
		req.Header.Set("Content-Type", "application/json")
		if token := c.csrfToken(); token != "" {
			req.Header.Set(CSRFHeader, token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return resp.Header, fmt.Errorf("failed to read response of %s %s: %w", method, endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.Header, parseAPIError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.Header, fmt.Errorf("failed to decode response of %s %s: %w", method, endpoint, err)
		}
	}

	return resp.Header, nil
}

// EncodeQuery builds a URI-encoded query string from key/value pairs,
// preserving pair order. An empty value is still emitted, matching the
// backend's tolerant query parsing.
func EncodeQuery(pairs ...string) string {
	if len(pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pairs[i]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pairs[i+1]))
	}
	return b.String()
}
