package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	pkgErrors "github.com/StefanSilver/dtlpy/pkg/errors"
	"github.com/StefanSilver/dtlpy/pkg/log"
)

// Client is the low-level HTTP client for the platform gateway.
// Repositories build on top of it; they never touch net/http directly.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     oauth2.TokenSource
	limiter    *rate.Limiter
	l          log.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL     string
	TokenSource oauth2.TokenSource // nil means unauthenticated (fake platform / tests)
	RateLimit   float64            // requests per second; <= 0 disables throttling
	RateBurst   int
	HTTPClient  *http.Client
}

// NewClient creates a new platform client.
func NewClient(opt Options, l log.Logger) *Client {
	httpClient := opt.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	limit := rate.Inf
	if opt.RateLimit > 0 {
		limit = rate.Limit(opt.RateLimit)
	}
	burst := opt.RateBurst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL:    strings.TrimRight(opt.BaseURL, "/"),
		httpClient: httpClient,
		tokens:     opt.TokenSource,
		limiter:    rate.NewLimiter(limit, burst),
		l:          l,
	}
}

// do performs one rate-limited, authenticated round trip. Non-2xx
// responses are consumed and mapped to domain errors.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to obtain access token: %w", err)
		}
		token.SetAuthHeader(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call platform %s %s: %w", method, path, err)
	}
	c.l.Debugf(ctx, "platform: %s %s -> %d", method, path, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}
	return resp, nil
}

// GetJSON performs GET and decodes the response into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeBody(resp.Body, path, out)
}

// PostJSON performs POST with a JSON body and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", path, err)
	}

	resp, err := c.do(ctx, http.MethodPost, path, nil, bytes.NewBuffer(body), "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return decodeBody(resp.Body, path, out)
}

// Delete performs DELETE and discards any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	resp, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// PostMultipart uploads a single file as multipart/form-data and decodes
// the response into out. Transport failures surface as ErrTransfer.
func (c *Client) PostMultipart(ctx context.Context, path, fieldName, filename string, r io.Reader, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile(fieldName, filename)
	if err != nil {
		return fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(fw, r); err != nil {
		return fmt.Errorf("%w: reading %s: %v", pkgErrors.ErrTransfer, filename, err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Request-Id", uuid.NewString())

	if c.tokens != nil {
		token, err := c.tokens.Token()
		if err != nil {
			return fmt.Errorf("failed to obtain access token: %w", err)
		}
		token.SetAuthHeader(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", pkgErrors.ErrTransfer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	return decodeBody(resp.Body, path, out)
}

func decodeBody(r io.Reader, path string, out any) error {
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// decodeError reads an error body and maps the status to a domain error.
// The platform envelope is {"error_code": ..., "message": ...}; plain
// bodies fall back to the raw text.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var envelope struct {
		Message string `json:"message"`
	}
	message := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		message = envelope.Message
	}

	return pkgErrors.FromStatus(resp.StatusCode, message)
}
