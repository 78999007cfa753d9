package restc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer token attached to every request. An empty
// token leaves the request unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed-token TokenSource.
type StaticToken string

// Token returns the static token value.
func (t StaticToken) Token() string { return string(t) }

// Recorder observes completed requests. Satisfied by observability.Metrics.
type Recorder interface {
	ObserveRequest(method, path string, status int, elapsed time.Duration)
}

// Client wraps interactions with the SupplyLine REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
	recorder   Recorder
}

// NewClient constructs a new client rooted at baseURL (e.g. "http://host/api").
func NewClient(baseURL string, tokens TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
		logger:     logger,
	}
}

// SetTimeout overrides the default request timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// SetRecorder attaches a request metrics recorder.
func (c *Client) SetRecorder(r Recorder) {
	c.recorder = r
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Payload holds a binary download such as a PDF or Excel export.
type Payload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Download fetches a binary resource and returns the raw bytes together with
// the response content type and any server-suggested filename.
func (c *Client) Download(ctx context.Context, path string, query url.Values) (Payload, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return Payload{}, err
	}
	resp, elapsed, err := c.send(req)
	if err != nil {
		return Payload{}, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	c.observe(http.MethodGet, path, resp.StatusCode, elapsed)
	if resp.StatusCode >= 400 {
		return Payload{}, decodeError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, fmt.Errorf("restc: read download: %w", err)
	}
	return Payload{
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
		Filename:    dispositionFilename(resp.Header.Get("Content-Disposition")),
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	resp, elapsed, err := c.send(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	c.observe(method, path, resp.StatusCode, elapsed)
	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("restc: decode response: %w", err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("restc: encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if method != http.MethodGet {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
	return req, nil
}

func (c *Client) send(req *http.Request) (*http.Response, time.Duration, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("request failed", slog.String("method", req.Method), slog.String("url", req.URL.Path), slog.Any("error", err))
		}
		return nil, elapsed, fmt.Errorf("restc: %s %s: %w", req.Method, req.URL.Path, err)
	}
	return resp, elapsed, nil
}

func (c *Client) observe(method, path string, status int, elapsed time.Duration) {
	if c.recorder != nil {
		c.recorder.ObserveRequest(method, path, status, elapsed)
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func decodeError(resp *http.Response) error {
	var body errorBody
	_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body)
	message := body.Error
	if message == "" {
		message = body.Message
	}
	return &APIError{Status: resp.StatusCode, Message: message}
}

func dispositionFilename(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
