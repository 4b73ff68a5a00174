package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenFunc returns the current bearer token, or "" when logged out.
type TokenFunc func() string

// Client is the one remote-API abstraction every page handler goes through.
// It owns auth headers, rate limiting, timeouts and error mapping; callers
// get typed DTOs or a typed error, never a raw *http.Response.
type Client struct {
	base    string
	hc      *http.Client
	limiter *HostLimiter
	token   TokenFunc

	// OnUnauthorized fires once per 401 so the session layer can clear the
	// stored credentials before the gate redirects to /login.
	OnUnauthorized func()
}

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	RatePerSec float64
	RateBurst  int
	Token      TokenFunc
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}
	if opts.RatePerSec <= 0 {
		opts.RatePerSec = 8
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = 4
	}
	tok := opts.Token
	if tok == nil {
		tok = func() string { return "" }
	}
	return &Client{
		base:    strings.TrimRight(opts.BaseURL, "/"),
		hc:      &http.Client{Timeout: opts.Timeout},
		limiter: NewHostLimiter(opts.RatePerSec, opts.RateBurst),
		token:   tok,
	}
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.base + path
}

// do runs one JSON round trip. A non-nil out is decoded from the response
// body; pass nil when the caller only cares about success.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	u := c.url(path)
	if err := c.limiter.WaitURL(ctx, u); err != nil {
		return err
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t := c.token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return c.statusError(res)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// doMultipart posts fields plus optional file parts (multipart/form-data),
// used only by registration's verification-document upload.
func (c *Client) doMultipart(ctx context.Context, path string, body io.Reader, contentType string, out any) error {
	u := c.url(path)
	if err := c.limiter.WaitURL(ctx, u); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", contentType)
	if t := c.token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return c.statusError(res)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) statusError(res *http.Response) error {
	se := &StatusError{Status: res.StatusCode}

	b, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	var re remoteError
	if err := json.Unmarshal(b, &re); err == nil {
		se.Message = re.Message
		se.Fields = re.Errors
	}
	if se.Message == "" {
		se.Message = http.StatusText(res.StatusCode)
	}

	if res.StatusCode == http.StatusUnauthorized && c.OnUnauthorized != nil {
		c.OnUnauthorized()
	}
	return se
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// dataEnvelope unwraps the backend's {"data": ...} wrapper.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}
