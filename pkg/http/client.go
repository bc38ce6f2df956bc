package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	MethodGet  = http.MethodGet
	MethodPost = http.MethodPost
)

// ClientOption configures Client.
type ClientOption func(*Client)

// RequestOptions holds HTTP request parameters.
type RequestOptions struct {
	Method      string
	URL         string
	Headers     map[string]string
	QueryParams map[string][]string
	Body        interface{}
	// Timeout bounds this single request; zero falls back to the client timeout.
	Timeout time.Duration
}

// Client is a thin request helper over resty.
type Client struct {
	timeout   time.Duration
	baseURL   string
	userAgent string
	rc        *resty.Client
}

// NewClient creates a new HTTP client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		timeout:   30 * time.Second,
		userAgent: "InsiderPull/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}

	c.rc = resty.New().
		SetTimeout(c.timeout).
		SetHeader("User-Agent", c.userAgent)
	if c.baseURL != "" {
		c.rc.SetBaseURL(c.baseURL)
	}
	return c
}

// SendRequest sends an HTTP request and returns the buffered response.
func (c *Client) SendRequest(ctx context.Context, opts *RequestOptions) (*resty.Response, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req := c.rc.R().
		SetContext(ctx).
		SetHeaders(opts.Headers)
	if len(opts.QueryParams) > 0 {
		req.SetQueryParamsFromValues(url.Values(opts.QueryParams))
	}
	if opts.Body != nil {
		req.SetBody(opts.Body)
	}

	method := opts.Method
	if method == "" {
		method = MethodGet
	}
	resp, err := req.Execute(method, opts.URL)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// SendAndParse sends a request and decodes the body into dest.
// dest may be *[]byte (raw body), an io.Writer, or any JSON target.
func (c *Client) SendAndParse(ctx context.Context, opts *RequestOptions, dest interface{}) error {
	resp, err := c.SendRequest(ctx, opts)
	if err != nil {
		return err
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return &StatusError{Code: resp.StatusCode(), Body: truncate(resp.String(), 256)}
	}

	if dest == nil {
		return nil
	}

	switch v := dest.(type) {
	case *[]byte:
		*v = resp.Body()
	case io.Writer:
		if _, err := v.Write(resp.Body()); err != nil {
			return fmt.Errorf("copy body: %w", err)
		}
	default:
		if err := json.Unmarshal(resp.Body(), dest); err != nil {
			return fmt.Errorf("decode json: %w", err)
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// WithTimeout sets the default client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithBaseURL makes relative request URLs resolve against base.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) {
		c.baseURL = base
	}
}

func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}
