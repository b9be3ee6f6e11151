package backend

import (
	"algofit-storefront/internal/app/config"
	"algofit-storefront/internal/app/metrics"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Client talks to the remote fitness backend.
type Client struct {
	baseURL    string
	authScheme string
	http       *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithAuthScheme sets the Authorization scheme sent with user tokens ("JWT" by default).
func WithAuthScheme(scheme string) Option {
	return func(c *Client) {
		if scheme != "" {
			c.authScheme = scheme
		}
	}
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authScheme: "JWT",
		http:       &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig builds a client for cfg.Backend.
func NewClientFromConfig(cfg *config.Config) *Client {
	return NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, WithAuthScheme(cfg.Backend.AuthScheme))
}

func (c *Client) BaseURL() string { return c.baseURL }

type request struct {
	method   string
	path     string
	query    url.Values
	body     interface{}
	token    string
	endpoint string
}

// do sends req and decodes a 2xx body into out. Non-2xx answers become *APIError.
func (c *Client) do(ctx context.Context, req request, out interface{}) (int, error) {
	start := time.Now()
	status := 0
	defer func() {
		metrics.BackendRequestDurationSeconds.
			WithLabelValues(req.endpoint, metrics.StatusClass(status)).
			Observe(time.Since(start).Seconds())
	}()

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return 0, errors.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return 0, errors.Wrapf(err, "build %s %s", req.method, req.path)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", c.authScheme+" "+req.token)
	}

	res, err := c.http.Do(httpReq)
	if err != nil {
		return 0, errors.Wrapf(err, "%s %s", req.method, req.path)
	}
	defer res.Body.Close()
	status = res.StatusCode

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return status, errors.Wrapf(err, "read %s %s", req.method, req.path)
	}

	if status < 200 || status >= 300 {
		apiErr := parseAPIError(status, raw)
		logrus.Debugf("backend %s %s answered %d: %s", req.method, req.path, status, apiErr.Detail)
		return status, apiErr
	}

	if out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return status, errors.Wrapf(err, "decode %s %s", req.method, req.path)
		}
	}
	return status, nil
}
