package schoox

import (
	"net/http"
	"time"

	"github.com/okian/schoox/pkg/logger"
	"github.com/okian/schoox/pkg/metrics"
)

// Option configures a Client.
type Option func(*Client)

// WithEnvironment selects staging or production. Production is the default.
func WithEnvironment(env Environment) Option {
	return func(c *Client) {
		c.env = env
	}
}

// WithBaseURL overrides the environment's API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.rawBaseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client. WithTimeout has no
// effect when this is set.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds each request, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger sets the logger. Requests are logged at debug level and
// failures at warn; the api key is never logged.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics records request metrics on m instead of the default manager.
func WithMetrics(m *metrics.Manager) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithTracing wraps the transport with OpenTelemetry instrumentation using
// the global tracer provider.
func WithTracing(enabled bool) Option {
	return func(c *Client) {
		c.tracing = enabled
	}
}
