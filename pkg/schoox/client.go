package schoox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/okian/schoox/pkg/logger"
	"github.com/okian/schoox/pkg/metrics"
)

const (
	// Version is sent in the default User-Agent.
	Version = "1.0.0"

	defaultUserAgent = "schoox-go/" + Version
	defaultTimeout   = 30 * time.Second

	// HeaderRequestID carries the per-request correlation id.
	HeaderRequestID = "X-Request-ID"

	paramAcadID = "acadId"
	paramAPIKey = "apikey"
	redacted    = "REDACTED"
)

// Environment selects the Schoox deployment a client talks to.
type Environment string

const (
	Staging    Environment = "stage"
	Production Environment = "prod"
)

// ParseEnvironment maps a configuration string onto an Environment. Anything
// other than "stage" selects production.
func ParseEnvironment(s string) Environment {
	if strings.EqualFold(strings.TrimSpace(s), string(Staging)) {
		return Staging
	}
	return Production
}

// BaseURL returns the API root for the environment.
func (e Environment) BaseURL() string {
	if e == Staging {
		return "https://staging.schoox.com/api/v1"
	}
	return "https://api.schoox.com/v1"
}

// Credentials identify the academy. Both values are sent as query
// parameters on every request.
type Credentials struct {
	AcadID string
	APIKey string
}

type service struct {
	client *Client
}

// Client talks to the Schoox REST API. It is safe for concurrent use.
type Client struct {
	creds      Credentials
	env        Environment
	rawBaseURL string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	tracing    bool
	log        logger.Logger
	metrics    *metrics.Manager

	common service

	Usage       *UsageService
	Users       *UsersService
	Units       *UnitsService
	Dashboard   *DashboardService
	Courses     *CoursesService
	Curriculums *CurriculumsService
	Exams       *ExamsService
	Badges      *BadgesService
	Groups      *GroupsService
	Content     *ContentService
}

// New builds a client for the given academy.
func New(creds Credentials, opts ...Option) (*Client, error) {
	if strings.TrimSpace(creds.AcadID) == "" || strings.TrimSpace(creds.APIKey) == "" {
		return nil, ErrInvalidCredentials
	}

	c := &Client{
		creds:     creds,
		env:       Production,
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
		log:       logger.Nop(),
		metrics:   metrics.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	raw := c.rawBaseURL
	if raw == "" {
		raw = c.env.BaseURL()
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}
	c.baseURL = strings.TrimRight(u.String(), "/")

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	if c.tracing {
		hc := *c.httpClient
		base := hc.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		hc.Transport = otelhttp.NewTransport(base,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return "schoox " + r.Method + " " + r.URL.Path
			}),
		)
		c.httpClient = &hc
	}

	c.common.client = c
	c.Usage = (*UsageService)(&c.common)
	c.Users = (*UsersService)(&c.common)
	c.Units = (*UnitsService)(&c.common)
	c.Dashboard = (*DashboardService)(&c.common)
	c.Courses = (*CoursesService)(&c.common)
	c.Curriculums = (*CurriculumsService)(&c.common)
	c.Exams = (*ExamsService)(&c.common)
	c.Badges = (*BadgesService)(&c.common)
	c.Groups = (*GroupsService)(&c.common)
	c.Content = (*ContentService)(&c.common)

	return c, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// Get issues a GET against an arbitrary API path. params may be nil, an
// options struct, url.Values or a map.
func (c *Client) Get(ctx context.Context, path string, params any) (*Response, error) {
	return c.raw(ctx, http.MethodGet, path, params, nil)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, params, body any) (*Response, error) {
	return c.raw(ctx, http.MethodPut, path, params, body)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, params, body any) (*Response, error) {
	return c.raw(ctx, http.MethodPost, path, params, body)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string, params any) (*Response, error) {
	return c.raw(ctx, http.MethodDelete, path, params, nil)
}

func (c *Client) raw(ctx context.Context, method, path string, params, body any) (*Response, error) {
	path = strings.Trim(path, "/")
	endpoint := endpointLabel(path)
	q, err := EncodeParams(params)
	if err != nil {
		c.metrics.RecordError(endpoint, method, metrics.ErrorTypeEncode)
		return nil, err
	}
	return c.do(ctx, &request{method: method, endpoint: endpoint, path: path, query: q, body: body})
}

func (c *Client) get(ctx context.Context, endpoint string, params any, ids ...string) (*Response, error) {
	return c.call(ctx, http.MethodGet, endpoint, params, nil, ids)
}

func (c *Client) put(ctx context.Context, endpoint string, params, body any, ids ...string) (*Response, error) {
	return c.call(ctx, http.MethodPut, endpoint, params, body, ids)
}

func (c *Client) post(ctx context.Context, endpoint string, body any, ids ...string) (*Response, error) {
	return c.call(ctx, http.MethodPost, endpoint, nil, body, ids)
}

func (c *Client) delete(ctx context.Context, endpoint string, ids ...string) (*Response, error) {
	return c.call(ctx, http.MethodDelete, endpoint, nil, nil, ids)
}

func (c *Client) call(ctx context.Context, method, endpoint string, params, body any, ids []string) (*Response, error) {
	path, err := resolvePath(endpoint, ids)
	if err != nil {
		c.metrics.RecordError(endpoint, method, metrics.ErrorTypeEncode)
		return nil, err
	}
	q, err := EncodeParams(params)
	if err != nil {
		c.metrics.RecordError(endpoint, method, metrics.ErrorTypeEncode)
		return nil, err
	}
	return c.do(ctx, &request{method: method, endpoint: endpoint, path: path, query: q, body: body})
}

// request is one resolved API call. endpoint is the path template and is
// what metrics and logs are labelled with.
type request struct {
	method   string
	endpoint string
	path     string
	query    url.Values
	body     any
}

func (c *Client) do(ctx context.Context, r *request) (*Response, error) {
	q := url.Values{}
	for k, vs := range r.query {
		q[k] = append([]string(nil), vs...)
	}
	q.Set(paramAcadID, c.creds.AcadID)
	q.Set(paramAPIKey, c.creds.APIKey)
	target := c.baseURL + "/" + r.path + "?" + q.Encode()

	var body io.Reader
	if r.body != nil {
		buf, err := json.Marshal(r.body)
		if err != nil {
			c.metrics.RecordError(r.endpoint, r.method, metrics.ErrorTypeEncode)
			return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		c.metrics.RecordError(r.endpoint, r.method, metrics.ErrorTypeEncode)
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	q.Set(paramAPIKey, redacted)
	safeURL := c.baseURL + "/" + r.path + "?" + q.Encode()
	c.log.Debug(ctx, "schoox request",
		logger.String("method", r.method),
		logger.String("endpoint", r.endpoint),
		logger.String("url", safeURL),
		logger.String("request_id", requestID),
	)

	done := c.metrics.TrackInFlight()
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	done()
	if err != nil {
		// *url.Error carries the full request URL, api key included.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = safeURL
		}
		c.metrics.RecordError(r.endpoint, r.method, metrics.ErrorTypeTransport)
		c.log.Warn(ctx, "schoox request failed",
			logger.String("method", r.method),
			logger.String("endpoint", r.endpoint),
			logger.String("request_id", requestID),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRequest, r.method, r.endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	c.metrics.RecordRequest(r.endpoint, r.method, resp.StatusCode, float64(elapsed.Microseconds())/1000)
	if err != nil {
		c.metrics.RecordError(r.endpoint, r.method, metrics.ErrorTypeTransport)
		return nil, fmt.Errorf("%w: %s %s: read body: %w", ErrRequest, r.method, r.endpoint, err)
	}
	c.metrics.RecordResponseSize(r.endpoint, len(data))

	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}

	if !successful(r.method, resp.StatusCode) {
		c.metrics.RecordError(r.endpoint, r.method, metrics.ErrorTypeStatus)
		c.log.Warn(ctx, "schoox unexpected status",
			logger.String("method", r.method),
			logger.String("endpoint", r.endpoint),
			logger.Int("status", resp.StatusCode),
			logger.String("request_id", requestID),
			logger.Duration("elapsed", elapsed),
		)
		return nil, &APIError{
			Method:     r.method,
			Endpoint:   r.endpoint,
			StatusCode: resp.StatusCode,
			RequestID:  requestID,
			Body:       data,
		}
	}

	c.log.Debug(ctx, "schoox response",
		logger.String("endpoint", r.endpoint),
		logger.Int("status", resp.StatusCode),
		logger.Int("bytes", len(data)),
		logger.Duration("elapsed", elapsed),
		logger.String("request_id", requestID),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		RequestID:  requestID,
		Body:       json.RawMessage(data),
	}, nil
}

// successful reports whether status completes method. Reads require exactly
// 200; writes accept any 2xx.
func successful(method string, status int) bool {
	if method == http.MethodGet {
		return status == http.StatusOK
	}
	return status >= 200 && status < 300
}

// resolvePath fills the {placeholder} segments of endpoint with ids in order.
func resolvePath(endpoint string, ids []string) (string, error) {
	segments := strings.Split(endpoint, "/")
	next := 0
	for i, seg := range segments {
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
			continue
		}
		if next >= len(ids) || strings.TrimSpace(ids[next]) == "" {
			return "", fmt.Errorf("%w: %s in %s", ErrMissingPathParam, seg, endpoint)
		}
		segments[i] = url.PathEscape(ids[next])
		next++
	}
	return strings.Join(segments, "/"), nil
}

// endpointTemplates lists every path the services call. Raw paths that
// match one are labelled with it.
var endpointTemplates = []string{
	"usage",
	"users", "users/{userId}", "users/{userId}/units", "users/{userId}/aboves", "users/{userId}/jobs",
	"units", "units/bulk", "units/{unitId}", "aboves", "jobs",
	"dashboard/users", "dashboard/users/{userId}/courses", "dashboard/users/{userId}/curriculums",
	"dashboard/users/{userId}/exams", "dashboard/courses", "dashboard/courses/{courseId}",
	"dashboard/courses/{courseId}/users/{userId}", "dashboard/curriculums",
	"dashboard/curriculums/{curriculumId}", "dashboard/curriculums/{curriculumId}/users/{userId}",
	"dashboard/exams", "dashboard/exams/{examId}",
	"courses", "courses/categories", "courses/user/{userId}", "courses/{courseId}",
	"courses/{courseId}/students", "courses/{courseId}/lectures", "courses/{courseId}/exams",
	"courses/{courseId}/coupons", "courses/{courseId}/coupons/{couponId}",
	"courses/{courseId}/invitations", "courses/{courseId}/skills",
	"courses/{courseId}/completeByAdmin", "courses/{courseId}/issueCustomCertificate",
	"curriculums", "curriculum/{curriculumId}", "curriculums/{curriculumId}/students",
	"curriculums/{curriculumId}/completeByAdmin",
	"exams", "exams/{examId}/students", "exams/{examId}/students/{userId}",
	"badges", "badges/{badgeId}/award",
	"groups", "groups/{groupId}/associate",
	"content", "content/categories", "content/venues", "content/timezones",
}

// collections are path segments followed by an id.
var collections = map[string]bool{
	"users": true, "units": true, "courses": true, "coupons": true, "curriculum": true,
	"curriculums": true, "exams": true, "students": true, "badges": true, "groups": true,
}

// endpointLabel keeps metric cardinality bounded for raw paths. A path that
// matches a known endpoint gets its template. Otherwise numeric segments and
// segments following a collection name become {id}.
func endpointLabel(path string) string {
	segments := strings.Split(path, "/")
	if tmpl, ok := matchTemplate(segments); ok {
		return tmpl
	}
	out := make([]string, len(segments))
	for i, seg := range segments {
		switch {
		case seg != "" && strings.Trim(seg, "0123456789") == "":
			out[i] = "{id}"
		case i > 0 && seg != "" && collections[segments[i-1]] && !collections[seg]:
			out[i] = "{id}"
		default:
			out[i] = seg
		}
	}
	return strings.Join(out, "/")
}

// matchTemplate returns the template with the most literal segments in
// common with the path.
func matchTemplate(segments []string) (string, bool) {
	best, bestLiterals := "", -1
	for _, tmpl := range endpointTemplates {
		parts := strings.Split(tmpl, "/")
		if len(parts) != len(segments) {
			continue
		}
		literals := 0
		matched := true
		for i, part := range parts {
			if strings.HasPrefix(part, "{") {
				if segments[i] == "" {
					matched = false
					break
				}
				continue
			}
			if part != segments[i] {
				matched = false
				break
			}
			literals++
		}
		if matched && literals > bestLiterals {
			best, bestLiterals = tmpl, literals
		}
	}
	return best, bestLiterals >= 0
}
