package schoox_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/okian/schoox/pkg/metrics"
	"github.com/okian/schoox/pkg/schoox"
)

const (
	testAcadID = "1234"
	testAPIKey = "s3cret-key"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// fakeAPI records every request and answers with a fixed status and body.
type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	status, payload := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, payload)
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeAPI) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return recordedRequest{}
	}
	return f.requests[len(f.requests)-1]
}

// newFakeAPI starts a server mounted under /v1. The returned registry backs
// the client's metrics.
func newFakeAPI(t *testing.T, status int, body string, opts ...schoox.Option) (*schoox.Client, *fakeAPI, *prometheus.Registry) {
	t.Helper()
	api := &fakeAPI{status: status, body: body}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	registry := prometheus.NewRegistry()
	all := append([]schoox.Option{
		schoox.WithBaseURL(srv.URL + "/v1"),
		schoox.WithMetrics(metrics.NewManager(metrics.WithPrometheusRegistry(registry))),
	}, opts...)
	client, err := schoox.New(schoox.Credentials{AcadID: testAcadID, APIKey: testAPIKey}, all...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client, api, registry
}
