package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mitchellh/cli"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/schoox/internal/config"
)

type seenRequest struct {
	method string
	path   string
	query  url.Values
	body   string
}

type fakeSchoox struct {
	mu     sync.Mutex
	last   seenRequest
	hits   int
	status int
	body   string
}

func (f *fakeSchoox) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.last = seenRequest{method: r.Method, path: r.URL.Path, query: r.URL.Query(), body: string(b)}
	f.hits++
	status, body := f.status, f.body
	f.mu.Unlock()
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (f *fakeSchoox) seen() (seenRequest, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last, f.hits
}

// newTestBase wires a Base to a fake API and a MockUi.
func newTestBase(t *testing.T, status int, body string, tweak func(*config.Config)) (*Base, *cli.MockUi, *fakeSchoox, *bytes.Buffer) {
	t.Helper()
	api := &fakeSchoox{status: status, body: body}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	ui := cli.NewMockUi()
	logs := &bytes.Buffer{}
	base := &Base{
		UI:        ui,
		LogWriter: logs,
		LoadConfig: func(context.Context) (*config.Config, error) {
			cfg := config.New()
			cfg.AcadID = "1234"
			cfg.APIKey = "key"
			cfg.BaseURL = srv.URL + "/v1"
			if tweak != nil {
				tweak(cfg)
			}
			return cfg, nil
		},
	}
	return base, ui, api, logs
}

func command(base *Base, name string) cli.Command {
	factory, ok := Commands(base)[name]
	So(ok, ShouldBeTrue)
	c, err := factory()
	So(err, ShouldBeNil)
	return c
}

func TestCommandTable(t *testing.T) {
	Convey("Given the command table", t, func() {
		base := &Base{UI: cli.NewMockUi(), LogWriter: io.Discard}
		commands := Commands(base)

		Convey("Then every endpoint, group and raw method is registered", func() {
			for _, e := range endpoints() {
				So(commands, ShouldContainKey, e.name)
			}
			for name := range groups {
				So(commands, ShouldContainKey, name)
			}
			for _, name := range []string{"get", "put", "post", "delete", "version"} {
				So(commands, ShouldContainKey, name)
			}
		})

		Convey("Then every command documents itself", func() {
			for _, factory := range commands {
				c, err := factory()
				So(err, ShouldBeNil)
				So(c.Synopsis(), ShouldNotBeEmpty)
				So(c.Help(), ShouldStartWith, "Usage: schoox")
			}
		})

		Convey("Then endpoint help lists the accepted parameters", func() {
			help := command(base, "courses students").Help()
			So(help, ShouldContainSubstring, "<course-id>")
			So(help, ShouldContainSubstring, "onlyCompleted")
		})
	})
}

func TestEndpointCommand(t *testing.T) {
	Convey("Given an API answering 200", t, func() {
		base, ui, api, _ := newTestBase(t, http.StatusOK, `{"students":[{"id":1}]}`, nil)

		Convey("When courses students runs with parameters", func() {
			code := command(base, "courses students").Run([]string{"-param", "limit=5", "-param", "onlyCompleted=true", "42"})
			req, _ := api.seen()

			Convey("Then the endpoint is called with typed options", func() {
				So(code, ShouldEqual, 0)
				So(req.method, ShouldEqual, http.MethodGet)
				So(req.path, ShouldEqual, "/v1/courses/42/students")
				So(req.query.Get("limit"), ShouldEqual, "5")
				So(req.query.Get("onlyCompleted"), ShouldEqual, "true")
				So(req.query.Get("acadId"), ShouldEqual, "1234")
			})

			Convey("Then the body is printed as indented JSON", func() {
				So(ui.OutputWriter.String(), ShouldContainSubstring, "\"students\": [")
			})
		})

		Convey("When a role argument is positional", func() {
			code := command(base, "dashboard course-users").Run([]string{"-param", "letter=M", "42", "admin"})
			req, _ := api.seen()
			So(code, ShouldEqual, 0)
			So(req.path, ShouldEqual, "/v1/dashboard/courses/42")
			So(req.query.Get("role"), ShouldEqual, "admin")
			So(req.query.Get("letter"), ShouldEqual, "M")
		})

		Convey("When a repeated parameter targets a list option", func() {
			code := command(base, "courses list").Run([]string{"-param", "skills=1", "-param", "skills=2"})
			req, _ := api.seen()
			So(code, ShouldEqual, 0)
			So(req.query["skills[]"], ShouldResemble, []string{"1", "2"})
		})

		Convey("When an unknown parameter is given", func() {
			code := command(base, "exams list").Run([]string{"-param", "colour=blue"})
			_, hits := api.seen()
			So(code, ShouldEqual, 1)
			So(hits, ShouldEqual, 0)
			So(ui.ErrorWriter.String(), ShouldContainSubstring, "invalid parameters")
		})

		Convey("When a parameter is not key=value", func() {
			code := command(base, "exams list").Run([]string{"-param", "limit"})
			So(code, ShouldEqual, cli.RunResultHelp)
		})

		Convey("When arguments are missing", func() {
			code := command(base, "exams performance").Run([]string{"5"})
			_, hits := api.seen()
			So(code, ShouldEqual, cli.RunResultHelp)
			So(hits, ShouldEqual, 0)
		})
	})

	Convey("Given YAML output", t, func() {
		base, ui, _, _ := newTestBase(t, http.StatusOK, `{"name":"Safety 101","id":42}`, func(c *config.Config) {
			c.Output = "yaml"
		})

		Convey("Then the body is printed as YAML", func() {
			code := command(base, "courses get").Run([]string{"42"})
			So(code, ShouldEqual, 0)
			So(ui.OutputWriter.String(), ShouldContainSubstring, "name: Safety 101")
			So(ui.OutputWriter.String(), ShouldContainSubstring, "id: 42")
		})
	})

	Convey("Given an API answering 404", t, func() {
		base, ui, _, logs := newTestBase(t, http.StatusNotFound, `{"message":"no such course"}`, func(c *config.Config) {
			c.LogLevel = "debug"
		})

		Convey("Then the command fails with the status and body", func() {
			code := command(base, "courses get").Run([]string{"999"})
			So(code, ShouldEqual, 1)
			So(ui.ErrorWriter.String(), ShouldContainSubstring, "status 404")
			So(ui.ErrorWriter.String(), ShouldContainSubstring, "no such course")
			So(logs.String(), ShouldNotContainSubstring, "apikey=key")
		})
	})

	Convey("Given a metrics textfile", t, func() {
		path := filepath.Join(t.TempDir(), "schoox.prom")
		base, _, _, _ := newTestBase(t, http.StatusOK, `{}`, func(c *config.Config) {
			c.MetricsTextfile = path
		})

		Convey("Then request metrics are written after the command", func() {
			So(command(base, "usage").Run(nil), ShouldEqual, 0)
			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `schoox_client_requests_total{academy="1234",endpoint="usage",method="GET",status_code="200"} 1`)
		})
	})

	Convey("Given configuration that fails to load", t, func() {
		ui := cli.NewMockUi()
		base := &Base{
			UI:        ui,
			LogWriter: io.Discard,
			LoadConfig: func(context.Context) (*config.Config, error) {
				return nil, config.ErrInvalidConfig
			},
		}

		Convey("Then the command reports it and exits 1", func() {
			So(command(base, "usage").Run(nil), ShouldEqual, 1)
			So(ui.ErrorWriter.String(), ShouldContainSubstring, "error loading configuration")
		})
	})
}

func TestRawCommand(t *testing.T) {
	Convey("Given an API answering 200", t, func() {
		base, ui, api, _ := newTestBase(t, http.StatusOK, `{"done":true}`, nil)

		Convey("When get is run with a path and parameters", func() {
			code := command(base, "get").Run([]string{"-param", "start=10", "courses/42/students"})
			req, _ := api.seen()
			So(code, ShouldEqual, 0)
			So(req.method, ShouldEqual, http.MethodGet)
			So(req.path, ShouldEqual, "/v1/courses/42/students")
			So(req.query.Get("start"), ShouldEqual, "10")
			So(ui.OutputWriter.String(), ShouldContainSubstring, `"done": true`)
		})

		Convey("When post is run with inline data", func() {
			code := command(base, "post").Run([]string{"-data", `{"name": "North"}`, "units/bulk"})
			req, _ := api.seen()
			So(code, ShouldEqual, 0)
			So(req.method, ShouldEqual, http.MethodPost)
			So(req.body, ShouldEqual, `{"name":"North"}`)
		})

		Convey("When put reads data from a file", func() {
			path := filepath.Join(t.TempDir(), "body.json")
			So(os.WriteFile(path, []byte(`[9, 10]`), 0o600), ShouldBeNil)
			code := command(base, "put").Run([]string{"-data", "@" + path, "groups/3/associate"})
			req, _ := api.seen()
			So(code, ShouldEqual, 0)
			So(req.method, ShouldEqual, http.MethodPut)
			So(req.body, ShouldEqual, `[9,10]`)
		})

		Convey("When the data is not JSON", func() {
			code := command(base, "post").Run([]string{"-data", "{oops", "users"})
			_, hits := api.seen()
			So(code, ShouldEqual, 1)
			So(hits, ShouldEqual, 0)
		})

		Convey("When delete is run", func() {
			code := command(base, "delete").Run([]string{"units/31"})
			req, _ := api.seen()
			So(code, ShouldEqual, 0)
			So(req.method, ShouldEqual, http.MethodDelete)
			So(req.path, ShouldEqual, "/v1/units/31")
		})

		Convey("When no path is given", func() {
			So(command(base, "get").Run(nil), ShouldEqual, cli.RunResultHelp)
		})
	})
}

func TestRender(t *testing.T) {
	Convey("Given a response body", t, func() {
		Convey("When it is not JSON", func() {
			out, err := render([]byte("plain text"), "json")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "plain text")

			_, err = render([]byte("plain text"), "yaml")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestDecodeOptions(t *testing.T) {
	Convey("Given -param values", t, func() {
		type opts struct {
			Limit   int      `mapstructure:"limit,omitempty"`
			Past    *bool    `mapstructure:"past,omitempty"`
			Skills  []string `mapstructure:"skills,omitempty"`
			Keyword string   `mapstructure:"search,omitempty"`
		}

		Convey("Then strings are converted to the option types", func() {
			var o opts
			err := decodeOptions(url.Values{"limit": {"25"}, "past": {"true"}, "skills[]": {"a", "b"}}, &o)
			So(err, ShouldBeNil)
			So(o.Limit, ShouldEqual, 25)
			So(*o.Past, ShouldBeTrue)
			So(o.Skills, ShouldResemble, []string{"a", "b"})
		})

		Convey("Then a malformed number is rejected", func() {
			var o opts
			So(decodeOptions(url.Values{"limit": {"many"}}, &o), ShouldNotBeNil)
		})
	})
}

func TestVersionCommand(t *testing.T) {
	Convey("The version command prints the client version", t, func() {
		ui := cli.NewMockUi()
		So((&VersionCommand{Base: &Base{UI: ui}}).Run(nil), ShouldEqual, 0)
		So(ui.OutputWriter.String(), ShouldStartWith, "schoox ")
	})
}
