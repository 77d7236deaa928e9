package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mitchellh/cli"
	"github.com/mitchellh/mapstructure"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/okian/schoox/internal/config"
	"github.com/okian/schoox/internal/telemetry"
	"github.com/okian/schoox/pkg/logger"
	"github.com/okian/schoox/pkg/metrics"
	"github.com/okian/schoox/pkg/schoox"
)

// Base carries what every command needs: the UI, a config source and the
// destination for logs.
type Base struct {
	UI         cli.Ui
	LogWriter  io.Writer
	LoadConfig func(context.Context) (*config.Config, error)
}

// call is one API interaction run by a command once the client is built.
type call func(ctx context.Context, client *schoox.Client) (*schoox.Response, error)

// execute loads configuration, builds the client, runs fn and prints the
// response body. It returns the process exit code.
func (b *Base) execute(fn call) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := b.LoadConfig(ctx)
	if err != nil {
		b.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}

	log, err := b.newLogger(cfg)
	if err != nil {
		b.UI.Error(err.Error())
		return 1
	}

	shutdown, err := telemetry.Init(ctx, cfg.Tracing, log)
	if err != nil {
		b.UI.Error(fmt.Sprintf("error initializing tracing: %v", err))
		return 1
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Warn(ctx, "tracing shutdown failed", logger.Error(err))
		}
	}()

	registry := prometheus.NewRegistry()
	mgr := metrics.NewManager(
		metrics.WithPrometheusRegistry(registry),
		metrics.WithCustomLabels(map[string]string{"academy": cfg.AcadID}),
	)

	client, err := schoox.New(
		schoox.Credentials{AcadID: cfg.AcadID, APIKey: cfg.APIKey},
		schoox.WithEnvironment(schoox.ParseEnvironment(cfg.Env)),
		schoox.WithBaseURL(cfg.BaseURL),
		schoox.WithTimeout(cfg.Timeout()),
		schoox.WithUserAgent(cfg.UserAgent),
		schoox.WithLogger(log.Named("schoox")),
		schoox.WithMetrics(mgr),
		schoox.WithTracing(cfg.Tracing),
	)
	if err != nil {
		b.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	resp, callErr := fn(ctx, client)

	if cfg.MetricsTextfile != "" {
		if err := mgr.WriteTextfile(cfg.MetricsTextfile); err != nil {
			log.Warn(ctx, "metrics textfile not written", logger.String("path", cfg.MetricsTextfile), logger.Error(err))
		}
	}

	if callErr != nil {
		b.reportError(callErr)
		return 1
	}

	out, err := render(resp.Body, cfg.Output)
	if err != nil {
		b.UI.Error(err.Error())
		return 1
	}
	b.UI.Output(out)
	return 0
}

func (b *Base) newLogger(cfg *config.Config) (logger.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	lv := new(slog.LevelVar)
	lv.Set(level)

	format := logger.FormatText
	if cfg.LogFormat == "json" {
		format = logger.FormatJSON
	}
	return logger.New(b.LogWriter, logger.WithFormat(format), logger.WithLevel(lv), logger.WithCaller(false)), nil
}

func (b *Base) reportError(err error) {
	var apiErr *schoox.APIError
	if errors.As(err, &apiErr) {
		b.UI.Error(fmt.Sprintf("%s %s failed with status %d (request %s)",
			apiErr.Method, apiErr.Endpoint, apiErr.StatusCode, apiErr.RequestID))
		if len(apiErr.Body) > 0 {
			b.UI.Error(string(apiErr.Body))
		}
		return
	}
	b.UI.Error(fmt.Sprintf("error: %v", err))
}

// render formats a JSON body for the terminal.
func render(body json.RawMessage, format string) (string, error) {
	if format == "yaml" {
		var v any
		if err := json.Unmarshal(body, &v); err != nil {
			return "", fmt.Errorf("response is not JSON: %w", err)
		}
		out, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		return strings.TrimRight(string(out), "\n"), nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body), nil
	}
	return buf.String(), nil
}

// paramsFlag collects repeated -param key=value flags.
type paramsFlag url.Values

func (p paramsFlag) String() string {
	return url.Values(p).Encode()
}

func (p paramsFlag) Set(v string) error {
	key, val, ok := strings.Cut(v, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	p[key] = append(p[key], val)
	return nil
}

// decodeOptions fills an endpoint options struct from -param flags. Keys are
// the API's parameter names; unknown keys are rejected.
func decodeOptions(params url.Values, target any) error {
	in := make(map[string]any, len(params))
	for k, vs := range params {
		k = strings.TrimSuffix(k, "[]")
		if len(vs) == 1 {
			in[k] = vs[0]
			continue
		}
		in[k] = vs
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}
