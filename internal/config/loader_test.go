package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/schoox/internal/config"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			_, err := config.Load(ctx)

			convey.Convey("Then credentials are reported missing", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("SCHOOX_ACAD_ID", "1234")
			_ = os.Setenv("SCHOOX_API_KEY", "key")
			_ = os.Setenv("SCHOOX_ENV", "STAGE")
			_ = os.Setenv("SCHOOX_TIMEOUT_MS", "5000")
			_ = os.Setenv("SCHOOX_TRACING", "true")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.AcadID, convey.ShouldEqual, "1234")
				convey.So(cfg.APIKey, convey.ShouldEqual, "key")
				convey.So(cfg.Env, convey.ShouldEqual, "stage")
				convey.So(cfg.TimeoutMS, convey.ShouldEqual, 5000)
				convey.So(cfg.Tracing, convey.ShouldBeTrue)
				convey.So(cfg.Output, convey.ShouldEqual, "json")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			path := createTempConfigFile(t, `
acad_id: "777"
api_key: from-file
output: yaml
log_level: debug
metrics_textfile: /tmp/schoox.prom
`)
			_ = os.Setenv("SCHOOX_CONFIG", path)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.AcadID, convey.ShouldEqual, "777")
				convey.So(cfg.APIKey, convey.ShouldEqual, "from-file")
				convey.So(cfg.Output, convey.ShouldEqual, "yaml")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.MetricsTextfile, convey.ShouldEqual, "/tmp/schoox.prom")
			})

			convey.Convey("And env vars override the file", func() {
				_ = os.Setenv("SCHOOX_API_KEY", "from-env")
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.APIKey, convey.ShouldEqual, "from-env")
				convey.So(cfg.AcadID, convey.ShouldEqual, "777")
			})
		})

		convey.Convey("When the YAML file does not exist", func() {
			_ = os.Setenv("SCHOOX_CONFIG", "/non/existent/file.yaml")
			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When a dotenv file is named", func() {
			path := filepath.Join(t.TempDir(), "schoox.env")
			err := os.WriteFile(path, []byte("SCHOOX_ACAD_ID=55\nSCHOOX_API_KEY=dotenv-key\n"), 0o600)
			convey.So(err, convey.ShouldBeNil)
			_ = os.Setenv("SCHOOX_DOTENV", path)
			_ = os.Setenv("SCHOOX_API_KEY", "already-set")

			cfg, err := config.Load(ctx)

			convey.Convey("Then its values fill the gaps in the environment", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.AcadID, convey.ShouldEqual, "55")
				convey.So(cfg.APIKey, convey.ShouldEqual, "already-set")
			})
		})

		convey.Convey("When the named dotenv file is missing", func() {
			_ = os.Setenv("SCHOOX_DOTENV", filepath.Join(t.TempDir(), "missing.env"))
			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When a value has the wrong type", func() {
			_ = os.Setenv("SCHOOX_ACAD_ID", "1234")
			_ = os.Setenv("SCHOOX_API_KEY", "key")
			_ = os.Setenv("SCHOOX_TIMEOUT_MS", "soon")
			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"SCHOOX_CONFIG", "SCHOOX_DOTENV", "SCHOOX_LOG_LEVEL", "SCHOOX_LOG_FORMAT",
		"SCHOOX_ENV", "SCHOOX_ACAD_ID", "SCHOOX_API_KEY", "SCHOOX_BASE_URL",
		"SCHOOX_TIMEOUT_MS", "SCHOOX_USER_AGENT", "SCHOOX_TRACING", "SCHOOX_OUTPUT",
		"SCHOOX_METRICS_TEXTFILE",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schoox.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
