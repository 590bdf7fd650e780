package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/fifastats/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.DataPath, convey.ShouldEqual, "AllTimeRankingByCountry.csv")
				convey.So(cfg.Charset, convey.ShouldEqual, "utf-8")
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("FIFASTATS_ADDR", ":8080")
			_ = os.Setenv("FIFASTATS_DATA_PATH", "/data/ranking.xlsx")
			_ = os.Setenv("FIFASTATS_SHEET", "Ranking")
			_ = os.Setenv("FIFASTATS_DEFAULT_COUNTRY", "Brazil")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DataPath, convey.ShouldEqual, "/data/ranking.xlsx")
				convey.So(cfg.Sheet, convey.ShouldEqual, "Ranking")
				convey.So(cfg.DefaultCountry, convey.ShouldEqual, "Brazil")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			tmpFile := createTempConfigFile(t, `
addr: ":9090"
data_path: "ranking.csv"
charset: "windows-1251"
language: "ru"
log_file: "logs/fifastats.log"
`)
			_ = os.Setenv(config.EnvConfig, tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.DataPath, convey.ShouldEqual, "ranking.csv")
				convey.So(cfg.Charset, convey.ShouldEqual, "windows-1251")
				convey.So(cfg.Language, convey.ShouldEqual, "ru")
				convey.So(cfg.LogFile, convey.ShouldEqual, "logs/fifastats.log")
				convey.So(cfg.DefaultCountry, convey.ShouldEqual, "Spain") // From defaults
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			tmpFile := createTempConfigFile(t, `
addr: ":9090"
data_path: "ranking.csv"
`)
			_ = os.Setenv(config.EnvConfig, tmpFile)
			_ = os.Setenv("FIFASTATS_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DataPath, convey.ShouldEqual, "ranking.csv")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(t, `invalid: yaml: content: [`)
			_ = os.Setenv(config.EnvConfig, tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv(config.EnvConfig, "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("FIFASTATS_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty data path in YAML", func() {
			tmpFile := createTempConfigFile(t, `data_path: ""`)
			_ = os.Setenv(config.EnvConfig, tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "data_path must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		config.EnvConfig,
		"FIFASTATS_ADDR",
		"FIFASTATS_DATA_PATH",
		"FIFASTATS_SHEET",
		"FIFASTATS_DEFAULT_COUNTRY",
		"FIFASTATS_LOG_LEVEL",
		"FIFASTATS_LOG_FILE",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	tmpFile, err := os.CreateTemp(t.TempDir(), "fifastats-config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatal(err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatal(err)
	}
	return tmpFile.Name()
}
