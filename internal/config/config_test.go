package config_test

import (
	"testing"

	"github.com/okian/fifastats/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.DataPath, convey.ShouldEqual, "AllTimeRankingByCountry.csv")
			convey.So(cfg.Charset, convey.ShouldEqual, "utf-8")
			convey.So(cfg.Language, convey.ShouldEqual, "en")
			convey.So(cfg.DefaultCountry, convey.ShouldEqual, "Spain")
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
