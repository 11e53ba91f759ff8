package env

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("env", func() {
	Describe("loadConfig()", func() {
		It("requires the node URL", func() {
			_, err := loadConfig(context.Background(), envconfig.MapLookuper(map[string]string{}))
			Expect(err).To(HaveOccurred())
		})

		It("applies defaults", func() {
			config, err := loadConfig(context.Background(), envconfig.MapLookuper(map[string]string{
				"ROLLUP_HTTP_SERVER_URL": "http://127.0.0.1:5004",
			}))
			Expect(err).To(Succeed())
			Expect(config).To(Equal(&Config{
				ServerURL:      "http://127.0.0.1:5004",
				FinishMaxTries: 5,
				LogLevel:       "info",
			}))
		})

		It("reads overrides", func() {
			config, err := loadConfig(context.Background(), envconfig.MapLookuper(map[string]string{
				"ROLLUP_HTTP_SERVER_URL":  "http://node:5004",
				"ROLLUP_FINISH_MAX_TRIES": "1",
				"ROLLUP_LOG_LEVEL":        "debug",
				"ROLLUP_DEBUG_HTTP":       "true",
			}))
			Expect(err).To(Succeed())
			Expect(config.FinishMaxTries).To(Equal(1))
			Expect(config.LogLevel).To(Equal("debug"))
			Expect(config.DebugHTTP).To(BeTrue())
		})

		It("rejects finish tries below one", func() {
			for _, tries := range []string{"0", "-1"} {
				_, err := loadConfig(context.Background(), envconfig.MapLookuper(map[string]string{
					"ROLLUP_HTTP_SERVER_URL":  "http://node:5004",
					"ROLLUP_FINISH_MAX_TRIES": tries,
				}))
				Expect(errors.Is(err, ErrInvalidFinishMaxTries)).To(BeTrue(), tries)
			}
		})
	})

	Describe("MakeLogger()", func() {
		It("uses the requested level", func() {
			log, err := MakeLogger("warn")
			Expect(err).To(Succeed())
			Expect(log.Core().Enabled(zapcore.WarnLevel)).To(BeTrue())
			Expect(log.Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
		})

		It("rejects unknown levels", func() {
			_, err := MakeLogger("loud")
			Expect(err).To(HaveOccurred())
		})
	})
})
