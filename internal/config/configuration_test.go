package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/kubev2v/search-task-gang/internal/config"
	srvErrors "github.com/kubev2v/search-task-gang/pkg/errors"
)

var _ = Describe("Configuration", func() {
	Context("defaults", func() {
		It("should fill every section from the struct tags", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()

			Expect(cfg.LogLevel).To(Equal("info"))
			Expect(cfg.LogFormat).To(Equal(config.LogFormatConsole))
			Expect(cfg.Pool.MaxWorkers).To(BeZero())
			Expect(cfg.Pool.IdleTimeout).To(Equal(60 * time.Second))
			Expect(cfg.Server.ServerMode).To(Equal(config.ServerModeDev))
			Expect(cfg.Server.HTTPPort).To(Equal(8000))
			Expect(cfg.Output.Color).To(BeTrue())
			Expect(cfg.Validate()).To(Succeed())
		})

		It("should let options override the defaults", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults(
				config.WithPool(*config.NewPoolWithOptionsAndDefaults(config.WithMaxWorkers(4))),
				config.WithSearch(*config.NewSearchWithOptions(
					config.WithWords("the"),
					config.WithWords("fox"),
				)),
			)

			Expect(cfg.Pool.MaxWorkers).To(Equal(4))
			Expect(cfg.Pool.IdleTimeout).To(Equal(60 * time.Second))
			Expect(cfg.Search.Words).To(Equal([]string{"the", "fox"}))
		})

		It("should expose every field in the debug map", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()

			Expect(cfg.DebugMap()).To(HaveKey("Pool"))
			Expect(cfg.DebugMap()).To(HaveKey("LogLevel"))
		})
	})

	Context("Validate", func() {
		var cfg *config.Configuration

		BeforeEach(func() {
			cfg = config.NewConfigurationWithOptionsAndDefaults()
		})

		DescribeTable("should reject invalid values",
			func(mutate func(c *config.Configuration), msg string) {
				mutate(cfg)
				err := cfg.Validate()
				Expect(srvErrors.IsValidationError(err)).To(BeTrue())
				Expect(err).To(MatchError(ContainSubstring(msg)))
			},
			Entry("log level", func(c *config.Configuration) { c.LogLevel = "loud" }, "invalid log level"),
			Entry("log format", func(c *config.Configuration) { c.LogFormat = "xml" }, "invalid log format"),
			Entry("max workers", func(c *config.Configuration) { c.Pool.MaxWorkers = -1 }, "max workers"),
			Entry("idle timeout", func(c *config.Configuration) { c.Pool.IdleTimeout = 0 }, "idle timeout"),
			Entry("server mode", func(c *config.Configuration) { c.Server.ServerMode = "staging" }, "invalid server mode"),
			Entry("http port", func(c *config.Configuration) { c.Server.HTTPPort = 70000 }, "invalid http port"),
		)
	})

	Context("LoadFile", func() {
		It("should merge a YAML file over the defaults", func() {
			path := filepath.Join(GinkgoT().TempDir(), "search-gang.yaml")
			content := `
log-level: debug
search:
  words: [the, fox]
  input-files: [a.txt, b.txt]
pool:
  max-workers: 3
  idle-timeout: 5s
`
			Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())

			cfg := config.NewConfigurationWithOptionsAndDefaults()
			Expect(config.LoadFile(path, cfg)).To(Succeed())

			Expect(cfg.LogLevel).To(Equal("debug"))
			Expect(cfg.Search.Words).To(Equal([]string{"the", "fox"}))
			Expect(cfg.Search.InputFiles).To(Equal([]string{"a.txt", "b.txt"}))
			Expect(cfg.Pool.MaxWorkers).To(Equal(3))
			Expect(cfg.Pool.IdleTimeout).To(Equal(5 * time.Second))
			// untouched keys keep their default
			Expect(cfg.Server.HTTPPort).To(Equal(8000))
			Expect(cfg.Output.Color).To(BeTrue())
		})

		// Given a file setting the pool size and a flag setting it again
		// When both are loaded
		// Then the flag wins and the unset flags do not hide the file values
		It("should let set flags override the file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "search-gang.yaml")
			content := "pool:\n  max-workers: 3\n  idle-timeout: 5s\n"
			Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())

			cfg := config.NewConfigurationWithOptionsAndDefaults()
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags.IntVar(&cfg.Pool.MaxWorkers, "max-workers", cfg.Pool.MaxWorkers, "")
			flags.DurationVar(&cfg.Pool.IdleTimeout, "idle-timeout", cfg.Pool.IdleTimeout, "")
			flags.StringSliceVarP(&cfg.Search.Words, "word", "w", nil, "")
			Expect(flags.Parse([]string{"--max-workers", "8", "-w", "the", "-w", "fox"})).To(Succeed())

			Expect(config.Load(path, flags, cfg)).To(Succeed())
			Expect(cfg.Pool.MaxWorkers).To(Equal(8))
			Expect(cfg.Pool.IdleTimeout).To(Equal(5 * time.Second))
			Expect(cfg.Search.Words).To(Equal([]string{"the", "fox"}))
		})

		It("should fail on a missing file", func() {
			cfg := config.NewConfigurationWithOptionsAndDefaults()
			err := config.LoadFile(filepath.Join(GinkgoT().TempDir(), "missing.yaml"), cfg)
			Expect(err).To(MatchError(ContainSubstring("failed to read config file")))
		})
	})
})
