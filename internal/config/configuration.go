package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	srvErrors "github.com/kubev2v/search-task-gang/pkg/errors"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Search Pool Server Output

const (
	ServerModeDev  = "dev"
	ServerModeProd = "prod"

	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

type Configuration struct {
	Search    Search `debugmap:"visible" mapstructure:"search"`
	Pool      Pool   `debugmap:"visible" mapstructure:"pool"`
	Server    Server `debugmap:"visible" mapstructure:"server"`
	Output    Output `debugmap:"visible" mapstructure:"output"`
	LogFormat string `debugmap:"visible" default:"console" mapstructure:"log-format"`
	LogLevel  string `debugmap:"visible" default:"info" mapstructure:"log-level"`
}

type Search struct {
	Words      []string `debugmap:"visible" mapstructure:"words"`
	Inputs     []string `debugmap:"visible" mapstructure:"inputs"`
	InputFiles []string `debugmap:"visible" mapstructure:"input-files"`
}

type Pool struct {
	MaxWorkers  int           `debugmap:"visible" default:"0" mapstructure:"max-workers"`
	IdleTimeout time.Duration `debugmap:"visible" default:"60s" mapstructure:"idle-timeout"`
}

type Server struct {
	ServerMode    string `debugmap:"visible" default:"dev" mapstructure:"server-mode"`
	HTTPPort      int    `debugmap:"visible" default:"8000" mapstructure:"http-port"`
	RequestsLimit int    `debugmap:"visible" default:"0" mapstructure:"requests-limit"`
}

type Output struct {
	Color bool `debugmap:"visible" default:"true" mapstructure:"color"`
}

// Validate checks the values that cannot be checked by the flag parser.
func (c *Configuration) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return srvErrors.NewValidationError("invalid log level %q", c.LogLevel)
	}

	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return srvErrors.NewValidationError("invalid log format %q: must be %q or %q", c.LogFormat, LogFormatConsole, LogFormatJSON)
	}

	if c.Pool.MaxWorkers < 0 {
		return srvErrors.NewValidationError("max workers must be >= 0, got %d", c.Pool.MaxWorkers)
	}
	if c.Pool.IdleTimeout <= 0 {
		return srvErrors.NewValidationError("idle timeout must be positive, got %s", c.Pool.IdleTimeout)
	}

	switch c.Server.ServerMode {
	case ServerModeDev, ServerModeProd:
	default:
		return srvErrors.NewValidationError("invalid server mode %q: must be %q or %q", c.Server.ServerMode, ServerModeDev, ServerModeProd)
	}

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return srvErrors.NewValidationError("invalid http port %d", c.Server.HTTPPort)
	}
	if c.Server.RequestsLimit < 0 {
		return srvErrors.NewValidationError("requests limit must be >= 0, got %d", c.Server.RequestsLimit)
	}

	return nil
}

// FlagKeys maps configuration keys to the CLI flags that set them.
var FlagKeys = map[string]string{
	"log-level":             "log-level",
	"log-format":            "log-format",
	"search.words":          "word",
	"search.inputs":         "input",
	"search.input-files":    "input-file",
	"pool.max-workers":      "max-workers",
	"pool.idle-timeout":     "idle-timeout",
	"server.server-mode":    "server-mode",
	"server.http-port":      "http-port",
	"server.requests-limit": "requests-limit",
}

// Load merges into cfg, in increasing priority, the file at path and the
// flags of flags that were set. An empty path skips the file and flags may be nil.
// Flags listed in FlagKeys but absent from flags are ignored.
func Load(path string, flags *pflag.FlagSet, cfg *Configuration) error {
	v := viper.New()

	if flags != nil {
		for key, name := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to decode configuration: %w", err)
	}

	return nil
}

// LoadFile reads a YAML, JSON or TOML file into cfg. Keys absent from the file
// keep their current value.
func LoadFile(path string, cfg *Configuration) error {
	return Load(path, nil, cfg)
}
