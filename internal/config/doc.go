// Package config defines the configuration structure for search-task-gang.
//
// Configuration is organized into logical sections (Search, Pool, Server, Output)
// and uses code generation via optgen to create functional option helpers.
//
// # Configuration Structure
//
//	Configuration
//	├── Search         - Words and inputs of a CLI run
//	├── Pool           - Worker pool sizing
//	├── Server         - HTTP server settings
//	├── Output         - Terminal output
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Search Configuration
//
//	┌────────────┬─────────┬──────────────────────────────────────────────┐
//	│ Field      │ Default │ Description                                  │
//	├────────────┼─────────┼──────────────────────────────────────────────┤
//	│ Words      │ []      │ Words searched in every input                │
//	│ Inputs     │ []      │ Inline input strings (one cycle)             │
//	│ InputFiles │ []      │ Files of one input per line (one cycle each) │
//	└────────────┴─────────┴──────────────────────────────────────────────┘
//
// # Pool Configuration
//
//	┌─────────────┬─────────┬────────────────────────────────────────────┐
//	│ Field       │ Default │ Description                                │
//	├─────────────┼─────────┼────────────────────────────────────────────┤
//	│ MaxWorkers  │ 0       │ Maximum live workers, 0 means unbounded    │
//	│ IdleTimeout │ 60s     │ Idle time after which a worker is reaped   │
//	└─────────────┴─────────┴────────────────────────────────────────────┘
//
// # Server Configuration
//
//	┌──────────────────┬─────────┬────────────────────────────────────────┐
//	│ Field            │ Default │ Description                            │
//	├──────────────────┼─────────┼────────────────────────────────────────┤
//	│ ServerMode       │ "dev"   │ Server mode: "prod" or "dev"           │
//	│ HTTPPort         │ 8000    │ HTTP server listen port                │
//	│ RequestsLimit    │ 0       │ API requests per second, 0 = no limit  │
//	└──────────────────┴─────────┴────────────────────────────────────────┘
//
// # Output Configuration
//
//	┌───────┬─────────┬────────────────────────────────────────┐
//	│ Field │ Default │ Description                            │
//	├───────┼─────────┼────────────────────────────────────────┤
//	│ Color │ true    │ Colorize results printed by the CLI    │
//	└───────┴─────────┴────────────────────────────────────────┘
//
// # Loading
//
// Values come, in increasing priority, from the struct defaults, the file
// given by --config, SEARCHGANG_* environment variables and flags (Load).
// Validate rejects values the flag parser accepts but the services cannot use.
//
// # Code Generation
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Search Pool Server Output
//
// # Usage Example
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithPool(*config.NewPoolWithOptionsAndDefaults(
//	        config.WithMaxWorkers(8),
//	    )),
//	    config.WithLogLevel("debug"),
//	)
//
//	log.Info("configuration loaded", zap.Any("config", cfg.DebugMap()))
package config
