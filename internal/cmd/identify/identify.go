// Package identify parses identify command flags and launches the identity runtime.
package identify

import (
	"context"
	"flag"
	"time"

	entrypoint "github.com/identitylab/identify/internal/platform/cmd"
	identityserver "github.com/identitylab/identify/internal/services/identity/server"
)

// Config holds identify command configuration.
type Config struct {
	Port            int           `env:"IDENTIFY_PORT" envDefault:"8080"`
	DBPath          string        `env:"IDENTIFY_DB_PATH" envDefault:"identify.db"`
	ShutdownTimeout time.Duration `env:"IDENTIFY_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Port, "port", cfg.Port, "The identity HTTP server port")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The SQLite database path")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "The graceful shutdown timeout")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the identity runtime.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceIdentify, func(context.Context) error {
		return identityserver.Run(ctx, identityserver.RuntimeConfig{
			Port:            cfg.Port,
			DBPath:          cfg.DBPath,
			ShutdownTimeout: cfg.ShutdownTimeout,
		})
	})
}
