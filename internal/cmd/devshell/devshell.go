// Package devshell parses devshell command flags and resolves the
// development environment descriptor.
package devshell

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/identitylab/identify/internal/devshell"
	entrypoint "github.com/identitylab/identify/internal/platform/cmd"
)

// Config holds devshell command configuration.
type Config struct {
	DescriptorPath string `env:"IDENTIFY_DEVSHELL_DESCRIPTOR" envDefault:"devshell.yaml"`
	LockPath       string `env:"IDENTIFY_DEVSHELL_LOCK" envDefault:"devshell.lock.yaml"`
	System         string `env:"IDENTIFY_DEVSHELL_SYSTEM"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.System == "" {
		cfg.System = hostSystem()
	}

	fs.StringVar(&cfg.DescriptorPath, "descriptor", cfg.DescriptorPath, "The environment descriptor path")
	fs.StringVar(&cfg.LockPath, "lock", cfg.LockPath, "The input lock path")
	fs.StringVar(&cfg.System, "system", cfg.System, "The target system identifier")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// hostSystem maps the Go runtime onto the descriptor system vocabulary.
func hostSystem() string {
	arch := runtime.GOARCH
	switch arch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	}
	return fmt.Sprintf("%s-%s", arch, runtime.GOOS)
}

// Run resolves the descriptor for one system and writes the entry script
// and resolution fingerprint to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceDevShell, func(context.Context) error {
		descriptorData, err := os.ReadFile(cfg.DescriptorPath)
		if err != nil {
			return fmt.Errorf("read environment descriptor: %w", err)
		}
		descriptor, err := devshell.Parse(descriptorData)
		if err != nil {
			return err
		}

		lockData, err := os.ReadFile(cfg.LockPath)
		if err != nil {
			return fmt.Errorf("read input lock: %w", err)
		}
		lock, err := devshell.ParseLock(lockData)
		if err != nil {
			return err
		}

		shell, err := descriptor.Resolve(cfg.System, lock)
		if err != nil {
			return err
		}
		fmt.Fprint(out, shell.EntryScript())
		fmt.Fprintf(out, "# fingerprint %s\n", shell.Fingerprint())
		return nil
	})
}
