// Package commitcheck parses commitcheck command flags and lints commit messages.
package commitcheck

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/identitylab/identify/internal/commitpolicy"
	entrypoint "github.com/identitylab/identify/internal/platform/cmd"
)

// ErrPolicyViolations indicates the message failed error-severity rules.
var ErrPolicyViolations = errors.New("commit message violates policy")

// Config holds commitcheck command configuration.
type Config struct {
	ConfigPath  string `env:"IDENTIFY_COMMITCHECK_CONFIG"`
	MessageFile string
	Message     string
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "The policy descriptor path (embedded default when empty)")
	fs.StringVar(&cfg.MessageFile, "file", "", "The commit message file, - for stdin")
	fs.StringVar(&cfg.Message, "message", "", "The commit message to lint")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run lints one commit message and writes findings to out. A message with
// error-severity violations returns ErrPolicyViolations so the process
// exits non-zero.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCommitCheck, func(context.Context) error {
		policy, err := loadPolicy(cfg.ConfigPath)
		if err != nil {
			return err
		}
		raw, err := readMessage(cfg, in)
		if err != nil {
			return err
		}

		report := commitpolicy.Lint(policy, raw)
		fmt.Fprint(out, report.Format())
		if !report.Valid() {
			return ErrPolicyViolations
		}
		return nil
	})
}

// loadPolicy reads a policy descriptor, falling back to the embedded default.
func loadPolicy(path string) (commitpolicy.Config, error) {
	if strings.TrimSpace(path) == "" {
		return commitpolicy.DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return commitpolicy.Config{}, fmt.Errorf("read policy descriptor: %w", err)
	}
	return commitpolicy.ParseConfig(data)
}

// readMessage resolves the commit message from flag, file or stdin.
func readMessage(cfg Config, in io.Reader) (string, error) {
	if strings.TrimSpace(cfg.Message) != "" {
		return cfg.Message, nil
	}
	file := strings.TrimSpace(cfg.MessageFile)
	if file == "" || file == "-" {
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read message from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read message file: %w", err)
	}
	return string(data), nil
}
