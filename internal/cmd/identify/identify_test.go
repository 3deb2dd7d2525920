package identify

import (
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("identify", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("port = %d, want 8080", cfg.Port)
	}
	if cfg.DBPath != "identify.db" {
		t.Fatalf("db_path = %q, want identify.db", cfg.DBPath)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("shutdown_timeout = %s, want 10s", cfg.ShutdownTimeout)
	}
}

func TestParseConfigFlagsOverrideEnvDefaults(t *testing.T) {
	fs := flag.NewFlagSet("identify", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-port", "9191", "-db-path", "/tmp/test.db"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9191 {
		t.Fatalf("port = %d, want 9191", cfg.Port)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Fatalf("db_path = %q, want /tmp/test.db", cfg.DBPath)
	}
}
