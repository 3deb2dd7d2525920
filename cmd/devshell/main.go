// Package main resolves the pinned development environment descriptor.
package main

import (
	"context"
	"flag"
	"os"

	devshellcmd "github.com/identitylab/identify/internal/cmd/devshell"
	"github.com/identitylab/identify/internal/platform/config"
)

func main() {
	cfg, err := devshellcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	if err := devshellcmd.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("devshell: %v", err)
	}
}
