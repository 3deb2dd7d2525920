// Package main lints commit messages against the repository policy.
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	commitcheckcmd "github.com/identitylab/identify/internal/cmd/commitcheck"
	"github.com/identitylab/identify/internal/platform/config"
)

func main() {
	cfg, err := commitcheckcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	err = commitcheckcmd.Run(context.Background(), cfg, os.Stdin, os.Stdout)
	if err != nil {
		if errors.Is(err, commitcheckcmd.ErrPolicyViolations) {
			os.Exit(1)
		}
		config.Exitf("commitcheck: %v", err)
	}
}
