package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/trebuchet-org/netcfg/internal/cli"
	"github.com/trebuchet-org/netcfg/internal/cli/render"
	"github.com/trebuchet-org/netcfg/internal/config"
)

// Set by the release build
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.FormatError(err, !color.NoColor))
		os.Exit(1)
	}
}
