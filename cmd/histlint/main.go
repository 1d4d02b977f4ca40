package main

import (
	"os"

	"github.com/chazuruo/histlint/internal/cli"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

func main() {
	rootCmd := cli.NewRootCommand(Version, Commit, Date)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
