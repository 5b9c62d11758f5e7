// Package main is the entry point for the labelcheck CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/danielolaszy/labelcheck/cmd"
	"github.com/danielolaszy/labelcheck/internal/logging"
	"github.com/danielolaszy/labelcheck/internal/version"
)

// main is the entry point of the application.
// It executes the root command and handles any errors that occur.
func main() {
	logging.Info("starting labelcheck",
		"version", version.Version,
		"log_level", string(logging.ParseLevel(os.Getenv("LOG_LEVEL"))))

	if err := cmd.Execute(); err != nil {
		logging.Error("command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
