// Package main is the entry point for the measure command line tool.
// It converts quantities between units, describes boxes and packs products
// into boxes, printing every result as a JSON response envelope on stdout.
//
// 12-Factor App compilance:
//   - I. Codebase: Single codebase tracked in version control
//   - II. Dependencies: Managed via go.mod
//   - III. Config: Configuration via environment variables
//   - XI. Logs: Structured logging to stderr
//
// Usage:
//
//	measure convert length 12 INCH CENTIMETER
//	measure box 30 20 10 --unit CENTIMETER
//	measure pack --file request.yaml
//
// Environment Variables:
//
//	MEASURE_APP_ENVIRONMENT - Deployment environment (development, production)
//	MEASURE_LOG_LEVEL       - Minimum log level (default: warn)
//	MEASURE_PACKING_ROUNDING - Integer conversion for packing (truncate, nearest, ceil)
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	// Create context that listens for shutdown signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		// Failures of a running command were already printed as a response
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
