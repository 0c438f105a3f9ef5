package main

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
)

// errPanic marks a command run that panicked.
var errPanic = errors.New("unexpected failure")

// runFunc is the RunE signature of a cobra command.
type runFunc func(cmd *cobra.Command, args []string) error

// wrapCommands applies the run middleware to every subcommand of root.
// Order matters! The first middleware is the outermost.
func (a *app) wrapCommands(root *cobra.Command) {
	for _, c := range root.Commands() {
		if c.RunE != nil {
			c.RunE = a.recoverer(a.logged(c.RunE))
		}
	}
}

// logged logs the outcome and latency of a command run.
func (a *app) logged(next runFunc) runFunc {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		err := next(cmd, args)

		a.log.WithContext(cmd.Context()).Info("command finished",
			"args", len(args),
			"success", err == nil,
			"latency_ms", time.Since(start).Milliseconds(),
		)
		return err
	}
}

// recoverer turns a panic into an INTERNAL_ERROR response.
func (a *app) recoverer(next runFunc) runFunc {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if r := recover(); r != nil {
				a.log.WithContext(cmd.Context()).Error("panic recovered",
					"error", r,
					"stack", string(debug.Stack()),
				)
				err = a.fail(cmd.Context(), fmt.Errorf("%w: %v", errPanic, r))
			}
		}()
		return next(cmd, args)
	}
}
