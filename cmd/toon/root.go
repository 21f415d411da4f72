// Package main implements the toon CLI: encode JSON to TOON and decode
// TOON back to JSON.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// exitError lets a RunE handler name the exact process exit code to use
// (0 success, 1 I/O/parse error, 2 strict-mode validation failure)
// instead of cobra's default of always exiting 1 on error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func ioError(err error) error       { return &exitError{code: 1, err: err} }
func validationError(err error) error { return &exitError{code: 2, err: err} }

var logger *slog.Logger

var rootCmd = &cobra.Command{
	Use:           "toon",
	Short:         "Convert between JSON and TOON",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		code := 1
		var ee *exitError
		if e, ok := err.(*exitError); ok {
			ee = e
			code = ee.code
		}
		logger.Error("toon command failed", "error", err.Error())
		os.Exit(code)
	}
}
