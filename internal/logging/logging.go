// Package logging builds the hclog loggers used across contrast.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// New returns the root logger. Verbose output goes to w at debug level;
// otherwise only warnings and errors are written.
func New(verbose, quiet bool, w io.Writer) hclog.Logger {
	if quiet {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "contrast",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "contrast",
		Output: w,
		Level:  level,
		Color:  hclog.AutoColor,
	})
}
