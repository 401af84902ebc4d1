package cmd

import (
	"fmt"

	"github.com/zjrosen/gofcat/internal/presentation"
)

// resolveFormat returns the --format flag value, or the configured default when unset.
func resolveFormat(flagValue string) (string, error) {
	format := flagValue
	if format == "" {
		format = cfg.Output.Format
	}
	if !presentation.ValidFormat(format) {
		return "", fmt.Errorf("--format: %w: %q", presentation.ErrUnknownFormat, format)
	}
	return format, nil
}
