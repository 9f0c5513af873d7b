// Package logging builds the session logger. The terminal is owned by the
// TUI, so everything goes to a file.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// New returns a file-backed logger, or a no-op logger when path is empty.
func New(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
