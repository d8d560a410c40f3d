// Package logger builds the zap logger shared by the server and the CLI.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production logger at level writing to stdout and, when
// logPath is set, to that file as well.
func New(level, logPath string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stdout"}
	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return nil, err
		}
		cfg.OutputPaths = append(cfg.OutputPaths, logPath)
	}
	return cfg.Build()
}

// NewCLI returns a development logger on stderr; debug output only when verbose.
func NewCLI(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}
