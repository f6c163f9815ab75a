package main

import (
	"log/slog"

	"github.com/forkpath-dev/forkpath"
	"github.com/forkpath-dev/forkpath/internal/adapters/file"
	"github.com/forkpath-dev/forkpath/pkg/ports"
)

// buildEngine constructs the engine for a graph path, falling back to the
// built-in menu when the path is empty. Graph validation runs here, so a
// malformed tree fails before any command starts serving.
func buildEngine(graphPath string, logger *slog.Logger) (*forkpath.Engine, error) {
	opts := []forkpath.Option{}
	if logger != nil {
		opts = append(opts, forkpath.WithLogger(logger))
	}
	if graphPath != "" {
		var source ports.GraphSource = file.New(graphPath)
		opts = append(opts, forkpath.WithGraphSource(source))
	}
	return forkpath.New(opts...)
}
