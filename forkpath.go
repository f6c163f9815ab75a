package forkpath

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/forkpath-dev/forkpath/internal/adapters/memory"
	"github.com/forkpath-dev/forkpath/internal/engine"
	"github.com/forkpath-dev/forkpath/internal/logging"
	"github.com/forkpath-dev/forkpath/pkg/domain"
	"github.com/forkpath-dev/forkpath/pkg/ports"
)

// Engine is the high-level entry point for the Forkpath library.
// It wraps the internal conversation core and provides a simplified API for
// consumers: build once from a graph source, then call Advance per turn.
type Engine struct {
	core   *engine.Engine
	source ports.GraphSource
	logger *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithGraphSource injects a custom graph source, bypassing the built-in menu.
func WithGraphSource(source ports.GraphSource) Option {
	return func(e *Engine) {
		e.source = source
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a Forkpath Engine.
// By default the built-in food-preference menu is served; WithGraphSource
// swaps in another tree. Graph validation happens here: a malformed tree
// (dangling branch target, missing root) fails construction rather than
// surfacing mid-conversation.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.source == nil {
		eng.source = memory.Menu()
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	root, questions, err := eng.source.Load()
	if err != nil {
		return nil, fmt.Errorf("loading question graph: %w", err)
	}

	graph, err := domain.NewGraph(root, questions)
	if err != nil {
		return nil, fmt.Errorf("building question graph: %w", err)
	}

	eng.core = engine.New(graph, engine.WithLogger(eng.logger))
	return eng, nil
}

// Advance computes the next state of a conversation: either the next
// question to ask, or a terminal summary. The transcript is never mutated;
// the result carries an extended copy.
func (e *Engine) Advance(ctx context.Context, userInput string, transcript domain.Transcript) (*domain.Result, error) {
	return e.core.Advance(ctx, userInput, transcript)
}

// Inspect returns the full question set for visualization or introspection
// tools, ordered by ID.
func (e *Engine) Inspect() []domain.Question {
	return e.core.Inspect()
}

// Graph returns the validated question graph.
func (e *Engine) Graph() *domain.Graph {
	return e.core.Graph()
}
