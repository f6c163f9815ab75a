// Package engine implements the branching conversation core: a pure function
// from (user input, transcript) to the next question or a terminal summary.
package engine

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/forkpath-dev/forkpath/pkg/domain"
)

// Engine advances conversations over an immutable question graph.
// It holds no per-conversation state; the transcript passed by the caller is
// the whole conversation, so any number of requests may run concurrently.
type Engine struct {
	graph  *domain.Graph
	logger *slog.Logger
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets a structured logger for turn-level debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an engine over a validated graph.
func New(graph *domain.Graph, opts ...Option) *Engine {
	e := &Engine{
		graph:  graph,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Graph exposes the underlying graph for introspection tools.
func (e *Engine) Graph() *domain.Graph {
	return e.graph
}

// Inspect returns every question in the graph, ordered by ID.
func (e *Engine) Inspect() []domain.Question {
	return e.graph.Questions()
}

// Advance computes the next state of a conversation.
//
// The question being answered is derived from the transcript alone: the root
// question for an empty transcript, otherwise the branch target of the last
// recorded answer. Empty input on an empty transcript bootstraps the
// conversation by returning the root question with nothing recorded.
//
// On any validation failure the returned transcript semantics are "unchanged
// from the input": no record is appended.
func (e *Engine) Advance(ctx context.Context, userInput string, transcript domain.Transcript) (*domain.Result, error) {
	input := strings.TrimSpace(userInput)

	current, completed, err := e.currentQuestion(transcript)
	if err != nil {
		return nil, err
	}

	if completed {
		// The history already walked into the terminal marker. Re-answering a
		// finished conversation is a no-op: render the same summary again.
		return &domain.Result{
			Complete:   true,
			Summary:    renderSummary(e.graph, transcript),
			Transcript: transcript.Clone(),
		}, nil
	}

	if input == "" {
		if len(transcript) == 0 {
			// Bootstrap: ask the root question, nothing to record yet.
			return &domain.Result{Question: &current, Transcript: domain.Transcript{}}, nil
		}
		return nil, &domain.EmptyInputError{QuestionID: current.ID}
	}

	return e.answer(ctx, current, input, transcript)
}

// currentQuestion resolves which question the incoming input answers.
// completed is true when the transcript already terminates the conversation.
func (e *Engine) currentQuestion(transcript domain.Transcript) (domain.Question, bool, error) {
	last, ok := transcript.Last()
	if !ok {
		return e.graph.Root(), false, nil
	}

	asked, ok := e.graph.Question(last.QuestionID)
	if !ok {
		return domain.Question{}, false, &domain.UnknownQuestionError{QuestionID: last.QuestionID}
	}

	nextID, ok := asked.Resolve(domain.Normalize(last.Answer))
	if !ok {
		// The recorded answer no longer routes anywhere; the caller sent an
		// edited or foreign history.
		return domain.Question{}, false, &domain.InvalidAnswerError{
			QuestionID: asked.ID,
			Prompt:     asked.Prompt,
			Input:      last.Answer,
			Options:    asked.Options,
		}
	}

	if nextID == domain.TerminalID {
		return domain.Question{}, true, nil
	}

	current, ok := e.graph.Question(nextID)
	if !ok {
		// Unreachable for graphs built by domain.NewGraph.
		return domain.Question{}, false, &domain.UnknownQuestionError{QuestionID: nextID}
	}
	return current, false, nil
}

func (e *Engine) answer(ctx context.Context, current domain.Question, input string, transcript domain.Transcript) (*domain.Result, error) {
	canonical := input
	if !current.FreeText() {
		if opt, ok := current.MatchOption(input); ok {
			canonical = opt
		} else if current.Default == "" {
			return nil, &domain.InvalidAnswerError{
				QuestionID: current.ID,
				Prompt:     current.Prompt,
				Input:      input,
				Options:    current.Options,
			}
		}
	}

	nextID, ok := current.Resolve(domain.Normalize(canonical))
	if !ok {
		return nil, &domain.InvalidAnswerError{
			QuestionID: current.ID,
			Prompt:     current.Prompt,
			Input:      input,
			Options:    current.Options,
		}
	}

	updated := transcript.Extend(domain.AnswerRecord{QuestionID: current.ID, Answer: canonical})

	e.logger.DebugContext(ctx, "conversation turn",
		"question", current.ID, "answer", canonical, "next", nextID)

	if nextID == domain.TerminalID {
		return &domain.Result{
			Complete:   true,
			Summary:    renderSummary(e.graph, updated),
			Transcript: updated,
		}, nil
	}

	next, _ := e.graph.Question(nextID)
	return &domain.Result{Question: &next, Transcript: updated}, nil
}
