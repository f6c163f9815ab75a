// Package memory provides an in-memory GraphSource, including the built-in
// food-preference menu tree served when no graph file is configured.
package memory

import "github.com/forkpath-dev/forkpath/pkg/domain"

// Source holds a question set in memory.
type Source struct {
	root      string
	questions []domain.Question
}

// New creates a Source from a root ID and questions.
func New(root string, questions ...domain.Question) *Source {
	return &Source{root: root, questions: questions}
}

// Load implements ports.GraphSource.
func (s *Source) Load() (string, []domain.Question, error) {
	// Hand out a copy so callers cannot alter the source set.
	out := make([]domain.Question, len(s.questions))
	copy(out, s.questions)
	return s.root, out, nil
}
