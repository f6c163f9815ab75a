package dsl

import (
	"github.com/forkpath-dev/forkpath/pkg/domain"
)

// End is the terminal branch target: routing an answer to End finishes the
// conversation.
const End = domain.TerminalID

// Builder manages graph construction.
type Builder struct {
	root  string
	order []string
	nodes map[string]*QuestionBuilder
}

// New creates a graph builder rooted at the given question ID.
func New(root string) *Builder {
	return &Builder{
		root:  root,
		nodes: make(map[string]*QuestionBuilder),
	}
}

// Question creates (or returns) the builder for a question ID.
func (b *Builder) Question(id string) *QuestionBuilder {
	if qb, ok := b.nodes[id]; ok {
		return qb
	}
	qb := &QuestionBuilder{
		question: domain.Question{ID: id},
		builder:  b,
	}
	b.nodes[id] = qb
	b.order = append(b.order, id)
	return qb
}

// Build compiles and validates the graph.
func (b *Builder) Build() (*domain.Graph, error) {
	questions := make([]domain.Question, 0, len(b.order))
	for _, id := range b.order {
		questions = append(questions, b.nodes[id].question)
	}
	return domain.NewGraph(b.root, questions)
}
