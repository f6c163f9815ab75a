package dsl

import "github.com/forkpath-dev/forkpath/pkg/domain"

// QuestionBuilder provides a fluent API for configuring a question.
type QuestionBuilder struct {
	question domain.Question
	builder  *Builder
}

// Prompt sets the text shown to the user.
func (q *QuestionBuilder) Prompt(text string) *QuestionBuilder {
	q.question.Prompt = text
	return q
}

// Options declares the selectable answers. Omit for free-text questions.
func (q *QuestionBuilder) Options(options ...string) *QuestionBuilder {
	q.question.Options = options
	return q
}

// Branch routes an answer to the target question ID (or End).
func (q *QuestionBuilder) Branch(answer, target string) *QuestionBuilder {
	if q.question.Branches == nil {
		q.question.Branches = make(map[string]string)
	}
	q.question.Branches[answer] = target
	return q
}

// Default sets the wildcard target used when no branch key matches.
func (q *QuestionBuilder) Default(target string) *QuestionBuilder {
	q.question.Default = target
	return q
}

// Question continues building on the parent graph.
func (q *QuestionBuilder) Question(id string) *QuestionBuilder {
	return q.builder.Question(id)
}

// Build delegates to the parent builder.
func (q *QuestionBuilder) Build() (*domain.Graph, error) {
	return q.builder.Build()
}
