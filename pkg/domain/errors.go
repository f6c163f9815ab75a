package domain

import (
	"fmt"
	"strings"
)

// MalformedTreeError reports a configuration error detected at graph
// construction: a reference that does not resolve to a known question or the
// terminal marker. It is fatal; a process must refuse to start on it.
type MalformedTreeError struct {
	From   string // question holding the bad reference, if any
	Target string // the unresolvable identifier
	Reason string
}

func (e *MalformedTreeError) Error() string {
	var b strings.Builder
	b.WriteString("malformed tree: ")
	b.WriteString(e.Reason)
	if e.From != "" {
		fmt.Fprintf(&b, " (question %q)", e.From)
	}
	if e.Target != "" {
		fmt.Fprintf(&b, " (ref %q)", e.Target)
	}
	return b.String()
}

// UnknownQuestionError reports a transcript whose last question ID does not
// exist in the graph. The conversation cannot continue from that point.
type UnknownQuestionError struct {
	QuestionID string
}

func (e *UnknownQuestionError) Error() string {
	return fmt.Sprintf("unknown question %q in conversation history", e.QuestionID)
}

// InvalidAnswerError reports input that matches neither a declared option nor
// a default branch of the current question. Recoverable: the caller retries
// the same turn with one of Options.
type InvalidAnswerError struct {
	QuestionID string
	Prompt     string
	Input      string
	Options    []string
}

func (e *InvalidAnswerError) Error() string {
	if len(e.Options) == 0 {
		return fmt.Sprintf("invalid answer %q for question %q", e.Input, e.QuestionID)
	}
	return fmt.Sprintf("invalid answer %q for %q: choose from %s",
		e.Input, e.Prompt, strings.Join(e.Options, ", "))
}

// EmptyInputError reports missing input where a non-empty answer is required.
type EmptyInputError struct {
	QuestionID string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("an answer is required for question %q", e.QuestionID)
}
