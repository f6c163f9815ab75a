// Package tui renders conversation output for interactive terminal sessions.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/forkpath-dev/forkpath/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // detect light/dark background
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// QuestionMarkdown formats a question as markdown: the prompt as a heading
// and the options as a numbered list.
func QuestionMarkdown(q domain.Question) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n", q.Prompt)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "%d. %s\n", i+1, opt)
	}
	return b.String()
}

// SummaryMarkdown formats the final summary as a markdown block quote under
// a closing heading.
func SummaryMarkdown(summary string) string {
	var b strings.Builder
	b.WriteString("## Thank you for your responses!\n\nHere's a summary of your preferences:\n\n")
	for _, line := range strings.Split(summary, "\n") {
		fmt.Fprintf(&b, "> %s\n", line)
	}
	return b.String()
}
