package engine

import (
	"strings"

	"github.com/forkpath-dev/forkpath/pkg/domain"
)

// renderSummary turns a finished transcript into its human-readable form,
// one "prompt: answer" line per record, in question-asked order.
func renderSummary(graph *domain.Graph, transcript domain.Transcript) string {
	var b strings.Builder
	for i, rec := range transcript {
		if i > 0 {
			b.WriteByte('\n')
		}
		label := rec.QuestionID
		if q, ok := graph.Question(rec.QuestionID); ok {
			label = q.Prompt
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(rec.Answer)
	}
	return b.String()
}
