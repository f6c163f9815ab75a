package domain

import "strings"

const (
	// TerminalID is the reserved branch target meaning "conversation ends here".
	// It never identifies a real question.
	TerminalID = "end"

	// DefaultKey is the wildcard branch key accepted in authoring formats.
	// Graph construction lifts it into Question.Default.
	DefaultKey = "*"
)

// Question is a node in the decision tree.
type Question struct {
	ID      string   `json:"id" yaml:"id"`
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`

	// Branches maps a normalized answer to the next question ID or TerminalID.
	// Keys are normalized by NewGraph; authoring formats may use any casing.
	Branches map[string]string `json:"branches,omitempty" yaml:"branches,omitempty"`

	// Default is the wildcard target used when no branch key matches.
	Default string `json:"default,omitempty" yaml:"default,omitempty"`
}

// FreeText reports whether the question accepts arbitrary input
// instead of a fixed option set.
func (q Question) FreeText() bool {
	return len(q.Options) == 0
}

// Resolve returns the branch target for a normalized answer key,
// falling back to the wildcard default.
func (q Question) Resolve(key string) (string, bool) {
	if next, ok := q.Branches[key]; ok {
		return next, true
	}
	if q.Default != "" {
		return q.Default, true
	}
	return "", false
}

// MatchOption returns the canonical (declared-casing) form of input if it
// case-insensitively matches one of the question's options.
func (q Question) MatchOption(input string) (string, bool) {
	for _, opt := range q.Options {
		if strings.EqualFold(strings.TrimSpace(input), opt) {
			return opt, true
		}
	}
	return "", false
}

// Normalize produces the canonical lookup key for an answer:
// surrounding whitespace trimmed, casefolded.
func Normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}
