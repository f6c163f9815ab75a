package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSet() []Question {
	return []Question{
		{
			ID:      "start",
			Prompt:  "Tea or coffee?",
			Options: []string{"Tea", "Coffee"},
			Branches: map[string]string{
				"Tea":    "tea_kind",
				"Coffee": TerminalID,
			},
		},
		{
			ID:      "tea_kind",
			Prompt:  "Green or black?",
			Options: []string{"Green", "Black"},
			Branches: map[string]string{
				"Green": TerminalID,
				"Black": TerminalID,
			},
		},
	}
}

func TestNewGraph_Valid(t *testing.T) {
	g, err := NewGraph("start", validSet())
	require.NoError(t, err)

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, "start", g.Root().ID)

	q, ok := g.Question("tea_kind")
	require.True(t, ok)
	assert.Equal(t, "Green or black?", q.Prompt)
}

func TestNewGraph_NormalizesBranchKeys(t *testing.T) {
	g, err := NewGraph("start", validSet())
	require.NoError(t, err)

	q, _ := g.Question("start")
	next, ok := q.Resolve("tea")
	require.True(t, ok)
	assert.Equal(t, "tea_kind", next)

	_, ok = q.Branches["Tea"]
	assert.False(t, ok, "raw authoring key should be replaced by its normalized form")
}

func TestNewGraph_LiftsWildcardIntoDefault(t *testing.T) {
	g, err := NewGraph("q", []Question{
		{
			ID:     "q",
			Prompt: "Anything else?",
			Branches: map[string]string{
				DefaultKey: TerminalID,
			},
		},
	})
	require.NoError(t, err)

	q, _ := g.Question("q")
	assert.Equal(t, TerminalID, q.Default)
	_, ok := q.Branches[DefaultKey]
	assert.False(t, ok)

	next, ok := q.Resolve("whatever")
	require.True(t, ok)
	assert.Equal(t, TerminalID, next)
}

func TestNewGraph_RootNotFound(t *testing.T) {
	_, err := NewGraph("missing", validSet())

	var malformed *MalformedTreeError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "missing", malformed.Target)
}

func TestNewGraph_DanglingBranchTarget(t *testing.T) {
	qs := validSet()
	qs[0].Branches["Tea"] = "nowhere"

	_, err := NewGraph("start", qs)

	var malformed *MalformedTreeError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "nowhere", malformed.Target)
	assert.Equal(t, "start", malformed.From)
}

func TestNewGraph_DanglingDefault(t *testing.T) {
	qs := validSet()
	qs[1].Default = "nowhere"

	_, err := NewGraph("start", qs)

	var malformed *MalformedTreeError
	require.ErrorAs(t, err, &malformed)
}

func TestNewGraph_DuplicateID(t *testing.T) {
	qs := append(validSet(), Question{ID: "start", Prompt: "again", Default: TerminalID})

	_, err := NewGraph("start", qs)

	var malformed *MalformedTreeError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Error(), "duplicate")
}

func TestNewGraph_TerminalIDCollision(t *testing.T) {
	qs := append(validSet(), Question{ID: TerminalID, Prompt: "oops", Default: TerminalID})

	_, err := NewGraph("start", qs)

	var malformed *MalformedTreeError
	require.ErrorAs(t, err, &malformed)
}

func TestNewGraph_OptionWithoutRoute(t *testing.T) {
	_, err := NewGraph("q", []Question{
		{
			ID:      "q",
			Prompt:  "Pick one",
			Options: []string{"A", "B"},
			Branches: map[string]string{
				"A": TerminalID,
				// B has no branch and there is no default
			},
		},
	})

	var malformed *MalformedTreeError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "B", malformed.Target)
}

func TestGraph_QuestionsOrderedByID(t *testing.T) {
	g, err := NewGraph("start", validSet())
	require.NoError(t, err)

	qs := g.Questions()
	require.Len(t, qs, 2)
	assert.Equal(t, "start", qs[0].ID)
	assert.Equal(t, "tea_kind", qs[1].ID)
}

func TestQuestion_MatchOption(t *testing.T) {
	q := Question{Options: []string{"Naan with Dal"}}

	canonical, ok := q.MatchOption("  naan WITH dal ")
	require.True(t, ok)
	assert.Equal(t, "Naan with Dal", canonical)

	_, ok = q.MatchOption("naan")
	assert.False(t, ok)
}
