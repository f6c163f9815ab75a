package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkpath-dev/forkpath/internal/adapters/memory"
	"github.com/forkpath-dev/forkpath/pkg/domain"
)

func TestMenu_BuildsValidGraph(t *testing.T) {
	root, questions, err := memory.Menu().Load()
	require.NoError(t, err)
	assert.Equal(t, "q1_food_type", root)

	graph, err := domain.NewGraph(root, questions)
	require.NoError(t, err)
	assert.Equal(t, 7, graph.Len())

	// Every cuisine routes to a second-level question.
	q1 := graph.Root()
	for _, opt := range q1.Options {
		next, ok := q1.Resolve(domain.Normalize(opt))
		require.True(t, ok, "option %q must route somewhere", opt)
		_, ok = graph.Question(next)
		assert.True(t, ok, "option %q must land on a real question", opt)
	}
}

func TestSource_LoadReturnsCopy(t *testing.T) {
	src := memory.New("a", domain.Question{ID: "a", Prompt: "?", Default: domain.TerminalID})

	_, first, err := src.Load()
	require.NoError(t, err)
	first[0].Prompt = "mutated"

	_, second, err := src.Load()
	require.NoError(t, err)
	assert.Equal(t, "?", second[0].Prompt)
}
