package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript_Last(t *testing.T) {
	_, ok := Transcript{}.Last()
	assert.False(t, ok)

	tr := Transcript{{QuestionID: "a", Answer: "1"}, {QuestionID: "b", Answer: "2"}}
	last, ok := tr.Last()
	require.True(t, ok)
	assert.Equal(t, "b", last.QuestionID)
}

func TestTranscript_ExtendDoesNotShareBackingArray(t *testing.T) {
	base := make(Transcript, 1, 4)
	base[0] = AnswerRecord{QuestionID: "a", Answer: "1"}

	extended := base.Extend(AnswerRecord{QuestionID: "b", Answer: "2"})
	require.Len(t, extended, 2)

	// Growing the original must not leak into the extension.
	_ = append(base, AnswerRecord{QuestionID: "x", Answer: "overwrite"})
	assert.Equal(t, "b", extended[1].QuestionID)
	assert.Equal(t, "2", extended[1].Answer)
}

func TestTranscript_Clone(t *testing.T) {
	assert.Nil(t, Transcript(nil).Clone())

	tr := Transcript{{QuestionID: "a", Answer: "1"}}
	cp := tr.Clone()
	cp[0].Answer = "changed"
	assert.Equal(t, "1", tr[0].Answer)
}
