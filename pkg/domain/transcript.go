package domain

// AnswerRecord is a single question/answer pair. Immutable once appended.
type AnswerRecord struct {
	QuestionID string `json:"question_id" yaml:"question_id"`
	Answer     string `json:"answer" yaml:"answer"`
}

// Transcript is the ordered, append-only history of a conversation.
// It is the entire state of an in-progress conversation and is owned by the
// caller; engine operations return extended copies instead of mutating it.
type Transcript []AnswerRecord

// Last returns the most recent record, if any.
func (t Transcript) Last() (AnswerRecord, bool) {
	if len(t) == 0 {
		return AnswerRecord{}, false
	}
	return t[len(t)-1], true
}

// Extend returns a new transcript with rec appended. The receiver's backing
// array is never shared with the result, so callers can keep using both.
func (t Transcript) Extend(rec AnswerRecord) Transcript {
	out := make(Transcript, len(t), len(t)+1)
	copy(out, t)
	return append(out, rec)
}

// Clone returns an independent copy of the transcript.
func (t Transcript) Clone() Transcript {
	if t == nil {
		return nil
	}
	out := make(Transcript, len(t))
	copy(out, t)
	return out
}
