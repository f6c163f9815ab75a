package domain

// Result is the outcome of advancing a conversation: either the next
// question to ask, or a terminal summary. Never both.
type Result struct {
	// Question is the next question to ask. Nil when Complete.
	Question *Question

	// Transcript is the full history including the just-recorded answer.
	Transcript Transcript

	// Complete is true once the terminal marker was reached.
	Complete bool

	// Summary is the human-readable rendering of the whole transcript,
	// populated only when Complete.
	Summary string
}
