package http

import "github.com/forkpath-dev/forkpath/pkg/domain"

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	UserInput           string                `json:"user_input"`
	ConversationHistory []domain.AnswerRecord `json:"conversation_history"`
}

// ChatResponse is the body returned by POST /chat.
// Message, QuestionID, Options, and FinalSummary are nullable: a response
// carries either the next question fields or the final summary, never both.
type ChatResponse struct {
	Message                *string               `json:"message"`
	QuestionID             *string               `json:"question_id"`
	Options                []string              `json:"options"`
	ConversationHistory    []domain.AnswerRecord `json:"conversation_history"`
	IsConversationComplete bool                  `json:"is_conversation_complete"`
	FinalSummary           *string               `json:"final_summary"`
}

func chatResponseFromResult(res *domain.Result) ChatResponse {
	resp := ChatResponse{
		ConversationHistory:    res.Transcript,
		IsConversationComplete: res.Complete,
	}
	if resp.ConversationHistory == nil {
		resp.ConversationHistory = []domain.AnswerRecord{}
	}

	if res.Complete {
		resp.FinalSummary = ptr(res.Summary)
		return resp
	}

	resp.Message = ptr(res.Question.Prompt)
	resp.QuestionID = ptr(res.Question.ID)
	resp.Options = res.Question.Options
	return resp
}

func ptr[T any](v T) *T {
	return &v
}
