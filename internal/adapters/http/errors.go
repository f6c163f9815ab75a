package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/forkpath-dev/forkpath/internal/observability"
	"github.com/forkpath-dev/forkpath/pkg/domain"
)

// ErrorType categorizes an API error for the caller.
type ErrorType string

const (
	ErrorTypeInvalidRequest ErrorType = "invalid_request"
	ErrorTypeNotFound       ErrorType = "not_found"
	ErrorTypeServerError    ErrorType = "server_error"
)

// APIError is the wire form of a failure: type, optional question param,
// message, and (for invalid answers) the valid option set so the caller can
// retry the same turn.
type APIError struct {
	Type    ErrorType `json:"type"`
	Param   string    `json:"param,omitempty"`
	Message string    `json:"message"`
	Options []string  `json:"options,omitempty"`
}

// ErrorResponse wraps an APIError as the top-level error envelope.
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// writeEngineError maps engine error kinds to HTTP status codes and the JSON
// error envelope. The conversation history passed in by the caller is by
// definition unchanged on error, so the envelope does not repeat it.
func writeEngineError(w http.ResponseWriter, err error) {
	var (
		invalid *domain.InvalidAnswerError
		empty   *domain.EmptyInputError
		unknown *domain.UnknownQuestionError
	)

	switch {
	case errors.As(err, &invalid):
		observability.InvalidAnswersTotal.WithLabelValues(invalid.QuestionID).Inc()
		writeError(w, http.StatusBadRequest, &APIError{
			Type:    ErrorTypeInvalidRequest,
			Param:   invalid.QuestionID,
			Message: invalid.Error(),
			Options: invalid.Options,
		})
	case errors.As(err, &empty):
		writeError(w, http.StatusBadRequest, &APIError{
			Type:    ErrorTypeInvalidRequest,
			Param:   empty.QuestionID,
			Message: empty.Error(),
		})
	case errors.As(err, &unknown):
		writeError(w, http.StatusNotFound, &APIError{
			Type:    ErrorTypeNotFound,
			Param:   unknown.QuestionID,
			Message: unknown.Error(),
		})
	default:
		writeError(w, http.StatusInternalServerError, &APIError{
			Type:    ErrorTypeServerError,
			Message: "could not advance conversation",
		})
	}
}

func writeError(w http.ResponseWriter, status int, apiErr *APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: apiErr})
}
