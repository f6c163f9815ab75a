package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkpath-dev/forkpath"
	"github.com/forkpath-dev/forkpath/pkg/domain"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	engine, err := forkpath.New()
	require.NoError(t, err)
	return NewHandler(engine)
}

func postChat(t *testing.T, handler http.Handler, body ChatRequest) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestGetHealth(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/info", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "forkpath-http", resp["app"])
	assert.NotEmpty(t, resp["version"])
	assert.Equal(t, "1.0.0", resp["api_version"])
}

func TestChat_Bootstrap(t *testing.T) {
	handler := newTestHandler(t)

	rr := postChat(t, handler, ChatRequest{})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	require.NotNil(t, resp.QuestionID)
	assert.Equal(t, "q1_food_type", *resp.QuestionID)
	require.NotNil(t, resp.Message)
	assert.Equal(t, "What kind of food are you in the mood for?", *resp.Message)
	assert.Equal(t, []string{"Italian", "Mexican", "Indian"}, resp.Options)
	assert.Empty(t, resp.ConversationHistory)
	assert.False(t, resp.IsConversationComplete)
	assert.Nil(t, resp.FinalSummary)
}

func TestChat_FullConversation(t *testing.T) {
	handler := newTestHandler(t)

	history := []domain.AnswerRecord{}
	for _, step := range []struct {
		input    string
		wantNext string
	}{
		{"Italian", "q2_italian_preference"},
		{"Pizza", "q3_pizza_toppings"},
	} {
		rr := postChat(t, handler, ChatRequest{UserInput: step.input, ConversationHistory: history})
		require.Equal(t, http.StatusOK, rr.Code)

		var resp ChatResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.QuestionID)
		assert.Equal(t, step.wantNext, *resp.QuestionID)
		assert.Len(t, resp.ConversationHistory, len(history)+1)
		history = resp.ConversationHistory
	}

	rr := postChat(t, handler, ChatRequest{UserInput: "Pepperoni", ConversationHistory: history})
	require.Equal(t, http.StatusOK, rr.Code)

	var final ChatResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &final))
	assert.True(t, final.IsConversationComplete)
	assert.Nil(t, final.QuestionID)
	assert.Nil(t, final.Message)
	require.NotNil(t, final.FinalSummary)
	assert.Contains(t, *final.FinalSummary, "Pepperoni")
	assert.Len(t, final.ConversationHistory, 3)
}

func TestChat_InvalidAnswer(t *testing.T) {
	handler := newTestHandler(t)
	history := []domain.AnswerRecord{{QuestionID: "q1_food_type", Answer: "Italian"}}

	rr := postChat(t, handler, ChatRequest{UserInput: "Sushi", ConversationHistory: history})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrorTypeInvalidRequest, resp.Error.Type)
	assert.Equal(t, "q2_italian_preference", resp.Error.Param)
	assert.Equal(t, []string{"Pasta", "Pizza"}, resp.Error.Options)
}

func TestChat_EmptyInputMidConversation(t *testing.T) {
	handler := newTestHandler(t)
	history := []domain.AnswerRecord{{QuestionID: "q1_food_type", Answer: "Italian"}}

	rr := postChat(t, handler, ChatRequest{UserInput: "", ConversationHistory: history})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, ErrorTypeInvalidRequest, resp.Error.Type)
}

func TestChat_UnknownQuestion(t *testing.T) {
	handler := newTestHandler(t)
	history := []domain.AnswerRecord{{QuestionID: "UNKNOWN_ID_NOT_IN_GRAPH", Answer: "x"}}

	rr := postChat(t, handler, ChatRequest{UserInput: "y", ConversationHistory: history})
	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, ErrorTypeNotFound, resp.Error.Type)
	assert.Equal(t, "UNKNOWN_ID_NOT_IN_GRAPH", resp.Error.Param)
}

func TestChat_MalformedBody(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("POST", "/chat", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetGraph(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/graph", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var questions []domain.Question
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &questions))
	assert.Len(t, questions, 7)
	assert.Equal(t, "q1_food_type", questions[0].ID)
}

func TestGetOpenAPISpec(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/openapi.yaml", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Forkpath API")
}

func TestMetricsEndpoint(t *testing.T) {
	engine, err := forkpath.New()
	require.NoError(t, err)
	handler := NewHandler(engine, WithMetrics("/metrics"))

	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCORSPreflight(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("OPTIONS", "/chat", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
