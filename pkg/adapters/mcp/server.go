// Package mcp exposes the Forkpath engine as an MCP server, so agent hosts
// can drive a conversation through tool calls.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/forkpath-dev/forkpath"
	"github.com/forkpath-dev/forkpath/pkg/domain"
)

// ChatResult mirrors the HTTP response shape so both adapters present the
// same contract.
type ChatResult struct {
	Message                string                `json:"message,omitempty" jsonschema_description:"Prompt of the next question, empty when complete"`
	QuestionID             string                `json:"question_id,omitempty" jsonschema_description:"ID of the next question, empty when complete"`
	Options                []string              `json:"options,omitempty" jsonschema_description:"Selectable answers for the next question"`
	ConversationHistory    []domain.AnswerRecord `json:"conversation_history" jsonschema_description:"Complete history including the just-recorded answer"`
	IsConversationComplete bool                  `json:"is_conversation_complete" jsonschema_description:"True once the terminal marker is reached"`
	FinalSummary           string                `json:"final_summary,omitempty" jsonschema_description:"Human-readable rendering of all answers"`
}

// advanceArgs is the decoded argument set of the advance tool.
type advanceArgs struct {
	UserInput string `mapstructure:"user_input"`
	History   string `mapstructure:"history"`
}

// Engine defines the interface required by the MCP server.
type Engine interface {
	Advance(ctx context.Context, userInput string, transcript domain.Transcript) (*domain.Result, error)
	Inspect() []domain.Question
}

// Server wraps the Forkpath engine and exposes it as an MCP server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("forkpath-mcp", strings.TrimSpace(forkpath.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: advance
	advanceTool := mcp.NewTool("advance",
		mcp.WithDescription("Advance the conversation: record the answer to the most recently asked question and return the next question or the final summary. Call with empty arguments to start."),
		mcp.WithString("user_input", mcp.Description("Answer to the most recently asked question (empty to bootstrap)")),
		mcp.WithString("history", mcp.Description("JSON array of {question_id, answer} pairs from prior turns")),
		mcp.WithOutputSchema[ChatResult](),
	)
	s.mcpServer.AddTool(advanceTool, mcp.NewStructuredToolHandler(s.handleAdvance))

	// TOOL: get_graph
	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the full question graph for introspection."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, err := json.Marshal(s.engine.Inspect())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("inspect failed: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) handleAdvance(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ChatResult, error) {
	var parsed advanceArgs
	if err := mapstructure.Decode(args, &parsed); err != nil {
		return ChatResult{}, fmt.Errorf("invalid arguments: %w", err)
	}

	var transcript domain.Transcript
	if parsed.History != "" {
		if err := json.Unmarshal([]byte(parsed.History), &transcript); err != nil {
			return ChatResult{}, fmt.Errorf("invalid history: %w", err)
		}
	}

	res, err := s.engine.Advance(ctx, parsed.UserInput, transcript)
	if err != nil {
		return ChatResult{}, fmt.Errorf("advance failed: %w", err)
	}

	out := ChatResult{
		ConversationHistory:    res.Transcript,
		IsConversationComplete: res.Complete,
	}
	if out.ConversationHistory == nil {
		out.ConversationHistory = []domain.AnswerRecord{}
	}
	if res.Complete {
		out.FinalSummary = res.Summary
	} else {
		out.Message = res.Question.Prompt
		out.QuestionID = res.Question.ID
		out.Options = res.Question.Options
	}
	return out, nil
}
