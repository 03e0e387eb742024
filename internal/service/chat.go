package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_deps.go -package=mocks momgyeot-ai/internal/service Retriever,Generator,ConversationWriter,Renderer
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chat_service.go -package=mocks -mock_names=ChatService=MockChatService momgyeot-ai/internal/service ChatService

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"momgyeot-ai/internal/contextutil"
	"momgyeot-ai/internal/llm"
	"momgyeot-ai/internal/rag"
	"momgyeot-ai/internal/storage"
	"momgyeot-ai/internal/telemetry"
)

const (
	chatRetrievalLimit = 5
	chatResultCount    = 3
)

// Retriever finds knowledge records relevant to a question.
// This interface is defined from the service layer's perspective (consumer-first).
type Retriever interface {
	// Search runs keyword retrieval.
	Search(ctx context.Context, req rag.SearchRequest) (rag.SearchResult, error)
	// PersonaPrompt returns the prompt descriptor of a persona, or "".
	PersonaPrompt(persona string) string
}

// Generator produces an answer from a system prompt and messages.
type Generator interface {
	Generate(ctx context.Context, system string, messages []llm.Message) (string, error)
}

// ConversationWriter persists answered questions.
type ConversationWriter interface {
	AppendConversation(ctx context.Context, conv *storage.Conversation, returnRecord bool) error
}

// Renderer converts a markdown answer to HTML.
type Renderer interface {
	ToHTML(src string) (string, error)
}

// ChatRequest represents a chat request in the domain layer.
type ChatRequest struct {
	Query    string
	UserID   string
	MateType string
	// UserInfo is the caller's free-form profile, included in the prompt verbatim.
	UserInfo json.RawMessage
}

// ChatResponse represents a chat response in the domain layer.
type ChatResponse struct {
	Answer     string
	AnswerHTML string
	// RAGResults are the best three retrieved records.
	RAGResults []rag.ScoredRecord
	// Related are the titles of the records ranked second to fourth.
	Related []string
}

// ChatService answers questions from the knowledge base.
type ChatService interface {
	// ProcessChat retrieves, answers and records a question.
	ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

// ChatOptions tunes a ChatService.
type ChatOptions struct {
	// GenerateTimeout bounds a single generation call. Zero disables the bound.
	GenerateTimeout time.Duration
}

// chatService implements ChatService.
type chatService struct {
	retriever Retriever
	generator Generator
	writer    ConversationWriter
	renderer  Renderer
	opts      ChatOptions
	now       func() time.Time
}

// NewChatService creates a new ChatService.
// generator, writer and renderer may be nil; the matching step is then skipped.
func NewChatService(retriever Retriever, generator Generator, writer ConversationWriter, renderer Renderer, opts ChatOptions) ChatService {
	return &chatService{
		retriever: retriever,
		generator: generator,
		writer:    writer,
		renderer:  renderer,
		opts:      opts,
		now:       time.Now,
	}
}

// ProcessChat processes a chat request.
func (s *chatService) ProcessChat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	query := strings.TrimSpace(req.Query)
	if query == "" {
		logger.WarnContext(ctx, "empty query in chat request")
		return ChatResponse{}, &ValidationError{
			Field:   "query",
			Message: "required",
		}
	}

	records := s.retrieve(ctx, query, req.MateType)

	answer := ""
	if s.generator != nil {
		generated, err := s.generate(ctx, req, query, records)
		if err != nil {
			logger.ErrorContext(ctx, "failed to generate answer, using retrieval fallback", "error", err)
		} else {
			answer = generated
		}
	}
	if answer == "" {
		answer = FallbackAnswer(records)
	}

	if req.UserID != "" && s.writer != nil {
		s.save(ctx, req, query, answer)
	}

	resp := ChatResponse{
		Answer:     answer,
		AnswerHTML: s.render(ctx, answer),
		RAGResults: topRecords(records, chatResultCount),
		Related:    rag.SearchResult{Records: records}.Titles(1, 1+chatResultCount),
	}

	logger.InfoContext(ctx, "chat request processed successfully",
		"query_length", len(query),
		"records", len(records),
		"answer_length", len(answer),
	)
	return resp, nil
}

func (s *chatService) retrieve(ctx context.Context, query, mateType string) []rag.ScoredRecord {
	if s.retriever == nil {
		return []rag.ScoredRecord{}
	}
	result, err := s.retriever.Search(ctx, rag.SearchRequest{
		Query:   query,
		Persona: mateType,
		Limit:   chatRetrievalLimit,
	})
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "retrieval failed", "error", err)
		return []rag.ScoredRecord{}
	}
	if result.Records == nil {
		return []rag.ScoredRecord{}
	}
	return result.Records
}

func (s *chatService) generate(ctx context.Context, req ChatRequest, query string, records []rag.ScoredRecord) (string, error) {
	persona := ""
	if s.retriever != nil {
		persona = s.retriever.PersonaPrompt(req.MateType)
	}
	system := BuildSystemPrompt(persona, req.UserInfo)
	messages := []llm.Message{{Role: "user", Content: BuildUserMessage(query, records)}}

	ctx, span := telemetry.StartSpan(ctx, "chat.generate")
	defer span.End()

	if s.opts.GenerateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.GenerateTimeout)
		defer cancel()
	}

	answer, err := s.generator.Generate(ctx, system, messages)
	if err != nil {
		span.SetError(err)
		return "", fmt.Errorf("%w: %w", ErrExternalService, err)
	}
	return answer, nil
}

// save records the exchange. Failures are logged and dropped.
func (s *chatService) save(ctx context.Context, req ChatRequest, query, answer string) {
	mateType := req.MateType
	if mateType == "" {
		mateType = storage.DefaultMateType
	}
	conv := &storage.Conversation{
		UserID:    req.UserID,
		MateType:  mateType,
		Question:  query,
		Answer:    answer,
		CreatedAt: s.now().UTC(),
	}
	if err := s.writer.AppendConversation(ctx, conv, false); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to save conversation", "error", err, "user_id", req.UserID)
	}
}

func (s *chatService) render(ctx context.Context, answer string) string {
	if s.renderer == nil {
		return ""
	}
	html, err := s.renderer.ToHTML(answer)
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to render answer", "error", err)
		return ""
	}
	return html
}

func topRecords(records []rag.ScoredRecord, n int) []rag.ScoredRecord {
	if len(records) > n {
		return records[:n]
	}
	return records
}
