// Package app assembles the record store, retrieval engine and services from configuration.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"momgyeot-ai/internal/config"
	"momgyeot-ai/internal/handlers"
	"momgyeot-ai/internal/http"
	"momgyeot-ai/internal/llm"
	"momgyeot-ai/internal/rag"
	"momgyeot-ai/internal/render"
	"momgyeot-ai/internal/service"
	"momgyeot-ai/internal/storage"
	"momgyeot-ai/internal/storage/postgres"
)

// App holds the wired components of the service.
type App struct {
	Config *config.Config
	// Store is nil when the selected backend is not configured.
	Store   storage.Store
	Engine  *rag.Engine
	Chat    service.ChatService
	History service.HistoryService
	Admin   service.AdminService
	// Forwarder is nil when no messages API key is set.
	Forwarder handlers.Forwarder
	// Generator is nil when the selected provider has no API key.
	Generator service.Generator
}

// OpenStore opens the record store selected by cfg.
// It returns nil and no error when the backend's settings are missing.
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	if !cfg.HasStore() {
		return nil, nil
	}

	switch cfg.StoreBackend {
	case config.BackendPostgREST:
		return storage.NewPostgRESTStore(cfg.SupabaseURL, cfg.SupabaseKey), nil
	case config.BackendSQLite:
		store, err := storage.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendPostgres:
		if err := postgres.Migrate(cfg.DatabaseURL); err != nil {
			return nil, err
		}
		store, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// NewGenerator returns the answer generator for the selected provider, or nil without an API key.
func NewGenerator(cfg *config.Config) service.Generator {
	if !cfg.HasGenerator() {
		return nil
	}
	if cfg.LLMProvider == config.ProviderOpenAI {
		return llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.LLMModel, cfg.LLMMaxTokens)
	}
	return llm.NewClient(cfg.AnthropicBaseURL, cfg.AnthropicAPIKey, cfg.LLMModel, cfg.LLMMaxTokens, cfg.ProxyDefaultModel)
}

// New wires every component from cfg.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.StoreBackend, err)
	}
	if store == nil {
		slog.Warn("Record store not configured, serving without knowledge base", "backend", cfg.StoreBackend)
	} else {
		slog.Info("Record store ready", "backend", cfg.StoreBackend)
	}

	tables, err := rag.DefaultTables()
	if err != nil {
		if store != nil {
			_ = store.Close()
		}
		return nil, fmt.Errorf("failed to load retrieval tables: %w", err)
	}

	a := &App{Config: cfg, Store: store}

	var source rag.KnowledgeSource
	var writer service.ConversationWriter
	var conversations service.ConversationRepository
	var stats service.StatsSource
	if store != nil {
		source, writer, conversations, stats = store, store, store, store
	}

	a.Engine = rag.NewEngine(source, tables, cfg.StoreTimeout, cfg.SearchMaxLimit)

	a.Generator = NewGenerator(cfg)
	if a.Generator == nil {
		slog.Warn("Answer generation not configured, using retrieval fallback", "provider", cfg.LLMProvider)
	}
	if cfg.HasProxy() {
		a.Forwarder = llm.NewClient(cfg.AnthropicBaseURL, cfg.AnthropicAPIKey, cfg.LLMModel, cfg.LLMMaxTokens, cfg.ProxyDefaultModel)
	}

	loc := cfg.Location()
	a.Chat = service.NewChatService(a.Engine, a.Generator, writer, render.NewMarkdown(), service.ChatOptions{
		GenerateTimeout: cfg.LLMTimeout,
	})
	a.History = service.NewHistoryService(conversations, loc)
	a.Admin = service.NewAdminService(stats, cfg.AdminPassword, loc)

	return a, nil
}

// Deps returns the router dependencies.
func (a *App) Deps() *http.Deps {
	deps := &http.Deps{
		ChatService:            a.Chat,
		HistoryService:         a.History,
		AdminService:           a.Admin,
		Retriever:              a.Engine,
		StoreConfigured:        a.Store != nil,
		SearchMinContentLength: a.Config.SearchMinContentLength,
		Forwarder:              a.Forwarder,
		GeneratorReady:         a.Generator != nil,
	}
	if a.Store != nil {
		deps.Store = a.Store
	}
	return deps
}

// Close releases the record store.
func (a *App) Close() error {
	if a.Store == nil {
		return nil
	}
	return a.Store.Close()
}
