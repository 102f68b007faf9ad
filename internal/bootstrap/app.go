package bootstrap

import (
	"context"
	"database/sql"
	"strings"

	"github.com/gin-gonic/gin"

	"advisor-backend/internal/advice"
	"advisor-backend/internal/ideas"
	"advisor-backend/internal/llm"
	openai "advisor-backend/internal/llm/openai"
	"advisor-backend/internal/savedadvice"
	"advisor-backend/internal/shared/config"
	"advisor-backend/internal/shared/server"
	"advisor-backend/internal/shared/storage/db"
	"advisor-backend/internal/shared/telemetry"
)

// App holds shared dependencies, constructed once at startup and injected
// everywhere. Nothing in here is a package-level singleton.
type App struct {
	Config             config.Config
	Router             *gin.Engine
	DB                 *sql.DB
	IdeasRepo          ideas.Repo
	LLM                llm.Client
	AdviceService      *advice.Service
	SavedAdviceService *savedadvice.Service
	AdviceHandler      *advice.Handler
	SavedAdviceHandler *savedadvice.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB := buildDB(ctx, cfg)

	var ideasRepo ideas.Repo
	if sqlDB != nil {
		ideasRepo = &ideas.PGRepo{DB: sqlDB}
	} else {
		ideasRepo = ideas.NewMemoryRepo()
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	adviceSvc := &advice.Service{LLM: llmClient}
	savedSvc := &savedadvice.Service{Repo: ideasRepo}
	adviceHandler := advice.NewHandler(adviceSvc)
	savedHandler := savedadvice.NewHandler(savedSvc)

	return &App{
		Config:             cfg,
		Router:             server.NewRouter(cfg, adviceHandler, savedHandler),
		DB:                 sqlDB,
		IdeasRepo:          ideasRepo,
		LLM:                llmClient,
		AdviceService:      adviceSvc,
		SavedAdviceService: savedSvc,
		AdviceHandler:      adviceHandler,
		SavedAdviceHandler: savedHandler,
	}, nil
}

// Close releases process-wide resources.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// buildDB connects to Postgres and applies migrations. An empty DATABASE_URL
// or a failed connection falls back to the in-memory store so local runs and
// tests work without infrastructure.
func buildDB(ctx context.Context, cfg config.Config) *sql.DB {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		telemetry.Warn("db.disabled", map[string]any{"reason": "DATABASE_URL not set, using in-memory store"})
		return nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	conn, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		telemetry.Warn("db.unavailable", map[string]any{"error": err.Error()})
		return nil
	}
	if err := db.RunMigrations(ctx, conn); err != nil {
		telemetry.Warn("db.migrations_failed", map[string]any{"error": err.Error()})
		_ = conn.Close()
		return nil
	}
	return conn
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		telemetry.Warn("llm.disabled", map[string]any{"reason": "OPENAI_API_KEY not set"})
		return llm.NotConfiguredClient{}, nil
	}
	return openai.NewClient(openai.Config{
		APIKey:      cfg.OpenAIAPIKey,
		Model:       cfg.LLMModel,
		Temperature: cfg.LLMTemperature,
		MaxTokens:   cfg.LLMMaxTokens,
		Timeout:     cfg.LLMTimeout,
	})
}
