package bootstrap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"legalease-backend/internal/analysis"
	"legalease-backend/internal/chat"
	"legalease-backend/internal/compare"
	"legalease-backend/internal/laws"
	"legalease-backend/internal/lawyers"
	"legalease-backend/internal/llm"
	"legalease-backend/internal/llm/gemini"
	"legalease-backend/internal/quiz"
	"legalease-backend/internal/shared/config"
	"legalease-backend/internal/shared/metrics"
	"legalease-backend/internal/shared/server"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Registry        *prometheus.Registry
	Metrics         *metrics.Metrics
	LLM             llm.Client
	AnalysisService *analysis.Service
	ChatService     *chat.Service
	CompareService  *compare.Service
	LawsService     *laws.Service
	LawyersService  *lawyers.Service
	QuizService     *quiz.Service
	closeLLM        func() error
}

// Build prepares shared dependencies and wires the router. In dev-like
// environments a missing GEMINI_API_KEY falls back to a placeholder client;
// in production it is an error.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	llmClient, closeLLM, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	app, err := BuildWithClient(cfg, llmClient)
	if err != nil {
		if closeLLM != nil {
			_ = closeLLM()
		}
		return nil, err
	}
	app.closeLLM = closeLLM
	return app, nil
}

// BuildWithClient wires the application around a caller-supplied model
// client. Tests use this to substitute fakes.
func BuildWithClient(cfg config.Config, llmClient llm.Client) (*App, error) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	lawsSvc, err := laws.NewService()
	if err != nil {
		return nil, err
	}
	lawyersSvc, err := lawyers.NewService()
	if err != nil {
		return nil, err
	}
	quizSvc, err := quiz.NewService()
	if err != nil {
		return nil, err
	}

	analysisSvc := &analysis.Service{LLM: llmClient, Metrics: m}
	chatSvc := &chat.Service{LLM: llmClient, Metrics: m}
	compareSvc := &compare.Service{LLM: llmClient, Metrics: m}

	app := &App{
		Config:          cfg,
		Registry:        registry,
		Metrics:         m,
		LLM:             llmClient,
		AnalysisService: analysisSvc,
		ChatService:     chatSvc,
		CompareService:  compareSvc,
		LawsService:     lawsSvc,
		LawyersService:  lawyersSvc,
		QuizService:     quizSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Registry:        registry,
		AnalysisHandler: analysis.NewHandler(analysisSvc),
		ChatHandler:     chat.NewHandler(chatSvc),
		CompareHandler:  compare.NewHandler(compareSvc),
		LawsHandler:     laws.NewHandler(lawsSvc),
		LawyersHandler:  lawyers.NewHandler(lawyersSvc),
		QuizHandler:     quiz.NewHandler(quizSvc),
	})

	return app, nil
}

// Close releases the provider client, if any.
func (a *App) Close() error {
	if a.closeLLM != nil {
		return a.closeLLM()
	}
	return nil
}

func buildLLM(cfg config.Config) (llm.Client, func() error, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: GEMINI_API_KEY empty; using placeholder model client")
			return llm.PlaceholderClient{}, nil, nil
		}
		return nil, nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, nil, err
	}
	return client, client.Close, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
