package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"legalease-backend/internal/analysis"
	"legalease-backend/internal/chat"
	"legalease-backend/internal/compare"
	"legalease-backend/internal/laws"
	"legalease-backend/internal/lawyers"
	"legalease-backend/internal/quiz"
	"legalease-backend/internal/shared/config"
	"legalease-backend/internal/shared/server/middleware"
	"legalease-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers and shared dependencies the router wires up.
type RouterDeps struct {
	Config          config.Config
	Registry        *prometheus.Registry
	AnalysisHandler *analysis.Handler
	ChatHandler     *chat.Handler
	CompareHandler  *compare.Handler
	LawsHandler     *laws.Handler
	LawyersHandler  *lawyers.Handler
	QuizHandler     *quiz.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.ChatHandler != nil {
		deps.ChatHandler.RegisterRoutes(api)
	}
	if deps.CompareHandler != nil {
		deps.CompareHandler.RegisterRoutes(api)
	}
	if deps.LawsHandler != nil {
		deps.LawsHandler.RegisterRoutes(api)
	}
	if deps.LawyersHandler != nil {
		deps.LawyersHandler.RegisterRoutes(api)
	}
	if deps.QuizHandler != nil {
		deps.QuizHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
