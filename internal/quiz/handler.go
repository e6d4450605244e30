package quiz

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"legalease-backend/internal/shared/server/respond"
)

// Handler wires the quiz routes to the quiz service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the quiz routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/quiz/packs", h.packs)
	rg.GET("/quiz/packs/:id/questions", h.questions)
	rg.GET("/quiz/badges", h.badges)
	rg.POST("/quiz/submit", h.submit)
}

func (h *Handler) packs(c *gin.Context) {
	respond.OK(c, gin.H{"packs": h.Svc.Packs(c.Query("state"))})
}

func (h *Handler) questions(c *gin.Context) {
	questions, err := h.Svc.Questions(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "Quiz pack not found", nil)
		return
	}
	respond.OK(c, gin.H{"questions": questions})
}

func (h *Handler) badges(c *gin.Context) {
	respond.OK(c, gin.H{"badges": h.Svc.Badges()})
}

func (h *Handler) submit(c *gin.Context) {
	var sub Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.Svc.Grade(sub)
	if err != nil {
		switch {
		case errors.Is(err, ErrPackNotFound):
			respond.Error(c, http.StatusNotFound, "Quiz pack not found", nil)
		case errors.Is(err, ErrNoAnswers):
			respond.Error(c, http.StatusBadRequest, "Answers are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to grade quiz", nil)
		}
		return
	}

	respond.OK(c, result)
}
