package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"legalease-backend/internal/llm"
	"legalease-backend/internal/shared/server/respond"
)

// Handler wires the chat endpoint to the chat service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the chat route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages        []chatMessage   `json:"messages"`
	DocumentContext json.RawMessage `json:"documentContext"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Messages array is required", nil)
		return
	}

	history := make([]llm.Message, 0, len(req.Messages))
	for _, msg := range req.Messages {
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
	}

	text, err := h.Svc.NextTurn(c.Request.Context(), history, req.DocumentContext)
	if err != nil {
		if errors.Is(err, ErrEmptyHistory) {
			respond.Error(c, http.StatusBadRequest, "Messages array is required", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to generate response. Please try again.", nil)
		return
	}

	respond.OK(c, gin.H{"response": text})
}
