package compare

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"legalease-backend/internal/shared/server/respond"
)

// Handler wires the compare endpoint to the comparison service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the compare route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/compare", h.compare)
}

type compareRequest struct {
	Section      string `json:"section"`
	SectionLabel string `json:"sectionLabel"`
	State1       string `json:"state1"`
	State2       string `json:"state2"`
}

func (h *Handler) compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Missing required fields", nil)
		return
	}

	result, err := h.Svc.Compare(c.Request.Context(), req.Section, req.SectionLabel, req.State1, req.State2)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			respond.Error(c, http.StatusBadRequest, "Missing required fields", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to compare states. Please try again.", nil)
		return
	}

	// The comparison endpoint returns the bare object, no envelope.
	respond.OK(c, result)
}
