package lawyers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"legalease-backend/internal/shared/server/respond"
)

// Handler wires directory routes to the lawyers service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the lawyer routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/lawyers", h.list)
	rg.GET("/lawyers/:id", h.get)
	rg.POST("/lawyers/:id/contact", h.contact)
}

func (h *Handler) list(c *gin.Context) {
	lawyers := h.Svc.Filter(Filters{
		State:        c.Query("state"),
		PracticeArea: c.Query("practiceArea"),
		FeeType:      c.Query("feeType"),
		Language:     c.Query("language"),
	})
	respond.OK(c, gin.H{"lawyers": lawyers})
}

func (h *Handler) get(c *gin.Context) {
	lawyer, err := h.Svc.ByID(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "Lawyer not found", nil)
		return
	}
	respond.OK(c, gin.H{"lawyer": lawyer})
}

func (h *Handler) contact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	receipt, err := h.Svc.Contact(c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Lawyer not found", nil)
		case errors.Is(err, ErrConsentRequired):
			respond.Error(c, http.StatusBadRequest, "Consent is required to contact a lawyer", nil)
		case errors.Is(err, ErrInvalidContact):
			respond.Error(c, http.StatusBadRequest, "Name and a contact channel are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to submit contact request", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, receipt)
}
