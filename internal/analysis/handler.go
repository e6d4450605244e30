package analysis

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"legalease-backend/internal/shared/server/respond"
)

const maxUploadBytes = 10 << 20

// Handler wires the analyze endpoint to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the analysis route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "No file provided", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, "File too large", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Analysis failed", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Analysis failed", nil)
		return
	}

	result, raw, err := h.Svc.Analyze(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNoFile):
			respond.Error(c, http.StatusBadRequest, "No file provided", nil)
		case errors.Is(err, ErrParse):
			respond.Error(c, http.StatusInternalServerError, "Failed to parse analysis", map[string]any{
				"rawResponse": raw,
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "Analysis failed", nil)
		}
		return
	}

	respond.OK(c, gin.H{"success": true, "analysis": result})
}
