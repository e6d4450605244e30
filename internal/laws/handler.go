package laws

import (
	"time"

	"github.com/gin-gonic/gin"

	"legalease-backend/internal/shared/server/respond"
)

// Handler wires law-browser routes to the laws service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the law routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/laws", h.list)
	rg.GET("/laws/today", h.today)
	rg.GET("/laws/random", h.random)
	rg.GET("/laws/categories", h.categories)
}

func (h *Handler) list(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		respond.OK(c, gin.H{"laws": h.Svc.ByCategory(category)})
		return
	}
	respond.OK(c, gin.H{"laws": h.Svc.All()})
}

func (h *Handler) today(c *gin.Context) {
	respond.OK(c, gin.H{"law": h.Svc.LawOfTheDay(time.Now())})
}

func (h *Handler) random(c *gin.Context) {
	respond.OK(c, gin.H{"law": h.Svc.Random(c.Query("exclude"))})
}

func (h *Handler) categories(c *gin.Context) {
	respond.OK(c, gin.H{"categories": h.Svc.CategoryCounts()})
}
