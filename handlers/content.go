package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whynotact/backend/internal/content"
	"github.com/whynotact/backend/internal/content/service"
	"github.com/whynotact/backend/internal/lens"
)

// ContentHandler exposes the lens-tailored content read endpoints.
type ContentHandler struct {
	svc service.Service
}

func NewContentHandler(svc service.Service) *ContentHandler {
	return &ContentHandler{svc: svc}
}

func (h *ContentHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/questions", h.Questions)
	rg.GET("/impact-points", h.ImpactPoints)
	rg.GET("/data-points", h.DataPoints)
}

// Questions returns survey questions with their full variant maps, optionally
// filtered by layer. The client picks the variant for the visitor's lens at
// render time.
func (h *ContentHandler) Questions(c *gin.Context) {
	questions, err := h.svc.Questions(c.Request.Context(), c.Query("layer"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load questions", "questions": []*content.Question{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// ImpactPoints returns impact points resolved to the required lens parameter.
func (h *ContentHandler) ImpactPoints(c *gin.Context) {
	active, ok := requireLens(c)
	if !ok {
		return
	}
	points, err := h.svc.ImpactPointsForLens(c.Request.Context(), active)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load impact points"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"impactPoints": points})
}

// DataPoints returns data points resolved to the required lens parameter.
func (h *ContentHandler) DataPoints(c *gin.Context) {
	active, ok := requireLens(c)
	if !ok {
		return
	}
	points, err := h.svc.DataPointsForLens(c.Request.Context(), active)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load data points"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dataPoints": points})
}

// requireLens parses the mandatory lens query parameter. Missing or
// unrecognized tokens are a 400; the resolver never substitutes a variant.
func requireLens(c *gin.Context) (lens.Lens, bool) {
	token := c.Query("lens")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lens parameter is required"})
		return "", false
	}
	active, err := lens.Parse(token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unrecognized lens"})
		return "", false
	}
	return active, true
}
