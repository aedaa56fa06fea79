package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whynotact/backend/internal/lens"
	"github.com/whynotact/backend/internal/submission"
	"github.com/whynotact/backend/internal/submission/service"
)

// PetitionHandler exposes the petition submission endpoints.
type PetitionHandler struct {
	svc service.Service
}

func NewPetitionHandler(svc service.Service) *PetitionHandler {
	return &PetitionHandler{svc: svc}
}

// Register wires the routes. Extra middleware (e.g. the anti-spam limiter)
// applies to the create route only; the aggregate read stays unthrottled.
func (h *PetitionHandler) Register(rg *gin.RouterGroup, createMW ...gin.HandlerFunc) {
	rg.POST("/petition", append(createMW, h.Create)...)
	rg.GET("/petition", h.Count)
}

// Create accepts {name, email, zipcode, consent, phone?, reason?, theme?} and
// returns 201 with the generated signature id, 400 on the first failing
// validation rule, 500 on a store failure.
func (h *PetitionHandler) Create(c *gin.Context) {
	var req submission.PetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	meta := submission.RequestMeta{IPAddress: c.ClientIP(), UserAgent: c.Request.UserAgent()}
	id, err := h.svc.SubmitPetition(c.Request.Context(), req, meta)
	if err != nil {
		writeSubmissionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"signatureId": id,
		"message":     "Thank you for signing the petition",
	})
}

// Count returns the number of signatures, optionally filtered by theme.
// Individual signature contents are never returned.
func (h *PetitionHandler) Count(c *gin.Context) {
	theme := c.Query("theme")
	if theme != "" {
		normalized, err := lens.ParseTheme(theme)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unrecognized theme"})
			return
		}
		theme = normalized
	}
	count, err := h.svc.PetitionCount(c.Request.Context(), theme)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count signatures"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// writeSubmissionError translates service errors into the response contract:
// validation failures carry the failing-field message, persistence failures a
// generic message with the cause kept server-side.
func writeSubmissionError(c *gin.Context, err error) {
	var verr *submission.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "submission could not be saved",
		"details": "the content store rejected the write or was unreachable",
	})
}
