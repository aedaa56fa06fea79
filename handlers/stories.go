package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/whynotact/backend/internal/lens"
	"github.com/whynotact/backend/internal/submission"
	"github.com/whynotact/backend/internal/submission/service"
)

// StoryHandler exposes the story submission and listing endpoints.
type StoryHandler struct {
	svc service.Service
}

func NewStoryHandler(svc service.Service) *StoryHandler {
	return &StoryHandler{svc: svc}
}

// Register wires the routes. Extra middleware (e.g. the anti-spam limiter)
// applies to the create route only.
func (h *StoryHandler) Register(rg *gin.RouterGroup, createMW ...gin.HandlerFunc) {
	rg.POST("/story", append(createMW, h.Create)...)
	rg.GET("/story", h.List)
}

// Create accepts {email, story, name?, allowPublish?, allowContact?, theme?}
// and returns 201 with the generated story id. Stories enter moderation in
// pending status; they appear on the read path only after the CMS publishes
// them.
func (h *StoryHandler) Create(c *gin.Context) {
	var req submission.StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	meta := submission.RequestMeta{IPAddress: c.ClientIP(), UserAgent: c.Request.UserAgent()}
	id, err := h.svc.SubmitStory(c.Request.Context(), req, meta)
	if err != nil {
		writeSubmissionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"storyId": id,
		"message": "Thank you for sharing your story",
	})
}

// List returns published stories only, newest first, projected to the
// non-sensitive field subset. Supports optional theme filter and offset/limit
// pagination (limit defaults to 10).
func (h *StoryHandler) List(c *gin.Context) {
	opts := submission.ListOptions{}
	if theme := c.Query("theme"); theme != "" {
		normalized, err := lens.ParseTheme(theme)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unrecognized theme"})
			return
		}
		opts.Theme = normalized
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		opts.Limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
			return
		}
		opts.Offset = n
	}
	stories, err := h.svc.PublishedStories(c.Request.Context(), opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load stories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stories": stories})
}
