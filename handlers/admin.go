package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/whynotact/backend/internal/submission/repository"
	"github.com/whynotact/backend/internal/submission/service"
	"github.com/whynotact/backend/pkg/middleware"
)

// AdminHandler exposes the administrative delete endpoints. Deletion is an
// operator action, never part of the public submission lifecycle.
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) Register(rg *gin.RouterGroup, ver middleware.Verifier) {
	grp := rg.Group("/admin", middleware.AuthMiddleware(ver))
	grp.DELETE("/petition/:id", h.DeletePetition)
	grp.DELETE("/story/:id", h.DeleteStory)
}

func (h *AdminHandler) DeletePetition(c *gin.Context) {
	if err := h.svc.DeletePetition(c.Request.Context(), c.Param("id")); err != nil {
		writeDeleteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) DeleteStory(c *gin.Context) {
	if err := h.svc.DeleteStory(c.Request.Context(), c.Param("id")); err != nil {
		writeDeleteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeDeleteError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
}
