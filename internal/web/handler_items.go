package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleListItems GET /items
func (s *Server) handleListItems(c *gin.Context) {
	items, err := s.catalog.ListItems(c.Request.Context())
	if err != nil {
		s.logger.Error("failed to list items", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to list items",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
