package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mfreitas/ecopontos/internal/domain"
	"github.com/mfreitas/ecopontos/internal/service"
)

// parseItemIDs splits a comma-separated id list. An empty parameter is an
// empty set (which matches no points downstream); a non-numeric token is
// rejected outright rather than silently coerced.
func parseItemIDs(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return []int64{}, nil
	}

	tokens := strings.Split(raw, ",")
	ids := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		id, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid item id %q", token)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// handleFindPoints GET /points?city=&uf=&items=1,2
func (s *Server) handleFindPoints(c *gin.Context) {
	city := c.Query("city")
	uf := c.Query("uf")

	itemIDs, err := parseItemIDs(c.Query("items"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "malformed_filter",
			"message": err.Error(),
		})
		return
	}

	points, err := s.points.FindPoints(c.Request.Context(), city, uf, itemIDs)
	if err != nil {
		s.logger.Error("failed to find points", "error", err, "city", city, "uf", uf)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to find points",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": points})
}

// handleGetPoint GET /points/:id
func (s *Server) handleGetPoint(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "Point id must be an integer",
		})
		return
	}

	point, err := s.points.GetPoint(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPointNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Point not found"})
			return
		}
		s.logger.Error("failed to get point", "error", err, "point_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to get point",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"point": point})
}

type createPointRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required"`
	Whatsapp  string  `json:"whatsapp" binding:"required"`
	City      string  `json:"city" binding:"required"`
	UF        string  `json:"uf" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Items     []int64 `json:"items"`
}

// handleCreatePoint POST /points
func (s *Server) handleCreatePoint(c *gin.Context) {
	var req createPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid request body: " + err.Error(),
		})
		return
	}

	point, err := s.points.CreatePoint(c.Request.Context(), service.CreatePointInput{
		Name:      req.Name,
		Email:     req.Email,
		Whatsapp:  req.Whatsapp,
		City:      req.City,
		UF:        req.UF,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}, req.Items)
	if err != nil {
		s.logger.Error("failed to create point", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Failed to create point",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"point": point})
}
