package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"real-estate-listings/internal/queries"
)

// PropertyHandler handles property-related requests
type PropertyHandler struct {
	svc *queries.Service
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(svc *queries.Service) *PropertyHandler {
	return &PropertyHandler{svc: svc}
}

type listPropertiesQuery struct {
	Name     string   `form:"name"`
	Address  string   `form:"address"`
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
}

// GetProperties returns all properties matching the optional name, address,
// minPrice and maxPrice filters
func (h *PropertyHandler) GetProperties(c *gin.Context) {
	var q listPropertiesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := queries.PropertyFilters{
		Name:     q.Name,
		Address:  q.Address,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
	}

	properties, err := h.svc.GetProperties(c.Request.Context(), filters)
	if err != nil {
		_ = c.Error(err)
		return
	}

	log.Printf("[Properties API] listed %d properties (name=%q address=%q)", len(properties), q.Name, q.Address)
	c.JSON(http.StatusOK, properties)
}

// GetPropertyByID returns the aggregated detail view for one property
func (h *PropertyHandler) GetPropertyByID(c *gin.Context) {
	id := c.Param("id")

	detail, err := h.svc.GetPropertyByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": fmt.Sprintf("Property with ID %s not found", id),
		})
		return
	}

	c.JSON(http.StatusOK, detail)
}
