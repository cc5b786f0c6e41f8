// Package web serves the browser-facing pages of the listing application:
// a filterable property list and per-property detail pages, rendered from
// data fetched through the API client.
package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"real-estate-listings/internal/client"
	"real-estate-listings/internal/queries"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server renders pages backed by the listing API
type Server struct {
	api *client.Client
}

// NewRouter assembles the web router with its embedded templates
func NewRouter(api *client.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	s := &Server{api: api}
	r.GET("/", s.listPage)
	r.GET("/properties/:id", s.detailPage)

	return r
}

// listFilters echoes the submitted filter form values back into the page
type listFilters struct {
	Name     string
	Address  string
	MinPrice string
	MaxPrice string
}

func (s *Server) listPage(c *gin.Context) {
	form := listFilters{
		Name:     c.Query("name"),
		Address:  c.Query("address"),
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
	}

	filters := queries.PropertyFilters{
		Name:    form.Name,
		Address: form.Address,
	}
	if form.MinPrice != "" {
		if v, err := strconv.ParseFloat(form.MinPrice, 64); err == nil {
			filters.MinPrice = &v
		}
	}
	if form.MaxPrice != "" {
		if v, err := strconv.ParseFloat(form.MaxPrice, 64); err == nil {
			filters.MaxPrice = &v
		}
	}

	properties, err := s.api.GetProperties(c.Request.Context(), filters)
	if err != nil {
		c.HTML(http.StatusBadGateway, "error.html", gin.H{
			"Message": "The property service is currently unavailable.",
		})
		return
	}

	c.HTML(http.StatusOK, "list.html", gin.H{
		"Properties": properties,
		"Filters":    form,
	})
}

func (s *Server) detailPage(c *gin.Context) {
	id := c.Param("id")

	detail, err := s.api.GetPropertyByID(c.Request.Context(), id)
	if errors.Is(err, client.ErrNotFound) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"Message": "Property not found.",
		})
		return
	}
	if err != nil {
		c.HTML(http.StatusBadGateway, "error.html", gin.H{
			"Message": "The property service is currently unavailable.",
		})
		return
	}

	c.HTML(http.StatusOK, "detail.html", gin.H{
		"Property": detail,
	})
}
