package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"real-estate-listings/internal/queries"
)

// NewRouter assembles the API router: wildcard CORS on every response,
// a single error boundary, and the two property endpoints.
func NewRouter(svc *queries.Service, debug bool) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())

	// CORS configuration. The API is public: the wildcard origin header goes
	// on every response, not just on requests that arrive with an Origin.
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
	})
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.Use(errorBoundary(debug))

	r.GET("/health", healthCheck)

	h := NewPropertyHandler(svc)
	r.GET("/api/properties", h.GetProperties)
	r.GET("/api/properties/:id", h.GetPropertyByID)

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}
