package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every 500 returned by the API. Detailed
// carries the underlying error text and is only populated in debug mode.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Detailed   string `json:"detailed,omitempty"`
}

const errorMessage = "An error occurred while processing your request."

// errorBoundary is the single error boundary of the API: it converts both
// panics and errors recorded on the gin context into the fixed JSON error
// shape. Handlers report failures with c.Error and return; nothing below
// this middleware writes a 500 itself.
func errorBoundary(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("%v", r)
				}
				log.Printf("panic recovered on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
				writeError(c, err, debug)
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			log.Printf("request failed on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			writeError(c, err, debug)
		}
	}
}

func writeError(c *gin.Context, err error, debug bool) {
	resp := ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Message:    errorMessage,
	}
	if debug {
		resp.Detailed = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
}
