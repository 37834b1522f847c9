package errors

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/constants"
)

const genericInternalMessage = "Internal server error"

// ValidationError is the 400 body for requests that fail binding.
type ValidationError struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields"`
	URL       string            `json:"url"`
	Timestamp time.Time         `json:"timestamp"`
}

// Respond writes the response for a service error.
func Respond(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = Internal("unclassified error", err)
	}

	switch e.Kind {
	case KindNotFound:
		NotFound(c, e.Message)
	case KindConflict:
		Conflict(c, e.Message)
	case KindUnauthorized:
		Unauthorized(c, e.Message)
	case KindInvalidCredentials:
		InvalidCredentials(c, e.Message)
	default:
		log.Printf("[%s] %s %s: %v", c.GetString(constants.ContextKeyRequestID), c.Request.Method, c.Request.URL.Path, e)
		InternalError(c, genericInternalMessage)
	}
}

// ValidationFailed sends a 400 response listing every invalid field.
func ValidationFailed(c *gin.Context, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationError{
		Code:      ErrCodeInvalidInput,
		Message:   "Validation failed",
		Fields:    fields,
		URL:       requestURL(c),
		Timestamp: time.Now().UTC(),
	})
}

func requestURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.Path
}
