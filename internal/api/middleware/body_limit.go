package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planeacion/backend/pkg/response"
)

// CodeBodyTooLarge is returned with 413.
const CodeBodyTooLarge = 41300

// BodyLimit caps the request body at maxBytes. Declared oversize bodies are
// rejected up front; chunked ones fail at read time with *http.MaxBytesError.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			response.AbortError(c, http.StatusRequestEntityTooLarge, CodeBodyTooLarge, "Cuerpo de la petición demasiado grande")
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
