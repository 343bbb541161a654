package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxPayloadBytes matches the HTTP API request payload quota
const MaxPayloadBytes int64 = 10 * 1024 * 1024

// RequestSizeLimit limits the size of request bodies
func RequestSizeLimit(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"message": "Request Entity Too Large",
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}
