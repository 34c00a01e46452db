package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireJSON rejects requests whose Content-Type is not application/json
// with 415 before the handler reads the body. Mount it on routes that accept
// a request body.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != "application/json" {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
				"message": "Content-Type must be application/json",
			})
			return
		}
		c.Next()
	}
}
