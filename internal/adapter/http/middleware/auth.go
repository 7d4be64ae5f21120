package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const APIKeyHeader = "x-api-key"

// APIKeyAuth rejects any request whose x-api-key header does not match the
// configured secret, before any other processing.
func APIKeyAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			log.Printf("[auth][middleware] rejected request path=%s key_present=%t", c.FullPath(), key != "")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "invalid or missing API key"})
			return
		}
		c.Next()
	}
}
