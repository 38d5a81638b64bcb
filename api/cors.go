package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AllowedOrigins is the exact-match CORS allow-list. No wildcards, no
// case folding.
var AllowedOrigins = []string{
	"http://localhost:8080",
	"https://readright.appwrite.network",
}

// OriginHeader returns the origin unchanged when it is allow-listed, else
// empty string. The empty string is still sent on the wire.
func OriginHeader(origin string) string {
	for _, allowed := range AllowedOrigins {
		if origin == allowed {
			return origin
		}
	}
	return ""
}

// CORSMiddleware stamps Access-Control-Allow-Origin on every response and
// answers preflight requests with an empty 200.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := OriginHeader(c.GetHeader("Origin"))
		// Set directly on the header map: gin's c.Header deletes the
		// key for empty values, but the contract is an empty header,
		// not an absent one.
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)

		if c.Request.Method == http.MethodOptions {
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Status(http.StatusOK)
			c.Abort()
			return
		}

		c.Next()
	}
}
