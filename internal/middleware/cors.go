package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows browser clients from any origin. The API carries no
// cookies, auth travels in the Authorization header, so credentials stay off.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:   []string{"Content-Length", "X-Request-ID"},
	})
}
