package routes

import (
	"net/http"

	"github.com/barangay-api/app/controllers"
	"github.com/barangay-api/helpers/utils"
	"github.com/gin-gonic/gin"
)

// SetupAllRoutes wires middleware and every route group onto the router.
func SetupAllRoutes(router *gin.Engine, barangayController *controllers.BarangayController) {
	setupMiddleware(router)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, barangayController)
	SetupAPIRoutes(router, barangayController)

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

// setupMiddleware attaches the middleware chain.
func setupMiddleware(router *gin.Engine) {
	// Recovery middleware
	router.Use(gin.Recovery())

	// Logger middleware
	router.Use(gin.Logger())

	// Request ID middleware
	router.Use(requestIDMiddleware())
}

// requestIDMiddleware tags every request with an ID so error responses
// can be correlated with log lines.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = utils.GenerateUUID()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
