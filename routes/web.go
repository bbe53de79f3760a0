package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupWebRoutes registers the informational root routes.
func SetupWebRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Barangay API",
			"version": "1.0.0",
			"docs":    "/docs",
		})
	})

	router.GET("/docs", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"api": "Barangay API v1",
			"endpoints": map[string]string{
				"search":                    "POST /search_barangay",
				"regions":                   "GET /regions",
				"provinces_and_hucs":        "GET /{region}/provinces_and_highly_urbanized_cities",
				"municipalities_and_cities": "GET /{region}/{province_or_huc}/municipalities_and_cities",
				"barangays":                 "GET /{region}/{province_or_huc}/{municipality_or_city}/barangays",
				"by_id":                     "GET /id/{psgc_id}",
				"by_name":                   "GET /name/{name}",
				"health":                    "GET /health",
			},
		})
	})
}
