package routes

import (
	"github.com/barangay-api/app/controllers"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes registers the public API surface. The hierarchy routes
// mirror the dataset shape: each path segment validates one level before
// descending.
func SetupAPIRoutes(router *gin.Engine, barangayController *controllers.BarangayController) {
	// Search
	router.POST("/search_barangay", barangayController.SearchBarangay)

	// Form-filling hierarchy walk
	router.GET("/regions", barangayController.GetRegions)
	router.GET("/:region/provinces_and_highly_urbanized_cities", barangayController.GetProvincesAndCities)
	router.GET("/:region/:province_or_huc/municipalities_and_cities", barangayController.GetMunicipalitiesAndCities)
	router.GET("/:region/:province_or_huc/:municipality_or_city/barangays", barangayController.GetBarangays)

	// PSGC record lookup
	router.GET("/id/:id", barangayController.GetAreaByID)
	router.GET("/name/:name", barangayController.GetAreasByName)
}

// SetupHealthRoutes registers the health check endpoints.
func SetupHealthRoutes(router *gin.Engine, barangayController *controllers.BarangayController) {
	router.GET("/health", barangayController.HealthCheck)
}
