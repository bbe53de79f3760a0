package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/barangay-api/app/requests"
	"github.com/barangay-api/app/responses"
	"github.com/barangay-api/app/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BarangayController translates HTTP calls into lookup and search service
// calls and serializes the results.
type BarangayController struct {
	lookupService *services.LookupService
	searchService *services.SearchService
	logger        *zap.Logger
	startTime     time.Time
}

// NewBarangayController creates the controller.
func NewBarangayController(lookupService *services.LookupService, searchService *services.SearchService, logger *zap.Logger) *BarangayController {
	return &BarangayController{
		lookupService: lookupService,
		searchService: searchService,
		logger:        logger,
		startTime:     time.Now(),
	}
}

// SearchBarangay handles POST /search_barangay.
func (bc *BarangayController) SearchBarangay(c *gin.Context) {
	var req requests.SearchBarangayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:     responses.ErrInvalidRequest,
			Message:   "Malformed request: " + err.Error(),
			RequestID: requestID(c),
		})
		return
	}

	result, err := bc.searchService.SearchBarangay(c.Request.Context(), req)
	if err != nil {
		bc.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetRegions handles GET /regions.
func (bc *BarangayController) GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, bc.lookupService.Regions())
}

// GetProvincesAndCities handles
// GET /:region/provinces_and_highly_urbanized_cities.
func (bc *BarangayController) GetProvincesAndCities(c *gin.Context) {
	names, err := bc.lookupService.ProvincesAndCities(c.Param("region"))
	if err != nil {
		bc.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// GetMunicipalitiesAndCities handles
// GET /:region/:province_or_huc/municipalities_and_cities.
func (bc *BarangayController) GetMunicipalitiesAndCities(c *gin.Context) {
	names, err := bc.lookupService.MunicipalitiesAndCities(
		c.Param("region"),
		c.Param("province_or_huc"),
	)
	if err != nil {
		bc.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// GetBarangays handles
// GET /:region/:province_or_huc/:municipality_or_city/barangays.
func (bc *BarangayController) GetBarangays(c *gin.Context) {
	names, err := bc.lookupService.Barangays(
		c.Param("region"),
		c.Param("province_or_huc"),
		c.Param("municipality_or_city"),
	)
	if err != nil {
		bc.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, names)
}

// GetAreaByID handles GET /id/:id.
func (bc *BarangayController) GetAreaByID(c *gin.Context) {
	area, err := bc.lookupService.ByID(c.Param("id"))
	if err != nil {
		bc.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, area)
}

// GetAreasByName handles GET /name/:name. An empty list is a valid
// answer, not a 404.
func (bc *BarangayController) GetAreasByName(c *gin.Context) {
	c.JSON(http.StatusOK, bc.lookupService.ByName(c.Param("name")))
}

// HealthCheck handles GET /health.
func (bc *BarangayController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    time.Since(bc.startTime).String(),
		Version:   "1.0.0",
		Dataset:   bc.lookupService.Stats(),
	})
}

// renderError maps service errors onto the HTTP error taxonomy.
func (bc *BarangayController) renderError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	var invalid *services.InvalidRequestError

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:     responses.ErrNotFound,
			Message:   notFound.Message(),
			RequestID: requestID(c),
		})
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:     responses.ErrInvalidRequest,
			Message:   invalid.Message(),
			RequestID: requestID(c),
		})
	default:
		bc.logger.Error("Request failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:     responses.ErrInternal,
			Message:   "Internal error: " + err.Error(),
			RequestID: requestID(c),
		})
	}
}

// requestID reads the ID set by the request-ID middleware.
func requestID(c *gin.Context) string {
	return c.GetString("request_id")
}
