package handlers

import (
	"errors"
	"net/http"

	"resourcebooking/models"
	"resourcebooking/services/cascade"
	"resourcebooking/services/errorreport"
	"resourcebooking/services/resource"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ResourceHandler struct {
	ResourceService    resource.ResourceService
	ErrorReportService errorreport.ErrorReportService
	Cascade            *cascade.Coordinator
	Logger             *zap.Logger
}

// GetResourceHandler handles GET /api/resources/:id.
func (h *ResourceHandler) GetResourceHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	res, err := h.ResourceService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, logger, "Failed to fetch resource", err)
		return
	}
	if res == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListResourcesHandler handles GET /api/resources/all?institutionId=.
func (h *ResourceHandler) ListResourcesHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	institutionID := c.Query("institutionId")
	if institutionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "institutionId query parameter is required"})
		return
	}
	resources, err := h.ResourceService.ListByInstitution(c.Request.Context(), institutionID)
	if err != nil {
		internalError(c, logger, "Failed to list resources", err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

// ResourceHealthHandler handles GET /api/resources/:id/health.
func (h *ResourceHandler) ResourceHealthHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	health, err := h.ErrorReportService.ResourceHealth(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, logger, "Failed to check resource health", err)
		return
	}
	c.JSON(http.StatusOK, health)
}

// CreateResourceHandler handles POST /api/resources.
func (h *ResourceHandler) CreateResourceHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var res models.Resource
	if err := c.ShouldBindJSON(&res); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource", "details": err.Error()})
		return
	}
	if err := h.ResourceService.Create(c.Request.Context(), &res); err != nil {
		if errors.Is(err, resource.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		internalError(c, logger, "Failed to create resource", err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateResourceHandler handles PUT /api/resources/:id.
func (h *ResourceHandler) UpdateResourceHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var res models.Resource
	if err := c.ShouldBindJSON(&res); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource", "details": err.Error()})
		return
	}
	outcome, err := h.ResourceService.Update(c.Request.Context(), c.Param("id"), res)
	if err != nil {
		if errors.Is(err, resource.ErrNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		internalError(c, logger, "Failed to update resource", err)
		return
	}
	respondOutcome(c, outcome, "Resource")
}

// DeleteResourceHandler handles DELETE /api/resources/:id. Future bookings
// are cleared and open error reports resolved before the resource goes.
func (h *ResourceHandler) DeleteResourceHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	report, err := h.Cascade.DeleteResource(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, logger, "Failed to delete resource", err)
		return
	}
	respondOutcome(c, report.Outcome, "Resource")
}
