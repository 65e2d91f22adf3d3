package handlers

import (
	"errors"
	"net/http"

	"resourcebooking/middleware"
	"resourcebooking/models"
	"resourcebooking/services/errorreport"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ErrorReportHandler struct {
	ErrorReportService errorreport.ErrorReportService
	Logger             *zap.Logger
}

// GetErrorReportHandler handles GET /api/error-reports/:id.
func (h *ErrorReportHandler) GetErrorReportHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	report, err := h.ErrorReportService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, logger, "Failed to fetch error report", err)
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Error report not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// ListErrorReportsHandler handles GET /api/error-reports/all. Either
// institutionId or resourceId selects the reports; institutionId wins when
// both are given.
func (h *ErrorReportHandler) ListErrorReportsHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var (
		reports []models.ErrorReport
		err     error
	)
	switch institutionID, resourceID := c.Query("institutionId"), c.Query("resourceId"); {
	case institutionID != "":
		reports, err = h.ErrorReportService.ListByInstitution(c.Request.Context(), institutionID)
	case resourceID != "":
		reports, err = h.ErrorReportService.ListByResource(c.Request.Context(), resourceID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "institutionId or resourceId query parameter is required"})
		return
	}
	if err != nil {
		internalError(c, logger, "Failed to list error reports", err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// ActiveErrorReportsHandler handles GET /api/error-reports/active?resourceId=.
func (h *ErrorReportHandler) ActiveErrorReportsHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	resourceID := c.Query("resourceId")
	if resourceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resourceId query parameter is required"})
		return
	}
	active, err := h.ErrorReportService.AnyActiveOnResource(c.Request.Context(), resourceID)
	if err != nil {
		internalError(c, logger, "Failed to check error reports", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resourceId": resourceID, "active": active})
}

// CreateErrorReportHandler handles POST /api/error-reports. The reporter
// defaults to the authenticated caller.
func (h *ErrorReportHandler) CreateErrorReportHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var report models.ErrorReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid error report", "details": err.Error()})
		return
	}
	if report.ResourceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resourceId is required"})
		return
	}
	if report.UserID == "" {
		report.UserID = c.GetString(middleware.ContextUserID)
	}
	if err := h.ErrorReportService.Create(c.Request.Context(), &report); err != nil {
		writeReportError(c, logger, "Failed to create error report", err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// UpdateErrorReportHandler handles PUT /api/error-reports/:id.
func (h *ErrorReportHandler) UpdateErrorReportHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var report models.ErrorReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid error report", "details": err.Error()})
		return
	}
	outcome, err := h.ErrorReportService.Update(c.Request.Context(), c.Param("id"), report)
	if err != nil {
		writeReportError(c, logger, "Failed to update error report", err)
		return
	}
	respondOutcome(c, outcome, "Error report")
}

// DeleteErrorReportHandler handles DELETE /api/error-reports/:id.
func (h *ErrorReportHandler) DeleteErrorReportHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	outcome, err := h.ErrorReportService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, logger, "Failed to delete error report", err)
		return
	}
	respondOutcome(c, outcome, "Error report")
}

func writeReportError(c *gin.Context, logger *zap.Logger, message string, err error) {
	if errors.Is(err, errorreport.ErrUnknownResource) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	internalError(c, logger, message, err)
}
