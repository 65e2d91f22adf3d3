package handlers

import (
	"errors"
	"net/http"

	"resourcebooking/models"
	"resourcebooking/services/cascade"
	"resourcebooking/services/institution"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InstitutionHandler struct {
	InstitutionService institution.InstitutionService
	Cascade            *cascade.Coordinator
	Logger             *zap.Logger
}

// GetInstitutionHandler handles GET /api/institutions/:id.
func (h *InstitutionHandler) GetInstitutionHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	inst, err := h.InstitutionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, logger, "Failed to fetch institution", err)
		return
	}
	if inst == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Institution not found"})
		return
	}
	c.JSON(http.StatusOK, inst)
}

// ListInstitutionsHandler handles GET /api/institutions/all.
func (h *InstitutionHandler) ListInstitutionsHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	list, err := h.InstitutionService.List(c.Request.Context())
	if err != nil {
		internalError(c, logger, "Failed to list institutions", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateInstitutionHandler handles POST /api/institutions.
func (h *InstitutionHandler) CreateInstitutionHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var inst models.Institution
	if err := c.ShouldBindJSON(&inst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid institution", "details": err.Error()})
		return
	}
	if err := h.InstitutionService.Create(c.Request.Context(), &inst); err != nil {
		if errors.Is(err, institution.ErrInvalidInstitution) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		internalError(c, logger, "Failed to create institution", err)
		return
	}
	c.JSON(http.StatusCreated, inst)
}

// UpdateInstitutionHandler handles PUT /api/institutions/:id. Changing an
// institution clears its upcoming bookings first.
func (h *InstitutionHandler) UpdateInstitutionHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var inst models.Institution
	if err := c.ShouldBindJSON(&inst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid institution", "details": err.Error()})
		return
	}
	if err := institution.Validate(inst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := h.Cascade.UpdateInstitution(c.Request.Context(), c.Param("id"), inst)
	if err != nil {
		internalError(c, logger, "Failed to update institution", err)
		return
	}
	respondOutcome(c, report.Outcome, "Institution")
}
