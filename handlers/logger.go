package handlers

import (
	"net/http"

	"resourcebooking/middleware"
	"resourcebooking/models"
	"resourcebooking/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped logger from the Gin context, falling
// back to the given one.
func getLogger(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if l, exists := c.Get(middleware.ContextLogger); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return fallback
}

// respondOutcome writes 204 when the target existed and 404 otherwise.
func respondOutcome(c *gin.Context, outcome models.Outcome, entity string) {
	if !outcome.Found() {
		c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func internalError(c *gin.Context, logger *zap.Logger, message string, err error) {
	utils.JSONError(c, logger, http.StatusInternalServerError, message, err.Error())
}

func isAdmin(c *gin.Context) bool {
	return c.GetString(middleware.ContextRole) == models.RoleAdmin
}
