package handlers

import (
	"net/http"

	"resourcebooking/middleware"
	"resourcebooking/models"
	"resourcebooking/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginHandler struct {
	AuthService auth.AuthService
	Logger      *zap.Logger
}

// AuthenticateHandler handles POST /api/login.
func (h *LoginHandler) AuthenticateHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login request", "details": err.Error()})
		return
	}
	resp, err := h.AuthService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		internalError(c, logger, "Login failed", err)
		return
	}
	if resp == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/login/logout by revoking the caller's token.
func (h *LoginHandler) LogoutHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	if err := h.AuthService.Revoke(c.Request.Context(), c.GetString(middleware.ContextToken)); err != nil {
		internalError(c, logger, "Logout failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}
