package handlers

import (
	"errors"
	"net/http"

	"resourcebooking/middleware"
	"resourcebooking/models"
	"resourcebooking/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	UserService user.UserService
	Logger      *zap.Logger
}

// GetUserByIDHandler handles GET /api/users/:id.
func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	usr, err := h.UserService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		internalError(c, logger, "Failed to fetch user", err)
		return
	}
	if usr == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ListUsersHandler handles GET /api/users/all?institutionId=.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	institutionID := c.Query("institutionId")
	if institutionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "institutionId query parameter is required"})
		return
	}
	users, err := h.UserService.ListByInstitution(c.Request.Context(), institutionID)
	if err != nil {
		internalError(c, logger, "Failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// RegisterUserHandler handles POST /api/users. Anyone may register, but only
// an authenticated admin may create another admin.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	var usr models.User
	if err := c.ShouldBindJSON(&usr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user", "details": err.Error()})
		return
	}
	if !isAdmin(c) {
		usr.Role = models.RoleUser
	}
	if err := h.UserService.Create(c.Request.Context(), &usr); err != nil {
		h.writeUserError(c, logger, "Failed to create user", err)
		return
	}
	c.JSON(http.StatusCreated, usr)
}

// UpdateUserHandler handles PUT /api/users/:id. Users may update only their
// own record and cannot change their role.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	id := c.Param("id")
	if !h.canManage(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}
	var usr models.User
	if err := c.ShouldBindJSON(&usr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user", "details": err.Error()})
		return
	}
	if !isAdmin(c) {
		// Keeps the stored role.
		usr.Role = ""
	}
	outcome, err := h.UserService.Update(c.Request.Context(), id, usr)
	if err != nil {
		h.writeUserError(c, logger, "Failed to update user", err)
		return
	}
	respondOutcome(c, outcome, "User")
}

// DeleteUserHandler handles DELETE /api/users/:id.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	logger := getLogger(c, h.Logger)
	id := c.Param("id")
	if !h.canManage(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}
	outcome, err := h.UserService.Delete(c.Request.Context(), id)
	if err != nil {
		internalError(c, logger, "Failed to delete user", err)
		return
	}
	respondOutcome(c, outcome, "User")
}

func (h *UserHandler) canManage(c *gin.Context, id string) bool {
	return isAdmin(c) || c.GetString(middleware.ContextUserID) == id
}

func (h *UserHandler) writeUserError(c *gin.Context, logger *zap.Logger, message string, err error) {
	switch {
	case errors.Is(err, user.ErrMissingCredentials), errors.Is(err, user.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrUsernameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		internalError(c, logger, message, err)
	}
}
