package handlers

import (
	"net/http"

	"drdhobi/middleware"
	"drdhobi/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves user administration endpoints.
type AdminHandler struct {
	UserService user.UserService
}

// GetAllUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	logger := getLogger(c)

	users, err := h.UserService.GetAll()
	if err != nil {
		logger.Error("Failed to fetch users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// SetRoleHandler handles PATCH /api/admin/users/:id/role.
func (h *AdminHandler) SetRoleHandler(c *gin.Context) {
	logger := getLogger(c)
	targetID := c.Param("id")
	actorID := c.GetString("userID")

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.UserService.SetRole(actorID, targetID, req.Role); err != nil {
		logger.Error("Failed to set role",
			zap.String("target", targetID), zap.String("role", req.Role), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The role is cached by the auth layer; drop it so the change takes
	// effect on the target's next request.
	middleware.InvalidateRoleCache(targetID)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteUserHandler handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.UserService.Delete(id); err != nil {
		logger.Error("Failed to delete user", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	middleware.InvalidateRoleCache(id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
