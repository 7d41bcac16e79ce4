package handlers

import (
	"net/http"

	"crm-dashboard-backend/internal/auth"
	"crm-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for organization members
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers handles GET /api/users
// @Summary List users
// @Description List the organization's members
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{} "Users of the organization"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListByOrganization(auth.CurrentOrganization(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// GetUser handles GET /api/users/:id
// @Summary Get user by ID
// @Description Get one member of the organization
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "User"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	user, err := h.service.GetByID(auth.CurrentOrganization(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangeRole handles PATCH /api/users/:id/change_role
// @Summary Change user role
// @Description Assign a new role to a member of the organization
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param role body service.ChangeRoleRequest true "New role"
// @Success 200 {object} service.UserResponse "Updated user"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /api/users/{id}/change_role [patch]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	var req service.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	user, err := h.service.ChangeRole(auth.CurrentOrganization(c), auth.CurrentUser(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ToggleActive handles PATCH /api/users/:id/toggle_active
// @Summary Toggle user active flag
// @Description Flip a member's active flag
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} service.UserResponse "Updated user"
// @Failure 400 {object} ErrorResponse "Invalid user ID"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /api/users/{id}/toggle_active [patch]
func (h *UserHandler) ToggleActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	user, err := h.service.ToggleActive(auth.CurrentOrganization(c), auth.CurrentUser(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
