package handlers

import (
	"net/http"

	"crm-dashboard-backend/internal/auth"
	"crm-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// GetOrganization handles GET /api/organizations/:id
// @Summary Get organization by ID
// @Description Get one organization; callers only see their own tenant
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Organization"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /api/organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, ok := h.tenantID(c)
	if !ok {
		return
	}

	org, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

// CreateOrganization handles POST /api/organizations
// @Summary Create organization
// @Description Create an organization; owner role required
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Created organization"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /api/organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	org, err := h.service.Create(auth.CurrentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, org)
}

// UpdateOrganization handles PATCH /api/organizations/:id
// @Summary Update organization
// @Description Apply a partial update to the caller's organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param organization body service.UpdateOrganizationRequest true "Fields to update"
// @Success 200 {object} service.OrganizationResponse "Updated organization"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /api/organizations/{id} [patch]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	id, ok := h.tenantID(c)
	if !ok {
		return
	}

	var req service.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	org, err := h.service.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

// DeleteOrganization handles DELETE /api/organizations/:id
// @Summary Delete organization
// @Description Delete the caller's organization; owner role required, users and items cascade
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 204 "Organization deleted"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /api/organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, ok := h.tenantID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(auth.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetOrganizationStats handles GET /api/organizations/:id/stats
// @Summary Organization stats
// @Description Summarize the organization's membership and recent item activity
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationStatsResponse "Organization stats"
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /api/organizations/{id}/stats [get]
func (h *OrganizationHandler) GetOrganizationStats(c *gin.Context) {
	id, ok := h.tenantID(c)
	if !ok {
		return
	}

	stats, err := h.service.Stats(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// tenantID parses the path ID and confines callers to their own tenant:
// another organization's ID reads as not found, never as a peek across
// tenants.
func (h *OrganizationHandler) tenantID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization ID"})
		return uuid.Nil, false
	}

	org := auth.CurrentOrganization(c)
	if org == nil || org.ID != id {
		c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
		return uuid.Nil, false
	}
	return id, true
}
