package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"crm-dashboard-backend/internal/auth"
	"crm-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ItemHandler handles HTTP requests for items
type ItemHandler struct {
	service service.ItemServiceInterface
}

// NewItemHandler creates a new item handler
func NewItemHandler(service service.ItemServiceInterface) *ItemHandler {
	return &ItemHandler{service: service}
}

// ListItems handles GET /api/items
// @Summary List items
// @Description List the organization's items with filtering, pagination and aggregations
// @Tags items
// @Accept json
// @Produce json
// @Param search query string false "Substring match against name or description"
// @Param status query string false "Status filter, repeatable or comma-separated; accepts completed/failed aliases"
// @Param category query string false "Category filter, repeatable or comma-separated"
// @Param date_range query string false "Named range preset" Enums(today, yesterday, this_week, last_week, this_month, last_month, last_30_days)
// @Param start_date query string false "Explicit range start (RFC3339 or YYYY-MM-DD)"
// @Param end_date query string false "Explicit range end (RFC3339 or YYYY-MM-DD)"
// @Param agent_id query string false "Creator user ID (UUID)"
// @Param page query int false "Page number, default 1"
// @Param per_page query int false "Page size, default 25, max 100"
// @Success 200 {object} service.ListItemsResponse "Items page with aggregations"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Organization required"
// @Failure 422 {object} ErrorResponse "Invalid filter value"
// @Security BearerAuth
// @Router /api/items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	req := &service.ListItemsRequest{
		Search:     c.Query("search"),
		Statuses:   multiValueQuery(c, "status"),
		Categories: multiValueQuery(c, "category"),
		DateRange:  c.Query("date_range"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		AgentID:    c.Query("agent_id"),
		Page:       intQuery(c, "page", 1),
		PerPage:    intQuery(c, "per_page", service.DefaultPerPage),
	}

	response, err := h.service.List(auth.CurrentOrganization(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// CountItems handles GET /api/items/count
// @Summary Count items
// @Description Count the organization's items
// @Tags items
// @Produce json
// @Success 200 {object} map[string]int64 "Item count"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /api/items/count [get]
func (h *ItemHandler) CountItems(c *gin.Context) {
	count, err := h.service.Count(auth.CurrentOrganization(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetItem handles GET /api/items/:id
// @Summary Get item by ID
// @Description Get one item of the organization
// @Tags items
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Success 200 {object} service.ItemResponse "Item"
// @Failure 400 {object} ErrorResponse "Invalid item ID"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Security BearerAuth
// @Router /api/items/{id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}

	item, err := h.service.GetByID(auth.CurrentOrganization(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// CreateItem handles POST /api/items
// @Summary Create item
// @Description Create an item in the organization, attributed to the caller
// @Tags items
// @Accept json
// @Produce json
// @Param item body service.CreateItemRequest true "Item data"
// @Success 201 {object} service.ItemResponse "Created item"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /api/items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var req service.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	item, err := h.service.Create(auth.CurrentOrganization(c), auth.CurrentUser(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PATCH /api/items/:id
// @Summary Update item
// @Description Apply a partial update to one item of the organization
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Param item body service.UpdateItemRequest true "Fields to update"
// @Success 200 {object} service.ItemResponse "Updated item"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /api/items/{id} [patch]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}

	var req service.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	item, err := h.service.Update(auth.CurrentOrganization(c), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem handles DELETE /api/items/:id
// @Summary Delete item
// @Description Delete one item of the organization
// @Tags items
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Success 204 "Item deleted"
// @Failure 400 {object} ErrorResponse "Invalid item ID"
// @Failure 404 {object} ErrorResponse "Item not found"
// @Security BearerAuth
// @Router /api/items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item ID"})
		return
	}

	if err := h.service.Delete(auth.CurrentOrganization(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// multiValueQuery collects a repeatable query parameter, splitting
// comma-separated values
func multiValueQuery(c *gin.Context, name string) []string {
	var values []string
	for _, raw := range c.QueryArray(name) {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				values = append(values, trimmed)
			}
		}
	}
	return values
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
