package handlers

import (
	"net/http"

	"crm-dashboard-backend/internal/auth"
	"crm-dashboard-backend/internal/service"
	"crm-dashboard-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles the dashboard statistics endpoint and the live
// channel upgrade
type DashboardHandler struct {
	service service.DashboardServiceInterface
	live    *ws.Server
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service service.DashboardServiceInterface, live *ws.Server) *DashboardHandler {
	return &DashboardHandler{service: service, live: live}
}

// GetStats handles GET /api/dashboard
// @Summary Dashboard statistics
// @Description Composed dashboard snapshot: recent calls, today's summary, live metrics, analytics and platform data
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardStats "Dashboard snapshot"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Organization required"
// @Security BearerAuth
// @Router /api/dashboard [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(
		c.Request.Context(),
		auth.CurrentOrganization(c),
		auth.CurrentUser(c),
		auth.CurrentToken(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// LiveChannel handles GET /ws/dashboard
// @Summary Dashboard live channel
// @Description Upgrade to WebSocket and subscribe to the organization's dashboard topic
// @Tags dashboard
// @Success 101 "Switching protocols"
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Failure 403 {object} ErrorResponse "Organization required"
// @Security BearerAuth
// @Router /ws/dashboard [get]
func (h *DashboardHandler) LiveChannel(c *gin.Context) {
	h.live.Serve(c, auth.CurrentOrganization(c))
}
