package handlers

import (
	"net/http"
	"time"

	"crm-dashboard-backend/internal/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB, cfg *config.Config) *HealthHandler {
	return &HealthHandler{db: db, cfg: cfg}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Database  string    `json:"database"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Message string `json:"message,omitempty"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the health status of the application including database connectivity
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse "Application health report"
// @Router /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.cfg.Version,
		Database:  "connected",
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		response.Database = "error"
	} else if err := sqlDB.Ping(); err != nil {
		response.Database = "disconnected"
	}

	// The endpoint reports degradation in the body; it only fails when the
	// process itself is unreachable.
	c.JSON(http.StatusOK, response)
}
