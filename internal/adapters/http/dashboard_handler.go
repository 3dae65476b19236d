package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lifeboard/core/internal/infrastructure/logger"
	"github.com/lifeboard/core/internal/ports"
)

// DashboardHandler serves the derived dashboard read model.
type DashboardHandler struct {
	dashboardService ports.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService ports.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetDashboard recomputes and returns the owner's dashboard.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	ownerID := getOwnerIDFromContext(c)

	dashboard, err := h.dashboardService.GetDashboard(c.Request().Context(), ownerID, time.Now().UTC())
	if err != nil {
		h.logger.Error("Get dashboard failed", "error", err, "owner_id", ownerID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load dashboard")
	}

	return c.JSON(http.StatusOK, dashboard)
}
