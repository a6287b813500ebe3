package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/biztrackr/biz_tracker_app/internal/apperrors"
	portssvc "github.com/biztrackr/biz_tracker_app/internal/core/ports/services"
	"github.com/biztrackr/biz_tracker_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the aggregate figures the home screen renders.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		reportingService: rs,
	}
}

// registerDashboardRoutes registers the dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(reportingService)
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get dashboard figures
// @Description Returns the caller's profile name, task list and aggregate budget/spend/transaction totals.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dashboard, err := h.reportingService.GetDashboard(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
