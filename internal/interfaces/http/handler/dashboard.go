package handler

import (
	dashboardapp "github.com/assettrack/backend/internal/application/dashboard"
	notificationapp "github.com/assettrack/backend/internal/application/notification"
	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the read-only aggregates
type DashboardHandler struct {
	BaseHandler
	dashboardService    *dashboardapp.DashboardService
	notificationService *notificationapp.NotificationService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(
	dashboardService *dashboardapp.DashboardService,
	notificationService *notificationapp.NotificationService,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:    dashboardService,
		notificationService: notificationService,
	}
}

// Stats godoc
// @ID           dashboardStats
// @Summary      Inventory statistics
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} APIResponse[dashboardapp.Stats]
// @Security     BearerAuth
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// PendingAccessories godoc
// @ID           pendingAccessories
// @Summary      Accessories still outstanding after a return
// @Tags         notifications
// @Produce      json
// @Success      200 {object} APIResponse[[]notificationapp.PendingAccessory]
// @Security     BearerAuth
// @Router       /notifications/pending-accessories [get]
func (h *DashboardHandler) PendingAccessories(c *gin.Context) {
	items, err := h.notificationService.PendingAccessories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, items)
}
