package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/uni-portal-api/internal/service"
	"github.com/noah-isme/uni-portal-api/pkg/response"
)

// DashboardHandler exposes the admin dashboard KPI endpoint.
type DashboardHandler struct {
	analytics *service.AnalyticsService
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(analytics *service.AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analytics: analytics}
}

// Kpis returns the headline dashboard numbers.
func (h *DashboardHandler) Kpis(c *gin.Context) {
	kpis, err := h.analytics.DashboardKpis(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, kpis, nil)
}
