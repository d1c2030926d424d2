package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/uni-portal-api/internal/service"
	"github.com/noah-isme/uni-portal-api/pkg/response"
)

// AnalyticsHandler exposes the analytics page aggregates.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
}

// NewAnalyticsHandler constructs AnalyticsHandler.
func NewAnalyticsHandler(analytics *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Overview returns the GPA trend, grade distribution and attendance summary.
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	result, err := h.analytics.Analytics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}
