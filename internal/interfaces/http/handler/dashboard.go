package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/villa-upsell/backend/internal/application/dashboard"
	"github.com/villa-upsell/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// defaultPeriodDays is the trailing window used when the client does
// not pass one.
const defaultPeriodDays = 30

// DashboardHandler serves the dashboard reporting endpoints
type DashboardHandler struct {
	BaseHandler
	service *dashboard.Service
	logger  *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *dashboard.Service, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, logger: logger}
}

// RegisterRoutes registers the dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/dashboard")
	{
		group.GET("/stats", h.Stats)
		group.GET("/recent-orders", h.RecentOrders)
		group.GET("/revenue-analytics", h.RevenueAnalytics)
		group.GET("/upsell-analytics", h.UpsellAnalytics)
		group.GET("/accounting/export", h.ExportAccounting)
		group.GET("/accounting/summary", h.AccountingSummary)
	}
}

func periodDays(c *gin.Context) int {
	var query struct {
		Period int `form:"period" binding:"omitempty,min=1,max=365"`
	}
	if err := c.ShouldBindQuery(&query); err != nil || query.Period == 0 {
		return defaultPeriodDays
	}
	return query.Period
}

// Stats returns the dashboard headline statistics
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load dashboard stats", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, stats)
}

// RecentOrders returns the five newest owned orders
func (h *DashboardHandler) RecentOrders(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := h.service.RecentOrders(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load recent orders", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.ToOrderResponses(orders))
}

// RevenueAnalytics returns the zero-filled daily revenue series
func (h *DashboardHandler) RevenueAnalytics(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	points, err := h.service.RevenueAnalytics(c.Request.Context(), userID, periodDays(c))
	if err != nil {
		h.logger.Error("Failed to load revenue analytics", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, points)
}

// UpsellAnalytics returns per-upsell order volume and revenue
func (h *DashboardHandler) UpsellAnalytics(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	points, err := h.service.UpsellAnalytics(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load upsell analytics", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, points)
}

// ExportAccounting streams the accounting CSV
func (h *DashboardHandler) ExportAccounting(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if format := c.Query("format"); format != "" && format != "csv" {
		h.BadRequest(c, "Only the csv format is supported")
		return
	}

	file, err := h.service.ExportAccounting(c.Request.Context(), userID, periodDays(c))
	if err != nil {
		h.logger.Error("Failed to export accounting data", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}
	h.WriteCSV(c, file)
}

// AccountingSummary returns the aggregated accounting figures
func (h *DashboardHandler) AccountingSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	summary, err := h.service.AccountingSummary(c.Request.Context(), userID, periodDays(c))
	if err != nil {
		h.logger.Error("Failed to load accounting summary", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, summary)
}
