package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/villa-upsell/backend/internal/application/orders"
	"github.com/villa-upsell/backend/internal/domain/rental"
	"github.com/villa-upsell/backend/internal/interfaces/http/dto"
	"github.com/villa-upsell/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// OrderHandler serves the order-management endpoints
type OrderHandler struct {
	BaseHandler
	service *orders.Service
	logger  *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(service *orders.Service, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{service: service, logger: logger}
}

// RegisterRoutes registers the order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/orders")
	{
		group.GET("", h.List)
		group.GET("/recent", h.Recent)
		group.GET("/stats", h.Stats)
		group.GET("/export", h.Export)
		group.GET("/:id", h.Show)
		group.PATCH("/:id/status", h.UpdateStatus)
	}
}

type listOrdersQuery struct {
	Status     string `form:"status" binding:"omitempty,oneof=pending confirmed fulfilled cancelled"`
	PropertyID string `form:"property_id" binding:"omitempty,uuid"`
	DateFrom   string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
}

func (q *listOrdersQuery) toFilter() rental.OrderFilter {
	filter := rental.OrderFilter{
		Status: rental.OrderStatus(q.Status),
		Page:   q.Page,
	}
	if q.PropertyID != "" {
		id := uuid.MustParse(q.PropertyID)
		filter.PropertyID = &id
	}
	if q.DateFrom != "" {
		from, _ := time.Parse(dateLayout, q.DateFrom)
		filter.DateFrom = &from
	}
	if q.DateTo != "" {
		to, _ := time.Parse(dateLayout, q.DateTo)
		filter.DateTo = &to
	}
	return filter
}

// List returns one page of the caller's orders
func (h *OrderHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var query listOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Invalid list parameters: "+middleware.ValidationMessage(err))
		return
	}

	result, err := h.service.List(c.Request.Context(), userID, query.toFilter())
	if err != nil {
		h.logger.Error("Failed to list orders", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, dto.ToOrderResponses(result.Orders), result.Total, result.Page, result.PageSize)
}

// Show returns a single owned order with relations
func (h *OrderHandler) Show(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.service.Get(c.Request.Context(), userID, orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.ToOrderResponse(order))
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed fulfilled cancelled"`
}

// UpdateStatus transitions an owned order to a new status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.UnprocessableEntity(c, "status must be one of pending, confirmed, fulfilled, cancelled")
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), userID, orderID, rental.OrderStatus(req.Status))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.ToOrderResponse(order))
}

// Recent returns the ten newest owned orders
func (h *OrderHandler) Recent(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	recent, err := h.service.Recent(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load recent orders", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.ToOrderResponses(recent))
}

// Stats returns the caller's order statistics
func (h *OrderHandler) Stats(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load order stats", zap.Error(err))
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, dto.ToOrderStatsResponse(stats))
}

type exportOrdersQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed fulfilled cancelled"`
	Date   string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Vendor string `form:"vendor"`
}

// Export streams the caller's filtered orders as CSV. The whole
// operation sits behind one failure boundary: any panic is logged with
// its stack and turned into a generic 500.
func (h *OrderHandler) Export(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Orders export failed",
				zap.Any("error", r),
				zap.Stack("stacktrace"),
			)
			h.InternalError(c, "Export failed")
		}
	}()

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var query exportOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Invalid export parameters: "+middleware.ValidationMessage(err))
		return
	}

	filter := rental.OrderFilter{
		Status:     rental.OrderStatus(query.Status),
		VendorName: query.Vendor,
	}
	if query.Date != "" {
		date, _ := time.Parse(dateLayout, query.Date)
		filter.Date = &date
	}

	file, err := h.service.Export(c.Request.Context(), userID, filter)
	if err != nil {
		h.logger.Error("Orders export failed", zap.Error(err), zap.Stack("stacktrace"))
		h.InternalError(c, "Export failed: "+err.Error())
		return
	}
	h.WriteCSV(c, file)
}
