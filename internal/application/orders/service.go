// Package orders implements the order-management operations: listing,
// retrieval, status transitions and the CSV export.
package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/villa-upsell/backend/internal/application/reporting"
	"github.com/villa-upsell/backend/internal/domain/rental"
	"github.com/villa-upsell/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PageSize is the fixed page size of the order listing.
const PageSize = 20

// RecentLimit caps the recent-orders listing.
const RecentLimit = 10

// Service exposes the order-management operations.
type Service struct {
	orders rental.OrderRepository
	stats  *reporting.StatsService
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new orders Service.
func NewService(orders rental.OrderRepository, stats *reporting.StatsService, logger *zap.Logger) *Service {
	return &Service{
		orders: orders,
		stats:  stats,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ListResult is one page of orders plus pagination metadata.
type ListResult struct {
	Orders   []rental.Order
	Total    int64
	Page     int
	PageSize int
}

// List returns one page of the caller's orders, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, filter rental.OrderFilter) (*ListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	filter.PageSize = PageSize

	orders, total, err := s.orders.FindOwnedByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Orders:   orders,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// Get loads one order with relations. Orders on properties the caller
// does not own are reported as forbidden, not as missing.
func (s *Service) Get(ctx context.Context, userID, orderID uuid.UUID) (*rental.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Property == nil || !order.Property.OwnedBy(userID) {
		return nil, shared.ErrForbidden
	}
	return order, nil
}

// UpdateStatus transitions an owned order to the given status. Entering
// the fulfilled state stamps the fulfillment time; every other status
// leaves it untouched.
func (s *Service) UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, status rental.OrderStatus) (*rental.Order, error) {
	order, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.TransitionTo(status, s.now()); err != nil {
		return nil, err
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Recent returns the ten newest owned orders.
func (s *Service) Recent(ctx context.Context, userID uuid.UUID) ([]rental.Order, error) {
	return s.orders.RecentOwnedByUser(ctx, userID, RecentLimit)
}

// Stats returns the caller's order statistics.
func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (*rental.OrderStats, error) {
	return s.stats.OrderStats(ctx, userID)
}

var exportHeader = []string{
	"Order ID",
	"Date",
	"Property Name",
	"Upsell Title",
	"Vendor Name",
	"Guest Name",
	"Guest Email",
	"Guest Phone",
	"Amount",
	"Currency",
	"Status",
	"Payment Method",
	"Stripe Payment Intent ID",
	"Order Details",
	"Created At",
	"Updated At",
}

// Export renders the caller's filtered orders as CSV, including the raw
// serialized order details column.
func (s *Service) Export(ctx context.Context, userID uuid.UUID, filter rental.OrderFilter) (*reporting.CSVFile, error) {
	orders, err := s.orders.FindAllOwnedByUser(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Orders export request",
		zap.String("user_id", userID.String()),
		zap.Int("orders_count", len(orders)),
		zap.String("status_filter", string(filter.Status)),
		zap.String("vendor_filter", filter.VendorName),
		zap.Bool("date_filter", filter.Date != nil),
	)

	builder := reporting.NewCSVBuilder()
	builder.WriteRow(exportHeader...)
	for i := range orders {
		order := &orders[i]
		builder.WriteRow(
			order.ID.String(),
			reporting.FormatDate(order.CreatedAt),
			order.PropertyName(),
			order.UpsellTitle(),
			order.VendorName(),
			order.GuestName,
			order.GuestEmail,
			order.GuestPhone,
			reporting.FormatAmount(order.Amount),
			order.Currency,
			reporting.FormatStatus(order.Status),
			reporting.PaymentMethodOrDefault(order),
			reporting.PaymentIntentOrNA(order),
			reporting.OrderDetailsOrEmpty(order),
			reporting.FormatDateTime(order.CreatedAt),
			reporting.FormatDateTime(order.UpdatedAt),
		)
	}

	return &reporting.CSVFile{
		Filename: fmt.Sprintf("orders_export_%s.csv", reporting.FormatDate(s.now())),
		Content:  builder.String(),
	}, nil
}
