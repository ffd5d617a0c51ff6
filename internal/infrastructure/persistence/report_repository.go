package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/villa-upsell/backend/internal/domain/rental"
	"github.com/villa-upsell/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReportRepository implements rental.ReportRepository with SQL
// aggregation queries. Both the dashboard and the order listing derive
// their statistics from this one place.
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

func (r *GormReportRepository) ownedScope(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Joins("JOIN properties ON properties.id = orders.property_id").
		Where("properties.user_id = ?", userID)
}

// OrderStatsFor computes the order statistics block in a single pass:
// total order count, pending count, all-time revenue and revenue inside
// the given month window. Cancelled orders never count toward revenue.
func (r *GormReportRepository) OrderStatsFor(ctx context.Context, userID uuid.UUID, monthStart, monthEnd time.Time) (*rental.OrderStats, error) {
	var row struct {
		TotalOrders    int64
		PendingOrders  int64
		TotalRevenue   decimal.Decimal
		MonthlyRevenue decimal.Decimal
	}

	err := r.ownedScope(ctx, userID).
		Select(`
			COUNT(*) AS total_orders,
			COALESCE(SUM(CASE WHEN orders.status = ? THEN 1 ELSE 0 END), 0) AS pending_orders,
			COALESCE(SUM(CASE WHEN orders.status <> ? THEN orders.amount ELSE 0 END), 0) AS total_revenue,
			COALESCE(SUM(CASE WHEN orders.status <> ? AND orders.created_at >= ? AND orders.created_at < ? THEN orders.amount ELSE 0 END), 0) AS monthly_revenue`,
			rental.OrderStatusPending,
			rental.OrderStatusCancelled,
			rental.OrderStatusCancelled, monthStart, monthEnd).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &rental.OrderStats{
		TotalOrders:    row.TotalOrders,
		PendingOrders:  row.PendingOrders,
		TotalRevenue:   row.TotalRevenue,
		MonthlyRevenue: row.MonthlyRevenue,
	}, nil
}

// DailyRevenueFor returns per-day revenue totals for orders created on
// or after the period start. Days without orders are absent from the
// result; the caller zero-fills the series.
func (r *GormReportRepository) DailyRevenueFor(ctx context.Context, userID uuid.UUID, since time.Time) ([]rental.DailyRevenue, error) {
	var rows []struct {
		Day   string
		Total decimal.Decimal
	}

	err := r.ownedScope(ctx, userID).
		Select("CAST(DATE(orders.created_at) AS TEXT) AS day, COALESCE(SUM(orders.amount), 0) AS total").
		Where("orders.status <> ?", rental.OrderStatusCancelled).
		Where("orders.created_at >= ?", since).
		Group("DATE(orders.created_at)").
		Order("DATE(orders.created_at)").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	revenue := make([]rental.DailyRevenue, len(rows))
	for i, row := range rows {
		revenue[i] = rental.DailyRevenue{Date: row.Day, Total: row.Total}
	}
	return revenue, nil
}

// UpsellPerformanceFor returns order counts and revenue per active
// upsell on the user's properties. The order count includes cancelled
// orders, the revenue does not.
func (r *GormReportRepository) UpsellPerformanceFor(ctx context.Context, userID uuid.UUID) ([]rental.UpsellPerformance, error) {
	var rows []struct {
		ID           uuid.UUID
		Title        string
		TotalOrders  int64
		TotalRevenue decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&models.UpsellModel{}).
		Select(`
			upsells.id AS id,
			upsells.title AS title,
			COUNT(orders.id) AS total_orders,
			COALESCE(SUM(CASE WHEN orders.status <> ? THEN orders.amount ELSE 0 END), 0) AS total_revenue`,
			rental.OrderStatusCancelled).
		Joins("JOIN properties ON properties.id = upsells.property_id").
		Joins("LEFT JOIN orders ON orders.upsell_id = upsells.id").
		Where("properties.user_id = ?", userID).
		Where("upsells.is_active = ?", true).
		Group("upsells.id, upsells.title").
		Order("total_revenue DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	performance := make([]rental.UpsellPerformance, len(rows))
	for i, row := range rows {
		performance[i] = rental.UpsellPerformance{
			ID:           row.ID,
			Title:        row.Title,
			TotalOrders:  row.TotalOrders,
			TotalRevenue: row.TotalRevenue,
		}
	}
	return performance, nil
}

// RevenueInPeriod returns total revenue and order count for orders
// created on or after the period start. Cancelled orders are excluded
// from both figures.
func (r *GormReportRepository) RevenueInPeriod(ctx context.Context, userID uuid.UUID, since time.Time) (decimal.Decimal, int64, error) {
	var row struct {
		Total  decimal.Decimal
		Orders int64
	}

	err := r.ownedScope(ctx, userID).
		Select("COALESCE(SUM(orders.amount), 0) AS total, COUNT(*) AS orders").
		Where("orders.status <> ?", rental.OrderStatusCancelled).
		Where("orders.created_at >= ?", since).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, 0, err
	}

	return row.Total, row.Orders, nil
}

// Compile-time interface compliance check
var _ rental.ReportRepository = (*GormReportRepository)(nil)
