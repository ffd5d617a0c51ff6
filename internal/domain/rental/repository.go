package rental

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderFilter narrows owner-scoped order listings and exports.
// Zero values mean "no filter" for the corresponding field.
type OrderFilter struct {
	Status     OrderStatus
	PropertyID *uuid.UUID
	// DateFrom/DateTo filter inclusively on the calendar date of
	// created_at (list endpoint).
	DateFrom *time.Time
	DateTo   *time.Time
	// Date filters on an exact calendar date (export endpoint).
	Date *time.Time
	// VendorName is a case-insensitive substring match on the related
	// vendor's name (export endpoint).
	VendorName string

	Page     int
	PageSize int
}

// DailyRevenue is one calendar day's revenue sum.
type DailyRevenue struct {
	Date  string
	Total decimal.Decimal
}

// UpsellPerformance aggregates order volume and revenue for one upsell.
type UpsellPerformance struct {
	ID           uuid.UUID
	Title        string
	TotalOrders  int64
	TotalRevenue decimal.Decimal
}

// OrderStats is the shared aggregation consumed by both the dashboard
// and the order-management stats endpoints.
type OrderStats struct {
	TotalOrders    int64
	PendingOrders  int64
	TotalRevenue   decimal.Decimal
	MonthlyRevenue decimal.Decimal
}

// OrderRepository provides owner-scoped access to orders. Every finder
// that takes a userID enforces the order -> property -> user_id
// ownership traversal inside the query.
type OrderRepository interface {
	// FindOwnedByUser returns one page of the caller's orders (newest
	// first, relations preloaded) plus the unpaginated total.
	FindOwnedByUser(ctx context.Context, userID uuid.UUID, filter OrderFilter) ([]Order, int64, error)
	// FindAllOwnedByUser returns every matching order without
	// pagination, for exports.
	FindAllOwnedByUser(ctx context.Context, userID uuid.UUID, filter OrderFilter) ([]Order, error)
	// FindByID loads a single order with relations regardless of owner;
	// callers must perform the ownership check on the result.
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// RecentOwnedByUser returns the caller's newest orders.
	RecentOwnedByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Order, error)
	// Save persists mutations to an existing order.
	Save(ctx context.Context, order *Order) error
	// OrdersInPeriod returns the caller's orders created on or after the
	// period start, newest first, relations preloaded.
	OrdersInPeriod(ctx context.Context, userID uuid.UUID, since time.Time) ([]Order, error)
}

// ReportRepository runs the aggregation queries behind dashboard and
// order statistics.
type ReportRepository interface {
	// OrderStatsFor computes the shared order statistics for one owner.
	// The month window bounds the monthly revenue sum.
	OrderStatsFor(ctx context.Context, userID uuid.UUID, monthStart, monthEnd time.Time) (*OrderStats, error)
	// DailyRevenueFor returns per-day revenue sums (cancelled excluded)
	// for orders created in [since, now]; days without orders are absent.
	DailyRevenueFor(ctx context.Context, userID uuid.UUID, since time.Time) ([]DailyRevenue, error)
	// UpsellPerformanceFor aggregates orders and revenue per active
	// owned upsell, sorted by revenue descending.
	UpsellPerformanceFor(ctx context.Context, userID uuid.UUID) ([]UpsellPerformance, error)
	// RevenueInPeriod sums revenue and counts orders created on or after
	// the period start; cancelled orders are excluded from both.
	RevenueInPeriod(ctx context.Context, userID uuid.UUID, since time.Time) (decimal.Decimal, int64, error)
}

// PropertyRepository provides property lookups for scoping and counts.
type PropertyRepository interface {
	CountForUser(ctx context.Context, userID uuid.UUID) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Property, error)
}

// UpsellRepository provides upsell counts for the dashboard.
type UpsellRepository interface {
	CountActiveForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// VendorRepository provides vendor counts for the dashboard. The active
// vendor count is global, not owner-scoped.
type VendorRepository interface {
	CountActive(ctx context.Context) (int64, error)
}
