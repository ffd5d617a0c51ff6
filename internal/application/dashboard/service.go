// Package dashboard implements the owner-facing reporting operations:
// headline statistics, revenue and upsell analytics, and the accounting
// export.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/villa-upsell/backend/internal/application/reporting"
	"github.com/villa-upsell/backend/internal/domain/rental"
)

// Config carries the reporting knobs that stand in for integrations the
// marketplace does not have yet: a real analytics feed and per-vendor
// commission contracts.
type Config struct {
	// MonthlyVisitors is the assumed visitor volume behind the
	// conversion rate.
	MonthlyVisitors int64
	// CommissionRate is the platform's share of each order, as a
	// fraction (0.10 = 10%).
	CommissionRate decimal.Decimal
}

// Service exposes the dashboard reporting operations.
type Service struct {
	properties rental.PropertyRepository
	upsells    rental.UpsellRepository
	vendors    rental.VendorRepository
	orders     rental.OrderRepository
	reports    rental.ReportRepository
	stats      *reporting.StatsService
	cfg        Config
	now        func() time.Time
}

// NewService creates a new dashboard Service.
func NewService(
	properties rental.PropertyRepository,
	upsells rental.UpsellRepository,
	vendors rental.VendorRepository,
	orders rental.OrderRepository,
	reports rental.ReportRepository,
	stats *reporting.StatsService,
	cfg Config,
) *Service {
	return &Service{
		properties: properties,
		upsells:    upsells,
		vendors:    vendors,
		orders:     orders,
		reports:    reports,
		stats:      stats,
		cfg:        cfg,
		now:        time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Stats is the dashboard headline block.
type Stats struct {
	TotalProperties int64           `json:"total_properties"`
	TotalUpsells    int64           `json:"total_upsells"`
	TotalOrders     int64           `json:"total_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	MonthlyRevenue  decimal.Decimal `json:"monthly_revenue"`
	ConversionRate  float64         `json:"conversion_rate"`
	ActiveVendors   int64           `json:"active_vendors"`
	PendingOrders   int64           `json:"pending_orders"`
}

// Stats assembles the headline statistics for the caller.
func (s *Service) Stats(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	propertyCount, err := s.properties.CountForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	upsellCount, err := s.upsells.CountActiveForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	vendorCount, err := s.vendors.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	orderStats, err := s.stats.OrderStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalProperties: propertyCount,
		TotalUpsells:    upsellCount,
		TotalOrders:     orderStats.TotalOrders,
		TotalRevenue:    orderStats.TotalRevenue,
		MonthlyRevenue:  orderStats.MonthlyRevenue,
		ConversionRate:  s.conversionRate(orderStats.TotalOrders),
		ActiveVendors:   vendorCount,
		PendingOrders:   orderStats.PendingOrders,
	}, nil
}

func (s *Service) conversionRate(totalOrders int64) float64 {
	if s.cfg.MonthlyVisitors <= 0 {
		return 0
	}
	rate := decimal.NewFromInt(totalOrders).
		Div(decimal.NewFromInt(s.cfg.MonthlyVisitors)).
		Mul(decimal.NewFromInt(100))
	return rate.Round(2).InexactFloat64()
}

// RecentOrders returns the five newest owned orders with relations.
func (s *Service) RecentOrders(ctx context.Context, userID uuid.UUID) ([]rental.Order, error) {
	return s.orders.RecentOwnedByUser(ctx, userID, 5)
}

// DailyRevenuePoint is one day of the revenue analytics series.
type DailyRevenuePoint struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// RevenueAnalytics returns the daily revenue series over the trailing
// period, one row per calendar day including today, days without orders
// filled with zero.
func (s *Service) RevenueAnalytics(ctx context.Context, userID uuid.UUID, periodDays int) ([]DailyRevenuePoint, error) {
	now := s.now()
	since := reporting.PeriodStart(now, periodDays)

	rows, err := s.reports.DailyRevenueFor(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		byDate[row.Date] = row.Total
	}

	points := make([]DailyRevenuePoint, 0, periodDays+1)
	for day := since; !day.After(now); day = day.AddDate(0, 0, 1) {
		date := reporting.FormatDate(day)
		total, ok := byDate[date]
		if !ok {
			total = decimal.Zero
		}
		points = append(points, DailyRevenuePoint{Date: date, Total: total})
	}
	return points, nil
}

// UpsellPerformancePoint is one upsell's slice of the analytics.
type UpsellPerformancePoint struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	TotalOrders  int64           `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// UpsellAnalytics returns order volume and revenue per active owned
// upsell, sorted by revenue descending.
func (s *Service) UpsellAnalytics(ctx context.Context, userID uuid.UUID) ([]UpsellPerformancePoint, error) {
	rows, err := s.reports.UpsellPerformanceFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	points := make([]UpsellPerformancePoint, len(rows))
	for i, row := range rows {
		points[i] = UpsellPerformancePoint{
			ID:           row.ID,
			Title:        row.Title,
			TotalOrders:  row.TotalOrders,
			TotalRevenue: row.TotalRevenue,
		}
	}
	return points, nil
}

var accountingHeader = []string{
	"Date",
	"Order ID",
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
	"Commission Rate (%)",
	"Commission Amount",
	"Vendor Amount",
	"Platform Fee",
	"Created At",
	"Updated At",
}

// ExportAccounting renders the accounting CSV for orders created in the
// trailing period. Each row carries the commission split: commission =
// amount x rate, vendor amount = amount - commission, platform fee =
// commission.
func (s *Service) ExportAccounting(ctx context.Context, userID uuid.UUID, periodDays int) (*reporting.CSVFile, error) {
	now := s.now()
	since := reporting.PeriodStart(now, periodDays)

	orders, err := s.orders.OrdersInPeriod(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	ratePercent := s.cfg.CommissionRate.Mul(decimal.NewFromInt(100))

	builder := reporting.NewCSVBuilder()
	builder.WriteRow(accountingHeader...)
	for i := range orders {
		order := &orders[i]
		commission := order.Amount.Mul(s.cfg.CommissionRate).Round(2)
		vendorAmount := order.Amount.Sub(commission)

		builder.WriteRow(
			reporting.FormatDate(order.CreatedAt),
			order.ID.String(),
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
			reporting.FormatAmount(ratePercent),
			reporting.FormatAmount(commission),
			reporting.FormatAmount(vendorAmount),
			reporting.FormatAmount(commission),
			reporting.FormatDateTime(order.CreatedAt),
			reporting.FormatDateTime(order.UpdatedAt),
		)
	}

	return &reporting.CSVFile{
		Filename: fmt.Sprintf("accounting_data_%s_%ddays.csv", reporting.FormatDate(now), periodDays),
		Content:  builder.String(),
	}, nil
}

// DateRange echoes the period bounds of an accounting summary.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AccountingSummary aggregates the accounting figures for the trailing
// period. Cancelled orders are excluded throughout.
type AccountingSummary struct {
	PeriodDays        int             `json:"period_days"`
	TotalOrders       int64           `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	CommissionRate    decimal.Decimal `json:"commission_rate"`
	TotalCommission   decimal.Decimal `json:"total_commission"`
	TotalVendorAmount decimal.Decimal `json:"total_vendor_amount"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	DateRange         DateRange       `json:"date_range"`
}

// AccountingSummary computes period totals, the commission split and the
// average order value.
func (s *Service) AccountingSummary(ctx context.Context, userID uuid.UUID, periodDays int) (*AccountingSummary, error) {
	now := s.now()
	since := reporting.PeriodStart(now, periodDays)

	revenue, orderCount, err := s.reports.RevenueInPeriod(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	commission := revenue.Mul(s.cfg.CommissionRate).Round(2)
	average := decimal.Zero
	if orderCount > 0 {
		average = revenue.Div(decimal.NewFromInt(orderCount)).Round(2)
	}

	return &AccountingSummary{
		PeriodDays:        periodDays,
		TotalOrders:       orderCount,
		TotalRevenue:      revenue,
		CommissionRate:    s.cfg.CommissionRate.Mul(decimal.NewFromInt(100)),
		TotalCommission:   commission,
		TotalVendorAmount: revenue.Sub(commission),
		AverageOrderValue: average,
		DateRange: DateRange{
			Start: reporting.FormatDate(since),
			End:   reporting.FormatDate(now),
		},
	}, nil
}
