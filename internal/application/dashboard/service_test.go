package dashboard

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/villa-upsell/backend/internal/application/reporting"
	"github.com/villa-upsell/backend/internal/domain/rental"
)

var testConfig = Config{
	MonthlyVisitors: 1000,
	CommissionRate:  decimal.RequireFromString("0.10"),
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestService(properties *mockPropertyRepo, upsells *mockUpsellRepo, vendors *mockVendorRepo, orders *mockOrderRepo, reports *mockReportRepo, now time.Time) *Service {
	stats := reporting.NewStatsService(reports).WithClock(fixedClock(now))
	return NewService(properties, upsells, vendors, orders, reports, stats, testConfig).WithClock(fixedClock(now))
}

func TestService_Stats(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	properties := new(mockPropertyRepo)
	upsells := new(mockUpsellRepo)
	vendors := new(mockVendorRepo)
	orders := new(mockOrderRepo)
	reports := new(mockReportRepo)

	properties.On("CountForUser", mock.Anything, userID).Return(int64(2), nil)
	upsells.On("CountActiveForUser", mock.Anything, userID).Return(int64(3), nil)
	vendors.On("CountActive", mock.Anything).Return(int64(7), nil)

	monthStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	reports.On("OrderStatsFor", mock.Anything, userID, monthStart, monthEnd).Return(&rental.OrderStats{
		TotalOrders:    4,
		PendingOrders:  1,
		TotalRevenue:   decimal.NewFromInt(400),
		MonthlyRevenue: decimal.NewFromInt(300),
	}, nil)

	service := newTestService(properties, upsells, vendors, orders, reports, now)
	stats, err := service.Stats(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalProperties)
	assert.Equal(t, int64(3), stats.TotalUpsells)
	assert.Equal(t, int64(4), stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(400)))
	assert.True(t, stats.MonthlyRevenue.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, int64(7), stats.ActiveVendors)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.InDelta(t, 0.4, stats.ConversionRate, 0.0001)

	reports.AssertExpectations(t)
}

func TestService_RevenueAnalytics_ZeroFills(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	reports := new(mockReportRepo)
	since := now.AddDate(0, 0, -7)
	reports.On("DailyRevenueFor", mock.Anything, userID, since).Return([]rental.DailyRevenue{
		{Date: "2026-08-24", Total: decimal.NewFromInt(120)},
		{Date: "2026-08-27", Total: decimal.RequireFromString("35.50")},
	}, nil)

	service := newTestService(new(mockPropertyRepo), new(mockUpsellRepo), new(mockVendorRepo), new(mockOrderRepo), reports, now)
	points, err := service.RevenueAnalytics(context.Background(), userID, 7)
	require.NoError(t, err)

	require.Len(t, points, 8)
	assert.Equal(t, "2026-08-22", points[0].Date)
	assert.Equal(t, "2026-08-29", points[7].Date)
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i-1].Date, points[i].Date)
	}

	byDate := make(map[string]decimal.Decimal, len(points))
	for _, p := range points {
		byDate[p.Date] = p.Total
	}
	assert.True(t, byDate["2026-08-24"].Equal(decimal.NewFromInt(120)))
	assert.True(t, byDate["2026-08-27"].Equal(decimal.RequireFromString("35.50")))
	assert.True(t, byDate["2026-08-25"].IsZero())
	assert.True(t, byDate["2026-08-29"].IsZero())
}

func TestService_UpsellAnalytics(t *testing.T) {
	userID := uuid.New()
	upsellID := uuid.New()

	reports := new(mockReportRepo)
	reports.On("UpsellPerformanceFor", mock.Anything, userID).Return([]rental.UpsellPerformance{
		{ID: upsellID, Title: "Spa Package", TotalOrders: 3, TotalRevenue: decimal.NewFromInt(250)},
	}, nil)

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	service := newTestService(new(mockPropertyRepo), new(mockUpsellRepo), new(mockVendorRepo), new(mockOrderRepo), reports, now)

	points, err := service.UpsellAnalytics(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, upsellID, points[0].ID)
	assert.Equal(t, "Spa Package", points[0].Title)
	assert.Equal(t, int64(3), points[0].TotalOrders)
}

func TestService_ExportAccounting(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	createdAt := time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC)

	order := rental.Order{
		ID:         uuid.New(),
		Amount:     decimal.RequireFromString("150.00"),
		Currency:   "USD",
		Status:     rental.OrderStatusConfirmed,
		GuestName:  "Ana Silva",
		GuestEmail: "ana@example.com",
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
		Property:   &rental.Property{Name: "Villa Azul"},
		Upsell:     &rental.Upsell{Title: "Late Checkout"},
	}

	orders := new(mockOrderRepo)
	orders.On("OrdersInPeriod", mock.Anything, userID, now.AddDate(0, 0, -30)).Return([]rental.Order{order}, nil)

	service := newTestService(new(mockPropertyRepo), new(mockUpsellRepo), new(mockVendorRepo), orders, new(mockReportRepo), now)
	file, err := service.ExportAccounting(context.Background(), userID, 30)
	require.NoError(t, err)

	assert.Equal(t, "accounting_data_2026-08-29_30days.csv", file.Filename)

	lines := strings.Split(strings.TrimRight(file.Content, "\n"), "\n")
	require.Len(t, lines, 2, "header plus one order row")
	assert.Contains(t, lines[0], `"Commission Rate (%)"`)

	row := lines[1]
	assert.Contains(t, row, `"Villa Azul"`)
	assert.Contains(t, row, `"Late Checkout"`)
	assert.Contains(t, row, `"N/A"`, "missing vendor renders N/A")
	assert.Contains(t, row, `"Confirmed"`)
	assert.Contains(t, row, `"Stripe"`)
	assert.Contains(t, row, `"150.00"`)
	assert.Contains(t, row, `"15.00"`, "commission at 10%")
	assert.Contains(t, row, `"135.00"`, "vendor amount is the remainder")
	assert.Contains(t, row, `"10.00"`, "commission rate in percent")
}

func TestService_AccountingSummary(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	reports := new(mockReportRepo)
	reports.On("RevenueInPeriod", mock.Anything, userID, now.AddDate(0, 0, -30)).
		Return(decimal.NewFromInt(400), int64(4), nil)

	service := newTestService(new(mockPropertyRepo), new(mockUpsellRepo), new(mockVendorRepo), new(mockOrderRepo), reports, now)
	summary, err := service.AccountingSummary(context.Background(), userID, 30)
	require.NoError(t, err)

	assert.Equal(t, 30, summary.PeriodDays)
	assert.Equal(t, int64(4), summary.TotalOrders)
	assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(400)))
	assert.True(t, summary.CommissionRate.Equal(decimal.NewFromInt(10)))
	assert.True(t, summary.TotalCommission.Equal(decimal.NewFromInt(40)))
	assert.True(t, summary.TotalVendorAmount.Equal(decimal.NewFromInt(360)))
	assert.True(t, summary.AverageOrderValue.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "2026-07-30", summary.DateRange.Start)
	assert.Equal(t, "2026-08-29", summary.DateRange.End)
}

func TestService_AccountingSummary_NoOrders(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	reports := new(mockReportRepo)
	reports.On("RevenueInPeriod", mock.Anything, userID, mock.Anything).
		Return(decimal.Zero, int64(0), nil)

	service := newTestService(new(mockPropertyRepo), new(mockUpsellRepo), new(mockVendorRepo), new(mockOrderRepo), reports, now)
	summary, err := service.AccountingSummary(context.Background(), userID, 30)
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.TotalOrders)
	assert.True(t, summary.AverageOrderValue.IsZero())
}
