package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/villa-upsell/backend/internal/domain/rental"
)

func TestGormReportRepository_OrderStatsFor(t *testing.T) {
	db := setupRentalTestDB(t)
	repo := NewGormReportRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	otherID := uuid.New()

	p1 := seedProperty(t, db, ownerID, "Villa Azul")
	p2 := seedProperty(t, db, ownerID, "Villa Verde")
	foreign := seedProperty(t, db, otherID, "Villa Roja")
	u1 := seedUpsell(t, db, p1.ID, "Late Checkout", true)
	u2 := seedUpsell(t, db, p2.ID, "Spa Package", true)
	fu := seedUpsell(t, db, foreign.ID, "Airport Pickup", true)
	vendor := seedVendor(t, db, "Sunset Catering", true)

	monthStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)
	inMonth := monthStart.Add(10 * 24 * time.Hour)
	lastMonth := monthStart.AddDate(0, -1, 0).Add(24 * time.Hour)

	seedOrder(t, db, orderSeed{property: p1, upsell: u1, vendor: vendor, amount: "100", status: rental.OrderStatusConfirmed, createdAt: inMonth})
	seedOrder(t, db, orderSeed{property: p1, upsell: u1, vendor: vendor, amount: "100", status: rental.OrderStatusConfirmed, createdAt: lastMonth})
	seedOrder(t, db, orderSeed{property: p1, upsell: u1, vendor: vendor, amount: "50", status: rental.OrderStatusCancelled, createdAt: inMonth})
	seedOrder(t, db, orderSeed{property: p2, upsell: u2, vendor: vendor, amount: "200", status: rental.OrderStatusPending, createdAt: inMonth})
	seedOrder(t, db, orderSeed{property: foreign, upsell: fu, vendor: vendor, amount: "999", status: rental.OrderStatusConfirmed, createdAt: inMonth})

	stats, err := repo.OrderStatsFor(ctx, ownerID, monthStart, monthEnd)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(400)), "total revenue %s", stats.TotalRevenue)
	assert.True(t, stats.MonthlyRevenue.Equal(decimal.NewFromInt(300)), "monthly revenue %s", stats.MonthlyRevenue)
}

func TestGormReportRepository_OrderStatsFor_NoOrders(t *testing.T) {
	db := setupRentalTestDB(t)
	repo := NewGormReportRepository(db)

	monthStart := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	stats, err := repo.OrderStatsFor(context.Background(), uuid.New(), monthStart, monthStart.AddDate(0, 1, 0))
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalOrders)
	assert.Equal(t, int64(0), stats.PendingOrders)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.True(t, stats.MonthlyRevenue.IsZero())
}

func TestGormReportRepository_DailyRevenueFor(t *testing.T) {
	db := setupRentalTestDB(t)
	repo := NewGormReportRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	property := seedProperty(t, db, ownerID, "Villa Azul")
	upsell := seedUpsell(t, db, property.ID, "Late Checkout", true)
	vendor := seedVendor(t, db, "Sunset Catering", true)

	day1 := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	day3 := time.Date(2026, 8, 12, 15, 0, 0, 0, time.UTC)

	seedOrder(t, db, orderSeed{property: property, upsell: upsell, vendor: vendor, amount: "100", status: rental.OrderStatusConfirmed, createdAt: day1})
	seedOrder(t, db, orderSeed{property: property, upsell: upsell, vendor: vendor, amount: "25.50", status: rental.OrderStatusFulfilled, createdAt: day1})
	seedOrder(t, db, orderSeed{property: property, upsell: upsell, vendor: vendor, amount: "40", status: rental.OrderStatusCancelled, createdAt: day1})
	seedOrder(t, db, orderSeed{property: property, upsell: upsell, vendor: vendor, amount: "60", status: rental.OrderStatusConfirmed, createdAt: day3})

	since := time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC)
	revenue, err := repo.DailyRevenueFor(ctx, ownerID, since)
	require.NoError(t, err)

	require.Len(t, revenue, 2)
	assert.Equal(t, "2026-08-10", revenue[0].Date)
	assert.True(t, revenue[0].Total.Equal(decimal.RequireFromString("125.50")), "day1 total %s", revenue[0].Total)
	assert.Equal(t, "2026-08-12", revenue[1].Date)
	assert.True(t, revenue[1].Total.Equal(decimal.NewFromInt(60)))
}

func TestGormReportRepository_UpsellPerformanceFor(t *testing.T) {
	db := setupRentalTestDB(t)
	repo := NewGormReportRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	property := seedProperty(t, db, ownerID, "Villa Azul")
	checkout := seedUpsell(t, db, property.ID, "Late Checkout", true)
	spa := seedUpsell(t, db, property.ID, "Spa Package", true)
	retired := seedUpsell(t, db, property.ID, "Old Offer", false)
	vendor := seedVendor(t, db, "Sunset Catering", true)

	seedOrder(t, db, orderSeed{property: property, upsell: checkout, vendor: vendor, amount: "100", status: rental.OrderStatusConfirmed})
	seedOrder(t, db, orderSeed{property: property, upsell: checkout, vendor: vendor, amount: "70", status: rental.OrderStatusCancelled})
	seedOrder(t, db, orderSeed{property: property, upsell: spa, vendor: vendor, amount: "250", status: rental.OrderStatusFulfilled})
	seedOrder(t, db, orderSeed{property: property, upsell: retired, vendor: vendor, amount: "30", status: rental.OrderStatusConfirmed})

	performance, err := repo.UpsellPerformanceFor(ctx, ownerID)
	require.NoError(t, err)

	require.Len(t, performance, 2)

	assert.Equal(t, spa.ID, performance[0].ID)
	assert.Equal(t, int64(1), performance[0].TotalOrders)
	assert.True(t, performance[0].TotalRevenue.Equal(decimal.NewFromInt(250)))

	assert.Equal(t, checkout.ID, performance[1].ID)
	assert.Equal(t, int64(2), performance[1].TotalOrders, "cancelled orders still count toward volume")
	assert.True(t, performance[1].TotalRevenue.Equal(decimal.NewFromInt(100)), "cancelled orders excluded from revenue")
}

func TestGormReportRepository_RevenueInPeriod(t *testing.T) {
	db := setupRentalTestDB(t)
	repo := NewGormReportRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	property := seedProperty(t, db, ownerID, "Villa Azul")
	upsell := seedUpsell(t, db, property.ID, "Late Checkout", true)
	vendor := seedVendor(t, db, "Sunset Catering", true)

	inPeriod := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	before := time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

	seedOrder(t, db, orderSeed{property: property, upsell: upsell, vendor: vendor, amount: "100", status: rental.OrderStatusConfirmed, createdAt: inPeriod})
	seedOrder(t, db, orderSeed{property: property, upsell: upsell, vendor: vendor, amount: "55", status: rental.OrderStatusCancelled, createdAt: inPeriod})
	seedOrder(t, db, orderSeed{property: property, upsell: upsell, vendor: vendor, amount: "500", status: rental.OrderStatusConfirmed, createdAt: before})

	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	total, orders, err := repo.RevenueInPeriod(ctx, ownerID, since)
	require.NoError(t, err)

	assert.Equal(t, int64(1), orders, "cancelled orders excluded from the count")
	assert.True(t, total.Equal(decimal.NewFromInt(100)), "cancelled orders excluded from revenue, got %s", total)
}
