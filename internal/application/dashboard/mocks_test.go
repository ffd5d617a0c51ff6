package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/villa-upsell/backend/internal/domain/rental"
)

type mockPropertyRepo struct{ mock.Mock }

func (m *mockPropertyRepo) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPropertyRepo) FindByID(ctx context.Context, id uuid.UUID) (*rental.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rental.Property), args.Error(1)
}

type mockUpsellRepo struct{ mock.Mock }

func (m *mockUpsellRepo) CountActiveForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockVendorRepo struct{ mock.Mock }

func (m *mockVendorRepo) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) FindOwnedByUser(ctx context.Context, userID uuid.UUID, filter rental.OrderFilter) ([]rental.Order, int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]rental.Order), args.Get(1).(int64), args.Error(2)
}

func (m *mockOrderRepo) FindAllOwnedByUser(ctx context.Context, userID uuid.UUID, filter rental.OrderFilter) ([]rental.Order, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]rental.Order), args.Error(1)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*rental.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rental.Order), args.Error(1)
}

func (m *mockOrderRepo) RecentOwnedByUser(ctx context.Context, userID uuid.UUID, limit int) ([]rental.Order, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]rental.Order), args.Error(1)
}

func (m *mockOrderRepo) Save(ctx context.Context, order *rental.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepo) OrdersInPeriod(ctx context.Context, userID uuid.UUID, since time.Time) ([]rental.Order, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).([]rental.Order), args.Error(1)
}

type mockReportRepo struct{ mock.Mock }

func (m *mockReportRepo) OrderStatsFor(ctx context.Context, userID uuid.UUID, monthStart, monthEnd time.Time) (*rental.OrderStats, error) {
	args := m.Called(ctx, userID, monthStart, monthEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rental.OrderStats), args.Error(1)
}

func (m *mockReportRepo) DailyRevenueFor(ctx context.Context, userID uuid.UUID, since time.Time) ([]rental.DailyRevenue, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).([]rental.DailyRevenue), args.Error(1)
}

func (m *mockReportRepo) UpsellPerformanceFor(ctx context.Context, userID uuid.UUID) ([]rental.UpsellPerformance, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]rental.UpsellPerformance), args.Error(1)
}

func (m *mockReportRepo) RevenueInPeriod(ctx context.Context, userID uuid.UUID, since time.Time) (decimal.Decimal, int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(decimal.Decimal), args.Get(1).(int64), args.Error(2)
}
