// Package reporting holds the aggregation and export plumbing shared by
// the dashboard and order-management services.
package reporting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/villa-upsell/backend/internal/domain/rental"
)

// StatsService computes the order statistics block consumed by both the
// dashboard and the order-management stats endpoints.
type StatsService struct {
	reports rental.ReportRepository
	now     func() time.Time
}

// NewStatsService creates a new StatsService.
func NewStatsService(reports rental.ReportRepository) *StatsService {
	return &StatsService{reports: reports, now: time.Now}
}

// WithClock overrides the time source, for tests.
func (s *StatsService) WithClock(now func() time.Time) *StatsService {
	s.now = now
	return s
}

// OrderStats returns the caller's order statistics with the monthly
// revenue window set to the current calendar month.
func (s *StatsService) OrderStats(ctx context.Context, userID uuid.UUID) (*rental.OrderStats, error) {
	monthStart, monthEnd := MonthWindow(s.now())
	return s.reports.OrderStatsFor(ctx, userID, monthStart, monthEnd)
}

// MonthWindow returns the half-open [start, end) bounds of the calendar
// month containing the given instant.
func MonthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

// PeriodStart returns the instant periodDays before now.
func PeriodStart(now time.Time, periodDays int) time.Time {
	return now.AddDate(0, 0, -periodDays)
}
