package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/villa-upsell/backend/internal/domain/rental"
)

func TestCSVBuilder(t *testing.T) {
	t.Run("quotes every field", func(t *testing.T) {
		b := NewCSVBuilder()
		b.WriteRow("Date", "Amount")
		b.WriteRow("2026-08-10", "100.00")

		assert.Equal(t, "\"Date\",\"Amount\"\n\"2026-08-10\",\"100.00\"\n", b.String())
	})

	t.Run("doubles embedded quotes", func(t *testing.T) {
		b := NewCSVBuilder()
		b.WriteRow(`Villa "Azul"`)

		assert.Equal(t, "\"Villa \"\"Azul\"\"\"\n", b.String())
	})
}

func TestMonthWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)
	start, end := MonthWindow(now)

	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "Pending", FormatStatus(rental.OrderStatusPending))
	assert.Equal(t, "Cancelled", FormatStatus(rental.OrderStatusCancelled))
	assert.Equal(t, "100.50", FormatAmount(decimal.RequireFromString("100.5")))

	order := &rental.Order{}
	assert.Equal(t, "Stripe", PaymentMethodOrDefault(order))
	assert.Equal(t, "N/A", PaymentIntentOrNA(order))
	assert.Equal(t, "[]", OrderDetailsOrEmpty(order))

	order.PaymentMethod = "cash"
	order.PaymentIntentID = "pi_123"
	order.OrderDetails = `{"items":[]}`
	assert.Equal(t, "cash", PaymentMethodOrDefault(order))
	assert.Equal(t, "pi_123", PaymentIntentOrNA(order))
	assert.Equal(t, `{"items":[]}`, OrderDetailsOrEmpty(order))
}
