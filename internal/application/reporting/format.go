package reporting

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/villa-upsell/backend/internal/domain/rental"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

var statusCaser = cases.Title(language.English)

// FormatStatus renders an order status capitalized for exports
// ("pending" -> "Pending").
func FormatStatus(status rental.OrderStatus) string {
	return statusCaser.String(string(status))
}

// FormatAmount renders a monetary amount with two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// PaymentMethodOrDefault falls back to the Stripe label when the order
// carries no payment method.
func PaymentMethodOrDefault(order *rental.Order) string {
	if order.PaymentMethod == "" {
		return "Stripe"
	}
	return order.PaymentMethod
}

// PaymentIntentOrNA falls back to "N/A" when the order carries no
// payment intent reference.
func PaymentIntentOrNA(order *rental.Order) string {
	if order.PaymentIntentID == "" {
		return "N/A"
	}
	return order.PaymentIntentID
}

// OrderDetailsOrEmpty renders the raw serialized order details, or an
// empty JSON array when the order has none.
func OrderDetailsOrEmpty(order *rental.Order) string {
	if order.OrderDetails == "" {
		return "[]"
	}
	return order.OrderDetails
}

// FormatDate renders the calendar date of an instant.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatDateTime renders an instant as a date-time stamp.
func FormatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}
