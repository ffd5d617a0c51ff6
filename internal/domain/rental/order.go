package rental

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/villa-upsell/backend/internal/domain/shared"
)

// OrderStatus is the lifecycle state of a guest order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusFulfilled OrderStatus = "fulfilled"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// AllOrderStatuses lists every valid order status.
var AllOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusFulfilled,
	OrderStatusCancelled,
}

// Valid reports whether the status is one of the enumerated values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusFulfilled, OrderStatusCancelled:
		return true
	}
	return false
}

// ErrInvalidOrderStatus is returned when a status value is outside the enumerated set.
var ErrInvalidOrderStatus = shared.NewDomainError("INVALID_INPUT", "Invalid order status")

// Order is a guest purchase of an upsell against a property.
// Visibility is transitively owner-scoped: an order is reachable only
// through a property owned by the requesting user.
type Order struct {
	ID              uuid.UUID
	PropertyID      uuid.UUID
	UpsellID        uuid.UUID
	VendorID        uuid.UUID
	Amount          decimal.Decimal
	Currency        string
	Status          OrderStatus
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	PaymentMethod   string
	PaymentIntentID string
	// OrderDetails carries free-form structured data, stored as a raw
	// JSON document and passed through untouched.
	OrderDetails string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	FulfilledAt  *time.Time

	// Relations, populated when loaded eagerly.
	Property *Property
	Upsell   *Upsell
	Vendor   *Vendor
}

// TransitionTo moves the order to the given status. Transitions are
// deliberately unconstrained (cancelled -> fulfilled is permitted); the
// only rule is that entering the fulfilled state stamps FulfilledAt.
func (o *Order) TransitionTo(status OrderStatus, now time.Time) error {
	if !status.Valid() {
		return ErrInvalidOrderStatus
	}
	o.Status = status
	if status == OrderStatusFulfilled {
		t := now
		o.FulfilledAt = &t
	}
	return nil
}

// CountsTowardRevenue reports whether the order participates in revenue
// aggregates. Cancelled orders never do.
func (o *Order) CountsTowardRevenue() bool {
	return o.Status != OrderStatusCancelled
}

// PropertyName returns the related property name, or "N/A" when the
// relation is not loaded. Used by CSV exports.
func (o *Order) PropertyName() string {
	if o.Property == nil {
		return "N/A"
	}
	return o.Property.Name
}

// UpsellTitle returns the related upsell title, or "N/A".
func (o *Order) UpsellTitle() string {
	if o.Upsell == nil {
		return "N/A"
	}
	return o.Upsell.Title
}

// VendorName returns the related vendor name, or "N/A".
func (o *Order) VendorName() string {
	if o.Vendor == nil {
		return "N/A"
	}
	return o.Vendor.Name
}
