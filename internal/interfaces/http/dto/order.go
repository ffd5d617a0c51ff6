package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/villa-upsell/backend/internal/domain/rental"
)

// PropertyResponse is the embedded property view on an order.
type PropertyResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// UpsellResponse is the embedded upsell view on an order.
type UpsellResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// VendorResponse is the embedded vendor view on an order.
type VendorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// OrderResponse is the JSON view of an order with its relations.
type OrderResponse struct {
	ID              uuid.UUID         `json:"id"`
	PropertyID      uuid.UUID         `json:"property_id"`
	UpsellID        uuid.UUID         `json:"upsell_id"`
	VendorID        uuid.UUID         `json:"vendor_id"`
	Amount          decimal.Decimal   `json:"amount"`
	Currency        string            `json:"currency"`
	Status          string            `json:"status"`
	GuestName       string            `json:"guest_name"`
	GuestEmail      string            `json:"guest_email"`
	GuestPhone      string            `json:"guest_phone,omitempty"`
	PaymentMethod   string            `json:"payment_method,omitempty"`
	PaymentIntentID string            `json:"payment_intent_id,omitempty"`
	OrderDetails    json.RawMessage   `json:"order_details,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	FulfilledAt     *time.Time        `json:"fulfilled_at,omitempty"`
	Property        *PropertyResponse `json:"property,omitempty"`
	Upsell          *UpsellResponse   `json:"upsell,omitempty"`
	Vendor          *VendorResponse   `json:"vendor,omitempty"`
}

// ToOrderResponse converts a domain order to its JSON view.
func ToOrderResponse(order *rental.Order) OrderResponse {
	resp := OrderResponse{
		ID:              order.ID,
		PropertyID:      order.PropertyID,
		UpsellID:        order.UpsellID,
		VendorID:        order.VendorID,
		Amount:          order.Amount,
		Currency:        order.Currency,
		Status:          string(order.Status),
		GuestName:       order.GuestName,
		GuestEmail:      order.GuestEmail,
		GuestPhone:      order.GuestPhone,
		PaymentMethod:   order.PaymentMethod,
		PaymentIntentID: order.PaymentIntentID,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
		FulfilledAt:     order.FulfilledAt,
	}
	if order.OrderDetails != "" {
		resp.OrderDetails = json.RawMessage(order.OrderDetails)
	}
	if order.Property != nil {
		resp.Property = &PropertyResponse{ID: order.Property.ID, Name: order.Property.Name}
	}
	if order.Upsell != nil {
		resp.Upsell = &UpsellResponse{ID: order.Upsell.ID, Title: order.Upsell.Title}
	}
	if order.Vendor != nil {
		resp.Vendor = &VendorResponse{ID: order.Vendor.ID, Name: order.Vendor.Name}
	}
	return resp
}

// ToOrderResponses converts a slice of domain orders.
func ToOrderResponses(orders []rental.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}

// OrderStatsResponse is the JSON view of the shared order statistics.
type OrderStatsResponse struct {
	TotalOrders    int64           `json:"total_orders"`
	PendingOrders  int64           `json:"pending_orders"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	MonthlyRevenue decimal.Decimal `json:"monthly_revenue"`
}

// ToOrderStatsResponse converts domain order statistics.
func ToOrderStatsResponse(stats *rental.OrderStats) OrderStatsResponse {
	return OrderStatsResponse{
		TotalOrders:    stats.TotalOrders,
		PendingOrders:  stats.PendingOrders,
		TotalRevenue:   stats.TotalRevenue,
		MonthlyRevenue: stats.MonthlyRevenue,
	}
}
