// Package models contains the GORM persistence models and their
// conversions to and from the domain entities.
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/villa-upsell/backend/internal/domain/rental"
)

// PropertyModel is the persistence model for rental.Property.
type PropertyModel struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (PropertyModel) TableName() string {
	return "properties"
}

// ToDomain converts the persistence model to a domain Property.
func (m *PropertyModel) ToDomain() *rental.Property {
	return &rental.Property{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UpsellModel is the persistence model for rental.Upsell.
type UpsellModel struct {
	BaseModel
	PropertyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title      string    `gorm:"type:varchar(255);not null"`
	IsActive   bool      `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (UpsellModel) TableName() string {
	return "upsells"
}

// ToDomain converts the persistence model to a domain Upsell.
func (m *UpsellModel) ToDomain() *rental.Upsell {
	return &rental.Upsell{
		ID:         m.ID,
		PropertyID: m.PropertyID,
		Title:      m.Title,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// VendorModel is the persistence model for rental.Vendor.
type VendorModel struct {
	BaseModel
	Name     string `gorm:"type:varchar(255);not null"`
	IsActive bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (VendorModel) TableName() string {
	return "vendors"
}

// ToDomain converts the persistence model to a domain Vendor.
func (m *VendorModel) ToDomain() *rental.Vendor {
	return &rental.Vendor{
		ID:        m.ID,
		Name:      m.Name,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// OrderModel is the persistence model for rental.Order.
type OrderModel struct {
	BaseModel
	PropertyID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	UpsellID        uuid.UUID          `gorm:"type:uuid;not null;index"`
	VendorID        uuid.UUID          `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal    `gorm:"type:decimal(18,2);not null;default:0"`
	Currency        string             `gorm:"type:varchar(3);not null;default:'USD'"`
	Status          rental.OrderStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	GuestName       string             `gorm:"type:varchar(255);not null"`
	GuestEmail      string             `gorm:"type:varchar(255);not null"`
	GuestPhone      string             `gorm:"type:varchar(50)"`
	PaymentMethod   string             `gorm:"type:varchar(50)"`
	PaymentIntentID string             `gorm:"type:varchar(255)"`
	OrderDetails    string             `gorm:"type:text"`
	FulfilledAt     *time.Time         `gorm:"index"`

	Property *PropertyModel `gorm:"foreignKey:PropertyID"`
	Upsell   *UpsellModel   `gorm:"foreignKey:UpsellID"`
	Vendor   *VendorModel   `gorm:"foreignKey:VendorID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts the persistence model to a domain Order, carrying
// any preloaded relations along.
func (m *OrderModel) ToDomain() *rental.Order {
	order := &rental.Order{
		ID:              m.ID,
		PropertyID:      m.PropertyID,
		UpsellID:        m.UpsellID,
		VendorID:        m.VendorID,
		Amount:          m.Amount,
		Currency:        m.Currency,
		Status:          m.Status,
		GuestName:       m.GuestName,
		GuestEmail:      m.GuestEmail,
		GuestPhone:      m.GuestPhone,
		PaymentMethod:   m.PaymentMethod,
		PaymentIntentID: m.PaymentIntentID,
		OrderDetails:    m.OrderDetails,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		FulfilledAt:     m.FulfilledAt,
	}
	if m.Property != nil {
		order.Property = m.Property.ToDomain()
	}
	if m.Upsell != nil {
		order.Upsell = m.Upsell.ToDomain()
	}
	if m.Vendor != nil {
		order.Vendor = m.Vendor.ToDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain Order.
// Relations are not written back; they belong to their own tables.
func (m *OrderModel) FromDomain(o *rental.Order) {
	m.ID = o.ID
	m.CreatedAt = o.CreatedAt
	m.UpdatedAt = o.UpdatedAt
	m.PropertyID = o.PropertyID
	m.UpsellID = o.UpsellID
	m.VendorID = o.VendorID
	m.Amount = o.Amount
	m.Currency = o.Currency
	m.Status = o.Status
	m.GuestName = o.GuestName
	m.GuestEmail = o.GuestEmail
	m.GuestPhone = o.GuestPhone
	m.PaymentMethod = o.PaymentMethod
	m.PaymentIntentID = o.PaymentIntentID
	m.OrderDetails = o.OrderDetails
	m.FulfilledAt = o.FulfilledAt
}

// OrderModelFromDomain creates a new persistence model from a domain Order.
func OrderModelFromDomain(o *rental.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
