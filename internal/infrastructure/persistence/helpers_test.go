package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/villa-upsell/backend/internal/domain/rental"
	"github.com/villa-upsell/backend/internal/infrastructure/persistence/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRentalTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.PropertyModel{},
		&models.UpsellModel{},
		&models.VendorModel{},
		&models.OrderModel{},
	)
	require.NoError(t, err)

	return db
}

func seedProperty(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) *models.PropertyModel {
	t.Helper()

	property := &models.PropertyModel{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		Name:      name,
	}
	require.NoError(t, db.Create(property).Error)
	return property
}

func seedUpsell(t *testing.T, db *gorm.DB, propertyID uuid.UUID, title string, active bool) *models.UpsellModel {
	t.Helper()

	upsell := &models.UpsellModel{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		PropertyID: propertyID,
		Title:      title,
		IsActive:   active,
	}
	require.NoError(t, db.Create(upsell).Error)
	return upsell
}

func seedVendor(t *testing.T, db *gorm.DB, name string, active bool) *models.VendorModel {
	t.Helper()

	vendor := &models.VendorModel{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
		IsActive:  active,
	}
	require.NoError(t, db.Create(vendor).Error)
	return vendor
}

type orderSeed struct {
	property  *models.PropertyModel
	upsell    *models.UpsellModel
	vendor    *models.VendorModel
	amount    string
	status    rental.OrderStatus
	createdAt time.Time
}

func seedOrder(t *testing.T, db *gorm.DB, seed orderSeed) *models.OrderModel {
	t.Helper()

	createdAt := seed.createdAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	order := &models.OrderModel{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		PropertyID: seed.property.ID,
		UpsellID:   seed.upsell.ID,
		VendorID:   seed.vendor.ID,
		Amount:     decimal.RequireFromString(seed.amount),
		Currency:   "USD",
		Status:     seed.status,
		GuestName:  "Test Guest",
		GuestEmail: "guest@example.com",
	}
	require.NoError(t, db.Create(order).Error)
	return order
}
