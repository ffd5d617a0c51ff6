package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/villa-upsell/backend/internal/domain/rental"
	"github.com/villa-upsell/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormUpsellRepository implements rental.UpsellRepository using GORM
type GormUpsellRepository struct {
	db *gorm.DB
}

// NewGormUpsellRepository creates a new GormUpsellRepository
func NewGormUpsellRepository(db *gorm.DB) *GormUpsellRepository {
	return &GormUpsellRepository{db: db}
}

// CountActiveForUser counts active upsells across the user's properties.
func (r *GormUpsellRepository) CountActiveForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UpsellModel{}).
		Joins("JOIN properties ON properties.id = upsells.property_id").
		Where("properties.user_id = ?", userID).
		Where("upsells.is_active = ?", true).
		Count(&count).Error
	return count, err
}

// Compile-time interface compliance check
var _ rental.UpsellRepository = (*GormUpsellRepository)(nil)
