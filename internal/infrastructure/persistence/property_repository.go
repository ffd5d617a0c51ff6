package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/villa-upsell/backend/internal/domain/rental"
	"github.com/villa-upsell/backend/internal/domain/shared"
	"github.com/villa-upsell/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPropertyRepository implements rental.PropertyRepository using GORM
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GormPropertyRepository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// CountForUser counts the properties owned by the given user.
func (r *GormPropertyRepository) CountForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PropertyModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// FindByID loads a single property.
func (r *GormPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*rental.Property, error) {
	var model models.PropertyModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Compile-time interface compliance check
var _ rental.PropertyRepository = (*GormPropertyRepository)(nil)
