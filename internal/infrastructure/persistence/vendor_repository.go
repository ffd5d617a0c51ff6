package persistence

import (
	"context"

	"github.com/villa-upsell/backend/internal/domain/rental"
	"github.com/villa-upsell/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormVendorRepository implements rental.VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// CountActive counts active vendors across the whole marketplace.
func (r *GormVendorRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.VendorModel{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

// Compile-time interface compliance check
var _ rental.VendorRepository = (*GormVendorRepository)(nil)
