package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/villa-upsell/backend/internal/domain/rental"
	"github.com/villa-upsell/backend/internal/domain/shared"
	"github.com/villa-upsell/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// DefaultOrderPageSize is the fixed page size for order listings.
const DefaultOrderPageSize = 20

const dateLayout = "2006-01-02"

// GormOrderRepository implements rental.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// ownedScope returns an order query restricted to properties owned by
// the given user. Every owner-scoped finder goes through this join so
// the ownership predicate lives in exactly one place.
func (r *GormOrderRepository) ownedScope(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Joins("JOIN properties ON properties.id = orders.property_id").
		Where("properties.user_id = ?", userID)
}

// applyFilter narrows the query according to the order filter.
func applyFilter(query *gorm.DB, filter rental.OrderFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("orders.status = ?", filter.Status)
	}
	if filter.PropertyID != nil {
		query = query.Where("orders.property_id = ?", *filter.PropertyID)
	}
	if filter.DateFrom != nil {
		query = query.Where("DATE(orders.created_at) >= ?", filter.DateFrom.Format(dateLayout))
	}
	if filter.DateTo != nil {
		query = query.Where("DATE(orders.created_at) <= ?", filter.DateTo.Format(dateLayout))
	}
	if filter.Date != nil {
		query = query.Where("DATE(orders.created_at) = ?", filter.Date.Format(dateLayout))
	}
	if filter.VendorName != "" {
		pattern := "%" + strings.ToLower(filter.VendorName) + "%"
		query = query.
			Joins("JOIN vendors ON vendors.id = orders.vendor_id").
			Where("LOWER(vendors.name) LIKE ?", pattern)
	}
	return query
}

// FindOwnedByUser returns one page of the user's orders plus the total count.
func (r *GormOrderRepository) FindOwnedByUser(ctx context.Context, userID uuid.UUID, filter rental.OrderFilter) ([]rental.Order, int64, error) {
	scoped := func() *gorm.DB {
		return applyFilter(r.ownedScope(ctx, userID), filter)
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = DefaultOrderPageSize
	}

	var rows []models.OrderModel
	err := scoped().
		Preload("Property").
		Preload("Upsell").
		Preload("Vendor").
		Order("orders.created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	return toDomainOrders(rows), total, nil
}

// FindAllOwnedByUser returns every matching order without pagination.
func (r *GormOrderRepository) FindAllOwnedByUser(ctx context.Context, userID uuid.UUID, filter rental.OrderFilter) ([]rental.Order, error) {
	var rows []models.OrderModel
	err := applyFilter(r.ownedScope(ctx, userID), filter).
		Preload("Property").
		Preload("Upsell").
		Preload("Vendor").
		Order("orders.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainOrders(rows), nil
}

// FindByID loads a single order with its relations.
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*rental.Order, error) {
	var model models.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Upsell").
		Preload("Vendor").
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// RecentOwnedByUser returns the user's newest orders.
func (r *GormOrderRepository) RecentOwnedByUser(ctx context.Context, userID uuid.UUID, limit int) ([]rental.Order, error) {
	var rows []models.OrderModel
	err := r.ownedScope(ctx, userID).
		Preload("Property").
		Preload("Upsell").
		Preload("Vendor").
		Order("orders.created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainOrders(rows), nil
}

// OrdersInPeriod returns the user's orders created on or after the period start.
func (r *GormOrderRepository) OrdersInPeriod(ctx context.Context, userID uuid.UUID, since time.Time) ([]rental.Order, error) {
	var rows []models.OrderModel
	err := r.ownedScope(ctx, userID).
		Where("orders.created_at >= ?", since).
		Preload("Property").
		Preload("Upsell").
		Preload("Vendor").
		Order("orders.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainOrders(rows), nil
}

// Save persists mutations to an existing order.
func (r *GormOrderRepository) Save(ctx context.Context, order *rental.Order) error {
	model := models.OrderModelFromDomain(order)
	return r.db.WithContext(ctx).Save(model).Error
}

func toDomainOrders(rows []models.OrderModel) []rental.Order {
	orders := make([]rental.Order, len(rows))
	for i, row := range rows {
		orders[i] = *row.ToDomain()
	}
	return orders
}

// Compile-time interface compliance check
var _ rental.OrderRepository = (*GormOrderRepository)(nil)
