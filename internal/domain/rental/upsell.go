package rental

import (
	"time"

	"github.com/google/uuid"
)

// Upsell is a purchasable add-on offered against a property.
type Upsell struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Title      string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
