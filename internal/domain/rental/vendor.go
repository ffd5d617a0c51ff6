package rental

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is the external party that fulfils upsell orders.
// Vendors are global entities; they are not scoped to an owner.
type Vendor struct {
	ID        uuid.UUID
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
