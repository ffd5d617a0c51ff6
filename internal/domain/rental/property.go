package rental

import (
	"time"

	"github.com/google/uuid"
)

// Property is a vacation-rental unit owned by exactly one user.
// Property lifecycle (creation, editing, deletion) is managed outside
// this backend; handlers only read properties for scoping and display.
type Property struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the property belongs to the given user.
func (p *Property) OwnedBy(userID uuid.UUID) bool {
	return p.UserID == userID
}
