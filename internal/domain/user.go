package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the domain model for a registered account.
// ID is uuid.Nil on a draft that has not been persisted yet; the store
// assigns it on create. PasswordHash never leaves the service layer.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Avatar       *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
