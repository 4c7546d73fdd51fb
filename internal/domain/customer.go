package domain

import (
	"github.com/google/uuid"
)

// Customer links a storefront buyer to an account managed elsewhere.
type Customer struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Phone  string
	Email  string
}
