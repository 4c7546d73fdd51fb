package domain

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID   uuid.UUID
	Name string
	Slug string

	CreatedAt time.Time
}

func (c Category) String() string {
	return c.Name
}
