package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer domain.Customer) (uuid.UUID, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (domain.Customer, error)
	GetCustomerByUser(ctx context.Context, userID uuid.UUID) (domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
	DeleteCustomer(ctx context.Context, id uuid.UUID) (bool, error)
}
