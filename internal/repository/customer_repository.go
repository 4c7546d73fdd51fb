package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type customerRepository struct {
	q *db.Queries
}

func NewCustomer(pool *pgxpool.Pool) port.CustomerRepository {
	return &customerRepository{
		q: db.New(pool),
	}
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer domain.Customer) (uuid.UUID, error) {
	if customer.UserID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("userID is empty")
	}

	id, err := r.q.CreateCustomer(ctx, db.CreateCustomerParams{
		UserID: customer.UserID,
		Phone:  customer.Phone,
		Email:  customer.Email,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.CreateCustomer: %w", err)
	}

	return id, nil
}

func (r *customerRepository) GetCustomer(ctx context.Context, id uuid.UUID) (domain.Customer, error) {
	if id == uuid.Nil {
		return domain.Customer{}, fmt.Errorf("customerID is empty")
	}

	row, err := r.q.GetCustomer(ctx, id)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("q.GetCustomer: %w", notFound(err))
	}

	return domain.Customer(row), nil
}

func (r *customerRepository) GetCustomerByUser(ctx context.Context, userID uuid.UUID) (domain.Customer, error) {
	if userID == uuid.Nil {
		return domain.Customer{}, fmt.Errorf("userID is empty")
	}

	row, err := r.q.GetCustomerByUser(ctx, userID)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("q.GetCustomerByUser: %w", notFound(err))
	}

	return domain.Customer(row), nil
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	if customer.ID == uuid.Nil {
		return fmt.Errorf("customerID is empty")
	}
	if customer.UserID == uuid.Nil {
		return fmt.Errorf("userID is empty")
	}

	rowsAffected, err := r.q.UpdateCustomer(ctx, db.UpdateCustomerParams(customer))
	if err != nil {
		return fmt.Errorf("q.UpdateCustomer: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("q.UpdateCustomer: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *customerRepository) DeleteCustomer(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, fmt.Errorf("customerID is empty")
	}

	rowsAffected, err := r.q.DeleteCustomer(ctx, id)
	if err != nil {
		return false, fmt.Errorf("q.DeleteCustomer: %w", err)
	}

	return rowsAffected > 0, nil
}
