package db

import (
	"context"

	"github.com/google/uuid"
)

const createCustomer = `INSERT INTO customers (user_id, phone, email)
VALUES ($1, $2, $3)
RETURNING id`

type CreateCustomerParams struct {
	UserID uuid.UUID
	Phone  string
	Email  string
}

func (q *Queries) CreateCustomer(ctx context.Context, arg CreateCustomerParams) (uuid.UUID, error) {
	row := q.db.QueryRow(ctx, createCustomer, arg.UserID, arg.Phone, arg.Email)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getCustomer = `SELECT id, user_id, phone, email
FROM customers
WHERE id = $1`

func (q *Queries) GetCustomer(ctx context.Context, id uuid.UUID) (Customer, error) {
	row := q.db.QueryRow(ctx, getCustomer, id)
	var i Customer
	err := row.Scan(&i.ID, &i.UserID, &i.Phone, &i.Email)
	return i, err
}

const getCustomerByUser = `SELECT id, user_id, phone, email
FROM customers
WHERE user_id = $1
ORDER BY id
LIMIT 1`

func (q *Queries) GetCustomerByUser(ctx context.Context, userID uuid.UUID) (Customer, error) {
	row := q.db.QueryRow(ctx, getCustomerByUser, userID)
	var i Customer
	err := row.Scan(&i.ID, &i.UserID, &i.Phone, &i.Email)
	return i, err
}

const updateCustomer = `UPDATE customers
SET user_id = $2,
    phone   = $3,
    email   = $4
WHERE id = $1`

type UpdateCustomerParams struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Phone  string
	Email  string
}

func (q *Queries) UpdateCustomer(ctx context.Context, arg UpdateCustomerParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateCustomer, arg.ID, arg.UserID, arg.Phone, arg.Email)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteCustomer = `DELETE
FROM customers
WHERE id = $1`

func (q *Queries) DeleteCustomer(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteCustomer, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
