package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const createCart = `INSERT INTO carts (owner_id, total_products, final_amount, final_currency, in_order, for_anonymous_user)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

type CartParams struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	TotalProducts    int32
	FinalAmount      decimal.Decimal
	FinalCurrency    string
	InOrder          bool
	ForAnonymousUser bool
}

func (q *Queries) CreateCart(ctx context.Context, arg CartParams) (uuid.UUID, error) {
	row := q.db.QueryRow(ctx, createCart,
		arg.OwnerID,
		arg.TotalProducts,
		arg.FinalAmount,
		arg.FinalCurrency,
		arg.InOrder,
		arg.ForAnonymousUser,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getCart = `SELECT id, owner_id, total_products, final_amount, final_currency, in_order, for_anonymous_user
FROM carts
WHERE id = $1`

func (q *Queries) GetCart(ctx context.Context, id uuid.UUID) (Cart, error) {
	row := q.db.QueryRow(ctx, getCart, id)
	var i Cart
	err := row.Scan(
		&i.ID,
		&i.OwnerID,
		&i.TotalProducts,
		&i.FinalAmount,
		&i.FinalCurrency,
		&i.InOrder,
		&i.ForAnonymousUser,
	)
	return i, err
}

const updateCart = `UPDATE carts
SET owner_id           = $2,
    total_products     = $3,
    final_amount       = $4,
    final_currency     = $5,
    in_order           = $6,
    for_anonymous_user = $7
WHERE id = $1`

func (q *Queries) UpdateCart(ctx context.Context, arg CartParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateCart,
		arg.ID,
		arg.OwnerID,
		arg.TotalProducts,
		arg.FinalAmount,
		arg.FinalCurrency,
		arg.InOrder,
		arg.ForAnonymousUser,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteCart = `DELETE
FROM carts
WHERE id = $1`

func (q *Queries) DeleteCart(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteCart, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const createCartProduct = `INSERT INTO cart_products (customer_id, cart_id, content_type, object_id, qty, final_amount, final_currency)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

type CreateCartProductParams struct {
	CustomerID    uuid.UUID
	CartID        uuid.UUID
	ContentType   string
	ObjectID      uuid.UUID
	Qty           int32
	FinalAmount   decimal.Decimal
	FinalCurrency string
}

func (q *Queries) CreateCartProduct(ctx context.Context, arg CreateCartProductParams) (uuid.UUID, error) {
	row := q.db.QueryRow(ctx, createCartProduct,
		arg.CustomerID,
		arg.CartID,
		arg.ContentType,
		arg.ObjectID,
		arg.Qty,
		arg.FinalAmount,
		arg.FinalCurrency,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const linkCartProduct = `INSERT INTO cart_cart_products (cart_id, cart_product_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

func (q *Queries) LinkCartProduct(ctx context.Context, cartID, cartProductID uuid.UUID) error {
	_, err := q.db.Exec(ctx, linkCartProduct, cartID, cartProductID)
	return err
}

const getCartProducts = `SELECT cp.id, cp.customer_id, cp.cart_id, cp.content_type, cp.object_id, cp.qty,
       cp.final_amount, cp.final_currency, cp.created_at
FROM cart_products cp
         JOIN cart_cart_products ccp ON ccp.cart_product_id = cp.id
WHERE ccp.cart_id = $1
ORDER BY cp.created_at, cp.id`

func (q *Queries) GetCartProducts(ctx context.Context, cartID uuid.UUID) ([]CartProduct, error) {
	rows, err := q.db.Query(ctx, getCartProducts, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CartProduct
	for rows.Next() {
		var i CartProduct
		if err := rows.Scan(
			&i.ID,
			&i.CustomerID,
			&i.CartID,
			&i.ContentType,
			&i.ObjectID,
			&i.Qty,
			&i.FinalAmount,
			&i.FinalCurrency,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateCartProductQty = `UPDATE cart_products
SET qty            = $2,
    final_amount   = $3,
    final_currency = $4
WHERE id = $1`

type UpdateCartProductQtyParams struct {
	ID            uuid.UUID
	Qty           int32
	FinalAmount   decimal.Decimal
	FinalCurrency string
}

func (q *Queries) UpdateCartProductQty(ctx context.Context, arg UpdateCartProductQtyParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateCartProductQty, arg.ID, arg.Qty, arg.FinalAmount, arg.FinalCurrency)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteCartProduct = `DELETE
FROM cart_products
WHERE id = $1
  AND cart_id = $2`

func (q *Queries) DeleteCartProduct(ctx context.Context, id, cartID uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteCartProduct, id, cartID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
