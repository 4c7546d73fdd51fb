package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

// NewCartWithTx runs every operation inside tx; the caller commits or rolls back.
func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) CreateCart(ctx context.Context, cart domain.Cart) (uuid.UUID, error) {
	if cart.OwnerID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("ownerID is empty")
	}
	if cart.TotalProducts < 0 {
		return uuid.Nil, fmt.Errorf("totalProducts is negative")
	}

	id, err := r.q.CreateCart(ctx, mapCartToParams(cart))
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.CreateCart: %w", err)
	}

	return id, nil
}

func (r *cartRepository) GetCart(ctx context.Context, cartID uuid.UUID) (domain.Cart, error) {
	if cartID == uuid.Nil {
		return domain.Cart{}, fmt.Errorf("cartID is empty")
	}

	type cartRows struct {
		cart  db.Cart
		items []db.CartProduct
	}

	rows, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (cartRows, error) {
		dbCart, err := q.GetCart(ctx, cartID)
		if err != nil {
			return cartRows{}, fmt.Errorf("q.GetCart: %w", notFound(err))
		}

		dbItems, err := q.GetCartProducts(ctx, cartID)
		if err != nil {
			return cartRows{}, fmt.Errorf("q.GetCartProducts: %w", err)
		}

		return cartRows{cart: dbCart, items: dbItems}, nil
	})
	if err != nil {
		return domain.Cart{}, err
	}

	cart, err := mapCartToDomain(rows.cart)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapCartToDomain: %w", err)
	}

	cart.Products, err = mapCartProductsToDomain(rows.items)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapCartProductsToDomain: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) UpdateCart(ctx context.Context, cart domain.Cart) error {
	if cart.ID == uuid.Nil {
		return fmt.Errorf("cartID is empty")
	}
	if cart.OwnerID == uuid.Nil {
		return fmt.Errorf("ownerID is empty")
	}
	if cart.TotalProducts < 0 {
		return fmt.Errorf("totalProducts is negative")
	}

	rowsAffected, err := r.q.UpdateCart(ctx, mapCartToParams(cart))
	if err != nil {
		return fmt.Errorf("q.UpdateCart: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("q.UpdateCart: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *cartRepository) DeleteCart(ctx context.Context, cartID uuid.UUID) (bool, error) {
	if cartID == uuid.Nil {
		return false, fmt.Errorf("cartID is empty")
	}

	rowsAffected, err := r.q.DeleteCart(ctx, cartID)
	if err != nil {
		return false, fmt.Errorf("q.DeleteCart: %w", err)
	}

	return rowsAffected > 0, nil
}

// AddProduct stores a line item and links it to its cart in one transaction.
func (r *cartRepository) AddProduct(ctx context.Context, item domain.CartProduct) (uuid.UUID, error) {
	if item.CartID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("cartID is empty")
	}
	if item.CustomerID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("customerID is empty")
	}
	if item.Product.ID == uuid.Nil {
		return uuid.Nil, fmt.Errorf("productID is empty")
	}
	if _, err := domain.ParseProductKind(item.Product.Kind.String()); err != nil {
		return uuid.Nil, fmt.Errorf("domain.ParseProductKind: %w", err)
	}
	if item.Qty <= 0 {
		return uuid.Nil, fmt.Errorf("qty is not positive")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (uuid.UUID, error) {
		id, err := q.CreateCartProduct(ctx, db.CreateCartProductParams{
			CustomerID:    item.CustomerID,
			CartID:        item.CartID,
			ContentType:   item.Product.Kind.String(),
			ObjectID:      item.Product.ID,
			Qty:           int32(item.Qty),
			FinalAmount:   item.FinalPrice.Amount,
			FinalCurrency: item.FinalPrice.Currency.String(),
		})
		if err != nil {
			return uuid.Nil, fmt.Errorf("q.CreateCartProduct: %w", err)
		}

		if err := q.LinkCartProduct(ctx, item.CartID, id); err != nil {
			return uuid.Nil, fmt.Errorf("q.LinkCartProduct: %w", err)
		}

		return id, nil
	})
}

func (r *cartRepository) UpdateProductQty(ctx context.Context, itemID uuid.UUID, qty int, finalPrice domain.Money) error {
	if itemID == uuid.Nil {
		return fmt.Errorf("itemID is empty")
	}
	if qty <= 0 {
		return fmt.Errorf("qty is not positive")
	}

	rowsAffected, err := r.q.UpdateCartProductQty(ctx, db.UpdateCartProductQtyParams{
		ID:            itemID,
		Qty:           int32(qty),
		FinalAmount:   finalPrice.Amount,
		FinalCurrency: finalPrice.Currency.String(),
	})
	if err != nil {
		return fmt.Errorf("q.UpdateCartProductQty: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("q.UpdateCartProductQty: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *cartRepository) RemoveProduct(ctx context.Context, cartID, itemID uuid.UUID) (bool, error) {
	if cartID == uuid.Nil {
		return false, fmt.Errorf("cartID is empty")
	}
	if itemID == uuid.Nil {
		return false, fmt.Errorf("itemID is empty")
	}

	rowsAffected, err := r.q.DeleteCartProduct(ctx, itemID, cartID)
	if err != nil {
		return false, fmt.Errorf("q.DeleteCartProduct: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapCartToParams(cart domain.Cart) db.CartParams {
	return db.CartParams{
		ID:               cart.ID,
		OwnerID:          cart.OwnerID,
		TotalProducts:    int32(cart.TotalProducts),
		FinalAmount:      cart.FinalPrice.Amount,
		FinalCurrency:    cart.FinalPrice.Currency.String(),
		InOrder:          cart.InOrder,
		ForAnonymousUser: cart.ForAnonymousUser,
	}
}

func mapCartToDomain(row db.Cart) (domain.Cart, error) {
	finalPrice, err := mapMoneyToDomain(row.FinalAmount, row.FinalCurrency)
	if err != nil {
		return domain.Cart{}, err
	}

	return domain.Cart{
		ID:               row.ID,
		OwnerID:          row.OwnerID,
		TotalProducts:    int(row.TotalProducts),
		FinalPrice:       finalPrice,
		InOrder:          row.InOrder,
		ForAnonymousUser: row.ForAnonymousUser,
	}, nil
}

func mapCartProductToDomain(row db.CartProduct) (domain.CartProduct, error) {
	kind, err := domain.ParseProductKind(row.ContentType)
	if err != nil {
		return domain.CartProduct{}, err
	}

	finalPrice, err := mapMoneyToDomain(row.FinalAmount, row.FinalCurrency)
	if err != nil {
		return domain.CartProduct{}, err
	}

	return domain.CartProduct{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		CartID:     row.CartID,
		Product:    domain.ProductRef{Kind: kind, ID: row.ObjectID},
		Qty:        int(row.Qty),
		FinalPrice: finalPrice,
	}, nil
}

func mapCartProductsToDomain(rows []db.CartProduct) ([]domain.CartProduct, error) {
	var items []domain.CartProduct

	for _, row := range rows {
		item, err := mapCartProductToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapCartProductToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
