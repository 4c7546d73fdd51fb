package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type CartRepository interface {
	CreateCart(ctx context.Context, cart domain.Cart) (uuid.UUID, error)
	GetCart(ctx context.Context, cartID uuid.UUID) (domain.Cart, error)
	UpdateCart(ctx context.Context, cart domain.Cart) error
	DeleteCart(ctx context.Context, cartID uuid.UUID) (bool, error)

	AddProduct(ctx context.Context, item domain.CartProduct) (uuid.UUID, error)
	UpdateProductQty(ctx context.Context, itemID uuid.UUID, qty int, finalPrice domain.Money) error
	RemoveProduct(ctx context.Context, cartID, itemID uuid.UUID) (bool, error)
}
