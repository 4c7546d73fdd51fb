package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/sirupsen/logrus"
)

// CartLine is a line item with its product resolved.
type CartLine struct {
	Item    domain.CartProduct
	Product domain.Product
}

type CartView struct {
	Cart  domain.Cart
	Lines []CartLine
}

type CartService struct {
	carts    port.CartRepository
	products port.ProductRepository
	log      logrus.FieldLogger
}

func NewCartService(carts port.CartRepository, products port.ProductRepository, log logrus.FieldLogger) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		log:      log,
	}
}

// AddProduct puts qty units of the referenced product into the cart, pricing
// the line at the product's current price.
func (s *CartService) AddProduct(ctx context.Context, cart domain.Cart, ref domain.ProductRef, qty int) (domain.CartProduct, error) {
	p, err := s.products.GetProduct(ctx, ref)
	if err != nil {
		return domain.CartProduct{}, fmt.Errorf("products.GetProduct: %w", err)
	}

	item := domain.CartProduct{
		CustomerID: cart.OwnerID,
		CartID:     cart.ID,
		Product:    ref,
		Qty:        qty,
		FinalPrice: domain.LineTotal(p.Base().Price, qty),
	}

	item.ID, err = s.carts.AddProduct(ctx, item)
	if err != nil {
		return domain.CartProduct{}, fmt.Errorf("carts.AddProduct: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"cart":    cart.ID,
		"product": ref.ID,
		"qty":     qty,
	}).Debug("product added to cart")

	return item, nil
}

// View loads the cart and resolves every line's polymorphic product reference.
func (s *CartService) View(ctx context.Context, cartID uuid.UUID) (CartView, error) {
	cart, err := s.carts.GetCart(ctx, cartID)
	if err != nil {
		return CartView{}, fmt.Errorf("carts.GetCart: %w", err)
	}

	lines := make([]CartLine, 0, len(cart.Products))
	for _, item := range cart.Products {
		p, err := s.products.GetProduct(ctx, item.Product)
		if err != nil {
			return CartView{}, fmt.Errorf("products.GetProduct[%s %s]: %w", item.Product.Kind, item.Product.ID, err)
		}
		lines = append(lines, CartLine{Item: item, Product: p})
	}

	return CartView{Cart: cart, Lines: lines}, nil
}
