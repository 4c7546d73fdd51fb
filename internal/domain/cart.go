package domain

import (
	"github.com/google/uuid"
)

type Cart struct {
	ID               uuid.UUID
	OwnerID          uuid.UUID
	Products         []CartProduct
	TotalProducts    int
	FinalPrice       Money
	InOrder          bool
	ForAnonymousUser bool
}

// CartProduct is a line item. FinalPrice is supplied by the caller,
// see LineTotal.
type CartProduct struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	CartID     uuid.UUID
	Product    ProductRef
	Qty        int
	FinalPrice Money
}

// LineTotal is the price of qty units at unit price.
func LineTotal(unit Money, qty int) Money {
	return unit.Times(qty)
}
