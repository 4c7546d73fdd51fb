package repository_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cartFixture is a customer with an empty cart and one product of each kind.
type cartFixture struct {
	customer   domain.Customer
	cart       domain.Cart
	notebook   *domain.Notebook
	smartphone *domain.Smartphone
}

func (suite *repositorySuite) newCartFixture() cartFixture {
	category := suite.createCategory()
	customer := suite.createCustomer()

	cart := domain.Cart{
		OwnerID:    customer.ID,
		FinalPrice: domain.Money{Amount: decimal.Zero, Currency: randomCurrency()},
	}
	id, err := suite.carts.CreateCart(suite.T().Context(), cart)
	suite.Require().NoError(err)
	cart.ID = id

	return cartFixture{
		customer:   customer,
		cart:       cart,
		notebook:   suite.createNotebook(category.ID),
		smartphone: suite.createSmartphone(category.ID),
	}
}

func (f cartFixture) lineItem(p domain.Product, qty int) domain.CartProduct {
	return domain.CartProduct{
		CustomerID: f.customer.ID,
		CartID:     f.cart.ID,
		Product:    domain.RefOf(p),
		Qty:        qty,
		FinalPrice: domain.LineTotal(p.Base().Price, qty),
	}
}

func (suite *repositorySuite) TestCreateCart() {
	defer suite.deleteAll()

	customer := suite.createCustomer()

	tests := []struct {
		name      string
		cart      domain.Cart
		wantError string
	}{
		{
			name: "create cart: ok",
			cart: domain.Cart{
				OwnerID:    customer.ID,
				FinalPrice: randomMoney(),
			},
		},
		{
			name: "create anonymous cart: ok",
			cart: domain.Cart{
				OwnerID:          customer.ID,
				TotalProducts:    2,
				FinalPrice:       randomMoney(),
				ForAnonymousUser: true,
			},
		},
		{
			name:      "create cart with empty owner ID: error",
			cart:      domain.Cart{FinalPrice: randomMoney()},
			wantError: "ownerID is empty",
		},
		{
			name: "create cart for unknown owner: error",
			cart: domain.Cart{
				OwnerID:    uuid.New(),
				FinalPrice: randomMoney(),
			},
			wantError: "q.CreateCart",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			id, err := suite.carts.CreateCart(ctx, tt.cart)
			if tt.wantError != "" {
				require.ErrorContains(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			cart, err := suite.carts.GetCart(ctx, id)
			require.NoError(t, err)

			tt.cart.ID = id
			assertCart(t, tt.cart, cart)
		})
	}
}

func (suite *repositorySuite) TestAddProduct() {
	defer suite.deleteAll()

	f := suite.newCartFixture()

	tests := []struct {
		name      string
		item      domain.CartProduct
		wantError string
	}{
		{
			name: "add notebook: ok",
			item: f.lineItem(f.notebook, 1),
		},
		{
			name: "add smartphone with quantity: ok",
			item: f.lineItem(f.smartphone, 4),
		},
		{
			name: "add with zero quantity: error",
			item: func() domain.CartProduct {
				item := f.lineItem(f.notebook, 1)
				item.Qty = 0
				return item
			}(),
			wantError: "qty is not positive",
		},
		{
			name: "add with empty cart ID: error",
			item: func() domain.CartProduct {
				item := f.lineItem(f.notebook, 1)
				item.CartID = uuid.Nil
				return item
			}(),
			wantError: "cartID is empty",
		},
		{
			name: "add unknown kind: error",
			item: func() domain.CartProduct {
				item := f.lineItem(f.notebook, 1)
				item.Product.Kind = "tablet"
				return item
			}(),
			wantError: "domain.ParseProductKind: unknown product kind[tablet]",
		},
		{
			name: "add to unknown cart: error",
			item: func() domain.CartProduct {
				item := f.lineItem(f.notebook, 1)
				item.CartID = uuid.New()
				return item
			}(),
			wantError: "q.CreateCartProduct",
		},
	}

	var added []domain.CartProduct

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			id, err := suite.carts.AddProduct(ctx, tt.item)
			if tt.wantError != "" {
				require.ErrorContains(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			tt.item.ID = id
			added = append(added, tt.item)

			cart, err := suite.carts.GetCart(ctx, f.cart.ID)
			require.NoError(t, err)

			assert.Empty(t, cmp.Diff(added, cart.Products, domainOpts()))
		})
	}
}

func (suite *repositorySuite) TestAddProduct_CallerTx() {
	defer suite.deleteAll()

	f := suite.newCartFixture()

	tests := []struct {
		name    string
		commit  bool
		wantLen int
	}{
		{
			name:    "rolled back caller transaction: nothing stored",
			commit:  false,
			wantLen: 0,
		},
		{
			name:    "committed caller transaction: ok",
			commit:  true,
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			tx, err := suite.pool.Begin(ctx)
			require.NoError(t, err)
			defer func() { _ = tx.Rollback(ctx) }()

			carts := repository.NewCartWithTx(tx)

			id, err := carts.AddProduct(ctx, f.lineItem(f.notebook, 2))
			require.NoError(t, err)

			inTx, err := carts.GetCart(ctx, f.cart.ID)
			require.NoError(t, err)
			require.Len(t, inTx.Products, 1)
			assert.Equal(t, id, inTx.Products[0].ID)

			if tt.commit {
				require.NoError(t, tx.Commit(ctx))
			} else {
				require.NoError(t, tx.Rollback(ctx))
			}

			cart, err := suite.carts.GetCart(ctx, f.cart.ID)
			require.NoError(t, err)
			assert.Len(t, cart.Products, tt.wantLen)
		})
	}
}

func (suite *repositorySuite) TestUpdateProductQty() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	f := suite.newCartFixture()

	id, err := suite.carts.AddProduct(ctx, f.lineItem(f.notebook, 1))
	require.NoError(t, err)

	newTotal := domain.LineTotal(f.notebook.Price, 3)
	require.NoError(t, suite.carts.UpdateProductQty(ctx, id, 3, newTotal))

	cart, err := suite.carts.GetCart(ctx, f.cart.ID)
	require.NoError(t, err)
	require.Len(t, cart.Products, 1)
	assert.Equal(t, 3, cart.Products[0].Qty)
	assert.True(t, newTotal.Amount.Equal(cart.Products[0].FinalPrice.Amount))

	err = suite.carts.UpdateProductQty(ctx, id, 0, newTotal)
	require.EqualError(t, err, "qty is not positive")

	err = suite.carts.UpdateProductQty(ctx, uuid.New(), 2, newTotal)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *repositorySuite) TestRemoveProduct() {
	defer suite.deleteAll()

	tests := []struct {
		name        string
		setup       func(f cartFixture) (cartID, itemID uuid.UUID)
		wantRemoved bool
		wantError   string
	}{
		{
			name: "remove existing item: ok",
			setup: func(f cartFixture) (uuid.UUID, uuid.UUID) {
				id, err := suite.carts.AddProduct(suite.T().Context(), f.lineItem(f.smartphone, 2))
				suite.Require().NoError(err)
				return f.cart.ID, id
			},
			wantRemoved: true,
		},
		{
			name: "remove non-existing item: not found",
			setup: func(f cartFixture) (uuid.UUID, uuid.UUID) {
				_, err := suite.carts.AddProduct(suite.T().Context(), f.lineItem(f.smartphone, 2))
				suite.Require().NoError(err)
				return f.cart.ID, uuid.New()
			},
			wantRemoved: false,
		},
		{
			name: "remove item of another cart: not found",
			setup: func(f cartFixture) (uuid.UUID, uuid.UUID) {
				id, err := suite.carts.AddProduct(suite.T().Context(), f.lineItem(f.notebook, 1))
				suite.Require().NoError(err)
				return uuid.New(), id
			},
			wantRemoved: false,
		},
		{
			name: "remove with empty cart ID: error",
			setup: func(cartFixture) (uuid.UUID, uuid.UUID) {
				return uuid.Nil, uuid.New()
			},
			wantError: "cartID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			f := suite.newCartFixture()
			cartID, itemID := tt.setup(f)

			removed, err := suite.carts.RemoveProduct(ctx, cartID, itemID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRemoved, removed)

			if removed {
				cart, err := suite.carts.GetCart(ctx, cartID)
				require.NoError(t, err)
				assert.Empty(t, cart.Products)
			}
		})
	}
}

func (suite *repositorySuite) TestGetCart() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		items     func(f cartFixture) []domain.CartProduct
		cartID    func(f cartFixture) uuid.UUID
		wantError string
		wantErrIs error
	}{
		{
			name: "get cart with items: ok",
			items: func(f cartFixture) []domain.CartProduct {
				return []domain.CartProduct{f.lineItem(f.notebook, 1), f.lineItem(f.smartphone, 2)}
			},
			cartID: func(f cartFixture) uuid.UUID { return f.cart.ID },
		},
		{
			name:   "get empty cart: ok",
			items:  func(cartFixture) []domain.CartProduct { return nil },
			cartID: func(f cartFixture) uuid.UUID { return f.cart.ID },
		},
		{
			name:      "get unknown cart: not found",
			items:     func(cartFixture) []domain.CartProduct { return nil },
			cartID:    func(cartFixture) uuid.UUID { return uuid.New() },
			wantErrIs: domain.ErrNotFound,
		},
		{
			name:      "get cart with empty ID: error",
			items:     func(cartFixture) []domain.CartProduct { return nil },
			cartID:    func(cartFixture) uuid.UUID { return uuid.Nil },
			wantError: "cartID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			f := suite.newCartFixture()

			// Setup: add items to cart
			items := tt.items(f)
			for i := range items {
				id, err := suite.carts.AddProduct(ctx, items[i])
				require.NoError(t, err)
				items[i].ID = id
			}

			cart, err := suite.carts.GetCart(ctx, tt.cartID(f))
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)

			want := f.cart
			want.Products = items
			assertCart(t, want, cart)
		})
	}
}

func (suite *repositorySuite) TestUpdateDeleteCart() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	f := suite.newCartFixture()

	item := f.lineItem(f.notebook, 2)
	_, err := suite.carts.AddProduct(ctx, item)
	require.NoError(t, err)

	f.cart.TotalProducts = 2
	f.cart.FinalPrice = item.FinalPrice
	f.cart.InOrder = true
	require.NoError(t, suite.carts.UpdateCart(ctx, f.cart))

	cart, err := suite.carts.GetCart(ctx, f.cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.TotalProducts)
	assert.True(t, cart.InOrder)
	assert.True(t, item.FinalPrice.Amount.Equal(cart.FinalPrice.Amount))

	deleted, err := suite.carts.DeleteCart(ctx, f.cart.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = suite.carts.GetCart(ctx, f.cart.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// line items go with their cart
	var count int
	require.NoError(t, suite.pool.QueryRow(ctx, "SELECT COUNT(*) FROM cart_products WHERE cart_id = $1", f.cart.ID).Scan(&count))
	assert.Zero(t, count)

	err = suite.carts.UpdateCart(ctx, f.cart)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func assertCart(t *testing.T, expected, actual domain.Cart) {
	t.Helper()

	diff := cmp.Diff(expected, actual, domainOpts())
	assert.Empty(t, diff)
}
