package repository_test

import (
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestCreateProduct() {
	defer suite.deleteAll()

	category := suite.createCategory()
	existing := suite.createNotebook(category.ID)

	tests := []struct {
		name      string
		product   func() domain.Product
		wantError string
	}{
		{
			name:    "create notebook: ok",
			product: func() domain.Product { return randomNotebook(category.ID) },
		},
		{
			name: "create smartphone with SD: ok",
			product: func() domain.Product {
				phone := randomSmartphone(category.ID)
				volume := "512 GB"
				phone.SD, phone.SDVolumeMax = true, &volume
				return phone
			},
		},
		{
			name: "create smartphone without SD: ok",
			product: func() domain.Product {
				phone := randomSmartphone(category.ID)
				phone.SD, phone.SDVolumeMax = false, nil
				return phone
			},
		},
		{
			name: "create product without description: ok",
			product: func() domain.Product {
				n := randomNotebook(category.ID)
				n.Description = nil
				return n
			},
		},
		{
			name: "zero price: error",
			product: func() domain.Product {
				n := randomNotebook(category.ID)
				n.Price.Amount = decimal.Zero
				return n
			},
			wantError: "price is not positive",
		},
		{
			name: "empty category: error",
			product: func() domain.Product {
				return randomNotebook(uuid.Nil)
			},
			wantError: "categoryID is empty",
		},
		{
			name: "empty slug: error",
			product: func() domain.Product {
				n := randomSmartphone(category.ID)
				n.Slug = ""
				return n
			},
			wantError: "slug is empty",
		},
		{
			name: "duplicate slug: error",
			product: func() domain.Product {
				n := randomNotebook(category.ID)
				n.Slug = existing.Slug
				return n
			},
			wantError: "q.CreateNotebook",
		},
		{
			name: "unknown category: error",
			product: func() domain.Product {
				return randomSmartphone(uuid.New())
			},
			wantError: "q.CreateSmartphone",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			p := tt.product()

			id, err := suite.products.CreateProduct(ctx, p)
			if tt.wantError != "" {
				require.ErrorContains(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			p.Base().ID = id

			got, err := suite.products.GetProduct(ctx, domain.RefOf(p))
			require.NoError(t, err)
			assertProduct(t, p, got)

			bySlug, err := suite.products.GetProductBySlug(ctx, p.Kind(), p.Base().Slug)
			require.NoError(t, err)
			assertProduct(t, p, bySlug)
		})
	}
}

func (suite *repositorySuite) TestGetProduct_NotFound() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	category := suite.createCategory()
	notebook := suite.createNotebook(category.ID)

	// same id under the other kind is a different record
	_, err := suite.products.GetProduct(ctx, domain.ProductRef{Kind: domain.KindSmartphone, ID: notebook.ID})
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = suite.products.GetProductBySlug(ctx, domain.KindNotebook, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = suite.products.GetProduct(ctx, domain.ProductRef{Kind: "tablet", ID: notebook.ID})
	require.EqualError(t, err, "unknown product kind[tablet]")
}

func (suite *repositorySuite) TestUpdateProduct() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	category := suite.createCategory()
	phone := suite.createSmartphone(category.ID)

	before, err := suite.products.GetProduct(ctx, domain.RefOf(phone))
	require.NoError(t, err)

	phone.Title = "Updated title"
	phone.SD = false
	phone.SDVolumeMax = nil
	phone.Price = randomMoney()

	require.NoError(t, suite.products.UpdateProduct(ctx, phone))

	after, err := suite.products.GetProduct(ctx, domain.RefOf(phone))
	require.NoError(t, err)
	assertProduct(t, phone, after)
	assert.False(t, after.Base().UpdatedAt.Before(before.Base().UpdatedAt))

	missing := randomNotebook(category.ID)
	missing.ID = uuid.New()
	err = suite.products.UpdateProduct(ctx, missing)
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = suite.products.UpdateProduct(ctx, randomNotebook(category.ID))
	require.EqualError(t, err, "productID is empty")
}

func (suite *repositorySuite) TestDeleteProduct() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	category := suite.createCategory()
	notebook := suite.createNotebook(category.ID)

	deleted, err := suite.products.DeleteProduct(ctx, domain.RefOf(notebook))
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = suite.products.DeleteProduct(ctx, domain.RefOf(notebook))
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = suite.products.GetProduct(ctx, domain.RefOf(notebook))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *repositorySuite) TestLatestProducts() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	category := suite.createCategory()

	var notebooks []uuid.UUID
	for range 7 {
		notebooks = append(notebooks, suite.createNotebook(category.ID).ID)
	}
	phone := suite.createSmartphone(category.ID)

	latest, err := suite.products.LatestProducts(ctx, domain.KindNotebook, 5)
	require.NoError(t, err)
	require.Len(t, latest, 5)

	for i, p := range latest {
		assert.Equal(t, domain.KindNotebook, p.Kind())
		assert.Equal(t, notebooks[len(notebooks)-1-i], p.Base().ID, "newest first")
	}

	phones, err := suite.products.LatestProducts(ctx, domain.KindSmartphone, 5)
	require.NoError(t, err)
	require.Len(t, phones, 1)
	assert.Equal(t, phone.ID, phones[0].Base().ID)

	_, err = suite.products.LatestProducts(ctx, domain.KindSmartphone, 0)
	require.EqualError(t, err, "limit is not positive")
}
