package repository_test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *repositorySuite) TestCreateCategory() {
	defer suite.deleteAll()

	duplicate := suite.createCategory()

	tests := []struct {
		name      string
		category  domain.Category
		wantError string
	}{
		{
			name:     "create category: ok",
			category: randomCategory(),
		},
		{
			name:      "empty name: error",
			category:  domain.Category{Slug: "laptops"},
			wantError: "name is empty",
		},
		{
			name:      "empty slug: error",
			category:  domain.Category{Name: "Laptops"},
			wantError: "slug is empty",
		},
		{
			name:      "duplicate slug: error",
			category:  domain.Category{Name: "Other", Slug: duplicate.Slug},
			wantError: "q.CreateCategory",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			id, err := suite.categories.CreateCategory(ctx, tt.category)
			if tt.wantError != "" {
				require.ErrorContains(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			got, err := suite.categories.GetCategory(ctx, id)
			require.NoError(t, err)

			tt.category.ID = id
			assert.Empty(t, cmp.Diff(tt.category, got, domainOpts()))
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}

func (suite *repositorySuite) TestGetCategory() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	category := suite.createCategory()

	bySlug, err := suite.categories.GetCategoryBySlug(ctx, category.Slug)
	require.NoError(t, err)
	assert.Equal(t, category.ID, bySlug.ID)

	_, err = suite.categories.GetCategory(ctx, uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = suite.categories.GetCategoryBySlug(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = suite.categories.GetCategory(ctx, uuid.Nil)
	require.EqualError(t, err, "categoryID is empty")
}

func (suite *repositorySuite) TestListCategories() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	empty, err := suite.categories.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	want := []uuid.UUID{
		suite.createCategory().ID,
		suite.createCategory().ID,
		suite.createCategory().ID,
	}

	all, err := suite.categories.ListCategories(ctx)
	require.NoError(t, err)

	var got []uuid.UUID
	for _, c := range all {
		got = append(got, c.ID)
	}
	assert.ElementsMatch(t, want, got)
}

func (suite *repositorySuite) TestUpdateDeleteCategory() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	category := suite.createCategory()
	category.Name = "Renamed"

	require.NoError(t, suite.categories.UpdateCategory(ctx, category))

	got, err := suite.categories.GetCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)

	err = suite.categories.UpdateCategory(ctx, domain.Category{ID: uuid.New(), Name: "x", Slug: "x"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	deleted, err := suite.categories.DeleteCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = suite.categories.DeleteCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
