package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category domain.Category) (uuid.UUID, error)
	GetCategory(ctx context.Context, id uuid.UUID) (domain.Category, error)
	GetCategoryBySlug(ctx context.Context, slug string) (domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error)
}

// ProductRepository stores every product kind. Create and Update dispatch
// on the concrete type of the product.
type ProductRepository interface {
	CreateProduct(ctx context.Context, p domain.Product) (uuid.UUID, error)
	UpdateProduct(ctx context.Context, p domain.Product) error
	GetProduct(ctx context.Context, ref domain.ProductRef) (domain.Product, error)
	GetProductBySlug(ctx context.Context, kind domain.ProductKind, slug string) (domain.Product, error)
	DeleteProduct(ctx context.Context, ref domain.ProductRef) (bool, error)

	// LatestProducts returns up to limit products of kind, newest first.
	LatestProducts(ctx context.Context, kind domain.ProductKind, limit int) ([]domain.Product, error)
}
