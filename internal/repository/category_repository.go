package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type categoryRepository struct {
	q *db.Queries
}

func NewCategory(pool *pgxpool.Pool) port.CategoryRepository {
	return &categoryRepository{
		q: db.New(pool),
	}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category domain.Category) (uuid.UUID, error) {
	if err := validateCategory(category); err != nil {
		return uuid.Nil, err
	}

	id, err := r.q.CreateCategory(ctx, db.CreateCategoryParams{
		Name: category.Name,
		Slug: category.Slug,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.CreateCategory: %w", err)
	}

	return id, nil
}

func (r *categoryRepository) GetCategory(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	if id == uuid.Nil {
		return domain.Category{}, fmt.Errorf("categoryID is empty")
	}

	row, err := r.q.GetCategory(ctx, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("q.GetCategory: %w", notFound(err))
	}

	return mapCategoryToDomain(row), nil
}

func (r *categoryRepository) GetCategoryBySlug(ctx context.Context, slug string) (domain.Category, error) {
	if slug == "" {
		return domain.Category{}, fmt.Errorf("slug is empty")
	}

	row, err := r.q.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return domain.Category{}, fmt.Errorf("q.GetCategoryBySlug: %w", notFound(err))
	}

	return mapCategoryToDomain(row), nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.q.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListCategories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryToDomain(row))
	}

	return categories, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	if category.ID == uuid.Nil {
		return fmt.Errorf("categoryID is empty")
	}
	if err := validateCategory(category); err != nil {
		return err
	}

	rowsAffected, err := r.q.UpdateCategory(ctx, db.UpdateCategoryParams{
		ID:   category.ID,
		Name: category.Name,
		Slug: category.Slug,
	})
	if err != nil {
		return fmt.Errorf("q.UpdateCategory: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("q.UpdateCategory: %w", domain.ErrNotFound)
	}

	return nil
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, fmt.Errorf("categoryID is empty")
	}

	rowsAffected, err := r.q.DeleteCategory(ctx, id)
	if err != nil {
		return false, fmt.Errorf("q.DeleteCategory: %w", err)
	}

	return rowsAffected > 0, nil
}

func validateCategory(category domain.Category) error {
	if category.Name == "" {
		return fmt.Errorf("name is empty")
	}
	if category.Slug == "" {
		return fmt.Errorf("slug is empty")
	}
	return nil
}

func mapCategoryToDomain(row db.Category) domain.Category {
	return domain.Category{
		ID:        row.ID,
		Name:      row.Name,
		Slug:      row.Slug,
		CreatedAt: row.CreatedAt,
	}
}
