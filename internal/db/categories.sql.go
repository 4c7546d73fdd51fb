package db

import (
	"context"

	"github.com/google/uuid"
)

const createCategory = `INSERT INTO categories (name, slug)
VALUES ($1, $2)
RETURNING id`

type CreateCategoryParams struct {
	Name string
	Slug string
}

func (q *Queries) CreateCategory(ctx context.Context, arg CreateCategoryParams) (uuid.UUID, error) {
	row := q.db.QueryRow(ctx, createCategory, arg.Name, arg.Slug)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const getCategory = `SELECT id, name, slug, created_at
FROM categories
WHERE id = $1`

func (q *Queries) GetCategory(ctx context.Context, id uuid.UUID) (Category, error) {
	row := q.db.QueryRow(ctx, getCategory, id)
	var i Category
	err := row.Scan(&i.ID, &i.Name, &i.Slug, &i.CreatedAt)
	return i, err
}

const getCategoryBySlug = `SELECT id, name, slug, created_at
FROM categories
WHERE slug = $1`

func (q *Queries) GetCategoryBySlug(ctx context.Context, slug string) (Category, error) {
	row := q.db.QueryRow(ctx, getCategoryBySlug, slug)
	var i Category
	err := row.Scan(&i.ID, &i.Name, &i.Slug, &i.CreatedAt)
	return i, err
}

const listCategories = `SELECT id, name, slug, created_at
FROM categories
ORDER BY name, id`

func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.Query(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Category
	for rows.Next() {
		var i Category
		if err := rows.Scan(&i.ID, &i.Name, &i.Slug, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateCategory = `UPDATE categories
SET name = $2,
    slug = $3
WHERE id = $1`

type UpdateCategoryParams struct {
	ID   uuid.UUID
	Name string
	Slug string
}

func (q *Queries) UpdateCategory(ctx context.Context, arg UpdateCategoryParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateCategory, arg.ID, arg.Name, arg.Slug)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteCategory = `DELETE
FROM categories
WHERE id = $1`

func (q *Queries) DeleteCategory(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteCategory, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
