package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const notebookColumns = `id, category_id, title, slug, image, description, price_amount, price_currency,
       diagonal, display_type, processor_freq, ram, video, time_without_charge, created_at, updated_at`

func scanNotebook(row pgx.Row) (Notebook, error) {
	var i Notebook
	err := row.Scan(
		&i.ID,
		&i.CategoryID,
		&i.Title,
		&i.Slug,
		&i.Image,
		&i.Description,
		&i.PriceAmount,
		&i.PriceCurrency,
		&i.Diagonal,
		&i.DisplayType,
		&i.ProcessorFreq,
		&i.Ram,
		&i.Video,
		&i.TimeWithoutCharge,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createNotebook = `INSERT INTO notebooks (category_id, title, slug, image, description, price_amount, price_currency,
                       diagonal, display_type, processor_freq, ram, video, time_without_charge)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`

type NotebookParams struct {
	ID                uuid.UUID
	CategoryID        uuid.UUID
	Title             string
	Slug              string
	Image             string
	Description       *string
	PriceAmount       decimal.Decimal
	PriceCurrency     string
	Diagonal          string
	DisplayType       string
	ProcessorFreq     string
	Ram               string
	Video             string
	TimeWithoutCharge string
}

func (q *Queries) CreateNotebook(ctx context.Context, arg NotebookParams) (uuid.UUID, error) {
	row := q.db.QueryRow(ctx, createNotebook,
		arg.CategoryID,
		arg.Title,
		arg.Slug,
		arg.Image,
		arg.Description,
		arg.PriceAmount,
		arg.PriceCurrency,
		arg.Diagonal,
		arg.DisplayType,
		arg.ProcessorFreq,
		arg.Ram,
		arg.Video,
		arg.TimeWithoutCharge,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const updateNotebook = `UPDATE notebooks
SET category_id         = $2,
    title               = $3,
    slug                = $4,
    image               = $5,
    description         = $6,
    price_amount        = $7,
    price_currency      = $8,
    diagonal            = $9,
    display_type        = $10,
    processor_freq      = $11,
    ram                 = $12,
    video               = $13,
    time_without_charge = $14,
    updated_at          = NOW()
WHERE id = $1`

func (q *Queries) UpdateNotebook(ctx context.Context, arg NotebookParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateNotebook,
		arg.ID,
		arg.CategoryID,
		arg.Title,
		arg.Slug,
		arg.Image,
		arg.Description,
		arg.PriceAmount,
		arg.PriceCurrency,
		arg.Diagonal,
		arg.DisplayType,
		arg.ProcessorFreq,
		arg.Ram,
		arg.Video,
		arg.TimeWithoutCharge,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getNotebook = `SELECT ` + notebookColumns + `
FROM notebooks
WHERE id = $1`

func (q *Queries) GetNotebook(ctx context.Context, id uuid.UUID) (Notebook, error) {
	return scanNotebook(q.db.QueryRow(ctx, getNotebook, id))
}

const getNotebookBySlug = `SELECT ` + notebookColumns + `
FROM notebooks
WHERE slug = $1`

func (q *Queries) GetNotebookBySlug(ctx context.Context, slug string) (Notebook, error) {
	return scanNotebook(q.db.QueryRow(ctx, getNotebookBySlug, slug))
}

const latestNotebooks = `SELECT ` + notebookColumns + `
FROM notebooks
ORDER BY created_at DESC, id DESC
LIMIT $1`

func (q *Queries) LatestNotebooks(ctx context.Context, limit int32) ([]Notebook, error) {
	rows, err := q.db.Query(ctx, latestNotebooks, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Notebook
	for rows.Next() {
		i, err := scanNotebook(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteNotebook = `DELETE
FROM notebooks
WHERE id = $1`

func (q *Queries) DeleteNotebook(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteNotebook, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
