package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const smartphoneColumns = `id, category_id, title, slug, image, description, price_amount, price_currency,
       diagonal, display_type, resolution, accum_volume, ram, sd, sd_volume_max, main_cam_mp, frontal_cam_mp,
       created_at, updated_at`

func scanSmartphone(row pgx.Row) (Smartphone, error) {
	var i Smartphone
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
		&i.Resolution,
		&i.AccumVolume,
		&i.Ram,
		&i.Sd,
		&i.SdVolumeMax,
		&i.MainCamMp,
		&i.FrontalCamMp,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createSmartphone = `INSERT INTO smartphones (category_id, title, slug, image, description, price_amount, price_currency,
                         diagonal, display_type, resolution, accum_volume, ram, sd, sd_volume_max, main_cam_mp,
                         frontal_cam_mp)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
RETURNING id`

type SmartphoneParams struct {
	ID            uuid.UUID
	CategoryID    uuid.UUID
	Title         string
	Slug          string
	Image         string
	Description   *string
	PriceAmount   decimal.Decimal
	PriceCurrency string
	Diagonal      string
	DisplayType   string
	Resolution    string
	AccumVolume   string
	Ram           string
	Sd            bool
	SdVolumeMax   *string
	MainCamMp     string
	FrontalCamMp  string
}

func (q *Queries) CreateSmartphone(ctx context.Context, arg SmartphoneParams) (uuid.UUID, error) {
	row := q.db.QueryRow(ctx, createSmartphone,
		arg.CategoryID,
		arg.Title,
		arg.Slug,
		arg.Image,
		arg.Description,
		arg.PriceAmount,
		arg.PriceCurrency,
		arg.Diagonal,
		arg.DisplayType,
		arg.Resolution,
		arg.AccumVolume,
		arg.Ram,
		arg.Sd,
		arg.SdVolumeMax,
		arg.MainCamMp,
		arg.FrontalCamMp,
	)
	var id uuid.UUID
	err := row.Scan(&id)
	return id, err
}

const updateSmartphone = `UPDATE smartphones
SET category_id    = $2,
    title          = $3,
    slug           = $4,
    image          = $5,
    description    = $6,
    price_amount   = $7,
    price_currency = $8,
    diagonal       = $9,
    display_type   = $10,
    resolution     = $11,
    accum_volume   = $12,
    ram            = $13,
    sd             = $14,
    sd_volume_max  = $15,
    main_cam_mp    = $16,
    frontal_cam_mp = $17,
    updated_at     = NOW()
WHERE id = $1`

func (q *Queries) UpdateSmartphone(ctx context.Context, arg SmartphoneParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateSmartphone,
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
		arg.Resolution,
		arg.AccumVolume,
		arg.Ram,
		arg.Sd,
		arg.SdVolumeMax,
		arg.MainCamMp,
		arg.FrontalCamMp,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getSmartphone = `SELECT ` + smartphoneColumns + `
FROM smartphones
WHERE id = $1`

func (q *Queries) GetSmartphone(ctx context.Context, id uuid.UUID) (Smartphone, error) {
	return scanSmartphone(q.db.QueryRow(ctx, getSmartphone, id))
}

const getSmartphoneBySlug = `SELECT ` + smartphoneColumns + `
FROM smartphones
WHERE slug = $1`

func (q *Queries) GetSmartphoneBySlug(ctx context.Context, slug string) (Smartphone, error) {
	return scanSmartphone(q.db.QueryRow(ctx, getSmartphoneBySlug, slug))
}

const latestSmartphones = `SELECT ` + smartphoneColumns + `
FROM smartphones
ORDER BY created_at DESC, id DESC
LIMIT $1`

func (q *Queries) LatestSmartphones(ctx context.Context, limit int32) ([]Smartphone, error) {
	rows, err := q.db.Query(ctx, latestSmartphones, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Smartphone
	for rows.Next() {
		i, err := scanSmartphone(rows)
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

const deleteSmartphone = `DELETE
FROM smartphones
WHERE id = $1`

func (q *Queries) DeleteSmartphone(ctx context.Context, id uuid.UUID) (int64, error) {
	result, err := q.db.Exec(ctx, deleteSmartphone, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
