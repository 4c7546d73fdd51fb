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

type productRepository struct {
	q *db.Queries
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q: db.New(pool),
	}
}

func (r *productRepository) CreateProduct(ctx context.Context, p domain.Product) (uuid.UUID, error) {
	if err := validateProduct(p); err != nil {
		return uuid.Nil, err
	}

	switch v := p.(type) {
	case *domain.Notebook:
		id, err := r.q.CreateNotebook(ctx, mapNotebookToParams(v))
		if err != nil {
			return uuid.Nil, fmt.Errorf("q.CreateNotebook: %w", err)
		}
		return id, nil
	case *domain.Smartphone:
		id, err := r.q.CreateSmartphone(ctx, mapSmartphoneToParams(v))
		if err != nil {
			return uuid.Nil, fmt.Errorf("q.CreateSmartphone: %w", err)
		}
		return id, nil
	default:
		return uuid.Nil, fmt.Errorf("product type[%T] is not supported", p)
	}
}

func (r *productRepository) UpdateProduct(ctx context.Context, p domain.Product) error {
	if p == nil || p.Base().ID == uuid.Nil {
		return fmt.Errorf("productID is empty")
	}
	if err := validateProduct(p); err != nil {
		return err
	}

	var (
		rowsAffected int64
		err          error
	)

	switch v := p.(type) {
	case *domain.Notebook:
		rowsAffected, err = r.q.UpdateNotebook(ctx, mapNotebookToParams(v))
		if err != nil {
			return fmt.Errorf("q.UpdateNotebook: %w", err)
		}
	case *domain.Smartphone:
		rowsAffected, err = r.q.UpdateSmartphone(ctx, mapSmartphoneToParams(v))
		if err != nil {
			return fmt.Errorf("q.UpdateSmartphone: %w", err)
		}
	default:
		return fmt.Errorf("product type[%T] is not supported", p)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("update %s: %w", p.Kind(), domain.ErrNotFound)
	}

	return nil
}

func (r *productRepository) GetProduct(ctx context.Context, ref domain.ProductRef) (domain.Product, error) {
	if ref.ID == uuid.Nil {
		return nil, fmt.Errorf("productID is empty")
	}

	switch ref.Kind {
	case domain.KindNotebook:
		row, err := r.q.GetNotebook(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("q.GetNotebook: %w", notFound(err))
		}
		return toProduct[*domain.Notebook](mapNotebookToDomain(row))
	case domain.KindSmartphone:
		row, err := r.q.GetSmartphone(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("q.GetSmartphone: %w", notFound(err))
		}
		return toProduct[*domain.Smartphone](mapSmartphoneToDomain(row))
	default:
		return nil, fmt.Errorf("unknown product kind[%s]", ref.Kind)
	}
}

func (r *productRepository) GetProductBySlug(ctx context.Context, kind domain.ProductKind, slug string) (domain.Product, error) {
	if slug == "" {
		return nil, fmt.Errorf("slug is empty")
	}

	switch kind {
	case domain.KindNotebook:
		row, err := r.q.GetNotebookBySlug(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("q.GetNotebookBySlug: %w", notFound(err))
		}
		return toProduct[*domain.Notebook](mapNotebookToDomain(row))
	case domain.KindSmartphone:
		row, err := r.q.GetSmartphoneBySlug(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("q.GetSmartphoneBySlug: %w", notFound(err))
		}
		return toProduct[*domain.Smartphone](mapSmartphoneToDomain(row))
	default:
		return nil, fmt.Errorf("unknown product kind[%s]", kind)
	}
}

func (r *productRepository) DeleteProduct(ctx context.Context, ref domain.ProductRef) (bool, error) {
	if ref.ID == uuid.Nil {
		return false, fmt.Errorf("productID is empty")
	}

	var (
		rowsAffected int64
		err          error
	)

	switch ref.Kind {
	case domain.KindNotebook:
		rowsAffected, err = r.q.DeleteNotebook(ctx, ref.ID)
	case domain.KindSmartphone:
		rowsAffected, err = r.q.DeleteSmartphone(ctx, ref.ID)
	default:
		return false, fmt.Errorf("unknown product kind[%s]", ref.Kind)
	}
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", ref.Kind, err)
	}

	return rowsAffected > 0, nil
}

func (r *productRepository) LatestProducts(ctx context.Context, kind domain.ProductKind, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit is not positive")
	}

	var products []domain.Product

	switch kind {
	case domain.KindNotebook:
		rows, err := r.q.LatestNotebooks(ctx, int32(limit))
		if err != nil {
			return nil, fmt.Errorf("q.LatestNotebooks: %w", err)
		}
		for _, row := range rows {
			p, err := mapNotebookToDomain(row)
			if err != nil {
				return nil, fmt.Errorf("mapNotebookToDomain: %w", err)
			}
			products = append(products, p)
		}
	case domain.KindSmartphone:
		rows, err := r.q.LatestSmartphones(ctx, int32(limit))
		if err != nil {
			return nil, fmt.Errorf("q.LatestSmartphones: %w", err)
		}
		for _, row := range rows {
			p, err := mapSmartphoneToDomain(row)
			if err != nil {
				return nil, fmt.Errorf("mapSmartphoneToDomain: %w", err)
			}
			products = append(products, p)
		}
	default:
		return nil, fmt.Errorf("unknown product kind[%s]", kind)
	}

	return products, nil
}

// toProduct keeps a failed mapping from leaking a typed nil pointer.
func toProduct[T domain.Product](p T, err error) (domain.Product, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}

func validateProduct(p domain.Product) error {
	if p == nil {
		return fmt.Errorf("product is nil")
	}

	b := p.Base()
	switch {
	case b.CategoryID == uuid.Nil:
		return fmt.Errorf("categoryID is empty")
	case b.Title == "":
		return fmt.Errorf("title is empty")
	case b.Slug == "":
		return fmt.Errorf("slug is empty")
	case b.Image == "":
		return fmt.Errorf("image is empty")
	case !b.Price.IsPositive():
		return fmt.Errorf("price is not positive")
	}

	return nil
}

func mapNotebookToParams(n *domain.Notebook) db.NotebookParams {
	return db.NotebookParams{
		ID:                n.ID,
		CategoryID:        n.CategoryID,
		Title:             n.Title,
		Slug:              n.Slug,
		Image:             n.Image,
		Description:       n.Description,
		PriceAmount:       n.Price.Amount,
		PriceCurrency:     n.Price.Currency.String(),
		Diagonal:          n.Diagonal,
		DisplayType:       n.DisplayType,
		ProcessorFreq:     n.ProcessorFreq,
		Ram:               n.RAM,
		Video:             n.Video,
		TimeWithoutCharge: n.TimeWithoutCharge,
	}
}

func mapSmartphoneToParams(s *domain.Smartphone) db.SmartphoneParams {
	return db.SmartphoneParams{
		ID:            s.ID,
		CategoryID:    s.CategoryID,
		Title:         s.Title,
		Slug:          s.Slug,
		Image:         s.Image,
		Description:   s.Description,
		PriceAmount:   s.Price.Amount,
		PriceCurrency: s.Price.Currency.String(),
		Diagonal:      s.Diagonal,
		DisplayType:   s.DisplayType,
		Resolution:    s.Resolution,
		AccumVolume:   s.AccumVolume,
		Ram:           s.RAM,
		Sd:            s.SD,
		SdVolumeMax:   s.SDVolumeMax,
		MainCamMp:     s.MainCamMP,
		FrontalCamMp:  s.FrontalCamMP,
	}
}

func mapNotebookToDomain(row db.Notebook) (*domain.Notebook, error) {
	price, err := mapMoneyToDomain(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return nil, err
	}

	return &domain.Notebook{
		ProductBase: domain.ProductBase{
			ID:          row.ID,
			CategoryID:  row.CategoryID,
			Title:       row.Title,
			Slug:        row.Slug,
			Image:       row.Image,
			Description: row.Description,
			Price:       price,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		},
		Diagonal:          row.Diagonal,
		DisplayType:       row.DisplayType,
		ProcessorFreq:     row.ProcessorFreq,
		RAM:               row.Ram,
		Video:             row.Video,
		TimeWithoutCharge: row.TimeWithoutCharge,
	}, nil
}

func mapSmartphoneToDomain(row db.Smartphone) (*domain.Smartphone, error) {
	price, err := mapMoneyToDomain(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return nil, err
	}

	return &domain.Smartphone{
		ProductBase: domain.ProductBase{
			ID:          row.ID,
			CategoryID:  row.CategoryID,
			Title:       row.Title,
			Slug:        row.Slug,
			Image:       row.Image,
			Description: row.Description,
			Price:       price,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		},
		Diagonal:     row.Diagonal,
		DisplayType:  row.DisplayType,
		Resolution:   row.Resolution,
		AccumVolume:  row.AccumVolume,
		RAM:          row.Ram,
		SD:           row.Sd,
		SDVolumeMax:  row.SdVolumeMax,
		MainCamMP:    row.MainCamMp,
		FrontalCamMP: row.FrontalCamMp,
	}, nil
}
