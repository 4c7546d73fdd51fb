package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/sirupsen/logrus"
)

// Upload is an image file attached to a product save.
type Upload struct {
	Name    string
	Content io.Reader
}

type ImageNormalizer interface {
	Normalize(r io.Reader) ([]byte, error)
}

// Invalidator is notified after products change.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

type ProductService struct {
	products    port.ProductRepository
	images      port.ImageStore
	normalizer  ImageNormalizer
	invalidator Invalidator
	log         logrus.FieldLogger
}

func NewProductService(
	products port.ProductRepository,
	images port.ImageStore,
	normalizer ImageNormalizer,
	invalidator Invalidator,
	log logrus.FieldLogger,
) *ProductService {
	return &ProductService{
		products:    products,
		images:      images,
		normalizer:  normalizer,
		invalidator: invalidator,
		log:         log,
	}
}

// Save persists p. When upload is not nil the image is normalized first and
// stored under a free name derived from the upload's name, which becomes p's
// Image; the image it replaces is removed once the record is saved. Records
// with a zero ID are created and receive their new ID. On failure p and the
// image store are left as they were.
func (s *ProductService) Save(ctx context.Context, p domain.Product, upload *Upload) error {
	if p == nil {
		return fmt.Errorf("product is nil")
	}
	base := p.Base()
	log := s.log.WithFields(logrus.Fields{"kind": p.Kind(), "slug": base.Slug})

	prevImage := base.Image
	var stored string

	if upload != nil {
		if upload.Content == nil {
			return fmt.Errorf("upload content is nil")
		}

		data, err := s.normalizer.Normalize(upload.Content)
		if err != nil {
			return fmt.Errorf("normalizer.Normalize: %w", err)
		}

		stored, err = s.images.Put(upload.Name, data)
		if err != nil {
			return fmt.Errorf("images.Put: %w", err)
		}

		base.Image = stored
		log.WithFields(logrus.Fields{"image": stored, "bytes": len(data)}).Debug("product image normalized")
	}

	if err := s.persist(ctx, p, log); err != nil {
		if stored != "" {
			base.Image = prevImage
			if err := s.images.Delete(stored); err != nil {
				log.WithError(err).WithField("image", stored).Warn("unsaved product image was not removed")
			}
		}
		return err
	}

	if stored != "" && prevImage != "" && prevImage != stored {
		if err := s.images.Delete(prevImage); err != nil {
			log.WithError(err).WithField("image", prevImage).Warn("replaced product image was not removed")
		}
	}

	s.invalidate(ctx, log)

	return nil
}

func (s *ProductService) persist(ctx context.Context, p domain.Product, log logrus.FieldLogger) error {
	base := p.Base()

	if base.ID == uuid.Nil {
		id, err := s.products.CreateProduct(ctx, p)
		if err != nil {
			return fmt.Errorf("products.CreateProduct: %w", err)
		}
		base.ID = id
		log.WithField("id", id).Info("product created")
		return nil
	}

	if err := s.products.UpdateProduct(ctx, p); err != nil {
		return fmt.Errorf("products.UpdateProduct: %w", err)
	}
	log.WithField("id", base.ID).Info("product updated")

	return nil
}

// Delete removes the product record and its image.
func (s *ProductService) Delete(ctx context.Context, ref domain.ProductRef) (bool, error) {
	p, err := s.products.GetProduct(ctx, ref)
	if err != nil {
		return false, fmt.Errorf("products.GetProduct: %w", err)
	}

	deleted, err := s.products.DeleteProduct(ctx, ref)
	if err != nil {
		return false, fmt.Errorf("products.DeleteProduct: %w", err)
	}
	if !deleted {
		return false, nil
	}

	log := s.log.WithFields(logrus.Fields{"kind": ref.Kind, "id": ref.ID})

	if err := s.images.Delete(p.Base().Image); err != nil {
		log.WithError(err).Warn("product image was not removed")
	}

	s.invalidate(ctx, log)

	return true, nil
}

func (s *ProductService) invalidate(ctx context.Context, log logrus.FieldLogger) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx); err != nil {
		log.WithError(err).Warn("latest products cache invalidation failed")
	}
}
