package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/quickcart/commerce-platform/internal/core/domain"
	"github.com/quickcart/commerce-platform/internal/core/ports"
)

// ProductCache is a read-through cache for single-product lookups.
// Implementations must treat a miss as a non-error.
type ProductCache interface {
	Get(ctx context.Context, id string) (*domain.Product, bool)
	Set(ctx context.Context, p *domain.Product)
	Invalidate(ctx context.Context, id string)
}

// ProductService implements catalog use cases with an optional cache in
// front of single-product reads.
type ProductService struct {
	repo   ports.ProductRepository
	cache  ProductCache
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ProductCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

func (s *ProductService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if s.cache != nil {
		if p, ok := s.cache.Get(ctx, id); ok {
			return p, nil
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, product)
	}
	return product, nil
}

func (s *ProductService) SearchProducts(ctx context.Context, term string) ([]domain.Product, error) {
	return s.repo.Search(ctx, term)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, fields ports.UpdateProductFields) (*domain.Product, error) {
	updated, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	return nil
}
