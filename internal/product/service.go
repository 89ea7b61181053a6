package product

import (
	"context"
	"strings"

	"github.com/ItaloOlivier/shopcrypto/internal/logger"
	"github.com/ItaloOlivier/shopcrypto/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, q Query) []Product
	ListAll(ctx context.Context) ([]Product, error)
	Featured(ctx context.Context, limit int) []Product
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	Create(ctx context.Context, params CreateProductParams) (Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// List is the storefront read path: store errors degrade to an empty result
// so catalog pages never hard-fail. The cause is logged, not surfaced.
func (s *service) List(ctx context.Context, q Query) []Product {
	products, err := s.repo.List(ctx, q)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list products",
			zap.Stringp("category", q.CategorySlug),
			zap.Stringp("search", q.Search),
			zap.Error(err),
		)
		return []Product{}
	}
	if products == nil {
		return []Product{}
	}
	return products
}

// ListAll is the admin view; unlike the storefront path it propagates errors.
func (s *service) ListAll(ctx context.Context) ([]Product, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Featured(ctx context.Context, limit int) []Product {
	if limit <= 0 {
		limit = 4
	}
	products, err := s.repo.Featured(ctx, limit)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list featured products", zap.Error(err))
		return []Product{}
	}
	if products == nil {
		return []Product{}
	}
	return products
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Create persists the submitted fields verbatim. Slug uniqueness is left to
// the store's constraint; a violation surfaces as a generic failure.
func (s *service) Create(ctx context.Context, params CreateProductParams) (Product, error) {
	if strings.TrimSpace(params.Name) == "" || params.Price < 0 {
		return Product{}, ErrInvalidInput
	}
	if strings.TrimSpace(params.Slug) == "" {
		params.Slug = utils.Slugify(params.Name)
	}

	return s.repo.Create(ctx, params)
}
