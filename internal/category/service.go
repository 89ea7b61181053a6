package category

import (
	"context"
	"strings"

	"github.com/ItaloOlivier/shopcrypto/internal/logger"
	"github.com/ItaloOlivier/shopcrypto/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) []Category
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	Create(ctx context.Context, params CreateCategoryParams) (Category, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// List degrades to an empty slice on store errors so page rendering never
// hard-fails on a transient problem. The cause is logged, not surfaced.
func (s *service) List(ctx context.Context) []Category {
	categories, err := s.repo.List(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list categories", zap.Error(err))
		return []Category{}
	}
	if categories == nil {
		return []Category{}
	}
	return categories
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service) Create(ctx context.Context, params CreateCategoryParams) (Category, error) {
	if strings.TrimSpace(params.Name) == "" {
		return Category{}, ErrInvalidInput
	}
	if strings.TrimSpace(params.Slug) == "" {
		params.Slug = utils.Slugify(params.Name)
	}

	return s.repo.Create(ctx, params)
}
