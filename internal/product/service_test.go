package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, q Query) ([]Product, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) ListAll(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) Featured(ctx context.Context, limit int) ([]Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, params CreateProductParams) (Product, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(Product), args.Error(1)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success passes query through", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		q := Query{Sort: SortPriceAsc}
		repo.On("List", ctx, q).Return([]Product{{ID: "p1"}}, nil)

		products := svc.List(ctx, q)
		assert.Len(t, products, 1)
		repo.AssertExpectations(t)
	})

	t.Run("Store error degrades to empty slice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("List", ctx, Query{}).Return(nil, errors.New("connection refused"))

		products := svc.List(ctx, Query{})
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("No matches yields empty slice not nil", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("List", ctx, Query{}).Return([]Product(nil), nil)

		products := svc.List(ctx, Query{})
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})
}

func TestService_Featured(t *testing.T) {
	ctx := context.Background()

	t.Run("Zero limit gets a sane default", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Featured", ctx, 4).Return([]Product{{ID: "p1"}}, nil)

		products := svc.Featured(ctx, 0)
		assert.Len(t, products, 1)
		repo.AssertExpectations(t)
	})

	t.Run("Store error degrades to empty slice", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Featured", ctx, 8).Return(nil, errors.New("db error"))

		products := svc.Featured(ctx, 8)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})
}

func TestService_ListAll(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	// Admin path propagates errors instead of degrading.
	repo.On("ListAll", ctx).Return(nil, errors.New("db error"))

	_, err := svc.ListAll(ctx)
	assert.Error(t, err)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		params := CreateProductParams{Name: "Antminer S19", Slug: "antminer-s19", Price: 42999}
		repo.On("Create", ctx, params).Return(Product{ID: "p1"}, nil)

		p, err := svc.Create(ctx, params)
		assert.NoError(t, err)
		assert.Equal(t, "p1", p.ID)
	})

	t.Run("Missing name rejected before any write", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(ctx, CreateProductParams{Price: 100})
		assert.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Negative price rejected", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.Create(ctx, CreateProductParams{Name: "X", Price: -1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Slug derived from name when omitted", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(p CreateProductParams) bool {
			return p.Slug == "whatsminer-m50s"
		})).Return(Product{ID: "p2", Slug: "whatsminer-m50s"}, nil)

		p, err := svc.Create(ctx, CreateProductParams{Name: "Whatsminer M50S", Price: 39999})
		assert.NoError(t, err)
		assert.Equal(t, "whatsminer-m50s", p.Slug)
	})
}

func TestService_GetBySlug(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetBySlug", ctx, "ghost").Return(nil, ErrProductNotFound)

	_, err := svc.GetBySlug(ctx, "ghost")
	assert.ErrorIs(t, err, ErrProductNotFound)
}
