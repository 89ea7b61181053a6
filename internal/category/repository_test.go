package category

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "slug", "description", "image", "created_at"})
}

func TestRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success ordered by name", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		rows := categoryRows().
			AddRow("c1", "ASIC Miners", "asic-miners", "SHA-256 hardware", nil, time.Now()).
			AddRow("c2", "GPU Rigs", "gpu-rigs", nil, nil, time.Now())

		mock.ExpectQuery(`SELECT .* FROM categories ORDER BY name ASC`).
			WillReturnRows(rows)

		categories, err := repo.List(ctx)
		assert.NoError(t, err)
		if assert.Len(t, categories, 2) {
			assert.Equal(t, "ASIC Miners", categories[0].Name)
			assert.Equal(t, "gpu-rigs", categories[1].Slug)
		}
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT .*`).WillReturnError(errors.New("db error"))

		_, err = repo.List(ctx)
		assert.Error(t, err)
	})
}

func TestRepository_GetBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT .* FROM categories WHERE slug = \$1`).
			WithArgs("asic-miners").
			WillReturnRows(categoryRows().AddRow("c1", "ASIC Miners", "asic-miners", nil, nil, time.Now()))

		c, err := repo.GetBySlug(ctx, "asic-miners")
		assert.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "ASIC Miners", c.Name)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT .* FROM categories WHERE slug = \$1`).
			WithArgs("ghost").
			WillReturnRows(categoryRows())

		_, err = repo.GetBySlug(ctx, "ghost")
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)INSERT INTO categories .* RETURNING`).
			WillReturnRows(categoryRows().AddRow("c1", "Cooling", "cooling", nil, nil, time.Now()))

		c, err := repo.Create(ctx, CreateCategoryParams{Name: "Cooling", Slug: "cooling"})
		assert.NoError(t, err)
		assert.Equal(t, "c1", c.ID)
	})

	t.Run("DuplicateSlug surfaces as error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		repo := NewRepository(db)

		mock.ExpectQuery(`(?s)INSERT INTO categories .*`).
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "categories_slug_key"`))

		_, err = repo.Create(ctx, CreateCategoryParams{Name: "Cooling", Slug: "cooling"})
		assert.Error(t, err)
	})
}
