package category

import (
	"context"
	"database/sql"

	"github.com/ItaloOlivier/shopcrypto/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	Create(ctx context.Context, params CreateCategoryParams) (Category, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const categoryColumns = `id, name, slug, description, image, created_at`

func (r *repository) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE slug = $1`,
		slug,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) Create(ctx context.Context, params CreateCategoryParams) (Category, error) {
	log := logger.FromCtx(ctx)

	var c Category
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (id, name, slug, description, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+categoryColumns,
		uuid.NewString(),
		params.Name,
		params.Slug,
		params.Description,
		params.Image,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.CreatedAt)

	if err != nil {
		log.Error("db: failed to insert category",
			zap.String("slug", params.Slug),
			zap.Error(err),
		)
	}

	return c, err
}
