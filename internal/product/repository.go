package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ItaloOlivier/shopcrypto/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, q Query) ([]Product, error)
	ListAll(ctx context.Context) ([]Product, error)
	Featured(ctx context.Context, limit int) ([]Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	Create(ctx context.Context, params CreateProductParams) (Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	p.id, p.name, p.slug, p.description, p.short_description,
	p.price, p.compare_at_price, p.images, p.category_id, c.name,
	p.vendor, p.sku, p.stock, p.is_active, p.is_featured,
	p.hashrate, p.algorithm, p.power_consumption, p.created_at, p.updated_at`

func scanProduct(scanner interface{ Scan(...interface{}) error }) (Product, error) {
	var p Product
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.ShortDescription,
		&p.Price, &p.CompareAtPrice, pq.Array(&p.Images), &p.CategoryID, &p.CategoryName,
		&p.Vendor, &p.SKU, &p.Stock, &p.IsActive, &p.IsFeatured,
		&p.Hashrate, &p.Algorithm, &p.PowerConsumption, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func orderClause(sort string) string {
	switch sort {
	case SortPriceAsc:
		return "ORDER BY p.price ASC"
	case SortPriceDesc:
		return "ORDER BY p.price DESC"
	case SortName:
		return "ORDER BY p.name ASC"
	default:
		return "ORDER BY p.created_at DESC"
	}
}

// List returns active products narrowed by category slug and/or a
// case-insensitive substring search across name, description and vendor.
func (r *repository) List(ctx context.Context, q Query) ([]Product, error) {
	conditions := []string{"p.is_active = TRUE"}
	var args []interface{}

	if q.CategorySlug != nil && *q.CategorySlug != "" {
		args = append(args, *q.CategorySlug)
		conditions = append(conditions, fmt.Sprintf("c.slug = $%d", len(args)))
	}

	if q.Search != nil && *q.Search != "" {
		args = append(args, "%"+*q.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(p.name ILIKE $%d OR p.description ILIKE $%d OR p.vendor ILIKE $%d)", n, n, n,
		))
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE %s
		%s`,
		productColumns,
		strings.Join(conditions, " AND "),
		orderClause(q.Sort),
	)

	return r.queryProducts(ctx, query, args...)
}

// ListAll is the admin view: every product, inactive included, newest first.
func (r *repository) ListAll(ctx context.Context) ([]Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at DESC`,
		productColumns,
	)
	return r.queryProducts(ctx, query)
}

func (r *repository) Featured(ctx context.Context, limit int) ([]Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.is_active = TRUE AND p.is_featured = TRUE
		ORDER BY p.created_at DESC
		LIMIT $1`,
		productColumns,
	)
	return r.queryProducts(ctx, query, limit)
}

func (r *repository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.slug = $1`,
		productColumns,
	)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, slug))
	if err == sql.ErrNoRows {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) Create(ctx context.Context, params CreateProductParams) (Product, error) {
	log := logger.FromCtx(ctx)

	images := params.Images
	if images == nil {
		images = []string{}
	}

	// RETURNING cannot join, so the category name stays empty on create.
	var p Product
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (
			id, name, slug, description, short_description,
			price, compare_at_price, images, category_id,
			vendor, sku, stock, is_active, is_featured,
			hashrate, algorithm, power_consumption
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		RETURNING id, name, slug, description, short_description,
			price, compare_at_price, images, category_id,
			vendor, sku, stock, is_active, is_featured,
			hashrate, algorithm, power_consumption, created_at, updated_at`,
		uuid.NewString(),
		params.Name,
		params.Slug,
		params.Description,
		params.ShortDescription,
		params.Price,
		params.CompareAtPrice,
		pq.Array(images),
		params.CategoryID,
		params.Vendor,
		params.SKU,
		params.Stock,
		params.IsActive,
		params.IsFeatured,
		params.Hashrate,
		params.Algorithm,
		params.PowerConsumption,
	).Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.ShortDescription,
		&p.Price, &p.CompareAtPrice, pq.Array(&p.Images), &p.CategoryID,
		&p.Vendor, &p.SKU, &p.Stock, &p.IsActive, &p.IsFeatured,
		&p.Hashrate, &p.Algorithm, &p.PowerConsumption, &p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		log.Error("db: failed to insert product",
			zap.String("slug", params.Slug),
			zap.Error(err),
		)
	}

	return p, err
}
