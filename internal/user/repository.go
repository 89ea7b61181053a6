package user

import (
	"context"
	"database/sql"

	"github.com/ItaloOlivier/shopcrypto/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params CreateUserParams) (User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = `id, email, name, password, role, phone, address, city, province, postal_code, created_at`

func (r *repository) Create(ctx context.Context, params CreateUserParams) (User, error) {
	log := logger.FromCtx(ctx)

	role := params.Role
	if role == "" {
		role = RoleCustomer
	}

	var u User
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, email, name, password, role, phone, address, city, province, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+userColumns,
		uuid.NewString(),
		params.Email,
		params.Name,
		params.Password,
		role,
		params.Phone,
		params.Address,
		params.City,
		params.Province,
		params.PostalCode,
	).Scan(
		&u.ID, &u.Email, &u.Name, &u.Password, &u.Role,
		&u.Phone, &u.Address, &u.City, &u.Province, &u.PostalCode,
		&u.CreatedAt,
	)

	if err != nil {
		log.Error("db: failed to insert user",
			zap.String("email", params.Email),
			zap.Error(err),
		)
	}

	return u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	).Scan(
		&u.ID, &u.Email, &u.Name, &u.Password, &u.Role,
		&u.Phone, &u.Address, &u.City, &u.Province, &u.PostalCode,
		&u.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	).Scan(
		&u.ID, &u.Email, &u.Name, &u.Password, &u.Role,
		&u.Phone, &u.Address, &u.City, &u.Province, &u.PostalCode,
		&u.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
