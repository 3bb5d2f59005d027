package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/contapyme/contapyme/internal/domain/user"
	"github.com/contapyme/contapyme/pkg/apperr"
)

// UserRepository implementa la interfaz user.Repository
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository crea una nueva instancia de UserRepository
func NewUserRepository(db *pgxpool.Pool) user.Repository {
	return &UserRepository{db: db}
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, name, email, password, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Name, u.Email, u.Password, u.Active, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return apperr.Conflict("el email %s ya está registrado", u.Email)
		}
		return apperr.Internal("error al crear el usuario", err)
	}
	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.findOne(ctx, `id = $1`, id)
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, `email = $1`, strings.ToLower(strings.TrimSpace(email)))
}

// UpdateLastLogin implementa user.Repository.UpdateLastLogin
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string) error {
	now := time.Now()
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET last_login_at = $1, updated_at = $1 WHERE id = $2`,
		now, id)
	if err != nil {
		return apperr.Internal("error al registrar el inicio de sesión", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("usuario no encontrado: %s", id)
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, where string, args ...any) (*user.User, error) {
	var u user.User
	var lastLogin *time.Time

	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, password, active, last_login_at, created_at, updated_at
		 FROM users WHERE `+where, args...).Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Active, &lastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("usuario no encontrado")
		}
		return nil, apperr.Internal("error al buscar el usuario", err)
	}
	if lastLogin != nil {
		u.LastLoginAt = *lastLogin
	}
	return &u, nil
}
