package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/account-service/internal/domain"
)

// DB is the subset of pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// UserRepository defines persistence access for user accounts.
// Lookups return (nil, nil) when no record matches; absence is not an error.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create assigns a fresh random id and UTC timestamps, then inserts the
// record. The email uniqueness constraint resolves concurrent inserts:
// exactly one wins, the rest see ErrDuplicateEmail.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (id, name, email, password_hash, avatar, created_at, updated_at, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	id := uuid.New()
	now := time.Now().UTC()

	_, err := r.db.Exec(ctx, query,
		id.String(),
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Avatar,
		now.Format(time.RFC3339Nano),
		now.Format(time.RFC3339Nano),
		user.IsActive,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("%w: insert user: %v", domain.ErrStorage, err)
	}

	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, password_hash, avatar, created_at, updated_at, is_active
        FROM users WHERE email=$1`

	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
        SELECT id, name, email, password_hash, avatar, created_at, updated_at, is_active
        FROM users WHERE id=$1`

	return r.scanUser(r.db.QueryRow(ctx, query, id.String()))
}

// scanUser maps a row back to the domain model. Identifiers and
// timestamps are stored as text; a row that fails to parse is corrupt
// and surfaces as ErrStorage rather than being silently coerced.
func (r *userRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user      domain.User
		idStr     string
		createdAt string
		updatedAt string
	)

	err := row.Scan(
		&idStr,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Avatar,
		&createdAt,
		&updatedAt,
		&user.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: query user: %v", domain.ErrStorage, err)
	}

	if user.ID, err = uuid.Parse(idStr); err != nil {
		return nil, fmt.Errorf("%w: invalid user id %q", domain.ErrStorage, idStr)
	}
	if user.CreatedAt, err = parseStoredTime(createdAt); err != nil {
		return nil, fmt.Errorf("%w: invalid created_at %q", domain.ErrStorage, createdAt)
	}
	if user.UpdatedAt, err = parseStoredTime(updatedAt); err != nil {
		return nil, fmt.Errorf("%w: invalid updated_at %q", domain.ErrStorage, updatedAt)
	}
	return &user, nil
}

func parseStoredTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
