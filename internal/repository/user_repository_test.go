package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/account-service/internal/domain"
)

const userColumnsPattern = `SELECT id, name, email, password_hash, avatar, created_at, updated_at, is_active`

func newMockRepo(t *testing.T) (UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewUserRepository(mock), mock
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "Ann", "a@x.com", "hashed", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), true).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	user := &domain.User{
		Name:         "Ann",
		Email:        "a@x.com",
		PasswordHash: "hashed",
		IsActive:     true,
	}
	err := repo.Create(context.Background(), user)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	assert.Equal(t, time.UTC, user.CreatedAt.Location())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})

	user := &domain.User{Name: "Ann", Email: "a@x.com", PasswordHash: "hashed", IsActive: true}
	err := repo.Create(context.Background(), user)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	assert.Equal(t, uuid.Nil, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateStorageFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), &domain.User{Name: "Ann", Email: "a@x.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	created := time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)

	mock.ExpectQuery(userColumnsPattern).
		WithArgs("a@x.com").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "email", "password_hash", "avatar", "created_at", "updated_at", "is_active",
		}).AddRow(
			id.String(), "Ann", "a@x.com", "hashed", nil,
			created.Format(time.RFC3339Nano), created.Format(time.RFC3339Nano), true,
		))

	user, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, id, user.ID)
	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Nil(t, user.Avatar)
	assert.True(t, user.IsActive)
	assert.Equal(t, created, user.CreatedAt)
	assert.Equal(t, time.UTC, user.CreatedAt.Location())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmailAbsent(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(userColumnsPattern).
		WithArgs("nobody@x.com").
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.GetByEmail(context.Background(), "nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	id := uuid.New()
	avatar := "https://cdn.example.com/ann.png"
	created := time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)

	mock.ExpectQuery(userColumnsPattern).
		WithArgs(id.String()).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "name", "email", "password_hash", "avatar", "created_at", "updated_at", "is_active",
		}).AddRow(
			id.String(), "Ann", "a@x.com", "hashed", &avatar,
			created.Format(time.RFC3339Nano), created.Format(time.RFC3339Nano), true,
		))

	user, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, user)

	require.NotNil(t, user.Avatar)
	assert.Equal(t, avatar, *user.Avatar)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CorruptStoredData(t *testing.T) {
	validID := uuid.New().String()
	validTime := time.Now().UTC().Format(time.RFC3339Nano)

	tests := []struct {
		name      string
		id        string
		createdAt string
		updatedAt string
	}{
		{name: "invalid id", id: "not-a-uuid", createdAt: validTime, updatedAt: validTime},
		{name: "invalid created_at", id: validID, createdAt: "yesterday", updatedAt: validTime},
		{name: "invalid updated_at", id: validID, createdAt: validTime, updatedAt: "later"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)

			mock.ExpectQuery(userColumnsPattern).
				WithArgs("a@x.com").
				WillReturnRows(pgxmock.NewRows([]string{
					"id", "name", "email", "password_hash", "avatar", "created_at", "updated_at", "is_active",
				}).AddRow(
					tt.id, "Ann", "a@x.com", "hashed", nil, tt.createdAt, tt.updatedAt, true,
				))

			user, err := repo.GetByEmail(context.Background(), "a@x.com")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrStorage)
			assert.Nil(t, user)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
