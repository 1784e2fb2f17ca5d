package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/account-service/internal/domain"
)

func TestNewUserResponse_OmitsPasswordHash(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)
	user := &domain.User{
		ID:           uuid.New(),
		Name:         "Ann",
		Email:        "a@x.com",
		PasswordHash: "$2a$12$secrethashsecrethashsecrethash",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	resp := NewUserResponse(user)

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	assert.NotContains(t, string(body), "password_hash")
	assert.NotContains(t, string(body), user.PasswordHash)
	assert.Contains(t, string(body), user.ID.String())
	assert.Contains(t, string(body), "a@x.com")
}

func TestNewUserResponse_Avatar(t *testing.T) {
	t.Parallel()

	avatar := "https://cdn.example.com/ann.png"
	user := &domain.User{ID: uuid.New(), Name: "Ann", Email: "a@x.com", Avatar: &avatar}

	resp := NewUserResponse(user)
	require.NotNil(t, resp.Avatar)
	assert.Equal(t, avatar, *resp.Avatar)

	// Absent avatar is dropped from the payload entirely.
	user.Avatar = nil
	body, err := json.Marshal(NewUserResponse(user))
	require.NoError(t, err)
	assert.NotContains(t, string(body), "avatar")
}
