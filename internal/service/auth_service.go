package service

import (
	"context"
	"time"

	"github.com/spec-kit/account-service/internal/auth"
	"github.com/spec-kit/account-service/internal/config"
	"github.com/spec-kit/account-service/internal/domain"
	"github.com/spec-kit/account-service/internal/events"
	"github.com/spec-kit/account-service/internal/repository"
)

// dummyPasswordHash is compared against when the email is unknown, so a
// login attempt costs the same whether or not the account exists. It is
// a bcrypt hash of a fixed string, never a real credential.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService coordinates registration, login, and token resolution.
type AuthService struct {
	users      repository.UserRepository
	hasher     *auth.Hasher
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
}

// AuthDependencies encapsulates collaborator requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service from configuration and dependencies.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		hasher:     auth.NewHasher(cfg.Auth.BcryptCost),
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLSeconds),
		dispatcher: deps.Dispatcher,
	}
}

// Register creates a new active account and issues its first session
// token. Uniqueness is left entirely to the store's constraint; there is
// no lookup-then-insert window, so a racing duplicate surfaces as
// ErrDuplicateEmail no matter which call lost.
func (s *AuthService) Register(ctx context.Context, name, email, password string, avatar *string) (*domain.User, string, time.Time, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Avatar:       avatar,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.tokenMgr.Issue(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.NewEvent(events.EventUserRegistered, user.ID, events.UserRegisteredPayload{
		Name:  user.Name,
		Email: user.Email,
	}))
	return user, token, expiresAt, nil
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password fail identically to avoid account enumeration; an
// unknown email still pays for one hash comparison.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		_, _ = s.hasher.Verify(password, dummyPasswordHash)
		return nil, "", time.Time{}, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, "", time.Time{}, domain.ErrAccountInactive
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if !ok {
		return nil, "", time.Time{}, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokenMgr.Issue(user.ID)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.NewEvent(events.EventUserLoggedIn, user.ID, events.UserLoggedInPayload{
		Email: user.Email,
	}))
	return user, token, expiresAt, nil
}

// CurrentUser resolves the account a session token belongs to. A token
// can outlive its account; that case surfaces as ErrUserNotFound.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokenMgr.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
