package auth

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/account-service/internal/domain"
)

const defaultTokenTTLSeconds = 604800 // 7 days

// TokenManager issues and validates stateless HS256 session tokens.
// Validity is determined solely by signature and expiry; there is no
// revocation mechanism.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager builds a manager. ttlSeconds falls back to 7 days
// when non-positive.
func NewTokenManager(secret string, ttlSeconds int) *TokenManager {
	if ttlSeconds <= 0 {
		ttlSeconds = defaultTokenTTLSeconds
	}
	return &TokenManager{
		secret: []byte(secret),
		ttl:    time.Duration(ttlSeconds) * time.Second,
		now:    time.Now,
	}
}

// TTL returns the configured token lifetime.
func (tm *TokenManager) TTL() time.Duration {
	return tm.ttl
}

// Claims describes the JWT payload.
type Claims struct {
	jwt.RegisteredClaims
}

// Issue signs a token bound to the user id, expiring after the
// configured lifetime.
func (tm *TokenManager) Issue(userID uuid.UUID) (string, time.Time, error) {
	now := tm.now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", domain.ErrSigning, err)
	}
	return signed, expiresAt, nil
}

// Parse validates signature and expiry and returns the subject user id.
// No clock-skew leeway is applied.
func (tm *TokenManager) Parse(tokenStr string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return tm.secret, nil
	}, jwt.WithTimeFunc(tm.now))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return uuid.Nil, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: bad subject", domain.ErrInvalidToken)
	}
	return userID, nil
}
