package domain

import "errors"

// Error taxonomy for the auth core. Callers classify with errors.Is;
// the HTTP boundary maps each kind to a response.
var (
	// ErrDuplicateEmail signals an insert rejected by the email uniqueness constraint.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and password mismatch,
	// so callers cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountInactive rejects login for a deactivated account.
	ErrAccountInactive = errors.New("account inactive")

	// ErrInvalidToken covers malformed, forged, and expired session tokens.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUserNotFound signals a valid token whose subject no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrHashing signals an internal password hashing failure.
	ErrHashing = errors.New("password hashing failed")

	// ErrSigning signals a token signing failure.
	ErrSigning = errors.New("token signing failed")

	// ErrStorage signals a persistence failure, including corrupt stored data.
	ErrStorage = errors.New("storage failure")
)
