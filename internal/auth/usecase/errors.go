package usecase

import "errors"

// Verification failures are sentinels so the delivery layer can map each one
// to the right status code (no token vs token present-but-rejected).
var (
	ErrMissingToken  = errors.New("no token provided")
	ErrTokenRevoked  = errors.New("token has been invalidated")
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
	ErrNoExpiryClaim = errors.New("token has no expiration")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)
