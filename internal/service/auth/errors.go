package auth

import "errors"

// Common authentication service errors.
var (
	// ErrInvalidToken indicates the token is malformed or its signature
	// does not verify.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token's expiry has elapsed. Kept
	// distinct from ErrInvalidToken for observability; both surface to the
	// caller as unauthorized.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrWrongTokenType indicates the token's type claim does not match the
	// expected kind (e.g. an access token presented to the refresh endpoint).
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")
)
