package auth

import (
	"context"
	"time"

	"github.com/andreluoliveira82/car-api/internal/domain"
)

// Token kinds carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenService defines operations for issuing and verifying the signed,
// expiring tokens used by the API.
type TokenService interface {
	// GenerateAccessToken creates a signed access token carrying the user's
	// id and role.
	GenerateAccessToken(ctx context.Context, userID int64, role domain.UserRole) (string, error)

	// GenerateRefreshToken creates a signed refresh token carrying only the
	// user's id. Refresh tokens have a longer lifetime and are exchanged for
	// new access tokens.
	GenerateRefreshToken(ctx context.Context, userID int64) (string, error)

	// VerifyToken validates the token string and checks its type claim
	// against expectedType. Returns the claims on success, or
	// ErrExpiredToken, ErrInvalidToken or ErrWrongTokenType on failure.
	VerifyToken(ctx context.Context, tokenString, expectedType string) (*Claims, error)
}

// Claims is the decoded content of a verified token.
type Claims struct {
	// UserID is the subject of the token, parsed from the sub claim.
	UserID int64

	// Role is present on access tokens only.
	Role domain.UserRole

	// TokenType is "access" or "refresh".
	TokenType string

	IssuedAt  time.Time
	ExpiresAt time.Time
}
