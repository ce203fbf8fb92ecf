package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/andreluoliveira82/car-api/internal/config"
	"github.com/andreluoliveira82/car-api/internal/domain"
	"github.com/andreluoliveira82/car-api/internal/platform/logger"
)

// hmacTokenService implements TokenService using HMAC-SHA signing.
type hmacTokenService struct {
	signingKey      []byte
	signingMethod   *jwt.SigningMethodHMAC
	accessLifetime  time.Duration
	refreshLifetime time.Duration
	timeFunc        func() time.Time // injectable for testing
}

// tokenClaims is the wire structure of the JWT payload.
type tokenClaims struct {
	Role      string `json:"role,omitempty"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService from the auth configuration. Only
// the HMAC family of algorithms is supported.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	method, ok := jwt.GetSigningMethod(cfg.JWTAlgorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", cfg.JWTAlgorithm)
	}

	if len(cfg.JWTSecretKey) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &hmacTokenService{
		signingKey:      []byte(cfg.JWTSecretKey),
		signingMethod:   method,
		accessLifetime:  time.Duration(cfg.JWTExpirationMinutes) * time.Minute,
		refreshLifetime: time.Duration(cfg.JWTRefreshExpirationDays) * 24 * time.Hour,
		timeFunc:        time.Now,
	}, nil
}

// GenerateAccessToken creates a signed access token with subject, role and
// type claims.
func (s *hmacTokenService) GenerateAccessToken(
	ctx context.Context,
	userID int64,
	role domain.UserRole,
) (string, error) {
	return s.sign(ctx, tokenClaims{
		Role:      string(role),
		TokenType: TokenTypeAccess,
		RegisteredClaims: s.registeredClaims(userID, s.accessLifetime),
	})
}

// GenerateRefreshToken creates a signed refresh token carrying only the
// subject and type claims.
func (s *hmacTokenService) GenerateRefreshToken(ctx context.Context, userID int64) (string, error) {
	return s.sign(ctx, tokenClaims{
		TokenType:        TokenTypeRefresh,
		RegisteredClaims: s.registeredClaims(userID, s.refreshLifetime),
	})
}

func (s *hmacTokenService) registeredClaims(userID int64, lifetime time.Duration) jwt.RegisteredClaims {
	now := s.timeFunc()
	return jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		ID:        uuid.New().String(),
	}
}

func (s *hmacTokenService) sign(ctx context.Context, claims tokenClaims) (string, error) {
	token := jwt.NewWithClaims(s.signingMethod, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		logger.FromContext(ctx).Error("failed to sign token",
			"error", err,
			"token_type", claims.TokenType,
			"signing_method", s.signingMethod.Name)
		return "", fmt.Errorf("failed to sign %s token: %w", claims.TokenType, err)
	}
	return signed, nil
}

// VerifyToken validates a token string and its type claim. Expired tokens
// are distinguished from malformed or badly signed ones in the returned
// error and in the logs; both are unauthorized to the caller.
func (s *hmacTokenService) VerifyToken(
	ctx context.Context,
	tokenString, expectedType string,
) (*Claims, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	token, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{s.signingMethod.Name}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug("token validation failed: token expired", "expected_type", expectedType)
			return nil, ErrExpiredToken
		}
		log.Debug("token validation failed",
			"error", err,
			"expected_type", expectedType)
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		log.Debug("token validation failed: invalid claims")
		return nil, ErrInvalidToken
	}

	if claims.TokenType != expectedType {
		log.Debug("token validation failed: wrong token type",
			"expected", expectedType,
			"actual", claims.TokenType)
		return nil, ErrWrongTokenType
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		log.Debug("token validation failed: non-numeric subject", "subject", claims.Subject)
		return nil, ErrInvalidToken
	}

	out := &Claims{
		UserID:    userID,
		Role:      domain.UserRole(claims.Role),
		TokenType: claims.TokenType,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}

// NewTestTokenService creates a token service with an injectable clock for
// tests.
func NewTestTokenService(
	secret string,
	accessLifetime, refreshLifetime time.Duration,
	timeFunc func() time.Time,
) TokenService {
	return &hmacTokenService{
		signingKey:      []byte(secret),
		signingMethod:   jwt.SigningMethodHS256,
		accessLifetime:  accessLifetime,
		refreshLifetime: refreshLifetime,
		timeFunc:        timeFunc,
	}
}
