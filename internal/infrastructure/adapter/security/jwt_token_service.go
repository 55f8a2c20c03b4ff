package security

import (
	"fmt"
	"strconv"
	"time"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is used when no token lifetime is configured
const DefaultTokenTTL = 7 * 24 * time.Hour

// tokenClaims is the signed payload; id and sub both carry the user id
type tokenClaims struct {
	UserID uint64 `json:"id"`
	jwt.RegisteredClaims
}

// JWTTokenService issues and verifies HS256 tokens
type JWTTokenService struct {
	secret       []byte
	ttl          time.Duration
	timeProvider coreport.TimeProvider
	parser       *jwt.Parser
}

// NewJWTTokenService creates a token service. An empty secret is a configuration error.
func NewJWTTokenService(secret string, ttl time.Duration, timeProvider coreport.TimeProvider) (*JWTTokenService, error) {
	if secret == "" {
		return nil, errs.ErrMissingSigningKey
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &JWTTokenService{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(timeProvider.Now),
		),
	}, nil
}

// Issue signs a token for userID
func (s *JWTTokenService) Issue(userID uint64) (string, error) {
	if userID == 0 {
		return "", errs.ErrInvalidUserID
	}

	now := s.timeProvider.Now()
	claims := tokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: sign token: %v", errs.ErrInternalServer, err)
	}
	return signed, nil
}

// Verify returns the user id of a valid token or ErrInvalidToken
func (s *JWTTokenService) Verify(token string) (uint64, error) {
	if token == "" {
		return 0, errs.ErrInvalidToken
	}

	var claims tokenClaims
	parsed, err := s.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, errs.ErrInvalidToken
	}

	if claims.UserID == 0 {
		return 0, errs.ErrInvalidToken
	}
	if claims.Subject != "" && claims.Subject != strconv.FormatUint(claims.UserID, 10) {
		return 0, errs.ErrInvalidToken
	}

	return claims.UserID, nil
}
