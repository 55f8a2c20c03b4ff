package security

import (
	"context"
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time                  { return c.now }
func (c *fakeClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }
func (c *fakeClock) WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)}
}

func TestNewJWTTokenService_RequiresSecret(t *testing.T) {
	_, err := NewJWTTokenService("", time.Hour, newClock())
	assert.ErrorIs(t, err, errs.ErrMissingSigningKey)
}

func TestJWTTokenService_IssueAndVerify(t *testing.T) {
	clock := newClock()
	svc, err := NewJWTTokenService("secret-a", 0, clock)
	require.NoError(t, err)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), userID)

	var claims tokenClaims
	_, _, err = jwt.NewParser().ParseUnverified(token, &claims)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, clock.now.Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())

	_, err = svc.Issue(0)
	assert.ErrorIs(t, err, errs.ErrInvalidUserID)
}

func TestJWTTokenService_RejectsIdentically(t *testing.T) {
	clock := newClock()
	svc, err := NewJWTTokenService("secret-a", time.Hour, clock)
	require.NoError(t, err)
	other, err := NewJWTTokenService("secret-b", time.Hour, clock)
	require.NoError(t, err)

	token, err := svc.Issue(7)
	require.NoError(t, err)
	foreign, err := other.Issue(7)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	// swap in a payload claiming a different user without re-signing
	forgedClaims, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID:           8,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour))},
	}).SignedString([]byte("secret-b"))
	require.NoError(t, err)
	tampered := parts[0] + "." + strings.Split(forgedClaims, ".")[1] + "." + parts[2]

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, tokenClaims{
		UserID:           7,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(clock.now.Add(time.Hour))},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{UserID: 7}).SignedString([]byte("secret-a"))
	require.NoError(t, err)

	cases := map[string]string{
		"Empty":         "",
		"Garbage":       "not-a-token",
		"Tampered":      tampered,
		"ForeignSecret": foreign,
		"AlgNone":       noneToken,
		"NoExpiry":      noExpiry,
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			userID, err := svc.Verify(tok)
			assert.Equal(t, errs.ErrInvalidToken, err)
			assert.Zero(t, userID)
		})
	}

	t.Run("Expired", func(t *testing.T) {
		clock.now = clock.now.Add(2 * time.Hour)
		userID, err := svc.Verify(token)
		assert.Equal(t, errs.ErrInvalidToken, err)
		assert.Zero(t, userID)
	})
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.NoError(t, hasher.Compare(hash, "secret123"))
	assert.Equal(t, errs.ErrInvalidCredentials, hasher.Compare(hash, "wrong"))
	assert.ErrorIs(t, hasher.Compare("not-a-hash", "secret123"), errs.ErrInternalServer)

	again, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)

	_, err = hasher.Hash(strings.Repeat("x", 73))
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(bcrypt.MinCost).cost)
}
