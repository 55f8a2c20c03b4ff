package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/persistence"
	securitymocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	userRepo *persistencemocks.MockUserRepository
	hasher   *securitymocks.MockPasswordHasher
	tokens   *securitymocks.MockTokenService
	time     *coremocks.MockTimeProvider
	logger   *coremocks.MockLogger
}

func setupAuth(t *testing.T) (usecase.AuthUseCase, authMocks) {
	m := authMocks{
		userRepo: persistencemocks.NewMockUserRepository(t),
		hasher:   securitymocks.NewMockPasswordHasher(t),
		tokens:   securitymocks.NewMockTokenService(t),
		time:     coremocks.NewMockTimeProvider(t),
		logger:   coremocks.NewMockLogger(t),
	}

	m.time.EXPECT().Now().Return(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)).Maybe()
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewAuthUseCase(m.userRepo, m.hasher, m.tokens, m.time, m.logger), m
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	req := usecase.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"}

	t.Run("Successful registration", func(t *testing.T) {
		uc, m := setupAuth(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("secret1").Return("$2a$10$hashed", nil).Once()
		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == "Ada" && u.Email == "ada@example.com" && u.PasswordHash == "$2a$10$hashed"
		})).Run(func(_ context.Context, u *entity.User) {
			u.ID = 42
		}).Return(nil).Once()
		m.tokens.EXPECT().Issue(uint64(42)).Return("signed-token", nil).Once()

		result, err := uc.Register(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), result.User.ID)
		assert.Equal(t, "signed-token", result.Token)
		assert.NotEqual(t, req.Password, result.User.PasswordHash)
	})

	t.Run("Reports every invalid field", func(t *testing.T) {
		uc, _ := setupAuth(t)

		result, err := uc.Register(ctx, usecase.RegisterRequest{Name: " ", Email: "nope", Password: "123"})

		assert.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrValidation)
		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, f.Field)
		}
		assert.Equal(t, []string{"name", "email", "password"}, fields)
	})

	t.Run("Email already registered", func(t *testing.T) {
		uc, m := setupAuth(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(&entity.User{ID: 1}, nil).Once()

		result, err := uc.Register(ctx, req)

		assert.Nil(t, result)
		assert.Equal(t, errs.ErrDuplicateUser, err)
	})

	t.Run("Concurrent registration rejected by store", func(t *testing.T) {
		uc, m := setupAuth(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.hasher.EXPECT().Hash("secret1").Return("hash", nil).Once()
		m.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicateUser).Once()

		_, err := uc.Register(ctx, req)

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})

	t.Run("Store failure on lookup", func(t *testing.T) {
		uc, m := setupAuth(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := uc.Register(ctx, req)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	stored := &entity.User{ID: 7, Name: "Ada", Email: "ada@example.com", PasswordHash: "hash"}

	t.Run("Successful login", func(t *testing.T) {
		uc, m := setupAuth(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(stored, nil).Once()
		m.hasher.EXPECT().Compare("hash", "secret1").Return(nil).Once()
		m.tokens.EXPECT().Issue(uint64(7)).Return("signed-token", nil).Once()

		result, err := uc.Login(ctx, usecase.LoginRequest{Email: "ada@example.com", Password: "secret1"})

		require.NoError(t, err)
		assert.Equal(t, stored, result.User)
		assert.Equal(t, "signed-token", result.Token)
	})

	t.Run("Unknown email and wrong password look the same", func(t *testing.T) {
		uc, m := setupAuth(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(stored, nil).Once()
		m.hasher.EXPECT().Compare("hash", "wrong-password").Return(errs.ErrInvalidCredentials).Once()

		_, unknownErr := uc.Login(ctx, usecase.LoginRequest{Email: "ghost@example.com", Password: "wrong-password"})
		_, wrongErr := uc.Login(ctx, usecase.LoginRequest{Email: "ada@example.com", Password: "wrong-password"})

		assert.Equal(t, errs.ErrInvalidCredentials, unknownErr)
		assert.Equal(t, unknownErr, wrongErr)
	})

	t.Run("Invalid input", func(t *testing.T) {
		uc, _ := setupAuth(t)

		_, err := uc.Login(ctx, usecase.LoginRequest{Email: "not-an-email"})

		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 2)
	})

	t.Run("Token signing failure", func(t *testing.T) {
		uc, m := setupAuth(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ada@example.com").Return(stored, nil).Once()
		m.hasher.EXPECT().Compare("hash", "secret1").Return(nil).Once()
		m.tokens.EXPECT().Issue(uint64(7)).Return("", errors.New("signing failed")).Once()

		result, err := uc.Login(ctx, usecase.LoginRequest{Email: "ada@example.com", Password: "secret1"})

		assert.Nil(t, result)
		assert.Error(t, err)
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: 7, Name: "Ada", Email: "ada@example.com"}

	rejections := []struct {
		name   string
		header string
		reason usecase.RejectReason
	}{
		{"Missing header", "", usecase.RejectMissingToken},
		{"Wrong scheme", "Basic YWRhOnNlY3JldA==", usecase.RejectMalformedHeader},
		{"Lowercase scheme", "bearer abc", usecase.RejectMalformedHeader},
		{"Scheme without token", "Bearer", usecase.RejectMissingToken},
		{"Blank token", "Bearer   ", usecase.RejectMissingToken},
	}

	for _, tc := range rejections {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := setupAuth(t)

			outcome, err := uc.Authenticate(ctx, tc.header)

			require.NoError(t, err)
			assert.False(t, outcome.IsAdmitted())
			assert.Nil(t, outcome.Identity())
			assert.Equal(t, tc.reason, outcome.Reason())
		})
	}

	t.Run("Invalid token", func(t *testing.T) {
		uc, m := setupAuth(t)

		m.tokens.EXPECT().Verify("tampered").Return(uint64(0), errs.ErrInvalidToken).Once()

		outcome, err := uc.Authenticate(ctx, "Bearer tampered")

		require.NoError(t, err)
		assert.Equal(t, usecase.RejectInvalidToken, outcome.Reason())
	})

	t.Run("Token for a deleted user", func(t *testing.T) {
		uc, m := setupAuth(t)

		m.tokens.EXPECT().Verify("valid").Return(uint64(99), nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrUserNotFound).Once()

		outcome, err := uc.Authenticate(ctx, "Bearer valid")

		require.NoError(t, err)
		assert.False(t, outcome.IsAdmitted())
		assert.Equal(t, usecase.RejectUnknownUser, outcome.Reason())
	})

	t.Run("Store failure is not a rejection", func(t *testing.T) {
		uc, m := setupAuth(t)

		m.tokens.EXPECT().Verify("valid").Return(uint64(7), nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(nil, errs.ErrDatabaseConnection).Once()

		outcome, err := uc.Authenticate(ctx, "Bearer valid")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.False(t, outcome.IsAdmitted())
	})

	t.Run("Admitted", func(t *testing.T) {
		uc, m := setupAuth(t)

		m.tokens.EXPECT().Verify("valid").Return(uint64(7), nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(user, nil).Once()

		outcome, err := uc.Authenticate(ctx, "Bearer valid")

		require.NoError(t, err)
		assert.True(t, outcome.IsAdmitted())
		assert.Equal(t, user, outcome.Identity())
		assert.Empty(t, outcome.Reason())
	})
}
