package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"heatwatch/internal/config"
	"heatwatch/internal/domain"
	"heatwatch/internal/service"
	"heatwatch/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret-key-for-unit-tests",
		AccessTokenExpiry: 15 * time.Minute,
		Issuer:            "heatwatch-test",
	}
}

func hashPassword(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash)
}

func TestAuthService_Register_DefaultsToClient(t *testing.T) {
	defer service.UseFastBcrypt()()
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Role == domain.RoleClient && u.IsActive &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
	})).Return(nil)

	user, err := svc.Register(context.Background(), service.RegisterInput{
		Email:       "awa@example.sn",
		Password:    "password123",
		LastName:    " Diop ",
		PhoneNumber: "+221770000000",
	})

	require.NoError(t, err)
	assert.Equal(t, "Diop", user.LastName)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Register_RejectsAdminAndUnknownRoles(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	for _, role := range []domain.UserRole{domain.RoleAdmin, "ADMIN", "superuser"} {
		_, err := svc.Register(context.Background(), service.RegisterInput{
			Email: "x@example.sn", Password: "password123", LastName: "X", PhoneNumber: "1", Role: role,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRole, "role %q", role)
	}
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	defer service.UseFastBcrypt()()
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Email: "awa@example.sn", Password: "password123", LastName: "Diop", PhoneNumber: "1", Role: domain.RoleExpert,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	cfg := testJWTConfig()
	svc := service.NewAuthService(userRepo, cfg)

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "agent@example.sn",
		PasswordHash: hashPassword("password123"),
		Role:         domain.RoleAgent,
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, "agent@example.sn").Return(user, nil)

	result, err := svc.Login(context.Background(), service.LoginInput{Email: "agent@example.sn", Password: "password123"})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Same(t, user, result.User)
	assert.True(t, result.ExpiresAt.After(time.Now()))

	claims, err := svc.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, domain.RoleAgent, claims.Role)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "a@example.sn").Return(&domain.User{
		PasswordHash: hashPassword("correct-password"), IsActive: true,
	}, nil)

	result, err := svc.Login(context.Background(), service.LoginInput{Email: "a@example.sn", Password: "wrong-password"})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.sn").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{Email: "ghost@example.sn", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "a@example.sn").Return(&domain.User{
		PasswordHash: hashPassword("password123"), IsActive: false,
	}, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{Email: "a@example.sn", Password: "password123"})
	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestAuthService_Me_UnknownUserIsUnauthorized(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig())

	id := uuid.New()
	userRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	_, err := svc.Me(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_ValidateToken_Rejects(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), testJWTConfig())

	_, err := svc.ValidateToken("not-a-jwt")
	assert.Error(t, err)

	wrongIssuer := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := wrongIssuer.SignedString([]byte(testJWTConfig().Secret))
	require.NoError(t, err)
	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testJWTConfig().Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	signed, err = expired.SignedString([]byte(testJWTConfig().Secret))
	require.NoError(t, err)
	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}
