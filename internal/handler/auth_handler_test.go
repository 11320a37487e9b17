package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"heatwatch/internal/domain"
	"heatwatch/internal/handler"
	"heatwatch/internal/service"
	"heatwatch/mocks"
)

func TestAuthHandler_Register_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	input := service.RegisterInput{
		Email:       "awa.diop@example.sn",
		Password:    "motdepasse123",
		LastName:    "Diop",
		FirstName:   "Awa",
		PhoneNumber: "+221770000000",
	}
	mockAuth.On("Register", mock.Anything, input).
		Return(&domain.User{ID: uuid.New(), Email: input.Email, Role: domain.RoleClient}, nil)

	c, w := newContext(http.MethodPost, "/register/", input)
	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, decode(t, w).Success)
	assert.NotContains(t, w.Body.String(), "password")
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	c, w := newContext(http.MethodPost, "/register/", map[string]string{
		"email":        "awa.diop@example.sn",
		"password":     "court",
		"last_name":    "Diop",
		"phone_number": "+221770000000",
	})
	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_DuplicatePhone(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	mockAuth.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput")).
		Return(nil, domain.ErrDuplicatePhone)

	c, w := newContext(http.MethodPost, "/register/", map[string]string{
		"email":        "awa.diop@example.sn",
		"password":     "motdepasse123",
		"last_name":    "Diop",
		"phone_number": "+221770000000",
	})
	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE_PHONE", decode(t, w).Error.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	input := service.LoginInput{Email: "awa.diop@example.sn", Password: "motdepasse123"}
	mockAuth.On("Login", mock.Anything, input).Return(&service.LoginResult{
		Token:     "token",
		ExpiresAt: time.Now().Add(24 * time.Hour),
		User:      &domain.User{ID: uuid.New(), Email: input.Email},
	}, nil)

	c, w := newContext(http.MethodPost, "/login/", input)
	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"token"`)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	mockAuth.On("Login", mock.Anything, mock.AnythingOfType("service.LoginInput")).
		Return(nil, domain.ErrInvalidCredentials)

	c, w := newContext(http.MethodPost, "/login/", map[string]string{
		"email":    "awa.diop@example.sn",
		"password": "mauvais",
	})
	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)
	userID := uuid.New()

	mockAuth.On("Me", mock.Anything, userID).Return(&domain.User{ID: userID, LastName: "Diop"}, nil)

	c, w := newContext(http.MethodGet, "/me/", nil)
	withUser(c, userID, "client")
	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Me_NoContext(t *testing.T) {
	h := handler.NewAuthHandler(new(mocks.MockAuthService))

	c, w := newContext(http.MethodGet, "/me/", nil)
	h.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
