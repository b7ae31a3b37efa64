//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(mockAuthService *MockAuthService, mockIdentityConnector *MockIdentityConnector) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := sessions.NewCookieStore([]byte("auth-test-session-key"))

	handler := NewAuthHandler(mockAuthService, mockIdentityConnector, store)
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.GET("/auth/google", handler.GoogleLogin)
	r.GET("/auth/google/callback", handler.GoogleCallback)
	r.POST("/auth/reset_password_request", handler.RequestPasswordReset)
	r.POST("/auth/reset_password", handler.ResetPassword)
	return r
}

func TestAuthHandler_Register_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAuthService.On("Register", mock.Anything, mock.Anything).Return(&users.User{
		ID:              "user-1",
		Email:           "jane@example.com",
		Role:            users.RoleAttendee,
		PhoneNumber:     "+254712345678",
		DateTimeCreated: time.Now(),
	}, nil)

	r := setupAuthRouter(mockAuthService, new(MockIdentityConnector))

	body, _ := json.Marshal(RegisterRequest{
		Email:       "jane@example.com",
		PhoneNumber: "+254712345678",
		Password:    "Password123",
	})
	req, _ := http.NewRequest("POST", "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "jane@example.com", response.Email)
	assert.Equal(t, users.RoleAttendee, response.Role)
	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	mockAuthService := new(MockAuthService)
	r := setupAuthRouter(mockAuthService, new(MockIdentityConnector))

	body, _ := json.Marshal(RegisterRequest{Email: "not-an-email", PhoneNumber: "12", Password: "weak"})
	req, _ := http.NewRequest("POST", "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuthService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAuthService.On("Login", mock.Anything, "jane@example.com", "Password123").
		Return(nil, errors.New("invalid email or password"))

	r := setupAuthRouter(mockAuthService, new(MockIdentityConnector))

	body, _ := json.Marshal(LoginRequest{Email: "jane@example.com", Password: "Password123"})
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_GoogleLogin_RedirectsWithState(t *testing.T) {
	mockIdentityConnector := new(MockIdentityConnector)
	mockIdentityConnector.On("AuthCodeURL", mock.Anything).
		Return("https://accounts.google.com/o/oauth2/auth?state=abc")

	r := setupAuthRouter(new(MockAuthService), mockIdentityConnector)

	req, _ := http.NewRequest("GET", "/auth/google", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "accounts.google.com")
	assert.NotEmpty(t, w.Header().Get("Set-Cookie"), "oauth state cookie should be set")
}

func TestAuthHandler_GoogleCallback_StateMismatch(t *testing.T) {
	r := setupAuthRouter(new(MockAuthService), new(MockIdentityConnector))

	// No session cookie carrying the expected state.
	req, _ := http.NewRequest("GET", "/auth/google/callback?state=forged&code=abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_GoogleCallback_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockIdentityConnector := new(MockIdentityConnector)
	mockIdentityConnector.On("AuthCodeURL", mock.Anything).
		Return("https://accounts.google.com/o/oauth2/auth")
	mockIdentityConnector.On("Exchange", mock.Anything, "auth-code").Return(&users.ExternalIdentity{
		Email: "jane@example.com",
		Name:  "Jane",
	}, nil)
	mockAuthService.On("LoginWithIdentity", mock.Anything, mock.Anything).Return(&users.AuthSession{
		AccessToken: "signed-token",
		User:        &users.User{ID: "user-1", Email: "jane@example.com", Role: users.RoleAttendee},
	}, nil)

	r := setupAuthRouter(mockAuthService, mockIdentityConnector)

	// Start the handshake to obtain the state cookie.
	startReq, _ := http.NewRequest("GET", "/auth/google", nil)
	startW := httptest.NewRecorder()
	r.ServeHTTP(startW, startReq)
	require.Equal(t, http.StatusFound, startW.Code)

	state := mockIdentityConnector.Calls[0].Arguments.String(0)
	req, _ := http.NewRequest("GET", "/auth/google/callback?state="+state+"&code=auth-code", nil)
	for _, cookie := range startW.Result().Cookies() {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "signed-token", response.AccessToken)
	assert.Equal(t, "jane@example.com", response.User.Email)
}

func TestAuthHandler_RequestPasswordReset_AlwaysAccepts(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAuthService.On("RequestPasswordReset", mock.Anything, "ghost@example.com").Return(nil)

	r := setupAuthRouter(mockAuthService, new(MockIdentityConnector))

	body, _ := json.Marshal(PasswordResetRequest{Email: "ghost@example.com"})
	req, _ := http.NewRequest("POST", "/auth/reset_password_request", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "reset link"))
}
