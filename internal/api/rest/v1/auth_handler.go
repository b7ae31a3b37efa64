package v1

import (
	"fmt"
	"net/http"

	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const oauthSessionName = "oauth_state"

// AuthHandler defines the interface for handling authentication operations
type AuthHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	GoogleLogin(ctx *gin.Context)
	GoogleCallback(ctx *gin.Context)
	RequestPasswordReset(ctx *gin.Context)
	ResetPassword(ctx *gin.Context)
}

type authHandler struct {
	authService       users.AuthService
	identityConnector users.IdentityConnector
	sessionStore      sessions.Store
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService, identityConnector users.IdentityConnector, sessionStore sessions.Store) AuthHandler {
	return &authHandler{
		authService:       authService,
		identityConnector: identityConnector,
		sessionStore:      sessionStore,
	}
}

// Register handles the POST request to create an attendee account
func (handler *authHandler) Register(ctx *gin.Context) {
	var request RegisterRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid registration data: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	registration := users.Registration{
		Email:       request.Email,
		PhoneNumber: request.PhoneNumber,
		Password:    request.Password,
	}

	user, err := handler.authService.Register(ctx, registration)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error registering user: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// Login handles the POST request to authenticate with credentials
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid login data: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	session, err := handler.authService.Login(ctx, request.Email, request.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, AuthResponse{
		AccessToken: session.AccessToken,
		User:        newUserResponse(session.User),
	})
}

// GoogleLogin handles the GET request that starts the Google OAuth handshake
func (handler *authHandler) GoogleLogin(ctx *gin.Context) {
	state := uuid.NewString()

	session, _ := handler.sessionStore.Get(ctx.Request, oauthSessionName)
	session.Values["state"] = state
	if err := session.Save(ctx.Request, ctx.Writer); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "failed to persist oauth state"})
		return
	}

	ctx.Redirect(http.StatusFound, handler.identityConnector.AuthCodeURL(state))
}

// GoogleCallback handles the GET request Google redirects back to
func (handler *authHandler) GoogleCallback(ctx *gin.Context) {
	session, _ := handler.sessionStore.Get(ctx.Request, oauthSessionName)
	expectedState, _ := session.Values["state"].(string)
	if expectedState == "" || expectedState != ctx.Query("state") {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "oauth state mismatch"})
		return
	}

	delete(session.Values, "state")
	_ = session.Save(ctx.Request, ctx.Writer)

	code := ctx.Query("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "missing authorization code"})
		return
	}

	identity, err := handler.identityConnector.Exchange(ctx, code)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, ErrorResponse{Message: fmt.Sprintf("error exchanging authorization code: %v", err.Error())})
		return
	}

	authSession, err := handler.authService.LoginWithIdentity(ctx, identity)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error signing in: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, AuthResponse{
		AccessToken: authSession.AccessToken,
		User:        newUserResponse(authSession.User),
	})
}

// RequestPasswordReset handles the POST request to email a reset link
func (handler *authHandler) RequestPasswordReset(ctx *gin.Context) {
	var request PasswordResetRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid reset data: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	if err := handler.authService.RequestPasswordReset(ctx, request.Email); err != nil {
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: "error sending reset email"})
		return
	}

	// The same answer regardless of whether the address exists.
	ctx.JSON(http.StatusOK, InfoResponse{Message: "if the email is registered a reset link has been sent"})
}

// ResetPassword handles the POST request to set a new password
func (handler *authHandler) ResetPassword(ctx *gin.Context) {
	var request PasswordResetConfirm

	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid reset data: %v", err.Error())})
		return
	}
	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	if err := handler.authService.ResetPassword(ctx, request.Token, request.NewPassword); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, InfoResponse{Message: "password updated successfully"})
}
