//go:build integration
// +build integration

package app

import (
	"context"
	"strings"
	"testing"

	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := SetupServices(t)

	user, err := ctx.AuthService.Register(context.Background(), users.Registration{
		Email:       "Attendee@Example.com",
		PhoneNumber: "+254712345678",
		Password:    "Password123",
	})
	require.NoError(t, err)
	assert.Equal(t, users.RoleAttendee, user.Role)
	assert.Equal(t, "attendee@example.com", user.Email)

	session, err := ctx.AuthService.Login(context.Background(), "attendee@example.com", "Password123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, user.ID, session.User.ID)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	ctx := SetupServices(t)

	_, err := ctx.AuthService.Register(context.Background(), users.Registration{
		Email:       "weak@example.com",
		PhoneNumber: "+254712345678",
		Password:    "12345678",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctx := SetupServices(t)

	reg := users.Registration{
		Email:       "dup@example.com",
		PhoneNumber: "+254712345678",
		Password:    "Password123",
	}
	_, err := ctx.AuthService.Register(context.Background(), reg)
	require.NoError(t, err)

	_, err = ctx.AuthService.Register(context.Background(), reg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := SetupServices(t)

	_, err := ctx.AuthService.Register(context.Background(), users.Registration{
		Email:       "login@example.com",
		PhoneNumber: "+254712345678",
		Password:    "Password123",
	})
	require.NoError(t, err)

	_, err = ctx.AuthService.Login(context.Background(), "login@example.com", "WrongPass1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestAuthService_RegisterWithRole(t *testing.T) {
	ctx := SetupServices(t)

	user, err := ctx.AuthService.RegisterWithRole(context.Background(), users.Registration{
		Email:       "organizer@example.com",
		PhoneNumber: "+254712345678",
		Password:    "Password123",
	}, users.RoleOrganizer)
	require.NoError(t, err)
	assert.Equal(t, users.RoleOrganizer, user.Role)
}

func TestAuthService_LoginWithIdentity_ProvisionsAccount(t *testing.T) {
	ctx := SetupServices(t)

	identity := &users.ExternalIdentity{Email: "oauth@example.com", Name: "OAuth User"}

	session, err := ctx.AuthService.LoginWithIdentity(context.Background(), identity)
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.Equal(t, users.RoleAttendee, session.User.Role)

	// A second login reuses the provisioned account.
	again, err := ctx.AuthService.LoginWithIdentity(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, again.User.ID)
}

func TestAuthService_PasswordResetFlow(t *testing.T) {
	ctx := SetupServices(t)

	_, err := ctx.AuthService.Register(context.Background(), users.Registration{
		Email:       "reset@example.com",
		PhoneNumber: "+254712345678",
		Password:    "Password123",
	})
	require.NoError(t, err)

	require.NoError(t, ctx.AuthService.RequestPasswordReset(context.Background(), "reset@example.com"))
	require.Len(t, ctx.Mailer.resetLinks, 1)

	resetToken := ctx.Mailer.resetLinks[0][strings.Index(ctx.Mailer.resetLinks[0], "token=")+len("token="):]
	require.NoError(t, ctx.AuthService.ResetPassword(context.Background(), resetToken, "NewPassword1"))

	_, err = ctx.AuthService.Login(context.Background(), "reset@example.com", "Password123")
	assert.Error(t, err)

	session, err := ctx.AuthService.Login(context.Background(), "reset@example.com", "NewPassword1")
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
}

func TestAuthService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	ctx := SetupServices(t)

	// Unknown addresses are not revealed.
	require.NoError(t, ctx.AuthService.RequestPasswordReset(context.Background(), "ghost@example.com"))
	assert.Empty(t, ctx.Mailer.resetLinks)
}

func TestAuthService_ResetPassword_InvalidToken(t *testing.T) {
	ctx := SetupServices(t)

	err := ctx.AuthService.ResetPassword(context.Background(), "bogus.token.value", "NewPassword1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid or expired")
}
