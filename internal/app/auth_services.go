package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/domain/users"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/logger"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/signer"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/token"
	"github.com/dannykhan02/Ticketing-system/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// placeholderPhone is recorded for accounts provisioned through an OAuth
// provider, which never asserts a phone number.
const placeholderPhone = "254700000000"

type resetClaims struct {
	UserID string `json:"user_id"`
}

type authService struct {
	userRepo        users.UserRepository
	tokenIssuer     *token.Issuer
	resetSerializer *signer.Serializer
	resetMaxAge     time.Duration
	resetBaseURL    string
	resetMailer     users.ResetMailer
	logger          logger.Logger
}

// NewAuthService creates a new instance of AuthService. resetBaseURL is the
// public address password reset links point at.
func NewAuthService(
	userRepo users.UserRepository,
	tokenIssuer *token.Issuer,
	resetSerializer *signer.Serializer,
	resetMaxAge time.Duration,
	resetBaseURL string,
	resetMailer users.ResetMailer,
	logger logger.Logger,
) (users.AuthService, error) {
	return &authService{
		userRepo:        userRepo,
		tokenIssuer:     tokenIssuer,
		resetSerializer: resetSerializer,
		resetMaxAge:     resetMaxAge,
		resetBaseURL:    strings.TrimRight(resetBaseURL, "/"),
		resetMailer:     resetMailer,
		logger:          logger,
	}, nil
}

func (s *authService) Register(ctx context.Context, reg users.Registration) (*users.User, error) {
	return s.RegisterWithRole(ctx, reg, users.RoleAttendee)
}

func (s *authService) RegisterWithRole(ctx context.Context, reg users.Registration, role string) (*users.User, error) {
	if err := checkPasswordStrength(reg.Password); err != nil {
		return nil, err
	}

	if existing, _ := s.userRepo.GetByEmail(ctx, reg.Email); existing != nil {
		return nil, fmt.Errorf("email %s is already registered", reg.Email)
	}

	user := &users.User{
		ID:              uuid.NewString(),
		Email:           strings.ToLower(reg.Email),
		Role:            role,
		PhoneNumber:     reg.PhoneNumber,
		DateTimeCreated: time.Now(),
	}
	if err := user.SetPassword(reg.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("Registered user with role ", role)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*users.AuthSession, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if !user.CheckPassword(password) {
		return nil, fmt.Errorf("invalid email or password")
	}

	accessToken, err := s.tokenIssuer.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in ", user.ID)
	return &users.AuthSession{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

func (s *authService) LoginWithIdentity(ctx context.Context, identity *users.ExternalIdentity) (*users.AuthSession, error) {
	email := strings.ToLower(identity.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// First login through the provider; provision an attendee account
		// with an unusable random password.
		user = &users.User{
			ID:              uuid.NewString(),
			Email:           email,
			Role:            users.RoleAttendee,
			PhoneNumber:     placeholderPhone,
			DateTimeCreated: time.Now(),
		}
		if err := user.SetPassword(uuid.NewString() + "A1"); err != nil {
			return nil, err
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to provision account: %w", err)
		}
		s.logger.Info("Provisioned account for external identity ", email)
	}

	accessToken, err := s.tokenIssuer.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &users.AuthSession{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		// Do not reveal whether the address is registered.
		s.logger.Info("Password reset requested for unknown email")
		return nil
	}

	resetToken, err := s.resetSerializer.SignTimed(&resetClaims{UserID: user.ID})
	if err != nil {
		return fmt.Errorf("failed to sign reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset_password?token=%s", s.resetBaseURL, resetToken)
	if err := s.resetMailer.SendPasswordReset(ctx, user.Email, resetLink); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	s.logger.Info("Sent password reset for user ", user.ID)
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	var claims resetClaims
	if err := s.resetSerializer.VerifyTimed(resetToken, s.resetMaxAge, &claims); err != nil {
		return fmt.Errorf("invalid or expired reset token")
	}

	if err := checkPasswordStrength(newPassword); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return fmt.Errorf("invalid or expired reset token")
	}

	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("Password reset for user ", user.ID)
	return nil
}

func checkPasswordStrength(password string) error {
	validate := validator.New()
	if err := validate.RegisterValidation("passwordValidation", validators.PasswordValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.Var(password, "passwordValidation"); err != nil {
		return fmt.Errorf("password must be at least 8 characters and mix letters and digits")
	}
	return nil
}
