package users

import (
	"context"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	UpdateByID(ctx context.Context, user *User) error
	DeleteByID(ctx context.Context, userID string) error
	CountByRole(ctx context.Context) (map[string]int64, error)
}

// Registration carries the fields required to create an account.
type Registration struct {
	Email       string
	PhoneNumber string
	Password    string
}

// AuthSession is the result of a successful authentication.
type AuthSession struct {
	AccessToken string
	User        *User
}

// AuthService defines authentication and account management operations.
type AuthService interface {
	// Register creates an attendee account.
	Register(ctx context.Context, reg Registration) (*User, error)

	// RegisterWithRole creates an account with an explicit role. Reserved
	// for admin callers.
	RegisterWithRole(ctx context.Context, reg Registration, role string) (*User, error)

	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, email, password string) (*AuthSession, error)

	// LoginWithIdentity provisions-or-fetches an account for an externally
	// authenticated identity and returns a signed access token.
	LoginWithIdentity(ctx context.Context, identity *ExternalIdentity) (*AuthSession, error)

	// RequestPasswordReset emails a signed, time-limited reset link.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword verifies the reset token and updates the password.
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

// ExternalIdentity is a user identity asserted by an OAuth provider.
type ExternalIdentity struct {
	Email string
	Name  string
}

// IdentityConnector abstracts the OAuth provider handshake. The current
// implementation talks to Google.
type IdentityConnector interface {
	// AuthCodeURL builds the provider redirect URL for the given state.
	AuthCodeURL(state string) string

	// Exchange trades the authorization code for the provider's identity.
	Exchange(ctx context.Context, code string) (*ExternalIdentity, error)
}

// ResetMailer delivers password reset links.
type ResetMailer interface {
	SendPasswordReset(ctx context.Context, recipient, resetLink string) error
}
