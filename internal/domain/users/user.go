package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/dannykhan02/Ticketing-system/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// User roles
const (
	RoleAdmin     = "ADMIN"
	RoleOrganizer = "ORGANIZER"
	RoleAttendee  = "ATTENDEE"
	RoleSecurity  = "SECURITY"
)

// User entity
type User struct {
	ID              string    `validate:"required,uuid4"`
	Email           string    `validate:"required,email"`
	PasswordHash    string    `validate:"required"`
	Role            string    `validate:"required,oneof=ADMIN ORGANIZER ATTENDEE SECURITY"`
	PhoneNumber     string    `validate:"required,phoneValidation"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("phoneValidation", validators.PhoneValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// SetPassword hashes the plaintext password and stores the hash.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the plaintext password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// UserQuery filters and paginates user listings.
type UserQuery struct {
	Role      string `validate:"omitempty,oneof=ADMIN ORGANIZER ATTENDEE SECURITY"`
	Limit     int    `validate:"omitempty,min=1,max=100"`
	Offset    int    `validate:"omitempty,min=0"`
	SortBy    string `validate:"omitempty,oneof=email role date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewUserQuery creates a UserQuery with default pagination.
func NewUserQuery() *UserQuery {
	return &UserQuery{
		Limit:     50,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for UserQuery: %w", err)
	}

	return nil
}
