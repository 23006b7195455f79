package domain

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Maximum field lengths for User.
const (
	MaxUserEmailLength = 100
	MaxUserNameLength  = 50
)

// Common validation errors for User.
var (
	ErrEmptyUserID     = errors.New("user ID cannot be empty")
	ErrEmptyEmail      = errors.New("email cannot be empty")
	ErrEmailTooLong    = errors.New("email must be at most 100 characters long")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrEmptyUserName   = errors.New("user name cannot be empty")
	ErrUserNameTooLong = errors.New("user name must be at most 50 characters long")
)

// User represents a registered listener. Users are created by seed/import and
// are immutable within the core; they own subscriptions and playlists by
// foreign key only.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// NewUser creates a new User with the given email and name.
// It generates a new UUID for the user ID.
// Returns an error if validation fails.
func NewUser(email, name string) (*User, error) {
	user := &User{
		ID:    uuid.New(),
		Email: email,
		Name:  name,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	// Length limits count characters, not bytes, to match the VARCHAR columns.
	if utf8.RuneCountInString(u.Email) > MaxUserEmailLength {
		return ErrEmailTooLong
	}

	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Name == "" {
		return ErrEmptyUserName
	}

	if utf8.RuneCountInString(u.Name) > MaxUserNameLength {
		return ErrUserNameTooLong
	}

	return nil
}

// validEmailFormat performs basic validation of email format: a local part,
// an @, and a domain containing an interior dot.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
