package account

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/agpcoach/agp/internal/program"

	"github.com/google/uuid"
)

const minPasswordLength = 8

var (
	ErrEmailTaken       = errors.New("email already registered")
	ErrUserNotFound     = errors.New("user not found")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrInvalidSignup    = errors.New("invalid signup")
)

type SignupRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	AccessCode string `json:"access_code"`
	FirstName  string `json:"first_name"`
}

func (r SignupRequest) Validate() error {
	if _, err := mail.ParseAddress(strings.TrimSpace(r.Email)); err != nil {
		return fmt.Errorf("%w: email invalid", ErrInvalidSignup)
	}
	if len(r.Password) < minPasswordLength {
		return fmt.Errorf("%w: password too short", ErrInvalidSignup)
	}
	if strings.TrimSpace(r.AccessCode) == "" {
		return fmt.Errorf("%w: access code empty", ErrInvalidSignup)
	}
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("%w: first name empty", ErrInvalidSignup)
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewAccount is everything created in the signup transaction.
type NewAccount struct {
	UserID       uuid.UUID
	Email        string
	PasswordHash string
	AccessCode   string
	FirstName    string
	SignupDate   program.Date
	CreatedAt    time.Time
}

type Credentials struct {
	UserID       uuid.UUID
	PasswordHash string
}

type TokenResponse struct {
	Token string `json:"token"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
