package model

import (
	"net/mail"
	"strings"
	"time"

	"github.com/m-mizutani/gittales/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type User struct {
	ID             types.UserID `json:"user_id"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	PasswordDigest string       `json:"-"`
	Avatar         string       `json:"avatar,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	RefreshToken   string       `json:"-"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (x *User) Payload() TokenPayload {
	return TokenPayload{UserID: x.ID, Email: x.Email}
}

// NormalizeEmail trims and lower-cases an email address. Emails are unique in
// this normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

const (
	minPasswordLength = 8
	// bcrypt ignores bytes beyond 72
	maxPasswordLength = 72
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
}

func (x *RegisterInput) Validate() error {
	if strings.TrimSpace(x.Name) == "" {
		return goerr.Wrap(types.ErrValidationFailed, "name is required")
	}
	if _, err := mail.ParseAddress(x.Email); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "invalid email", goerr.V("email", x.Email))
	}
	if len(x.Password) < minPasswordLength || len(x.Password) > maxPasswordLength {
		return goerr.Wrap(types.ErrValidationFailed, "password length is out of range",
			goerr.V("min", minPasswordLength),
			goerr.V("max", maxPasswordLength),
		)
	}
	return nil
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (x *LoginInput) Validate() error {
	if x.Email == "" || x.Password == "" {
		return goerr.Wrap(types.ErrValidationFailed, "email and password are required")
	}
	return nil
}
