package user

import (
	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"library-catalog/internal/shared/validation"
)

const MinPasswordLength = 6

// RegisterRequest - POST /register
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Validate checks the registration payload. Email uniqueness is checked in
// the service because it needs the repository.
func (r *RegisterRequest) Validate() validation.Errors {
	err := ozzo.ValidateStruct(r,
		ozzo.Field(&r.Name, ozzo.Required, ozzo.Length(1, 255)),
		ozzo.Field(&r.Email, ozzo.Required, is.Email, ozzo.Length(1, 255)),
		ozzo.Field(&r.Password, ozzo.Required, ozzo.Length(MinPasswordLength, 0)),
	)
	errs := validation.FromOzzo(err)
	if r.Password != "" && r.Password != r.PasswordConfirmation {
		errs.Add("password", "password confirmation does not match")
	}
	return errs
}

// LoginRequest - POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() validation.Errors {
	err := ozzo.ValidateStruct(r,
		ozzo.Field(&r.Email, ozzo.Required, is.Email),
		ozzo.Field(&r.Password, ozzo.Required),
	)
	return validation.FromOzzo(err)
}

// AuthResponse - body of a successful registration.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// TokenResponse - body of a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
