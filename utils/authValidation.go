package utils

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	ErrPasswordTooWeak  = errors.New("password must include at least one uppercase letter, one lowercase letter, and one digit")
)

var (
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`\d`)
)

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ValidateRegisterRequest validates registration data using ozzo-validation.
func ValidateRegisterRequest(req RegisterRequest) error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Username, validation.Required, validation.Length(3, 100)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.Password, validation.Required.Error("password cannot be blank"), validation.By(validatePassword)),
		validation.Field(&req.Role, validation.Required),
	)
}

// ValidatePasswordChange validates only the new password.
func ValidatePasswordChange(newPassword string) error {
	return validation.Validate(newPassword, validation.Required, validation.By(validatePassword))
}

// validatePassword checks the password for length and strength: at least
// six characters including upper case, lower case and a digit.
func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if len(password) < 6 {
		return ErrPasswordTooShort
	}

	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) {
		return ErrPasswordTooWeak
	}

	return nil
}
