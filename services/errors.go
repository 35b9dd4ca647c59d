package services

import (
	"errors"
)

// NotFoundError is a domain "not found" signal; handlers translate it to
// a 404 response.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

var (
	ErrPatientNotFound           = &NotFoundError{Entity: "patient"}
	ErrUnitNotFound              = &NotFoundError{Entity: "unit"}
	ErrExaminationNotFound       = &NotFoundError{Entity: "examination"}
	ErrAppointmentNotFound       = &NotFoundError{Entity: "appointment"}
	ErrInsuranceProviderNotFound = &NotFoundError{Entity: "insurance provider"}
	ErrContractNotFound          = &NotFoundError{Entity: "contract"}
	ErrPatientInsuranceNotFound  = &NotFoundError{Entity: "patient insurance"}
	ErrPatientContractNotFound   = &NotFoundError{Entity: "patient contract"}
	ErrPaymentNotFound           = &NotFoundError{Entity: "payment"}
	ErrUserNotFound              = &NotFoundError{Entity: "user"}
)

// IsNotFound reports whether err is a domain not-found error.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError marks input the service rejected; handlers translate
// it to a 400 response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a domain validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// AuthError covers every user-facing authentication failure: invalid
// credentials, inactive accounts and weak passwords all surface as this
// single category.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// IsAuthError reports whether err is a user-facing auth error.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
