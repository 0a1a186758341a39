package domain

import "errors"

// Credential extraction and verification failures. The middleware layer maps
// these onto the external message contract; handlers never inspect the
// distinction between an unknown user and a wrong password.
var (
	ErrMissingCredentials   = errors.New("missing credentials")
	ErrMalformedCredentials = errors.New("malformed credentials")
	ErrInvalidCredentials   = errors.New("incorrect user_name or password")

	ErrExpiredToken     = errors.New("token expired")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrMalformedToken   = errors.New("token malformed")

	// ErrUnauthorized covers a token whose signature is valid but whose
	// subject no longer matches the account on record (renamed or deleted).
	ErrUnauthorized = errors.New("unauthorized request")
)

var (
	ErrUserExists     = errors.New("username already taken")
	ErrUserNotFound   = errors.New("user not found")
	ErrThingNotFound  = errors.New("thing not found")
	ErrReviewNotFound = errors.New("review not found")
)

// ValidationError carries a request-level validation message that is safe to
// return verbatim to the client, e.g. a missing field or a password policy
// violation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError builds a ValidationError with the given client-facing message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}
