package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers both unknown emails and wrong
	// passwords so login failures never reveal whether an email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMFARequired means the password was correct but the account has a
	// second factor and no TOTP code was supplied.
	ErrMFARequired = errors.New("totp code required")

	ErrInvalidTOTPCode   = errors.New("invalid TOTP code")
	ErrMFANotEnabled     = errors.New("MFA not enabled for this user")
	ErrMFAAlreadyEnabled = errors.New("MFA already enabled for this user")

	ErrEmailTaken    = errors.New("email is already registered")
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrIdentityTaken is the fallback when the storage unique constraint
	// fires after the pre-checks passed (the check-then-insert race).
	ErrIdentityTaken = errors.New("email or username is already taken")
)

// ValidationError reports malformed or missing input. The message is safe
// to surface to the caller.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
