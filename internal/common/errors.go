// Package common defines shared constants and sentinel errors used across
// the storage, session and progress layers. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Lookup errors.
	ErrNotFound = errors.New("not found")

	// Auth errors. ErrInvalidCredentials is the only login failure and must
	// not reveal which of email or password did not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Validation errors (signup input). Every specific error wraps ErrValidation.
	ErrValidation       = errors.New("validation error")
	ErrNameTooShort     = fmt.Errorf("%w: name must be at least 2 characters", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)

	// Storage errors. Backends wrap driver failures with this so callers can
	// tell a broken store from missing data.
	ErrStoreUnavailable = errors.New("store unavailable")
)
