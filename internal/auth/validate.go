package auth

import (
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/minilearn/internal/common"
)

const (
	MinNameLength     = 2
	MinPasswordLength = 6
)

// ValidateSignup checks the signup form in the order the form is filled in
// and returns the first violation. All errors wrap common.ErrValidation.
func ValidateSignup(in SignupInput) error {
	if utf8.RuneCountInString(in.Name) < MinNameLength {
		return common.ErrNameTooShort
	}
	if !strings.Contains(in.Email, "@") {
		return common.ErrInvalidEmail
	}
	if utf8.RuneCountInString(in.Password) < MinPasswordLength {
		return common.ErrPasswordTooShort
	}
	return nil
}
