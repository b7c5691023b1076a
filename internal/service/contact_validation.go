package service

import (
	"errors"
	"regexp"
)

// Validation failure kinds. Match with errors.Is on a *ValidationError.
var (
	ErrMissingField = errors.New("missing field")
	ErrInvalidEmail = errors.New("invalid email")
)

// ValidationError describes why a contact submission was rejected.
// Message is safe to show to the submitter.
type ValidationError struct {
	Kind    error
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return e.Kind }

const (
	msgMissingField = "All fields (name, email, message) are required"
	msgInvalidEmail = "Invalid email format"
)

// nonSpaceOrAt excludes '@' and every character JavaScript's \s matches,
// which is wider than RE2's ASCII-only \s.
const nonSpaceOrAt = `[^\t\n\x{000b}\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}@]`

// emailPattern is a syntactic sanity check only: local@domain.tld with no
// white space and a single '@'. It is intentionally permissive.
var emailPattern = regexp.MustCompile(`^` + nonSpaceOrAt + `+@` + nonSpaceOrAt + `+\.` + nonSpaceOrAt + `+$`)

// ContactInput is an unvalidated contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// ValidateContact checks that all three fields are present and that the
// email looks like an address. Fields are returned unchanged: no trimming,
// case folding or escaping happens here.
func ValidateContact(in ContactInput) (ContactInput, error) {
	for _, f := range []struct{ name, value string }{
		{"name", in.Name},
		{"email", in.Email},
		{"message", in.Message},
	} {
		if f.value == "" {
			return ContactInput{}, &ValidationError{Kind: ErrMissingField, Field: f.name, Message: msgMissingField}
		}
	}
	if !IsValidEmail(in.Email) {
		return ContactInput{}, &ValidationError{Kind: ErrInvalidEmail, Field: "email", Message: msgInvalidEmail}
	}
	return in, nil
}

// IsValidEmail reports whether s passes the contact form email check.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
