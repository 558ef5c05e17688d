// Package validators holds the stateless field predicates used by the
// registration, contact and checkout forms. Each predicate accepts a
// raw string, trims it, and either accepts it or returns its fixed
// user-facing message.
package validators

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	usernameRe = regexp.MustCompile(`^[a-z0-9]+$`)
	textRe     = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё\s]+$`)
	phoneRe    = regexp.MustCompile(`^\d{10,15}$`)
	postalRe   = regexp.MustCompile(`^\d{5,6}$`)

	upperRe = regexp.MustCompile(`[A-Z]`)
	lowerRe = regexp.MustCompile(`[a-z]`)
	digitRe = regexp.MustCompile(`\d`)
)

var (
	ErrUsername      = errors.New("Username can only contain lowercase letters and numbers, without spaces.")
	ErrText          = errors.New("Only letters allowed")
	ErrEmail         = errors.New("Please enter a valid email address (e.g., example@mail.com)")
	ErrPhone         = errors.New("Phone number must contain 10-15 digits.")
	ErrPostalCode    = errors.New("Enter a valid postal code (5 or 6 digits)")
	ErrRequired      = errors.New("This field is required.")
	ErrPasswordUpper = errors.New("Password must contain at least one uppercase letter.")
	ErrPasswordLower = errors.New("Password must contain at least one lowercase letter.")
	ErrPasswordDigit = errors.New("Password must contain at least one digit.")
	ErrPasswordShort = errors.New("Password must be at least 8 characters long.")
)

var validate = validator.New()

// Username accepts lowercase letters and digits only. Input is
// lowercased first, so case is not significant.
func Username(v string) error {
	if !usernameRe.MatchString(strings.ToLower(strings.TrimSpace(v))) {
		return ErrUsername
	}
	return nil
}

// Text accepts Latin or Cyrillic letters and whitespace. Used for
// names, countries, regions and cities.
func Text(v string) error {
	if !textRe.MatchString(strings.TrimSpace(v)) {
		return ErrText
	}
	return nil
}

// Email runs a standard address well-formedness check.
func Email(v string) error {
	if err := validate.Var(strings.TrimSpace(v), "required,email"); err != nil {
		return ErrEmail
	}
	return nil
}

// Phone accepts 10 to 15 ASCII digits.
func Phone(v string) error {
	if !phoneRe.MatchString(strings.TrimSpace(v)) {
		return ErrPhone
	}
	return nil
}

// PostalCode accepts 5 or 6 ASCII digits.
func PostalCode(v string) error {
	if !postalRe.MatchString(strings.TrimSpace(v)) {
		return ErrPostalCode
	}
	return nil
}

// Password requires at least one uppercase letter, one lowercase
// letter and one digit. The minimum length is enforced separately by
// PasswordLength.
func Password(v string) error {
	if !upperRe.MatchString(v) {
		return ErrPasswordUpper
	}
	if !lowerRe.MatchString(v) {
		return ErrPasswordLower
	}
	if !digitRe.MatchString(v) {
		return ErrPasswordDigit
	}
	return nil
}

// PasswordLength enforces the 8-character minimum.
func PasswordLength(v string) error {
	if len(v) < 8 {
		return ErrPasswordShort
	}
	return nil
}

// FieldErrors collects validation failures keyed by field name.
type FieldErrors map[string]string

// Check runs a predicate and records its message under the field name.
// Once a field has a message, later checks for it are skipped.
func (fe FieldErrors) Check(field, value string, pred func(string) error) {
	if _, seen := fe[field]; seen {
		return
	}
	if err := pred(value); err != nil {
		fe[field] = err.Error()
	}
}

// Require records a missing-value message for blank fields.
func (fe FieldErrors) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		fe[field] = ErrRequired.Error()
	}
}

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fe))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return strings.Join(parts, "; ")
}
