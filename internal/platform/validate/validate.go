// Copyright (c) 2026 ERP Cell. All rights reserved.

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// This package is used exclusively in the service layer — never in handlers or
// storage. Every rule is a pure function over its input: no I/O, no side
// effects, fully unit-testable without a database.
//
// [Sanitize] is whitespace trimming only. It is NOT an escaping or
// injection-prevention mechanism; all query parameterization happens at the
// storage layer regardless of what passes through here.
package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/erpcell/erpcell/internal/platform/apperr"
)

var (
	// usernameRegex matches login names: letters, digits, underscore, dash.
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// personNameRegex matches human names: letters, spaces, hyphens,
	// apostrophes, and periods (initials).
	personNameRegex = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)
	// phoneStripper removes the separators tolerated in phone numbers.
	phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Field size limits for academic record inputs.
const (
	usernameMinLen = 3
	usernameMaxLen = 50
	passwordMinLen = 6
	passwordMaxLen = 100
	nameMinLen     = 2
	nameMaxLen     = 100
	phoneMinDigits = 10
	phoneMaxDigits = 15
	marksMax       = 100
	amountMax      = 9999999.99
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// # Generic Rules

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// MinLen fails if the Unicode character count is below min.
func (v *Validator) MinLen(field, value string, min int) *Validator {
	if utf8.RuneCountInString(value) < min {
		v.add(field, fmt.Sprintf("Minimum %d characters", min))
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
// # Example
//
//	v.Custom("semester", semester < 1 || semester > 8, "Must be between 1 and 8")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// # Academic Record Rules

// Username validates a login name.
//
// # Format
//
// 3-50 characters from [A-Za-z0-9_-]. Whitespace-only values are rejected as
// empty before the charset check runs.
func (v *Validator) Username(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "Username is required")
		return v
	}
	length := utf8.RuneCountInString(value)
	if length < usernameMinLen {
		v.add(field, fmt.Sprintf("Username must be at least %d characters long", usernameMinLen))
		return v
	}
	if length > usernameMaxLen {
		v.add(field, fmt.Sprintf("Username must be less than %d characters", usernameMaxLen+1))
		return v
	}
	if !usernameRegex.MatchString(value) {
		v.add(field, "Username can only contain letters, numbers, underscores, and dashes")
	}
	return v
}

// Password validates a plaintext password input.
//
// This governs password input acceptance only, not hash strength — hashing
// policy lives in the sec package.
func (v *Validator) Password(field, value string) *Validator {
	if value == "" {
		v.add(field, "Password is required")
		return v
	}
	length := utf8.RuneCountInString(value)
	if length < passwordMinLen {
		v.add(field, fmt.Sprintf("Password must be at least %d characters long", passwordMinLen))
		return v
	}
	if length > passwordMaxLen {
		v.add(field, fmt.Sprintf("Password must be less than %d characters", passwordMaxLen+1))
	}
	return v
}

// PersonName validates a human name field (first name, last name).
//
// Allows letters, spaces, hyphens, apostrophes, and periods.
func (v *Validator) PersonName(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
		return v
	}
	length := utf8.RuneCountInString(value)
	if length < nameMinLen || length > nameMaxLen {
		v.add(field, fmt.Sprintf("Must be between %d and %d characters", nameMinLen, nameMaxLen))
		return v
	}
	if !personNameRegex.MatchString(value) {
		v.add(field, "Can only contain letters, spaces, hyphens, and apostrophes")
	}
	return v
}

// Email fails if the value is not a valid RFC 5322 mailbox address with a
// dotted domain.
func (v *Validator) Email(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "Email is required")
		return v
	}
	address, err := mail.ParseAddress(value)
	if err != nil {
		v.add(field, "Must be a valid email address")
		return v
	}
	// mail.ParseAddress accepts bare local domains ("user@host"); academic
	// records require at least one domain label separator.
	at := strings.LastIndex(address.Address, "@")
	if at < 0 || !strings.Contains(address.Address[at+1:], ".") {
		v.add(field, "Must be a valid email address")
	}
	return v
}

// Phone validates an optional phone number.
//
// Empty values pass. Otherwise separators (space, dash, parentheses, plus)
// are stripped and the remaining digits must number between 10 and 15.
func (v *Validator) Phone(field, value string) *Validator {
	if value == "" {
		return v
	}
	cleaned := phoneStripper.Replace(value)
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			v.add(field, "Phone number can only contain digits and separators")
			return v
		}
	}
	digits := len(cleaned)
	if digits < phoneMinDigits || digits > phoneMaxDigits {
		v.add(field, fmt.Sprintf("Phone number must be between %d and %d digits", phoneMinDigits, phoneMaxDigits))
	}
	return v
}

// Date fails unless the value parses as a valid ISO calendar date (YYYY-MM-DD).
//
// time.Parse enforces real month/day ranges, so "2024-02-30" is rejected
// while "2024-02-29" passes on leap years.
func (v *Validator) Date(field, value string) *Validator {
	if value == "" {
		v.add(field, "This field is required")
		return v
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		v.add(field, "Must be a valid date in YYYY-MM-DD format")
	}
	return v
}

// Marks validates an optional marks value: nil passes, present values must
// fall in [0, 100].
func (v *Validator) Marks(field string, value *int) *Validator {
	if value == nil {
		return v
	}
	if *value < 0 || *value > marksMax {
		v.add(field, fmt.Sprintf("Must be between 0 and %d", marksMax))
	}
	return v
}

// Amount validates a required monetary amount: non-negative and at most
// 9,999,999.99.
func (v *Validator) Amount(field string, value *float64) *Validator {
	if value == nil {
		v.add(field, "This field is required")
		return v
	}
	if *value < 0 {
		v.add(field, "Cannot be negative")
		return v
	}
	if *value > amountMax {
		v.add(field, "Amount is too large")
	}
	return v
}

// ID fails unless the value is a positive integer.
func (v *Validator) ID(field string, value int64) *Validator {
	if value <= 0 {
		v.add(field, "Must be a positive number")
	}
	return v
}

// # Output

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// This is the only output method — call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// # Input Normalization

// Sanitize returns s with leading and trailing whitespace removed.
//
// Trimming only — parameterized queries remain the sole injection defense.
func Sanitize(s string) string {
	return strings.TrimSpace(s)
}

// SanitizePtr trims an optional string in place, returning nil unchanged.
func SanitizePtr(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	return &trimmed
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
