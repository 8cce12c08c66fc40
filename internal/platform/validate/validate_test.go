// Copyright (c) 2026 ERP Cell. All rights reserved.

package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erpcell/erpcell/internal/platform/apperr"
	"github.com/erpcell/erpcell/internal/platform/validate"
	"github.com/erpcell/erpcell/pkg/pointer"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Computer Science", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Username covers the login name format rules.
*/
func TestValidator_Username(t *testing.T) {
	tests := []struct {
		name     string
		username string
		isValid  bool
	}{
		{"minimum_length", "abc", true},
		{"contains_dot", "priya.patel", false},
		{"with_separators", "priya_patel-2", true},
		{"too_short", "ab", false},
		{"too_long", strings.Repeat("a", 51), false},
		{"inner_space", "a b", false},
		{"empty", "", false},
		{"whitespace_only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Username("username", tt.username)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "test@example.com", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "test@", false},
		{"bare_host", "test@localhost", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Phone checks digit counting after separator stripping.
*/
func TestValidator_Phone(t *testing.T) {
	tests := []struct {
		name    string
		phone   string
		isValid bool
	}{
		{"empty_is_optional", "", true},
		{"ten_digits", "9876543210", true},
		{"with_separators", "+91 (987) 654-3210", true},
		{"too_short", "12345", false},
		{"too_long", "1234567890123456", false},
		{"letters", "98765abcde", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Phone("phone_number", tt.phone)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Date ensures calendar-aware date parsing, not just format matching.
*/
func TestValidator_Date(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		isValid bool
	}{
		{"valid", "2024-06-15", true},
		{"leap_day", "2024-02-29", true},
		{"impossible_day", "2024-02-30", false},
		{"month_13", "2024-13-01", false},
		{"wrong_format", "15/06/2024", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Date("exam_date", tt.date)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Marks verifies optional marks semantics: nil passes, out-of-range fails.
*/
func TestValidator_Marks(t *testing.T) {
	tests := []struct {
		name    string
		marks   *int
		isValid bool
	}{
		{"nil_passes", nil, true},
		{"zero", pointer.To(0), true},
		{"full", pointer.To(100), true},
		{"negative", pointer.To(-1), false},
		{"over_max", pointer.To(101), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Marks("theory_marks", tt.marks)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Amount verifies monetary bounds.
*/
func TestValidator_Amount(t *testing.T) {
	tests := []struct {
		name    string
		amount  *float64
		isValid bool
	}{
		{"nil_fails", nil, false},
		{"zero", pointer.To(0.0), true},
		{"typical", pointer.To(1500.50), true},
		{"negative", pointer.To(-1.0), false},
		{"too_large", pointer.To(10000000.0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Amount("amount", tt.amount)

			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("username", "aarav").
		MinLen("username", "aarav", 3).
		MaxLen("username", "aarav", 10).
		Email("email", "aarav@erpcell.app").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("username", "").       // Fails
		MinLen("username", "a", 5).     // Fails
		Email("email", "not-an-email"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}

/*
TestSanitize verifies whitespace trimming and the pointer variant.
*/
func TestSanitize(t *testing.T) {
	assert.Equal(t, "abc", validate.Sanitize("  abc  "))
	assert.Equal(t, "", validate.Sanitize("   "))

	assert.Nil(t, validate.SanitizePtr(nil))

	value := "  Room 101  "
	trimmed := validate.SanitizePtr(&value)
	require.NotNil(t, trimmed)
	assert.Equal(t, "Room 101", *trimmed)
}
