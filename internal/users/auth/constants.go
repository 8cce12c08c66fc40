// Copyright (c) 2026 ERP Cell. All rights reserved.

package auth

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldUser            = "user"
	FieldRedirect        = "redirect_to"
	FieldMessage         = "message"
)
