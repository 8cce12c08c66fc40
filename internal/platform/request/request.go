// Copyright (c) 2026 ERP Cell. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/erpcell/erpcell/internal/platform/apperr"
	"github.com/erpcell/erpcell/internal/platform/ctxutil"
	"github.com/erpcell/erpcell/internal/platform/sec"
	"github.com/erpcell/erpcell/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntParam retrieves a named URL parameter and parses it as a positive integer ID.

Returns:
  - int64: Parsed ID
  - error: Validation error if the parameter is missing or not a positive integer
*/
func IntParam(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validate.RequiredError(name, "Must be a positive number")
	}
	return id, nil
}

/*
Identity extracts the authenticated principal from the request context.

Returns nil if the request is not authenticated.
*/
func Identity(request *http.Request) *sec.Identity {
	return ctxutil.GetIdentity(request.Context())
}

/*
RequiredIdentity ensures the request is authenticated and returns the principal.

Returns:
  - *sec.Identity: The authenticated principal
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredIdentity(request *http.Request) (*sec.Identity, error) {

	// Get the resolved principal
	identity := ctxutil.GetIdentity(request.Context())

	// If the user is not authenticated, return an error
	if identity == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return identity, nil
}

/*
SelfOrFaculty enforces the record-access rule for student-scoped reads.

Faculty may access any student's records; a student may access only their own
(identity reference must equal the target student ID).

Returns:
  - error: apperr.Unauthorized for anonymous requests, apperr.Forbidden otherwise
*/
func SelfOrFaculty(request *http.Request, targetStudentID int64) error {
	identity, err := RequiredIdentity(request)
	if err != nil {
		return err
	}
	if identity.IsFaculty() {
		return nil
	}
	if identity.IsStudent() && identity.RefID == targetStudentID {
		return nil
	}
	return apperr.Forbidden("Insufficient permissions")
}
