// Copyright (c) 2026 ERP Cell. All rights reserved.

// Package middleware provides the HTTP middleware chain for the ERP Cell API server.
//
// # Architecture
//
// Middleware intercepts incoming HTTP requests to apply global policies
// before they reach the domain handlers. This includes cross-cutting concerns
// like Logging, AuthZ/AuthN, Rate Limiting, and CORS.
package middleware

import (
	"context"
	"net/http"

	"github.com/erpcell/erpcell/internal/platform/apperr"
	"github.com/erpcell/erpcell/internal/platform/constants"
	"github.com/erpcell/erpcell/internal/platform/ctxutil"
	"github.com/erpcell/erpcell/internal/platform/respond"
	"github.com/erpcell/erpcell/internal/platform/sec"
)

// IdentityResolver defines the interface needed to resolve sessions in middleware.
//
// # Why an interface?
//
// Defining IdentityResolver here decouples the middleware from the `auth`
// service implementation, allowing us to easily inject fakes during unit testing.
//
// # Contract
//
// Resolve returns (nil, nil) when the token does not map to a live session —
// an expired, unknown, or logged-out session is "no session", never an error.
// A non-nil error means the session store or database itself failed.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*sec.Identity, error)
}

// Authenticate resolves the session cookie into an [sec.Identity].
//
// # Flow
//  1. Check for the session cookie.
//  2. If absent, request proceeds as anonymous.
//  3. If present, resolve it via [IdentityResolver] — the credential record is
//     re-fetched on every request so role/ref changes take effect promptly.
//  4. Inject [*sec.Identity] into the request context for downstream use.
//
// # Parameters
//   - resolver: The IdentityResolver instance.
//
// # Returns
//   - An [http.Handler] middleware.
func Authenticate(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Anonymous Access ───────────────────────────────────────────
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Session Resolution ─────────────────────────────────────────
			identity, err := resolver.Resolve(request.Context(), cookie.Value)
			if err != nil {
				// Backend fault, not a credential problem. Distinct from 401.
				respond.Error(writer, request, err)
				return
			}

			// ── 3. Stale Session ──────────────────────────────────────────────
			// Expired token or vanished credential record: proceed anonymous,
			// the route guards will reject protected paths with 401.
			if identity == nil {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if [*sec.Identity] exists in context.
//  2. If missing, abort with HTTP 401 Unauthorized.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		identity := GetIdentity(request.Context())
		if identity == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireRole blocks requests whose principal does not hold exactly the required role.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It automatically implies
// [RequireAuth] so you don't need to mount both.
//
// # Flow
//  1. Check if [*sec.Identity] exists in context (implies AuthN).
//  2. Check the principal's role against the target with [sec.Role.Is] —
//     there is no hierarchy, Faculty and Student gates are disjoint.
//  3. If insufficient, abort with HTTP 403 Forbidden.
func RequireRole(role sec.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			identity := GetIdentity(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if identity == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			if !identity.Role.Is(role) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// GetIdentity retrieves the [*sec.Identity] from the [context.Context].
//
// # Returns
//   - A pointer to [*sec.Identity] if the request is authenticated.
//   - nil if the request is anonymous.
func GetIdentity(ctx context.Context) *sec.Identity {
	return ctxutil.GetIdentity(ctx)
}
