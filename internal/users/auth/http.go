// Copyright (c) 2026 ERP Cell. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/erpcell/erpcell/internal/platform/constants"
	"github.com/erpcell/erpcell/internal/platform/middleware"
	requestutil "github.com/erpcell/erpcell/internal/platform/request"
	"github.com/erpcell/erpcell/internal/platform/respond"
	"github.com/erpcell/erpcell/internal/platform/sec"
)

// # Definitions & Constructors

// Handler implements authentication-related HTTP endpoints.
//
// # Scope
//
// Session lifecycle only (login, logout, current identity, password change).
// Account provisioning lives with the student and faculty record modules.
type Handler struct {
	authService   *Service
	secureCookies bool
}

// NewHandler constructs a new [Handler] with its service dependency.
//
// secureCookies controls the Secure attribute on the session cookie and is
// disabled only for local development over plain HTTP.
func NewHandler(service *Service, secureCookies bool) *Handler {
	return &Handler{authService: service, secureCookies: secureCookies}
}

// Routes returns a [chi.Router] configured with authentication-specific routes.
//
// # Endpoints
//   - POST /login           : Authenticates and establishes a session cookie.
//   - POST /logout          : Destroys the current session.
//   - GET  /me              : Returns the authenticated principal.
//   - POST /change-password : Rotates the caller's password.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/login", handler.login)

	// Protected endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/logout", handler.logout)
		r.Get("/me", handler.me)
		r.Post("/change-password", handler.changePassword)
	})

	return router
}

// # Request / Response Payloads

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User       *sec.Identity `json:"user"`
	RedirectTo string        `json:"redirect_to"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

/*
Login authenticates a username/password pair and establishes a session.

POST /api/v1/auth/login

Description: On success the opaque session token is set as an HttpOnly cookie;
it is never included in the response body. The body carries the principal and
the role-based landing path for the frontend.

Request:
  - Body: loginRequest (Username, Password)

Responses:
  - 200 OK: loginResponse with identity and redirect path
  - 400 Bad Request: Malformed input
  - 401 Unauthorized: Unknown username or wrong password (indistinguishable)
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var payload loginRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.authService.Login(request.Context(), LoginInput{
		Username: payload.Username,
		Password: payload.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    result.Token,
		Path:     constants.SessionCookiePath,
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})

	respond.OK(writer, loginResponse{
		User:       result.Identity,
		RedirectTo: result.RedirectTo,
	})
}

/*
Logout destroys the caller's session and clears the session cookie.

POST /api/v1/auth/logout

Responses:
  - 204 No Content: Session destroyed (idempotent)
  - 401 Unauthorized: No active session
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	token := ""
	if cookie, err := request.Cookie(constants.SessionCookieName); err == nil {
		token = cookie.Value
	}

	if err := handler.authService.Logout(request.Context(), token); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Expire the cookie client-side as well.
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   handler.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})

	respond.NoContent(writer)
}

/*
Me returns the authenticated principal.

GET /api/v1/auth/me

Description: The identity is rebuilt from the credential record on every
request, so this always reflects the current role and reference.

Responses:
  - 200 OK: The current [sec.Identity]
  - 401 Unauthorized: No active session
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, identity)
}

/*
ChangePassword rotates the caller's password.

POST /api/v1/auth/change-password

Description: Requires re-verification of the current password. Existing
sessions, including the one making this request, remain valid.

Request:
  - Body: changePasswordRequest (CurrentPassword, NewPassword)

Responses:
  - 204 No Content: Password updated
  - 400 Bad Request: New password fails validation
  - 401 Unauthorized: Wrong current password or no session
*/
func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload changePasswordRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.authService.ChangePassword(request.Context(), identity, payload.CurrentPassword, payload.NewPassword)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
