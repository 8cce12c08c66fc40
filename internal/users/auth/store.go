// Copyright (c) 2026 ERP Cell. All rights reserved.

package auth

import (
	"context"
	"time"
)

// # Credential Data Access
//
// Lookups return an explicit (nil, nil) for "no such record" — absence is an
// ordinary answer, not an error. A non-nil error always means the storage
// backend itself failed, so callers can keep "wrong password" and "backend
// unavailable" on separate paths.

// CredentialRepository defines the data access contract for login credentials.
type CredentialRepository interface {

	/*
		FindByUsername returns the credential with the given username.
		The match is exact and case-sensitive, as stored.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *Credential: Hydrated record, or nil if absent
		  - error: Database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*Credential, error)

	/*
		FindByID returns the credential with the given user ID.

		Parameters:
		  - context: context.Context
		  - userID: int64

		Returns:
		  - *Credential: Hydrated record, or nil if absent
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, userID int64) (*Credential, error)

	/*
		Create persists a brand-new credential record at account-provisioning time.

		Parameters:
		  - context: context.Context
		  - credential: *Credential

		Returns:
		  - int64: Assigned user ID
		  - error: Persistence failures
	*/
	Create(context context.Context, credential *Credential) (int64, error)

	/*
		UpdatePasswordHash replaces only the credential's password hash.

		Parameters:
		  - context: context.Context
		  - userID: int64
		  - newHash: string

		Returns:
		  - error: Persistence failures
	*/
	UpdatePasswordHash(context context.Context, userID int64, newHash string) error

	/*
		ListPlaceholderCredentials returns every credential whose password hash
		still matches the seed-time sentinel pattern. Used only by the one-time
		placeholder resolution procedure at startup.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Credential: Records awaiting resolution
		  - error: Database retrieval failures
	*/
	ListPlaceholderCredentials(context context.Context) ([]*Credential, error)
}

// # Session Data Access

// SessionRepository defines the contract for the opaque server-side session store.
//
// # Concurrency
//
// Entries are keyed and independent; concurrent reads and writes for
// different sessions never interfere. A lookup miss is "no session".
type SessionRepository interface {

	/*
		Create binds a session token to a user ID for a limited duration.

		Parameters:
		  - context: context.Context
		  - token: string (opaque, never stored in plain form)
		  - userID: int64
		  - ttl: time.Duration

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, token string, userID int64, ttl time.Duration) error

	/*
		Resolve returns the user ID bound to a session token.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - int64: Bound user ID (zero when not found)
		  - bool: Whether a live session exists
		  - error: Retrieval failures
	*/
	Resolve(context context.Context, token string) (int64, bool, error)

	/*
		Delete destroys a session. Deleting an absent session is not an error.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - error: Deletion failures
	*/
	Delete(context context.Context, token string) error
}
