// Copyright (c) 2026 ERP Cell. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/erpcell/erpcell/internal/platform/constants"
	"github.com/erpcell/erpcell/internal/platform/sec"
)

// # Session Repository

// RedisSessionRepository implements SessionRepository using Redis TTL keys.
//
// Tokens are stored by SHA-256 digest, so a dump of the session store cannot
// be replayed against the API. Expiry is enforced server-side by Redis.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new Redis-backed SessionRepository.
func NewSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

/*
Create binds a session token to a user ID with the given TTL.

Parameters:
  - context: context.Context
  - token: string
  - userID: int64
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisSessionRepository) Create(context context.Context, token string, userID int64, ttl time.Duration) error {
	key := sessionKey(token)

	if err := repository.client.Set(context, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_create_failed: %w", err)
	}

	return nil
}

/*
Resolve returns the user ID bound to a session token.

Description: An absent or expired key is an ordinary miss (found=false),
never an error. Errors indicate the store itself is unreachable.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - int64: Bound user ID
  - bool: Whether a live session exists
  - error: Connectivity errors
*/
func (repository *RedisSessionRepository) Resolve(context context.Context, token string) (int64, bool, error) {
	key := sessionKey(token)

	value, err := repository.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis_session_resolve_failed: %w", err)
	}

	userID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("redis_session_corrupt_value: %w", err)
	}

	return userID, true, nil
}

/*
Delete destroys a session. Idempotent: deleting an absent key succeeds.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Deletion failures
*/
func (repository *RedisSessionRepository) Delete(context context.Context, token string) error {
	key := sessionKey(token)

	if err := repository.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	return nil
}

// sessionKey derives the Redis key for a session token.
func sessionKey(token string) string {
	return constants.RedisPrefixSession + sec.HashToken(token)
}
