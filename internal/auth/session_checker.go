package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type SessionChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewSessionChecker(ttl time.Duration, redisClient *redis.Client) *SessionChecker {
	return &SessionChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// Session returns the live session for token, or ErrSessionNotFound /
// ErrSessionExpired.
func (c *SessionChecker) Session(ctx context.Context, token string) (*Session, error) {
	cmd := c.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	session, err := decodeSession(token, cmd.Val())
	if err != nil {
		return nil, err
	}

	if time.Since(session.CreatedAt) > c.ttl {
		return nil, ErrSessionExpired
	}

	return session, nil
}
