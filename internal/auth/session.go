package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// Session identifies the authenticated user of a request.
type Session struct {
	Token     string
	UserID    uuid.UUID
	CreatedAt time.Time
}

type sessionCtxKey struct{}

func WithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionCtxKey{}).(Session)
	return session, ok
}

// sessions are stored in redis as "<created at unix>|<user id>"
func encodeSession(session Session) string {
	return fmt.Sprintf("%d|%s", session.CreatedAt.Unix(), session.UserID)
}

func decodeSession(token, value string) (*Session, error) {
	createdAtStr, userIDStr, found := strings.Cut(value, "|")
	if !found {
		return nil, fmt.Errorf("malformed session value [%s]", value)
	}

	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse session created at: %w", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, fmt.Errorf("parse session user id: %w", err)
	}

	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}

// TokenFromRequest reads the bearer token from the Authorization header.
func TokenFromRequest(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}
	return strings.TrimSpace(token)
}
