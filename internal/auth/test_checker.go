package auth

import "context"

// TestChecker is an in-memory Checker for handler and server tests.
type TestChecker struct {
	Sessions map[string]Session
}

func NewTestChecker() *TestChecker {
	return &TestChecker{
		Sessions: map[string]Session{},
	}
}

func (c *TestChecker) Session(_ context.Context, token string) (*Session, error) {
	session, ok := c.Sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}
