package auth

import "context"

var _ Checker = (*SessionChecker)(nil)
var _ Checker = (*TestChecker)(nil)

type Checker interface {
	Session(ctx context.Context, token string) (*Session, error)
}
