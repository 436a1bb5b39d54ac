package push

import (
	"errors"
	"net/url"
	"time"
)

var (
	ErrSubscriptionNotFound = errors.New("push subscription not found")
	ErrInvalidSubscription  = errors.New("invalid push subscription")
)

// Subscription is a browser push endpoint with its encryption keys.
// Delivery happens elsewhere; this service only stores it.
type Subscription struct {
	Endpoint  string    `json:"endpoint"`
	P256dh    string    `json:"p256dh"`
	Auth      string    `json:"auth"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s Subscription) Validate() error {
	if s.P256dh == "" || s.Auth == "" {
		return ErrInvalidSubscription
	}
	u, err := url.Parse(s.Endpoint)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return ErrInvalidSubscription
	}
	return nil
}

type deleteRequest struct {
	Endpoint string `json:"endpoint"`
}
