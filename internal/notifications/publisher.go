package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const channelPrefix = "agp:notifications:"

func Channel(userID uuid.UUID) string {
	return channelPrefix + userID.String()
}

// Publisher fans unread counts out to every instance serving a stream for
// the user.
type Publisher struct {
	redisClient *redis.Client
}

func NewPublisher(redisClient *redis.Client) *Publisher {
	return &Publisher{
		redisClient: redisClient,
	}
}

func (p *Publisher) PublishUnread(ctx context.Context, userID uuid.UUID, unread int) error {
	payload, err := json.Marshal(UnreadCount{Unread: unread})
	if err != nil {
		return err
	}
	if err := p.redisClient.Publish(ctx, Channel(userID), string(payload)).Err(); err != nil {
		return fmt.Errorf("publish unread count: %w", err)
	}
	return nil
}

// Subscribe listens on the user's channel. The returned func closes the
// subscription.
func (p *Publisher) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan *redis.Message, func() error, error) {
	pubsub := p.redisClient.Subscribe(ctx, Channel(userID))
	// wait for the subscription to be confirmed
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("subscribe to %s: %w", Channel(userID), err)
	}
	return pubsub.Channel(), pubsub.Close, nil
}
