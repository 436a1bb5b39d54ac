package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/agpcoach/agp/internal/program"
	"github.com/agpcoach/agp/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=notifications_test

type notificationsRepo interface {
	Add(ctx context.Context, userID uuid.UUID, n Notification) (*Notification, error)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, userID uuid.UUID, id int) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	DeleteReadOlderThan(ctx context.Context, before time.Time) (int64, error)
}

type unreadPublisher interface {
	PublishUnread(ctx context.Context, userID uuid.UUID, unread int) error
}

type Service struct {
	repo      notificationsRepo
	publisher unreadPublisher
	calendar  *program.Calendar
}

func NewService(repo notificationsRepo, publisher unreadPublisher, calendar *program.Calendar) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		calendar:  calendar,
	}
}

func (s *Service) Notify(ctx context.Context, userID uuid.UUID, title, body string) (_ *Notification, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.notifications.notify")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	n, err := s.repo.Add(ctx, userID, Notification{
		Title:     title,
		Body:      body,
		CreatedAt: s.calendar.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("add notification: %w", err)
	}

	s.publishUnread(ctx, userID)
	return n, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Notification, error) {
	list, err := s.repo.List(ctx, userID, defaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

func (s *Service) MarkRead(ctx context.Context, userID uuid.UUID, id int) error {
	if err := s.repo.MarkRead(ctx, userID, id); err != nil {
		return fmt.Errorf("mark notification %d read: %w", id, err)
	}
	s.publishUnread(ctx, userID)
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	marked, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	if marked > 0 {
		s.publishUnread(ctx, userID)
	}
	return marked, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := s.repo.UnreadCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// PurgeRead deletes read notifications older than retention.
func (s *Service) PurgeRead(ctx context.Context, retention time.Duration) {
	deleted, err := s.repo.DeleteReadOlderThan(ctx, s.calendar.Now().Add(-retention))
	if err != nil {
		log.Errorf("purge read notifications: %s", err)
		return
	}
	log.Infof("purged %d read notifications", deleted)
}

// publishUnread is best-effort: live counters catch up on the next change.
func (s *Service) publishUnread(ctx context.Context, userID uuid.UUID) {
	count, err := s.repo.UnreadCount(ctx, userID)
	if err != nil {
		log.Errorf("count unread notifications for user [%s]: %s", userID, err)
		return
	}
	if err := s.publisher.PublishUnread(ctx, userID, count); err != nil {
		log.Errorf("publish unread notifications for user [%s]: %s", userID, err)
	}
}
