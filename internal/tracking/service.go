package tracking

import (
	"context"
	"fmt"

	"github.com/agpcoach/agp/internal/notifications"
	"github.com/agpcoach/agp/internal/program"
	"github.com/agpcoach/agp/internal/progress"
	"github.com/agpcoach/agp/internal/telemetry/metrics"
	"github.com/agpcoach/agp/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=tracking_test

type trackingRepo interface {
	AddFood(ctx context.Context, userID uuid.UUID, entry FoodEntry) (*FoodEntry, error)
	UpsertWellness(ctx context.Context, userID uuid.UUID, entry WellnessEntry) error
	FoodOn(ctx context.Context, userID uuid.UUID, date program.Date) ([]FoodEntry, error)
	WellnessOn(ctx context.Context, userID uuid.UUID, date program.Date) (*WellnessEntry, error)
}

type trackingHistory interface {
	TrackingDates(ctx context.Context, userID uuid.UUID, limit int) ([]program.Date, error)
}

type streakRecalculator interface {
	RecalculateStreak(ctx context.Context, userID uuid.UUID) progress.StreakUpdate
}

type notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, title, body string) (*notifications.Notification, error)
}

const (
	kindFood     = "food"
	kindWellness = "wellness"
)

type Service struct {
	repo         trackingRepo
	history      trackingHistory
	streaks      streakRecalculator
	notifier     notifier
	calendar     *program.Calendar
	metrics      *metrics.Manager
	historyLimit int
}

func NewService(
	repo trackingRepo,
	history trackingHistory,
	streaks streakRecalculator,
	notifier notifier,
	calendar *program.Calendar,
	metrics *metrics.Manager,
	historyLimit int,
) *Service {
	return &Service{
		repo:         repo,
		history:      history,
		streaks:      streaks,
		notifier:     notifier,
		calendar:     calendar,
		metrics:      metrics,
		historyLimit: historyLimit,
	}
}

// resolveDate defaults an empty date to today and refuses future days.
func (s *Service) resolveDate(date program.Date) (program.Date, error) {
	today := s.calendar.Today()
	if date.IsZero() {
		return today, nil
	}
	if date.After(today) {
		return program.Date{}, fmt.Errorf("%w: date %s is in the future", ErrInvalidEntry, date)
	}
	return date, nil
}

func (s *Service) SubmitFood(ctx context.Context, userID uuid.UUID, entry FoodEntry) (_ *SubmitResult[FoodEntry], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracking.food.submit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if entry.TrackedOn, err = s.resolveDate(entry.TrackedOn); err != nil {
		return nil, err
	}
	entry.CreatedAt = s.calendar.Now()

	added, err := s.repo.AddFood(ctx, userID, entry)
	if err != nil {
		return nil, fmt.Errorf("add food entry: %w", err)
	}
	s.metrics.CounterTrackingEntries.WithLabelValues(kindFood).Inc()

	res := newSubmitResult(*added, s.afterSubmit(ctx, userID))
	return &res, nil
}

func (s *Service) SubmitWellness(ctx context.Context, userID uuid.UUID, entry WellnessEntry) (_ *SubmitResult[WellnessEntry], err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracking.wellness.submit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if entry.TrackedOn, err = s.resolveDate(entry.TrackedOn); err != nil {
		return nil, err
	}
	entry.UpdatedAt = s.calendar.Now()

	if err := s.repo.UpsertWellness(ctx, userID, entry); err != nil {
		return nil, fmt.Errorf("upsert wellness entry: %w", err)
	}
	s.metrics.CounterTrackingEntries.WithLabelValues(kindWellness).Inc()

	res := newSubmitResult(entry, s.afterSubmit(ctx, userID))
	return &res, nil
}

// afterSubmit refreshes the streak and announces badges it unlocked. Neither
// can fail the submission.
func (s *Service) afterSubmit(ctx context.Context, userID uuid.UUID) progress.StreakUpdate {
	update := s.streaks.RecalculateStreak(ctx, userID)
	for _, badge := range update.NewBadges() {
		if _, err := s.notifier.Notify(ctx, userID, badge.Title, badge.Description); err != nil {
			log.Errorf("notify badge [%s] to user [%s]: %s", badge.ID, userID, err)
		}
	}
	return update
}

func (s *Service) Day(ctx context.Context, userID uuid.UUID, date program.Date) (_ *Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.tracking.day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	food, err := s.repo.FoodOn(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("get food entries: %w", err)
	}
	if food == nil {
		food = []FoodEntry{}
	}

	wellness, err := s.repo.WellnessOn(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("get wellness entry: %w", err)
	}

	return &Day{
		Date:     date,
		Food:     food,
		Wellness: wellness,
	}, nil
}

func (s *Service) Dates(ctx context.Context, userID uuid.UUID) ([]program.Date, error) {
	dates, err := s.history.TrackingDates(ctx, userID, s.historyLimit)
	if err != nil {
		return nil, fmt.Errorf("get tracking dates: %w", err)
	}
	if dates == nil {
		dates = []program.Date{}
	}
	return dates, nil
}
