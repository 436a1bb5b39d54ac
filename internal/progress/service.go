package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agpcoach/agp/internal/program"
	"github.com/agpcoach/agp/internal/telemetry/metrics"
	"github.com/agpcoach/agp/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

type progressRepo interface {
	TrackingDates(ctx context.Context, userID uuid.UUID, limit int) ([]program.Date, error)
	TrackedDaysCount(ctx context.Context, userID uuid.UUID) (int, error)
	Get(ctx context.Context, userID uuid.UUID) (*Progress, error)
	UpdateStreak(ctx context.Context, userID uuid.UUID, streak int, updatedAt time.Time) error
	Insert(ctx context.Context, p Progress) error
}

const (
	outcomeApplied = "applied"
	outcomeFailed  = "failed"
)

type Service struct {
	repo         progressRepo
	calendar     *program.Calendar
	historyLimit int
	metrics      *metrics.Manager
}

func NewService(
	repo progressRepo,
	calendar *program.Calendar,
	historyLimit int,
	metrics *metrics.Manager,
) *Service {
	return &Service{
		repo:         repo,
		calendar:     calendar,
		historyLimit: historyLimit,
		metrics:      metrics,
	}
}

// RecalculateStreak recomputes the user's streak from their tracking history
// and stores it on the progress record, creating the record if needed.
// Failures are logged and reported in the result, never returned.
func (s *Service) RecalculateStreak(ctx context.Context, userID uuid.UUID) StreakUpdate {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.streak.recalculate")

	update := StreakUpdate{UserID: userID}
	err := s.recalculate(ctx, &update)
	tracing.EndSpanWithErrCheck(span, err)

	if err != nil {
		log.Errorf("recalculate streak for user [%s]: %s", userID, err)
		s.metrics.CounterStreakUpdates.WithLabelValues(outcomeFailed).Inc()
		update.Err = err
		update.Applied = false
		return update
	}

	s.metrics.CounterStreakUpdates.WithLabelValues(outcomeApplied).Inc()
	update.Applied = true
	return update
}

func (s *Service) recalculate(ctx context.Context, update *StreakUpdate) error {
	dates, err := s.repo.TrackingDates(ctx, update.UserID, s.historyLimit)
	if err != nil {
		return fmt.Errorf("get tracking dates: %w", err)
	}

	update.Streak = CalculateStreak(dates, s.calendar.Today())
	now := s.calendar.Now()

	existing, err := s.repo.Get(ctx, update.UserID)
	if err != nil {
		if !errors.Is(err, ErrProgressNotFound) {
			return fmt.Errorf("get progress: %w", err)
		}
		if err := s.repo.Insert(ctx, NewProgress(update.UserID, update.Streak, now)); err != nil {
			return fmt.Errorf("insert progress: %w", err)
		}
		return nil
	}

	update.Previous = existing.Streak
	if err := s.repo.UpdateStreak(ctx, update.UserID, update.Streak, now); err != nil {
		return fmt.Errorf("update streak: %w", err)
	}

	return nil
}

// Overview returns the stored progress overlaid with the position derived
// from the signup date. Users who never tracked get a fresh, unsaved record.
func (s *Service) Overview(ctx context.Context, userID uuid.UUID, signup program.Date) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrProgressNotFound) {
			return nil, fmt.Errorf("get progress: %w", err)
		}
		fresh := NewProgress(userID, 0, time.Time{})
		p = &fresh
	}

	trackedDays, err := s.repo.TrackedDaysCount(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count tracked days: %w", err)
	}

	pos := program.PositionAt(signup, s.calendar.Today())
	p.Day = pos.Day
	p.Phase = pos.Phase

	return &Overview{
		Progress:    *p,
		Position:    pos,
		TrackedDays: trackedDays,
		Badges: EvaluateBadges(BadgeStats{
			Streak:      p.Streak,
			Position:    pos,
			TrackedDays: trackedDays,
		}),
	}, nil
}
