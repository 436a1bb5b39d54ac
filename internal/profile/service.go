package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/agpcoach/agp/internal/program"
	"github.com/agpcoach/agp/internal/telemetry/tracing"

	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=profile_test

type profileRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	SignupDate(ctx context.Context, userID uuid.UUID) (program.Date, error)
	Update(ctx context.Context, userID uuid.UUID, update Update, updatedAt time.Time) error
}

type Service struct {
	repo     profileRepo
	cache    *SignupDateCache
	calendar *program.Calendar
}

func NewService(repo profileRepo, cache *SignupDateCache, calendar *program.Calendar) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		calendar: calendar,
	}
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (_ *Response, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	s.cache.Set(userID, p.SignupDate)

	return &Response{
		Profile:  *p,
		Position: program.PositionAt(p.SignupDate, s.calendar.Today()),
	}, nil
}

func (s *Service) Update(ctx context.Context, userID uuid.UUID, update Update) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.profile.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := update.Validate(); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, userID, update, s.calendar.Now()); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// SignupDate serves from the in-process cache, falling back to the repo.
func (s *Service) SignupDate(ctx context.Context, userID uuid.UUID) (program.Date, error) {
	if date, ok := s.cache.Get(userID); ok {
		return date, nil
	}

	date, err := s.repo.SignupDate(ctx, userID)
	if err != nil {
		return program.Date{}, fmt.Errorf("get signup date: %w", err)
	}
	s.cache.Set(userID, date)

	return date, nil
}

// Position returns where the user currently stands in the program.
func (s *Service) Position(ctx context.Context, userID uuid.UUID) (program.Position, error) {
	signup, err := s.SignupDate(ctx, userID)
	if err != nil {
		return program.Position{}, err
	}
	return program.PositionAt(signup, s.calendar.Today()), nil
}
