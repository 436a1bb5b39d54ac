package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agpcoach/agp/internal/accesscodes"
	"github.com/agpcoach/agp/internal/auth"
	"github.com/agpcoach/agp/internal/program"
	"github.com/agpcoach/agp/internal/telemetry/metrics"
	"github.com/agpcoach/agp/internal/telemetry/tracing"
	"github.com/agpcoach/agp/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=account_test

type accountRepo interface {
	Create(ctx context.Context, acc NewAccount) error
	Credentials(ctx context.Context, email string) (*Credentials, error)
}

type sessionStore interface {
	Login(ctx context.Context, userID uuid.UUID, createdAt time.Time) (*auth.Session, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Service struct {
	repo     accountRepo
	sessions sessionStore
	calendar *program.Calendar
	metrics  *metrics.Manager
	// injectable for tests, bcrypt is slow on purpose
	HashPasswordFunc  func(password string) (string, error)
	CheckPasswordFunc func(password, hash string) bool
}

func NewService(
	repo accountRepo,
	sessions sessionStore,
	calendar *program.Calendar,
	metrics *metrics.Manager,
) *Service {
	return &Service{
		repo:              repo,
		sessions:          sessions,
		calendar:          calendar,
		metrics:           metrics,
		HashPasswordFunc:  pkg.HashPassword,
		CheckPasswordFunc: pkg.CheckPasswordHash,
	}
}

// Signup creates the account and opens its first session.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (_ *auth.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.account.signup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := s.HashPasswordFunc(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.calendar.Now()
	acc := NewAccount{
		UserID:       uuid.New(),
		Email:        normalizeEmail(req.Email),
		PasswordHash: passwordHash,
		AccessCode:   accesscodes.Normalize(req.AccessCode),
		FirstName:    strings.TrimSpace(req.FirstName),
		SignupDate:   s.calendar.Today(),
		CreatedAt:    now,
	}
	if err := s.repo.Create(ctx, acc); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.metrics.CounterSignups.Inc()
	log.Infof("new account created: [%s]", acc.UserID)

	session, err := s.sessions.Login(ctx, acc.UserID, now)
	if err != nil {
		return nil, fmt.Errorf("login after signup: %w", err)
	}
	return session, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (_ *auth.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.account.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	creds, err := s.repo.Credentials(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrWrongCredentials
		}
		return nil, fmt.Errorf("get credentials: %w", err)
	}

	if !s.CheckPasswordFunc(req.Password, creds.PasswordHash) {
		return nil, ErrWrongCredentials
	}

	session, err := s.sessions.Login(ctx, creds.UserID, s.calendar.Now())
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	return session, nil
}

func (s *Service) Logout(ctx context.Context, token string) (bool, error) {
	return s.sessions.Logout(ctx, token)
}
