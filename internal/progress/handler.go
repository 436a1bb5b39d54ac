package progress

import (
	"context"
	"errors"
	"net/http"

	"github.com/agpcoach/agp/internal/auth"
	"github.com/agpcoach/agp/internal/profile"
	"github.com/agpcoach/agp/internal/program"
	"github.com/agpcoach/agp/internal/telemetry/tracing"
	"github.com/agpcoach/agp/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type overviewService interface {
	Overview(ctx context.Context, userID uuid.UUID, signup program.Date) (*Overview, error)
}

type signupDates interface {
	SignupDate(ctx context.Context, userID uuid.UUID) (program.Date, error)
}

type BadgesResponse struct {
	Badges []Badge `json:"badges"`
	Earned int     `json:"earned"`
}

type Handler struct {
	service     overviewService
	signupDates signupDates
}

func NewHandler(service overviewService, signupDates signupDates) *Handler {
	return &Handler{
		service:     service,
		signupDates: signupDates,
	}
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.get")
	defer span.End()

	overview, ok := h.overview(ctx, w)
	if !ok {
		return
	}

	pkg.WriteJSON(w, overview, http.StatusOK)
}

func (h *Handler) HandleBadges(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.badges")
	defer span.End()

	overview, ok := h.overview(ctx, w)
	if !ok {
		return
	}

	earned := 0
	for _, b := range overview.Badges {
		if b.Earned {
			earned++
		}
	}

	pkg.WriteJSON(w, BadgesResponse{
		Badges: overview.Badges,
		Earned: earned,
	}, http.StatusOK)
}

func (h *Handler) overview(ctx context.Context, w http.ResponseWriter) (*Overview, bool) {
	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return nil, false
	}

	signup, err := h.signupDates.SignupDate(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("get signup date for user [%s]: %s", session.UserID, err)
		http.Error(w, "failed to get progress", http.StatusInternalServerError)
		return nil, false
	}

	overview, err := h.service.Overview(ctx, session.UserID, signup)
	if err != nil {
		log.Errorf("get progress overview for user [%s]: %s", session.UserID, err)
		http.Error(w, "failed to get progress", http.StatusInternalServerError)
		return nil, false
	}

	return overview, true
}
