package push

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/agpcoach/agp/internal/auth"
	"github.com/agpcoach/agp/internal/program"
	"github.com/agpcoach/agp/internal/telemetry/tracing"
	"github.com/agpcoach/agp/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=push_test

type subscriptionsRepo interface {
	Upsert(ctx context.Context, userID uuid.UUID, s Subscription) error
	Delete(ctx context.Context, userID uuid.UUID, endpoint string) error
}

type Handler struct {
	repo     subscriptionsRepo
	calendar *program.Calendar
}

func NewHandler(repo subscriptionsRepo, calendar *program.Calendar) *Handler {
	return &Handler{
		repo:     repo,
		calendar: calendar,
	}
}

func (h *Handler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.push.subscribe")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var s Subscription
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		log.Errorf("push subscribe, unmarshal json params: %s", err)
		http.Error(w, "invalid subscription", http.StatusBadRequest)
		return
	}
	if err := s.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.CreatedAt = h.calendar.Now()

	if err := h.repo.Upsert(ctx, session.UserID, s); err != nil {
		log.Errorf("store push subscription for user [%s]: %s", session.UserID, err)
		http.Error(w, "failed to store subscription", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "subscribed")
}

func (h *Handler) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.push.unsubscribe")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Endpoint == "" {
		http.Error(w, "endpoint missing", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(ctx, session.UserID, req.Endpoint); err != nil {
		if errors.Is(err, ErrSubscriptionNotFound) {
			http.Error(w, "subscription not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete push subscription for user [%s]: %s", session.UserID, err)
		http.Error(w, "failed to delete subscription", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "unsubscribed")
}
