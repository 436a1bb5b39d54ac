package tracking

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
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=tracking_test

type trackingService interface {
	SubmitFood(ctx context.Context, userID uuid.UUID, entry FoodEntry) (*SubmitResult[FoodEntry], error)
	SubmitWellness(ctx context.Context, userID uuid.UUID, entry WellnessEntry) (*SubmitResult[WellnessEntry], error)
	Day(ctx context.Context, userID uuid.UUID, date program.Date) (*Day, error)
	Dates(ctx context.Context, userID uuid.UUID) ([]program.Date, error)
}

type DatesResponse struct {
	Dates []program.Date `json:"dates"`
}

type Handler struct {
	service trackingService
}

func NewHandler(service trackingService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleSubmitFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.food.submit")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var entry FoodEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("submit food entry, unmarshal json params: %s", err)
		http.Error(w, "invalid food entry", http.StatusBadRequest)
		return
	}

	res, err := h.service.SubmitFood(ctx, session.UserID, entry)
	if err != nil {
		writeSubmitError(w, "food", err)
		return
	}

	pkg.WriteJSON(w, res, http.StatusCreated)
}

func (h *Handler) HandleSubmitWellness(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.wellness.submit")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var entry WellnessEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("submit wellness entry, unmarshal json params: %s", err)
		http.Error(w, "invalid wellness entry", http.StatusBadRequest)
		return
	}

	res, err := h.service.SubmitWellness(ctx, session.UserID, entry)
	if err != nil {
		writeSubmitError(w, "wellness", err)
		return
	}

	pkg.WriteJSON(w, res, http.StatusOK)
}

func writeSubmitError(w http.ResponseWriter, kind string, err error) {
	if errors.Is(err, ErrInvalidEntry) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Errorf("submit %s entry: %s", kind, err)
	http.Error(w, "failed to save entry", http.StatusInternalServerError)
}

func (h *Handler) HandleDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.day")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	date, err := program.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, "error, invalid date", http.StatusBadRequest)
		return
	}

	day, err := h.service.Day(ctx, session.UserID, date)
	if err != nil {
		log.Errorf("get tracking day %s: %s", date, err)
		http.Error(w, "failed to get tracking day", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, day, http.StatusOK)
}

func (h *Handler) HandleDates(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracking.dates")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	dates, err := h.service.Dates(ctx, session.UserID)
	if err != nil {
		log.Errorf("get tracking dates: %s", err)
		http.Error(w, "failed to get tracking dates", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, DatesResponse{Dates: dates}, http.StatusOK)
}
