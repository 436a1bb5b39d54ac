package measurements

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/agpcoach/agp/internal/auth"
	"github.com/agpcoach/agp/internal/program"
	"github.com/agpcoach/agp/internal/telemetry/tracing"
	"github.com/agpcoach/agp/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=measurements_test

type measurementsRepo interface {
	Add(ctx context.Context, userID uuid.UUID, m Measurement) (*Measurement, error)
	List(ctx context.Context, userID uuid.UUID) ([]Measurement, error)
	Delete(ctx context.Context, userID uuid.UUID, id int) error
}

type ListResponse struct {
	Measurements []Measurement `json:"measurements"`
	Total        int           `json:"total"`
}

type Handler struct {
	repo     measurementsRepo
	calendar *program.Calendar
}

func NewHandler(repo measurementsRepo, calendar *program.Calendar) *Handler {
	return &Handler{
		repo:     repo,
		calendar: calendar,
	}
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.add")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var m Measurement
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		log.Errorf("add measurement, unmarshal json params: %s", err)
		http.Error(w, "invalid measurement", http.StatusBadRequest)
		return
	}
	if err := m.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	today := h.calendar.Today()
	if m.MeasuredOn.IsZero() {
		m.MeasuredOn = today
	} else if m.MeasuredOn.After(today) {
		http.Error(w, "error, measurement date in the future", http.StatusBadRequest)
		return
	}
	m.CreatedAt = h.calendar.Now()

	added, err := h.repo.Add(ctx, session.UserID, m)
	if err != nil {
		log.Errorf("add measurement for user [%s]: %s", session.UserID, err)
		http.Error(w, "failed to add measurement", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.list")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	list, err := h.repo.List(ctx, session.UserID)
	if err != nil {
		log.Errorf("list measurements for user [%s]: %s", session.UserID, err)
		http.Error(w, "failed to get measurements", http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		list = []Measurement{}
	}

	pkg.WriteJSON(w, ListResponse{Measurements: list, Total: len(list)}, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.measurements.delete")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(ctx, session.UserID, id); err != nil {
		if errors.Is(err, ErrMeasurementNotFound) {
			http.Error(w, "measurement not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete measurement %d: %s", id, err)
		http.Error(w, "error, measurement not deleted, internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}
