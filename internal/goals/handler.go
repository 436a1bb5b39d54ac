package goals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=goals_test

type goalsRepo interface {
	Add(ctx context.Context, userID uuid.UUID, g Goal) (*Goal, error)
	List(ctx context.Context, userID uuid.UUID) ([]Goal, error)
	SetAchieved(ctx context.Context, userID uuid.UUID, id int, achieved bool) error
	Delete(ctx context.Context, userID uuid.UUID, id int) error
}

type Handler struct {
	repo     goalsRepo
	calendar *program.Calendar
}

func NewHandler(repo goalsRepo, calendar *program.Calendar) *Handler {
	return &Handler{
		repo:     repo,
		calendar: calendar,
	}
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.add")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var g Goal
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		log.Errorf("add goal, unmarshal json params: %s", err)
		http.Error(w, "invalid goal", http.StatusBadRequest)
		return
	}
	if err := g.Validate(); err != nil {
		http.Error(w, "invalid goal title", http.StatusBadRequest)
		return
	}
	g.CreatedAt = h.calendar.Now()

	added, err := h.repo.Add(ctx, session.UserID, g)
	if err != nil {
		log.Errorf("add goal for user [%s]: %s", session.UserID, err)
		http.Error(w, "failed to add goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	goals, err := h.repo.List(ctx, session.UserID)
	if err != nil {
		log.Errorf("list goals for user [%s]: %s", session.UserID, err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	resp := ListResponse{Goals: goals}
	if len(resp.Goals) == 0 {
		resp.Goals = []Goal{}
	}
	for _, g := range goals {
		if g.Achieved {
			resp.Achieved++
		}
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

// HandleSetAchieved marks a goal achieved. An optional {"achieved": false}
// body reopens it.
func (h *Handler) HandleSetAchieved(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.achieved")
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

	achieved := true
	var req achievedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Achieved != nil {
		achieved = *req.Achieved
	}

	if err := h.repo.SetAchieved(ctx, session.UserID, id, achieved); err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("set goal %d achieved=%t: %s", id, achieved, err)
		http.Error(w, "failed to update goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("achieved:%d:%t", id, achieved))
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.delete")
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
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "goal not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete goal %d: %s", id, err)
		http.Error(w, "error, goal not deleted, internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}
