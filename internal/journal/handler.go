package journal

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=journal_test

type journalRepo interface {
	Add(ctx context.Context, userID uuid.UUID, e Entry) (*Entry, error)
	Count(ctx context.Context, userID uuid.UUID) (int, error)
	Page(ctx context.Context, userID uuid.UUID, page, size int) ([]Entry, error)
	Delete(ctx context.Context, userID uuid.UUID, id int) error
}

type Handler struct {
	repo     journalRepo
	calendar *program.Calendar
}

func NewHandler(repo journalRepo, calendar *program.Calendar) *Handler {
	return &Handler{
		repo:     repo,
		calendar: calendar,
	}
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.add")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var e Entry
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		log.Errorf("add journal entry, unmarshal json params: %s", err)
		http.Error(w, "invalid journal entry", http.StatusBadRequest)
		return
	}
	if err := e.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	today := h.calendar.Today()
	if e.WrittenOn.IsZero() {
		e.WrittenOn = today
	}
	if e.WrittenOn.After(today) {
		http.Error(w, "journal entry date in the future", http.StatusBadRequest)
		return
	}
	e.CreatedAt = h.calendar.Now()

	added, err := h.repo.Add(ctx, session.UserID, e)
	if err != nil {
		log.Errorf("add journal entry for user [%s]: %s", session.UserID, err)
		http.Error(w, "failed to add journal entry", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) HandleGetPage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.page")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		http.Error(w, "parse error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		http.Error(w, "parse error, parameter <size>", http.StatusBadRequest)
		return
	}
	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 || size > maxPageSize {
		http.Error(w, fmt.Sprintf("invalid size (has to be within 1..%d)", maxPageSize), http.StatusBadRequest)
		return
	}

	entries, err := h.repo.Page(ctx, session.UserID, page, size)
	if err != nil {
		log.Errorf("get journal page for user [%s]: %s", session.UserID, err)
		http.Error(w, "failed to get journal entries", http.StatusInternalServerError)
		return
	}
	if len(entries) == 0 {
		entries = []Entry{}
	}

	total, err := h.repo.Count(ctx, session.UserID)
	if err != nil {
		log.Errorf("count journal entries for user [%s]: %s", session.UserID, err)
		http.Error(w, "failed to get journal entries", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, PageResponse{Entries: entries, Total: total}, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.journal.delete")
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
		if errors.Is(err, ErrEntryNotFound) {
			http.Error(w, "journal entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete journal entry %d: %s", id, err)
		http.Error(w, "error, journal entry not deleted, internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}
