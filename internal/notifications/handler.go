package notifications

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/agpcoach/agp/internal/auth"
	"github.com/agpcoach/agp/internal/telemetry/metrics"
	"github.com/agpcoach/agp/internal/telemetry/tracing"
	"github.com/agpcoach/agp/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=notifications_test

type notificationsService interface {
	List(ctx context.Context, userID uuid.UUID) ([]Notification, error)
	MarkRead(ctx context.Context, userID uuid.UUID, id int) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
}

type subscriber interface {
	Subscribe(ctx context.Context, userID uuid.UUID) (<-chan *redis.Message, func() error, error)
}

type ListResponse struct {
	Notifications []Notification `json:"notifications"`
	Unread        int            `json:"unread"`
}

type Handler struct {
	service         notificationsService
	subscriber      subscriber
	metrics         *metrics.Manager
	heartbeatPeriod time.Duration
}

func NewHandler(
	service notificationsService,
	subscriber subscriber,
	metrics *metrics.Manager,
) *Handler {
	return &Handler{
		service:         service,
		subscriber:      subscriber,
		metrics:         metrics,
		heartbeatPeriod: 25 * time.Second,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.list")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	list, err := h.service.List(ctx, session.UserID)
	if err != nil {
		log.Errorf("list notifications: %s", err)
		http.Error(w, "failed to get notifications", http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		list = []Notification{}
	}

	unread := 0
	for _, n := range list {
		if !n.Read {
			unread++
		}
	}

	pkg.WriteJSON(w, ListResponse{Notifications: list, Unread: unread}, http.StatusOK)
}

func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.markread")
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

	if err := h.service.MarkRead(ctx, session.UserID, id); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			http.Error(w, "notification not found", http.StatusNotFound)
			return
		}
		log.Errorf("mark notification read: %s", err)
		http.Error(w, "failed to mark notification read", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("read:%d", id))
}

func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.markallread")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	marked, err := h.service.MarkAllRead(ctx, session.UserID)
	if err != nil {
		log.Errorf("mark all notifications read: %s", err)
		http.Error(w, "failed to mark notifications read", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("read:%d", marked))
}

func (h *Handler) HandleUnread(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.notifications.unread")
	defer span.End()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	count, err := h.service.UnreadCount(ctx, session.UserID)
	if err != nil {
		log.Errorf("count unread notifications: %s", err)
		http.Error(w, "failed to count notifications", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, UnreadCount{Unread: count}, http.StatusOK)
}

// HandleStream relays the user's unread count as server-sent events until
// the client goes away.
func (h *Handler) HandleStream(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	messages, closeSub, err := h.subscriber.Subscribe(ctx, session.UserID)
	if err != nil {
		log.Errorf("notifications stream for user [%s]: %s", session.UserID, err)
		http.Error(w, "failed to open stream", http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := closeSub(); err != nil {
			log.Errorf("close notifications subscription for user [%s]: %s", session.UserID, err)
		}
	}()

	h.metrics.GaugeSSEClients.Inc()
	defer h.metrics.GaugeSSEClients.Dec()

	w.Header().Set("Content-Type", pkg.ContentType.EventStream)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// current count first, so the client does not wait for the next change
	if count, err := h.service.UnreadCount(ctx, session.UserID); err != nil {
		log.Errorf("initial unread count for user [%s]: %s", session.UserID, err)
	} else {
		writeEvent(w, fmt.Sprintf(`{"unread":%d}`, count))
	}
	flusher.Flush()

	heartbeat := time.NewTicker(h.heartbeatPeriod)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			writeEvent(w, msg.Payload)
			flusher.Flush()
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, data string) {
	if _, err := fmt.Fprintf(w, "event: unread\ndata: %s\n\n", data); err != nil {
		log.Debugf("write notifications event: %s", err)
	}
}
