package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/agpcoach/agp/internal/accesscodes"
	"github.com/agpcoach/agp/internal/auth"
	"github.com/agpcoach/agp/internal/telemetry/tracing"
	"github.com/agpcoach/agp/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=account_test

type accountService interface {
	Signup(ctx context.Context, req SignupRequest) (*auth.Session, error)
	Login(ctx context.Context, req LoginRequest) (*auth.Session, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Handler struct {
	service accountService
}

func NewHandler(service accountService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.signup")
	defer span.End()

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("signup, unmarshal json params: %s", err)
		http.Error(w, "invalid signup request", http.StatusBadRequest)
		return
	}

	session, err := h.service.Signup(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSignup):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, accesscodes.ErrAccessCodeInvalid):
			http.Error(w, "invalid access code", http.StatusBadRequest)
		case errors.Is(err, ErrEmailTaken):
			http.Error(w, "email already registered", http.StatusConflict)
		default:
			log.Errorf("signup failed: %s", err)
			http.Error(w, "signup failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, TokenResponse{Token: session.Token}, http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.login")
	defer span.End()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("login, unmarshal json params: %s", err)
		http.Error(w, "invalid login request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "error, email or password empty", http.StatusBadRequest)
		return
	}

	session, err := h.service.Login(ctx, req)
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			http.Error(w, "wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login failed: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, TokenResponse{Token: session.Token}, http.StatusOK)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.logout")
	defer span.End()

	token := auth.TokenFromRequest(r)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	loggedOut, err := h.service.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout failed: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "no such session", http.StatusBadRequest)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}
