package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/warmachine/internal/gymstats"
	"github.com/2beens/warmachine/internal/session"
	"github.com/2beens/warmachine/internal/telemetry/tracing"
	"github.com/2beens/warmachine/internal/users"
	"github.com/2beens/warmachine/pkg"
)

type authService interface {
	Register(ctx context.Context, username, password string) (int64, *session.Session, error)
	Login(ctx context.Context, username, password string) (*users.User, *session.Session, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*users.User, *session.Session, error)
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

type LoginResponse struct {
	Message string           `json:"message"`
	User    users.PublicUser `json:"user"`
}

type MeResponse struct {
	LoggedIn bool        `json:"loggedIn"`
	User     *users.User `json:"user,omitempty"`
}

type Handler struct {
	service authService
	cookies *session.CookieManager
}

func NewHandler(service authService, cookies *session.CookieManager) *Handler {
	return &Handler{
		service: service,
		cookies: cookies,
	}
}

func decodeCredentials(r *http.Request) (Credentials, error) {
	var creds Credentials
	err := json.NewDecoder(r.Body).Decode(&creds)
	return creds, err
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.register")
	defer span.End()

	creds, err := decodeCredentials(r)
	if err != nil {
		pkg.WriteJSONError(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	userID, sess, err := h.service.Register(ctx, creds.Username, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateUsername):
			pkg.WriteJSONError(w, "Username already exists", http.StatusBadRequest)
		case gymstats.IsValidationError(err):
			pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("register user: %s", err)
			pkg.WriteJSONError(w, "Registration failed", http.StatusInternalServerError)
		}
		return
	}

	if err := h.cookies.Set(w, sess.Token); err != nil {
		log.Errorf("set session cookie: %s", err)
	}

	pkg.WriteJSON(w, RegisterResponse{
		Message: "User registered",
		UserID:  userID,
	}, http.StatusCreated)
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.login")
	defer span.End()

	creds, err := decodeCredentials(r)
	if err != nil {
		pkg.WriteJSONError(w, "Invalid payload", http.StatusBadRequest)
		return
	}

	user, sess, err := h.service.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			pkg.WriteJSONError(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("login: %s", err)
		pkg.WriteJSONError(w, "Login failed", http.StatusInternalServerError)
		return
	}

	if err := h.cookies.Set(w, sess.Token); err != nil {
		log.Errorf("set session cookie: %s", err)
	}

	pkg.WriteJSONOK(w, LoginResponse{
		Message: "Login successful",
		User:    user.Public(),
	})
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	token, _ := h.cookies.Read(r)
	if err := h.service.Logout(ctx, token); err != nil {
		log.Errorf("logout: %s", err)
	}
	h.cookies.Clear(w)

	pkg.WriteMessage(w, "Logged out", http.StatusOK)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.me")
	defer span.End()

	token, err := h.cookies.Read(r)
	if err != nil {
		pkg.WriteJSONOK(w, MeResponse{LoggedIn: false})
		return
	}

	user, sess, err := h.service.CurrentUser(ctx, token)
	if err != nil {
		if !errors.Is(err, ErrUnauthenticated) {
			log.Errorf("current user: %s", err)
		}
		pkg.WriteJSONOK(w, MeResponse{LoggedIn: false})
		return
	}

	// sliding expiry
	if err := h.cookies.Set(w, sess.Token); err != nil {
		log.Errorf("refresh session cookie: %s", err)
	}

	pkg.WriteJSONOK(w, MeResponse{
		LoggedIn: true,
		User:     user,
	})
}
