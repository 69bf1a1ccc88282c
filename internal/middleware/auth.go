package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/warmachine/internal/session"
	"github.com/2beens/warmachine/internal/telemetry/tracing"
	"github.com/2beens/warmachine/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=middleware_mocks_test.go -package=middleware_test

type sessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*session.Session, error)
}

type AuthMiddlewareHandler struct {
	authenticator sessionAuthenticator
	cookies       *session.CookieManager
	allowedPaths  map[string]bool
	apiPrefix     string
}

func NewAuthMiddlewareHandler(
	authenticator sessionAuthenticator,
	cookies *session.CookieManager,
) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		authenticator: authenticator,
		cookies:       cookies,
		allowedPaths: map[string]bool{
			"/api/auth/register": true,
			"/api/auth/login":    true,
			"/api/auth/logout":   true,
			"/api/auth/me":       true,
			"/api/gallery":       true,
		},
		apiPrefix: "/api/",
	}
}

// pathIsAlwaysAllowed is true for the auth endpoints and everything outside
// the API (static frontend, uploaded files).
func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(path string) bool {
	if h.allowedPaths[path] {
		return true
	}
	return !strings.HasPrefix(path, h.apiPrefix)
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r.URL.Path) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			token, err := h.cookies.Read(r)
			if err != nil {
				if !errors.Is(err, session.ErrNoCookie) {
					log.Debugf("[bad cookie] [auth middleware] %s: %s", r.URL.Path, err)
				}
				log.Tracef("[missing session] [auth middleware] unauthorized => %s", r.URL.Path)
				pkg.WriteJSONError(w, "Unauthenticated", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-session")
				return
			}

			sess, err := h.authenticator.Authenticate(ctx, token)
			if err != nil {
				log.Tracef("[invalid session] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				pkg.WriteJSONError(w, "Unauthenticated", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "not-logged")
				span.RecordError(err)
				return
			}

			// sliding expiry: every authenticated request re-issues the cookie
			if err := h.cookies.Set(w, sess.Token); err != nil {
				log.Errorf("refresh session cookie: %s", err)
			}

			span.SetAttributes(attribute.Int64("user.id", sess.UserID))
			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(session.ContextWithSession(ctx, sess)))
		})
	}
}
