package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/warmachine/internal/gymstats"
	"github.com/2beens/warmachine/internal/session"
	"github.com/2beens/warmachine/internal/telemetry/metrics"
	"github.com/2beens/warmachine/internal/telemetry/tracing"
	"github.com/2beens/warmachine/internal/users"
	"github.com/2beens/warmachine/pkg"
)

var (
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrInvalidCredentials covers both unknown user and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

const maxUsernameLength = 64

type usersRepo interface {
	Create(ctx context.Context, username, passwordHash string) (int64, error)
	GetByUsername(ctx context.Context, username string) (*users.User, error)
	GetByID(ctx context.Context, id int64) (*users.User, error)
}

type Service struct {
	users          usersRepo
	sessions       session.Store
	bcryptCost     int
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(
	usersRepo usersRepo,
	sessions session.Store,
	bcryptCost int,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		users:          usersRepo,
		sessions:       sessions,
		bcryptCost:     bcryptCost,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func validateCredentials(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", &gymstats.ValidationError{Field: "username", Reason: "required"}
	}
	if len(username) > maxUsernameLength {
		return "", &gymstats.ValidationError{Field: "username", Reason: "too long"}
	}
	if password == "" {
		return "", &gymstats.ValidationError{Field: "password", Reason: "required"}
	}
	return username, nil
}

// Register creates the user and logs them in.
func (s *Service) Register(ctx context.Context, username, password string) (_ int64, _ *session.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.register")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	username, err = validateCredentials(username, password)
	if err != nil {
		return 0, nil, err
	}

	hash, err := pkg.HashPassword(password, s.bcryptCost)
	if err != nil {
		return 0, nil, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.users.Create(ctx, username, hash)
	if err != nil {
		if errors.Is(err, users.ErrUsernameTaken) {
			return 0, nil, ErrDuplicateUsername
		}
		return 0, nil, fmt.Errorf("create user: %w", err)
	}
	span.SetAttributes(attribute.Int64("user.id", userID))

	sess, err := s.sessions.Create(ctx, userID, s.now())
	if err != nil {
		return 0, nil, fmt.Errorf("create session: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterRegistrations.Inc()
	}
	log.Debugf("new user registered: %d", userID)

	return userID, sess, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (_ *users.User, _ *session.Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			s.countLogin("invalid_credentials")
			return nil, nil, ErrInvalidCredentials
		}
		s.countLogin("error")
		return nil, nil, fmt.Errorf("get user: %w", err)
	}

	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		s.countLogin("invalid_credentials")
		return nil, nil, ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, user.ID, s.now())
	if err != nil {
		s.countLogin("error")
		return nil, nil, fmt.Errorf("create session: %w", err)
	}

	s.countLogin("ok")
	span.SetAttributes(attribute.Int64("user.id", user.ID))

	return user, sess, nil
}

func (s *Service) countLogin(result string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterLogins.WithLabelValues(result).Inc()
	}
}

// Logout destroys the session; an empty or unknown token is a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves the token to a live session, extending it.
func (s *Service) Authenticate(ctx context.Context, token string) (*session.Session, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return sess, nil
}

// CurrentUser returns the full profile of the session user.
func (s *Service) CurrentUser(ctx context.Context, token string) (*users.User, *session.Session, error) {
	sess, err := s.Authenticate(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	user, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, nil, ErrUnauthenticated
		}
		return nil, nil, err
	}
	return user, sess, nil
}
