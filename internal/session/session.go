// Package session keeps the server side login sessions. A session binds an
// opaque random token (carried in an HTTP-only cookie) to a user id and
// expires after a sliding TTL.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const tokenLength = 35

var ErrSessionNotFound = errors.New("session not found")

type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
}

// Store is implemented by RedisStore and MemoryStore.
type Store interface {
	// Create starts a new session for the user.
	Create(ctx context.Context, userID int64, createdAt time.Time) (*Session, error)
	// Get returns the live session and extends its TTL.
	Get(ctx context.Context, token string) (*Session, error)
	// Delete removes the session; deleting a missing session is not an error.
	Delete(ctx context.Context, token string) error
}

func encodeValue(userID int64, createdAt time.Time) string {
	return fmt.Sprintf("%d|%d", userID, createdAt.Unix())
}

func decodeValue(token, value string) (*Session, error) {
	uidStr, createdStr, ok := strings.Cut(value, "|")
	if !ok {
		return nil, fmt.Errorf("malformed session value: %q", value)
	}
	uid, err := strconv.ParseInt(uidStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse session user id: %w", err)
	}
	createdUnix, err := strconv.ParseInt(createdStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse session created at: %w", err)
	}
	return &Session{
		Token:     token,
		UserID:    uid,
		CreatedAt: time.Unix(createdUnix, 0),
	}, nil
}
