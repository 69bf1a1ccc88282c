package session

import (
	"context"
	"errors"
	"time"

	"github.com/coocood/freecache"

	"github.com/2beens/warmachine/pkg"
)

// MemoryStore keeps sessions in process. Sessions are lost on restart,
// and the store must not be shared between instances.
type MemoryStore struct {
	cache *freecache.Cache
	ttl   time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

// NewMemoryStore creates a store of sizeBytes (freecache minimum is 512KB).
func NewMemoryStore(sizeBytes int, ttl time.Duration) *MemoryStore {
	return newMemoryStore(freecache.NewCache(sizeBytes), ttl)
}

func newMemoryStore(cache *freecache.Cache, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache:          cache,
		ttl:            ttl,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (s *MemoryStore) expireSeconds() int {
	return int(s.ttl / time.Second)
}

func (s *MemoryStore) Create(_ context.Context, userID int64, createdAt time.Time) (*Session, error) {
	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set([]byte(token), []byte(encodeValue(userID, createdAt)), s.expireSeconds()); err != nil {
		return nil, err
	}
	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Unix(createdAt.Unix(), 0),
	}, nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	val, err := s.cache.Get([]byte(token))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	sess, err := decodeValue(token, string(val))
	if err != nil {
		return nil, err
	}

	// sliding expiry
	if err := s.cache.Touch([]byte(token), s.expireSeconds()); err != nil && !errors.Is(err, freecache.ErrNotFound) {
		return nil, err
	}

	return sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.cache.Del([]byte(token))
	return nil
}

// Count returns the number of live sessions held in memory.
func (s *MemoryStore) Count() int64 {
	return s.cache.EntryCount()
}
