package session

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/warmachine/pkg"
)

const (
	sessionKeyPrefix = "warmachine-session||"
	tokensSetKey     = "warmachine-sessions"
)

type RedisStore struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewRedisStore(ttl time.Duration, redisClient *redis.Client) *RedisStore {
	return &RedisStore{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (s *RedisStore) Create(ctx context.Context, userID int64, createdAt time.Time) (*Session, error) {
	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return nil, err
	}

	sessionKey := sessionKeyPrefix + token
	if err := s.redisClient.Set(ctx, sessionKey, encodeValue(userID, createdAt), s.ttl).Err(); err != nil {
		return nil, err
	}

	// add token to the set of sessions
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return nil, err
	}

	return &Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Unix(createdAt.Unix(), 0),
	}, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	sessionKey := sessionKeyPrefix + token
	val, err := s.redisClient.Get(ctx, sessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	sess, err := decodeValue(token, val)
	if err != nil {
		return nil, err
	}

	// sliding expiry
	if err := s.redisClient.Expire(ctx, sessionKey, s.ttl).Err(); err != nil {
		log.Warnf("redis session store, refresh ttl: %s", err)
	}

	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return err
	}
	// remove token from the set of sessions
	return s.redisClient.SRem(ctx, tokensSetKey, token).Err()
}

// ScanAndClean drops tokens from the sessions set whose keys already expired.
func (s *RedisStore) ScanAndClean(ctx context.Context) {
	sessionTokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("!!! redis session store, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("=> redis session store, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> redis session store, scan and clean [%d sessions] start ...", len(sessionTokens))
	for _, token := range sessionTokens {
		exists, err := s.redisClient.Exists(ctx, sessionKeyPrefix+token).Result()
		if err != nil {
			log.Errorf("=> redis session store, scan and clean token: %s", err)
			continue
		}
		if exists > 0 {
			continue
		}
		if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> redis session store, clean token: %s", err)
		}
	}
}
