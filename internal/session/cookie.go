package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	log "github.com/sirupsen/logrus"
)

const CookieName = "warmachine_session"

var ErrNoCookie = errors.New("no session cookie")

// CookieManager signs the session token into an HTTP-only cookie.
type CookieManager struct {
	codec  *securecookie.SecureCookie
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

// NewCookieManager creates the manager. An empty secret means a random
// one is generated, and cookies won't survive a restart.
func NewCookieManager(secret string, ttl time.Duration, secure bool) *CookieManager {
	hashKey := []byte(secret)
	if secret == "" {
		log.Warnln("session secret not set, using a random key; sessions will not survive restarts")
		hashKey = securecookie.GenerateRandomKey(64)
	}

	codec := securecookie.New(hashKey, nil)
	codec.MaxAge(int(ttl / time.Second))

	return &CookieManager{
		codec:  codec,
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}
}

// Set writes (or refreshes) the session cookie.
func (cm *CookieManager) Set(w http.ResponseWriter, token string) error {
	encoded, err := cm.codec.Encode(CookieName, token)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    encoded,
		Path:     "/",
		Expires:  cm.now().Add(cm.ttl),
		MaxAge:   int(cm.ttl / time.Second),
		HttpOnly: true,
		Secure:   cm.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read returns the session token carried by the request, if any.
func (cm *CookieManager) Read(r *http.Request) (string, error) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", ErrNoCookie
	}
	var token string
	if err := cm.codec.Decode(CookieName, c.Value, &token); err != nil {
		return "", fmt.Errorf("decode session cookie: %w", err)
	}
	return token, nil
}

func (cm *CookieManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cm.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
