package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// DrainAndCloseRequest reads what the handler left of the request body, up to maxDrainBytes,
// and closes it. Bodies with more left over are closed without draining, so an abandoned
// upload cannot keep the connection busy.
func DrainAndCloseRequest(maxDrainBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			drained, err := io.CopyN(io.Discard, r.Body, maxDrainBytes+1)
			if drained > maxDrainBytes {
				log.Tracef("request %s %s: body not drained, over %d bytes left", r.Method, r.URL.Path, maxDrainBytes)
			} else if err != nil && err != io.EOF {
				log.Tracef("request %s %s: drain body: %s", r.Method, r.URL.Path, err)
			}
			if err := r.Body.Close(); err != nil {
				log.Tracef("request %s %s: close body: %s", r.Method, r.URL.Path, err)
			}
		})
	}
}
