package middleware

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// LogRequest traces every incoming request. Silent unless the level is trace.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if log.IsLevelEnabled(log.TraceLevel) {
				log.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"ua":     r.Header.Get("User-Agent"),
				}).Trace("incoming request")
			}
			next.ServeHTTP(w, r)
		})
	}
}
