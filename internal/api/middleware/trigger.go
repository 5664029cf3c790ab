package middleware

import "net/http"

// IngestTrigger routes any request whose query parameter param equals value
// to ingest, whatever its path or method. Other requests pass through.
func IngestTrigger(param, value string, ingest http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get(param) == value {
				ingest.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
