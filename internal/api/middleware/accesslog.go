package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// AccessLog логирует каждый HTTP запрос с кодом ответа и длительностью.
// Ставится после RequestID, чтобы в логах был идентификатор запроса.
func AccessLog(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			requestID, _ := GetRequestID(r.Context())
			log.Info("%s %s status=%d duration=%s request_id=%s",
				r.Method, r.URL.Path, recorder.status, time.Since(start), requestID)
		})
	}
}
