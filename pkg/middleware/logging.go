package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/earnings-report-api/pkg/log"
)

// statusRecorder captura o status escrito pelo handler para o log de saída.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LogPanicMiddleware recupera panics dos handlers e converte em resposta 500.
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.L.WithFields(log.Fields{
						"panic": rec,
						"path":  r.URL.Path,
					}).Error("Panic recuperado durante o atendimento da requisição")

					http.Error(w, "internal server error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// LoggingMiddleware injeta um ID de correlação no contexto da requisição e
// registra entrada e saída com a duração do atendimento.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())

			logger := log.L.WithFields(log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
			})

			logger.Debug("Requisição recebida")

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(recorder, r.WithContext(ctx))

			logger.WithFields(log.Fields{
				"status":   recorder.status,
				"duration": time.Since(start).String(),
			}).Info("Requisição atendida")
		})
	}
}
