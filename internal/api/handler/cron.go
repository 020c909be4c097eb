package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/earnings-report-api/internal/scheduler"
	"github.com/vfg2006/earnings-report-api/pkg/apiErrors"
)

// CronJobServices contém os serviços de cron executáveis manualmente.
type CronJobServices struct {
	EarningsSyncService *scheduler.EarningsSyncService
}

// RunCronJob dispara manualmente a sincronização de faturamento.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.EarningsSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		runID, started := services.EarningsSyncService.TriggerManualSync()
		if !started {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]any{
				"started": false,
				"message": "Sincronização já em andamento",
			})
			return
		}

		logrus.WithField("runId", runID).Info("Sincronização de faturamento disparada manualmente")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"started": true,
			"runId":   runID,
		})
	}
}

// GetCronStatus devolve o estado atual da sincronização agendada.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.EarningsSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(services.EarningsSyncService.GetStatus())
	}
}
