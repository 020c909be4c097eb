package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/earnings-report-api/infrastructure/repository"
	"github.com/vfg2006/earnings-report-api/internal/domain"
	"github.com/vfg2006/earnings-report-api/internal/usecases/excluding"
	"github.com/vfg2006/earnings-report-api/pkg/apiErrors"
)

// GetStoredReport devolve um relatório persistido, reaplicando o conjunto de
// exclusão vigente: uma entidade excluída depois da última sincronização some
// da resposta antes mesmo do próximo cron.
func GetStoredReport(
	store repository.ConfigStore,
	exclusions excluding.Service,
	key string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report := &domain.StoredReport{}

		found, err := store.GetInto(key, report)
		if err != nil {
			logrus.WithError(err).WithField("key", key).Error("Erro ao ler relatório persistido")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao ler relatório", nil)
			return
		}

		if !found {
			apiErrors.WriteError(w, apiErrors.ErrReportNotFound, "Relatório ainda não gerado", nil)
			return
		}

		excluded, err := exclusions.CurrentSet(time.Now())
		if err != nil {
			logrus.WithError(err).Warn("Erro ao resolver exclusões, devolvendo relatório sem filtro")
			excluded = map[string]bool{}
		}

		report.Facebook = excluding.ActiveEntities(report.Facebook, excluded)
		report.YouTube = excluding.ActiveEntities(report.YouTube, excluded)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}
