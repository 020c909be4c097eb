package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/earnings-report-api/internal/usecases/excluding"
	"github.com/vfg2006/earnings-report-api/pkg/apiErrors"
)

type ToggleExclusionRequest struct {
	EntityID string `json:"entityId"`
}

type ExclusionResponse struct {
	Period   string   `json:"period"`
	Excluded []string `json:"excludedPageIds"`
}

// GetExclusions lista as entidades excluídas de um período ("September 2026").
func GetExclusions(service excluding.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := httprouter.ParamsFromContext(r.Context()).ByName("period")

		ids, err := service.ListForPeriod(period)
		if err != nil {
			logrus.WithError(err).WithField("period", period).Error("Erro ao listar exclusões")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar exclusões", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ExclusionResponse{
			Period:   period,
			Excluded: ids,
		})
	}
}

// ToggleExclusion alterna a exclusão de uma entidade no período informado e
// devolve o conjunto resultante.
func ToggleExclusion(service excluding.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period := httprouter.ParamsFromContext(r.Context()).ByName("period")

		var req ToggleExclusionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.EntityID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo entityId não informado", nil)
			return
		}

		ids, err := service.Toggle(period, req.EntityID)
		if err != nil {
			logrus.WithError(err).WithField("period", period).Error("Erro ao alternar exclusão")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao alternar exclusão", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ExclusionResponse{
			Period:   period,
			Excluded: ids,
		})
	}
}
