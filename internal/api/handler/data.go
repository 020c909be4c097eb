package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/earnings-report-api/infrastructure/repository"
	"github.com/vfg2006/earnings-report-api/pkg/apiErrors"
)

// SetDataRequest é o envelope de escrita do armazenamento chave-valor.
type SetDataRequest struct {
	Value json.RawMessage `json:"value"`
}

// GetData devolve o valor bruto de uma chave de configuração. Chave ausente
// responde valor nulo, não erro.
func GetData(store repository.ConfigStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := httprouter.ParamsFromContext(r.Context()).ByName("key")

		value, err := store.Get(key)
		if err != nil {
			logrus.WithError(err).WithField("key", key).Error("Erro ao ler chave de configuração")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao ler dados", nil)
			return
		}

		if value == nil {
			value = json.RawMessage("null")
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]json.RawMessage{
			"value": value,
		})
	}
}

// SetData grava o valor de uma chave de configuração, substituindo o anterior
// por completo.
func SetData(store repository.ConfigStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := httprouter.ParamsFromContext(r.Context()).ByName("key")

		var req SetDataRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if len(req.Value) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo value não informado", nil)
			return
		}

		if err := store.Put(key, req.Value); err != nil {
			logrus.WithError(err).WithField("key", key).Error("Erro ao gravar chave de configuração")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{
			"success": true,
		})
	}
}

// DeleteData remove uma chave de configuração. Remover chave inexistente
// também responde sucesso.
func DeleteData(store repository.ConfigStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := httprouter.ParamsFromContext(r.Context()).ByName("key")

		if err := store.Delete(key); err != nil {
			logrus.WithError(err).WithField("key", key).Error("Erro ao remover chave de configuração")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{
			"success": true,
		})
	}
}
