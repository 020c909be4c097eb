package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/earnings-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/earnings-report-api/pkg/apiErrors"
)

type LoginRequest struct {
	Password string `json:"password"`
}

// Login valida a senha de administrador do painel e devolve o token de acesso.
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Senha não informada", nil)
			return
		}

		token, err := service.Login(req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"token": token,
		})
	}
}

func handleLoginError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
	case errors.Is(err, authenticating.ErrPasswordNotConfigured):
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Autenticação não configurada", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao realizar login", nil)
	}
}
