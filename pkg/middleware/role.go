package middleware

import (
	"net/http"

	"github.com/vfg2006/earnings-report-api/internal/domain"
	"github.com/vfg2006/earnings-report-api/pkg/apiErrors"
)

// AdminOnly exige claims de administrador nas rotas de mutação.
func AdminOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil || claims.Role != domain.RoleAdmin {
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Acesso restrito ao administrador", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
