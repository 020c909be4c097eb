package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/earnings-report-api/internal/domain"
	"github.com/vfg2006/earnings-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/earnings-report-api/pkg/apiErrors"
)

type contextKey string

// ContextKeyClaims guarda as claims do token validado no contexto da
// requisição.
const ContextKeyClaims contextKey = "claims"

// Rotas públicas, dispensadas de token. A leitura de relatórios e dados é
// aberta para o painel; apenas as mutações exigem autenticação.
func isPublicRoute(r *http.Request) bool {
	path := r.URL.Path

	if path == "/healthcheck" || path == "/v1/login" {
		return true
	}

	if r.Method != http.MethodGet {
		return false
	}

	return strings.HasPrefix(path, "/api/data/") ||
		strings.HasPrefix(path, "/v1/reports/") ||
		strings.HasPrefix(path, "/v1/exclusions/")
}

// AuthMiddleware valida o token Bearer das rotas protegidas e injeta as
// claims no contexto.
func AuthMiddleware(auth authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRoute(r) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de autenticação ausente", nil)
				return
			}

			claims, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				code := apiErrors.ErrInvalidToken
				if err == authenticating.ErrExpiredToken {
					code = apiErrors.ErrExpiredToken
				}

				apiErrors.WriteError(w, code, err.Error(), nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext devolve as claims injetadas pelo AuthMiddleware.
func ClaimsFromContext(ctx context.Context) *domain.Claims {
	claims, _ := ctx.Value(ContextKeyClaims).(*domain.Claims)
	return claims
}
