package middleware

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
)

// SessionFromContext devolve as claims colocadas pelo AuthMiddleware
func SessionFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeySession).(*domain.Claims)
	return claims, ok && claims != nil
}

// RequireSession restringe a rota a requisições com sessão aberta
func RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := SessionFromContext(r.Context()); !ok {
				logrus.WithField("path", r.URL.Path).Warning("Tentativa de acesso sem sessão")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão não autenticada", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
