package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/internal/usecases/authenticating"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
)

// Login abre a configuração cifrada com a senha e devolve o token da sessão.
// Na primeira execução o arquivo é criado com a senha informada.
func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.Login(req.Password)
		if err != nil {
			if !authenticating.IsCredentialsError(err) {
				logrus.WithError(err).Error("Erro ao abrir a configuração")
			}
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// ResetConfig guarda o arquivo atual como backup e recria a configuração padrão
func ResetConfig(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ResetConfig")

		var req domain.ResetConfigRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		resp, err := service.ResetConfig(req.Password)
		if err != nil {
			logrus.WithError(err).Error("Erro ao redefinir a configuração")
			apiErrors.WriteFromError(w, err, apiErrors.ErrStorageOperation)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
