package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/internal/usecases/mailing"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
)

// GetSMTP devolve as configurações sem a senha
func GetSMTP(service mailing.Mailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := service.GetSMTP()
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrStorageOperation)
			return
		}

		writeJSON(w, http.StatusOK, settings.View())
	}
}

// SaveSMTP grava as configurações; senha vazia mantém a atual
func SaveSMTP(service mailing.Mailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var settings domain.SMTPSettings
		if err := decodeBody(r, &settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SaveSMTP(settings); err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrStorageOperation)
			return
		}

		saved, err := service.GetSMTP()
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrStorageOperation)
			return
		}

		writeJSON(w, http.StatusOK, saved.View())
	}
}

// TestSMTP testa as configurações enviadas no corpo, ou as salvas quando o corpo vem vazio
func TestSMTP(service mailing.Mailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TestSMTP")

		var settings *domain.SMTPSettings
		if err := decodeBody(r, &settings); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.TestConnection(settings); err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrCommunication)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Conexão SMTP realizada com sucesso",
		})
	}
}
