package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/internal/usecases/mailing"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
)

func ListRecipients(service mailing.Mailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		emails, err := service.ListRecipients()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar destinatários")
			apiErrors.WriteFromError(w, err, apiErrors.ErrStorageOperation)
			return
		}

		writeJSON(w, http.StatusOK, emails)
	}
}

func AddRecipient(service mailing.Mailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.RecipientRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.AddRecipient(req.Email); err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrStorageOperation)
			return
		}

		writeJSON(w, http.StatusCreated, req)
	}
}

func UpdateRecipient(service mailing.Mailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		old := httprouter.ParamsFromContext(r.Context()).ByName("email")

		var req domain.RecipientRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.UpdateRecipient(old, req.Email); err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrStorageOperation)
			return
		}

		writeJSON(w, http.StatusOK, req)
	}
}

func DeleteRecipient(service mailing.Mailer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := httprouter.ParamsFromContext(r.Context()).ByName("email")

		if err := service.DeleteRecipient(email); err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrStorageOperation)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
