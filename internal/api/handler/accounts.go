package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/internal/usecases/account"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
)

type WorkersRequest struct {
	MaxWorkers int `json:"max_workers"`
}

func ListAccounts(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accounts, err := service.ListAccounts()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar contas")
			apiErrors.WriteFromError(w, err, apiErrors.ErrStorageOperation)
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	}
}

// CreateAccount valida as credenciais na LiveIQ antes de salvar a conta
func CreateAccount(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateAccount")

		var req domain.AccountRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		created, err := service.CreateAccount(r.Context(), &req)
		if err != nil {
			logrus.WithError(err).WithField("account", req.Name).Warn("Conta não criada")
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateAccount(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateAccount")

		name := httprouter.ParamsFromContext(r.Context()).ByName("name")
		if name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da conta não fornecido", nil)
			return
		}

		var req domain.AccountRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		updated, err := service.UpdateAccount(r.Context(), name, &req)
		if err != nil {
			logrus.WithError(err).WithField("account", name).Warn("Conta não atualizada")
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteAccount(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		if err := service.DeleteAccount(name); err != nil {
			logrus.WithError(err).WithField("account", name).Warn("Conta não removida")
			apiErrors.WriteFromError(w, err, apiErrors.ErrStorageOperation)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// CheckAccounts verifica todas as contas agora e devolve o resultado de cada uma
func CheckAccounts(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CheckAccounts")

		results, err := service.CheckAll(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao verificar contas")
			apiErrors.WriteFromError(w, err, apiErrors.ErrInternalServer)
			return
		}

		writeJSON(w, http.StatusOK, results)
	}
}

func StoreTree(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tree, err := service.StoreTree()
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar árvore de lojas")
			apiErrors.WriteFromError(w, err, apiErrors.ErrStorageOperation)
			return
		}

		writeJSON(w, http.StatusOK, tree)
	}
}

func SaveSelection(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var selection domain.Selection
		if err := decodeBody(r, &selection); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SaveSelection(selection); err != nil {
			logrus.WithError(err).Error("Erro ao salvar seleção")
			apiErrors.WriteFromError(w, err, apiErrors.ErrStorageOperation)
			return
		}

		writeJSON(w, http.StatusOK, selection)
	}
}

func GetWorkers(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := service.GetMaxWorkers()
		if err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrStorageOperation)
			return
		}

		writeJSON(w, http.StatusOK, WorkersRequest{MaxWorkers: n})
	}
}

func SetWorkers(service account.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WorkersRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SetMaxWorkers(req.MaxWorkers); err != nil {
			apiErrors.WriteFromError(w, err, apiErrors.ErrStorageOperation)
			return
		}

		writeJSON(w, http.StatusOK, req)
	}
}
