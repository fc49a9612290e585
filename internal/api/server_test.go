package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/liveiq-reports/internal/api/handler"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	accountmocks "github.com/vfg2006/liveiq-reports/internal/usecases/account/mocks"
	authmocks "github.com/vfg2006/liveiq-reports/internal/usecases/authenticating/mocks"
	"go.uber.org/mock/gomock"
)

func TestHandlerChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := authmocks.NewMockAuthenticator(ctrl)
	accounts := accountmocks.NewMockAccountService(ctrl)

	h := NewHandler(Services{Authenticator: auth, Accounts: accounts}, handler.CronJobServices{})

	t.Run("healthcheck sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rota protegida sem token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stores", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("login e rota protegida", func(t *testing.T) {
		auth.EXPECT().Login("segredo").Return(&domain.LoginResponse{Token: "tok"}, nil)
		auth.EXPECT().ValidateToken("tok").Return(&domain.Claims{SessionID: "s-1"}, nil)
		accounts.EXPECT().StoreTree().Return([]domain.AccountNode{
			{Name: "Conta A", Status: domain.AccountStatusOK, Selected: true, Stores: []domain.StoreNode{{StoreID: "25", Selected: true}}},
		}, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(`{"password":"segredo"}`)))
		assert.Equal(t, http.StatusOK, rec.Code)

		req := httptest.NewRequest(http.MethodGet, "/v1/stores", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"name":"Conta A","status":"OK","selected":true,"stores":[{"store_id":"25","selected":true}]}]`, rec.Body.String())
	})

	t.Run("rota desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/nada", nil)
		req.Header.Set("Authorization", "Bearer tok")
		auth.EXPECT().ValidateToken("tok").Return(&domain.Claims{SessionID: "s-1"}, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
