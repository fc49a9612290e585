package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/internal/usecases/authenticating"
	"github.com/vfg2006/liveiq-reports/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(auth *mocks.MockAuthenticator)
		wantStatus int
		wantBody   string
	}{
		{
			name: "senha correta devolve token",
			body: `{"password":"segredo"}`,
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().Login("segredo").Return(&domain.LoginResponse{Token: "tok", ExpiresAt: "2024-01-01T12:00:00Z"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"token":"tok","created":false,"expires_at":"2024-01-01T12:00:00Z"}`,
		},
		{
			name: "senha errada",
			body: `{"password":"errada"}`,
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().Login("errada").Return(nil,
					authenticating.NewAuthError(authenticating.ErrInvalidPassword, apiErrors.ErrInvalidCredentials, ""))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "corpo inválido",
			body:       `{"password":`,
			setup:      func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			rec := serve(t, Authentication(auth), http.MethodPost, "/v1/login", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestResetConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockAuthenticator(ctrl)
	auth.EXPECT().ResetConfig("segredo").Return(&domain.ResetConfigResponse{Backup: "config.dat.20240101_120000.bak"}, nil)

	rec := serve(t, Authentication(auth), http.MethodPost, "/v1/config/reset", `{"password":"segredo"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"backup":"config.dat.20240101_120000.bak"}`, rec.Body.String())
}
