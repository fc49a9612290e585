package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/internal/usecases/authenticating"
	"github.com/vfg2006/liveiq-reports/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(auth *mocks.MockAuthenticator)
		wantStatus int
		wantCode   string
		wantNext   bool
	}{
		{
			name:       "rota pública",
			path:       "/v1/login",
			setup:      func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "sem cabeçalho",
			path:       "/v1/accounts",
			setup:      func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "sem bearer",
			path:       "/v1/accounts",
			header:     "Basic abc",
			setup:      func(auth *mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token expirado",
			path:   "/v1/accounts",
			header: "Bearer velho",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("velho").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrExpiredToken,
		},
		{
			name:   "configuração bloqueada",
			path:   "/v1/accounts",
			header: "Bearer tok",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("tok").
					Return(nil, authenticating.NewAuthError(authenticating.ErrConfigLocked, apiErrors.ErrConfigLocked, ""))
			},
			wantStatus: http.StatusLocked,
			wantCode:   apiErrors.ErrConfigLocked,
		},
		{
			name:   "token válido",
			path:   "/v1/accounts",
			header: "Bearer tok",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("tok").Return(&domain.Claims{SessionID: "s-1"}, nil)
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, called)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestRequireSession(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := SessionFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "s-1", claims.SessionID)
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	RequireSession()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/stores", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/v1/stores", nil)
	req = req.WithContext(context.WithValue(req.Context(), ContextKeySession, &domain.Claims{SessionID: "s-1"}))
	rec = httptest.NewRecorder()
	RequireSession()(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/accounts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	Cors()(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/accounts", nil)
	req.Header.Set("Origin", "https://outro.site")
	rec = httptest.NewRecorder()
	Cors()(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
