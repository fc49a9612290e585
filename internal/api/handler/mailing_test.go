package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/internal/usecases/mailing"
	"github.com/vfg2006/liveiq-reports/internal/usecases/mailing/mocks"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestRecipients(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setup      func(mailer *mocks.MockMailer)
		wantStatus int
	}{
		{
			name:   "lista",
			method: http.MethodGet,
			target: "/v1/recipients",
			setup: func(mailer *mocks.MockMailer) {
				mailer.EXPECT().ListRecipients().Return([]string{"a@b.com"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "adiciona",
			method: http.MethodPost,
			target: "/v1/recipients",
			body:   `{"email":"c@d.com"}`,
			setup: func(mailer *mocks.MockMailer) {
				mailer.EXPECT().AddRecipient("c@d.com").Return(nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "endereço inválido",
			method: http.MethodPost,
			target: "/v1/recipients",
			body:   `{"email":"invalido"}`,
			setup: func(mailer *mocks.MockMailer) {
				mailer.EXPECT().AddRecipient("invalido").
					Return(mailing.NewMailError(mailing.ErrInvalidEmail, apiErrors.ErrInvalidFormat, "invalido"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "duplicado",
			method: http.MethodPost,
			target: "/v1/recipients",
			body:   `{"email":"a@b.com"}`,
			setup: func(mailer *mocks.MockMailer) {
				mailer.EXPECT().AddRecipient("a@b.com").
					Return(mailing.NewMailError(mailing.ErrRecipientExists, apiErrors.ErrResourceConflict, ""))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "edita",
			method: http.MethodPut,
			target: "/v1/recipients/a@b.com",
			body:   `{"email":"x@y.com"}`,
			setup: func(mailer *mocks.MockMailer) {
				mailer.EXPECT().UpdateRecipient("a@b.com", "x@y.com").Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "remove",
			method: http.MethodDelete,
			target: "/v1/recipients/a@b.com",
			setup: func(mailer *mocks.MockMailer) {
				mailer.EXPECT().DeleteRecipient("a@b.com").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mailer := mocks.NewMockMailer(ctrl)
			tt.setup(mailer)

			rec := serve(t, Mailing(mailer), tt.method, tt.target, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSMTPSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)

	saved := domain.SMTPSettings{Server: "smtp.b.com", Port: 587, Username: "u", Password: "p", From: "r@b.com"}
	gomock.InOrder(
		mailer.EXPECT().SaveSMTP(domain.SMTPSettings{Server: "smtp.b.com", Port: 587, Username: "u", From: "r@b.com"}).Return(nil),
		mailer.EXPECT().GetSMTP().Return(saved, nil),
	)

	rec := serve(t, Mailing(mailer), http.MethodPut, "/v1/smtp",
		`{"server":"smtp.b.com","port":587,"username":"u","from":"r@b.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"server":"smtp.b.com","port":587,"username":"u","from":"r@b.com","has_password":true,"complete":true}`,
		rec.Body.String())
	assert.NotContains(t, rec.Body.String(), `"password"`)
}

func TestTestSMTP(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(mailer *mocks.MockMailer)
		wantStatus int
	}{
		{
			name: "usa as configurações salvas",
			setup: func(mailer *mocks.MockMailer) {
				mailer.EXPECT().TestConnection(gomock.Nil()).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "usa as configurações do corpo",
			body: `{"server":"smtp.b.com","port":465,"username":"u","password":"p","from":"r@b.com"}`,
			setup: func(mailer *mocks.MockMailer) {
				mailer.EXPECT().TestConnection(&domain.SMTPSettings{
					Server: "smtp.b.com", Port: 465, Username: "u", Password: "p", From: "r@b.com",
				}).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "falha de conexão",
			setup: func(mailer *mocks.MockMailer) {
				mailer.EXPECT().TestConnection(gomock.Nil()).
					Return(mailing.NewMailError(mailing.ErrSMTPConnection, apiErrors.ErrCommunication, "dial tcp: timeout"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mailer := mocks.NewMockMailer(ctrl)
			tt.setup(mailer)

			rec := serve(t, Mailing(mailer), http.MethodPost, "/v1/smtp/test", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
