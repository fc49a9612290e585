package mailing

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liveiq-reports/infrastructure/repository"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/internal/presenter"
	"github.com/vfg2006/liveiq-reports/internal/usecases/exporting"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
	"github.com/vfg2006/liveiq-reports/pkg/log"
	"gopkg.in/gomail.v2"
)

var (
	ErrInvalidEmail      = errors.New("endereço de e-mail inválido")
	ErrRecipientExists   = errors.New("destinatário já cadastrado")
	ErrRecipientNotFound = errors.New("destinatário não encontrado")
	ErrNoRecipients      = errors.New("nenhum destinatário informado")
	ErrSMTPNotConfigured = errors.New("configurações SMTP incompletas")
	ErrInvalidSMTPPort   = errors.New("porta SMTP inválida")
	ErrMissingSMTPFields = errors.New("servidor, porta, usuário e senha são obrigatórios para o teste")
	ErrSMTPConnection    = errors.New("falha ao conectar ou autenticar no servidor SMTP")
	ErrDeliveryFailed    = errors.New("falha ao enviar e-mail")
	ErrStorageOperation  = errors.New("falha ao ler ou gravar a configuração")
)

// MailError carrega o código usado pela API
type MailError struct {
	Err     error
	Code    string
	Details string
}

func (e *MailError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MailError) Unwrap() error {
	return e.Err
}

func (e *MailError) ErrorCode() string {
	return e.Code
}

func NewMailError(err error, code string, details string) *MailError {
	return &MailError{Err: err, Code: code, Details: details}
}

type Mailer interface {
	ListRecipients() ([]string, error)
	AddRecipient(email string) error
	UpdateRecipient(old, email string) error
	DeleteRecipient(email string) error

	GetSMTP() (domain.SMTPSettings, error)
	SaveSMTP(settings domain.SMTPSettings) error
	TestConnection(settings *domain.SMTPSettings) error

	SendReport(report *domain.Report, format presenter.Format, recipients []string) (*domain.SendReportResponse, error)
	Mailto(report *domain.Report, format presenter.Format, recipients []string) (*domain.MailtoResponse, error)
}

type Service struct {
	recipientRepository   repository.RecipientRepository
	preferencesRepository repository.PreferencesRepository
	exporter              exporting.Exporter
	sender                Sender
	errorLog              *log.ErrorLog
}

func NewService(
	recipientRepository repository.RecipientRepository,
	preferencesRepository repository.PreferencesRepository,
	exporter exporting.Exporter,
	sender Sender,
	errorLog *log.ErrorLog,
) *Service {
	return &Service{
		recipientRepository:   recipientRepository,
		preferencesRepository: preferencesRepository,
		exporter:              exporter,
		sender:                sender,
		errorLog:              errorLog,
	}
}

func (s *Service) ListRecipients() ([]string, error) {
	emails, err := s.recipientRepository.ListRecipients()
	if err != nil {
		return nil, NewMailError(ErrStorageOperation, apiErrors.ErrStorageOperation, "")
	}
	return emails, nil
}

func (s *Service) AddRecipient(email string) error {
	email, err := normalizeAddress(email)
	if err != nil {
		return err
	}
	return recipientError(s.recipientRepository.AddRecipient(email))
}

func (s *Service) UpdateRecipient(old, email string) error {
	email, err := normalizeAddress(email)
	if err != nil {
		return err
	}
	return recipientError(s.recipientRepository.UpdateRecipient(strings.TrimSpace(old), email))
}

func (s *Service) DeleteRecipient(email string) error {
	return recipientError(s.recipientRepository.DeleteRecipient(strings.TrimSpace(email)))
}

func (s *Service) GetSMTP() (domain.SMTPSettings, error) {
	settings, err := s.preferencesRepository.GetSMTP()
	if err != nil {
		return settings, NewMailError(ErrStorageOperation, apiErrors.ErrStorageOperation, "")
	}
	return settings, nil
}

// SaveSMTP grava as configurações. Senha vazia mantém a senha atual.
func (s *Service) SaveSMTP(settings domain.SMTPSettings) error {
	settings = trimSMTP(settings)
	if settings.Port < 0 || settings.Port > 65535 {
		return NewMailError(ErrInvalidSMTPPort, apiErrors.ErrInvalidRequest, fmt.Sprint(settings.Port))
	}

	if settings.Password == "" {
		current, err := s.preferencesRepository.GetSMTP()
		if err != nil {
			return NewMailError(ErrStorageOperation, apiErrors.ErrStorageOperation, "")
		}
		settings.Password = current.Password
	}

	if err := s.preferencesRepository.SaveSMTP(settings); err != nil {
		return NewMailError(ErrStorageOperation, apiErrors.ErrStorageOperation, "")
	}

	logrus.WithFields(logrus.Fields{
		"server":   settings.Server,
		"port":     settings.Port,
		"complete": settings.Complete(),
	}).Info("Configurações SMTP atualizadas")

	return nil
}

// TestConnection conecta e autentica. Sem settings, usa as configurações salvas.
func (s *Service) TestConnection(settings *domain.SMTPSettings) error {
	var target domain.SMTPSettings
	if settings != nil {
		target = trimSMTP(*settings)
	} else {
		saved, err := s.GetSMTP()
		if err != nil {
			return err
		}
		target = saved
	}

	if target.Server == "" || target.Port <= 0 || target.Username == "" || target.Password == "" {
		return NewMailError(ErrMissingSMTPFields, apiErrors.ErrMissingRequiredData, "")
	}

	if err := s.sender.Dial(target); err != nil {
		s.errorLog.Recordf("", "smtp_test", "SMTP test failed for %s:%d: %v", target.Server, target.Port, err)
		return NewMailError(ErrSMTPConnection, apiErrors.ErrMailDelivery, err.Error())
	}
	return nil
}

// SendReport exporta o relatório, envia como anexo e apaga o arquivo em seguida
func (s *Service) SendReport(report *domain.Report, format presenter.Format, recipients []string) (*domain.SendReportResponse, error) {
	settings, err := s.GetSMTP()
	if err != nil {
		return nil, err
	}
	if !settings.Complete() {
		return nil, NewMailError(ErrSMTPNotConfigured, apiErrors.ErrSMTPNotConfigured, "")
	}

	to, err := s.resolveRecipients(recipients)
	if err != nil {
		return nil, err
	}

	exported, err := s.exporter.Export(report, format)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(exported.Path); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).WithField("path", exported.Path).Warn("Não foi possível apagar o anexo enviado")
		}
	}()

	msg := gomail.NewMessage()
	msg.SetHeader("From", settings.From)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", report.Subject())
	msg.SetBody("text/plain", Body(report))
	msg.Attach(exported.Path, gomail.Rename(exported.Name))

	if err := s.sender.Send(settings, msg); err != nil {
		s.errorLog.Recordf("", "smtp_send", "Failed to send %s: %v", exported.Name, err)
		return nil, NewMailError(ErrDeliveryFailed, apiErrors.ErrMailDelivery, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"report":     report.ID,
		"recipients": len(to),
		"file":       exported.Name,
	}).Info("Relatório enviado por e-mail")

	return &domain.SendReportResponse{
		Recipients: to,
		Subject:    report.Subject(),
		File:       exported.Name,
	}, nil
}

// Mailto grava o arquivo para anexo manual e monta a URL mailto:
func (s *Service) Mailto(report *domain.Report, format presenter.Format, recipients []string) (*domain.MailtoResponse, error) {
	to, err := s.resolveRecipients(recipients)
	if err != nil {
		return nil, err
	}

	exported, err := s.exporter.Export(report, format)
	if err != nil {
		return nil, err
	}

	return &domain.MailtoResponse{
		URL:  MailtoURL(report, to),
		File: filepath.ToSlash(exported.Path),
	}, nil
}

// resolveRecipients valida os endereços informados ou, se vazio, usa todos os cadastrados
func (s *Service) resolveRecipients(recipients []string) ([]string, error) {
	if len(recipients) == 0 {
		saved, err := s.ListRecipients()
		if err != nil {
			return nil, err
		}
		recipients = saved
	}

	out := make([]string, 0, len(recipients))
	seen := make(map[string]struct{}, len(recipients))
	for _, r := range recipients {
		addr, err := normalizeAddress(r)
		if err != nil {
			return nil, err
		}
		key := strings.ToLower(addr)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, addr)
	}

	if len(out) == 0 {
		return nil, NewMailError(ErrNoRecipients, apiErrors.ErrMissingRequiredData, "")
	}
	return out, nil
}

// Body é o texto padrão do e-mail
func Body(report *domain.Report) string {
	return fmt.Sprintf("Please see the attached %s.", strings.ToLower(report.Title))
}

// MailtoURL monta mailto:<to>?subject=...&body=... com espaços como %20
func MailtoURL(report *domain.Report, recipients []string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		strings.Join(recipients, ","),
		escape(report.Subject()),
		escape(Body(report)),
	)
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// normalizeAddress aceita apenas o endereço puro (sem nome de exibição)
func normalizeAddress(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", NewMailError(ErrInvalidEmail, apiErrors.ErrMissingRequiredData, "")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@"):], ".") {
		return "", NewMailError(ErrInvalidEmail, apiErrors.ErrInvalidFormat, email)
	}
	return email, nil
}

func recipientError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrAlreadyExists):
		return NewMailError(ErrRecipientExists, apiErrors.ErrResourceConflict, "")
	case errors.Is(err, repository.ErrNotFound):
		return NewMailError(ErrRecipientNotFound, apiErrors.ErrResourceNotFound, "")
	}
	return NewMailError(ErrStorageOperation, apiErrors.ErrStorageOperation, err.Error())
}

func trimSMTP(s domain.SMTPSettings) domain.SMTPSettings {
	s.Server = strings.TrimSpace(s.Server)
	s.Username = strings.TrimSpace(s.Username)
	s.From = strings.TrimSpace(s.From)
	return s
}
