package repository

import (
	"github.com/vfg2006/liveiq-reports/infrastructure/database/filedb"
	"github.com/vfg2006/liveiq-reports/internal/domain"
)

type PreferencesRepository interface {
	GetMaxWorkers() (int, error)
	SetMaxWorkers(n int) error
	GetSMTP() (domain.SMTPSettings, error)
	SaveSMTP(smtp domain.SMTPSettings) error
	GetSelection() (domain.Selection, error)
	SaveSelection(selection domain.Selection) error
	ResetSelection() error
}

type preferencesRepository struct {
	conn filedb.Conn
}

func NewPreferencesRepository(conn filedb.Conn) PreferencesRepository {
	return &preferencesRepository{
		conn: conn,
	}
}

func (r *preferencesRepository) GetMaxWorkers() (int, error) {
	n := domain.DefaultMaxWorkers

	err := r.conn.View(func(s *domain.Settings) error {
		if s.MaxWorkers > 0 {
			n = s.MaxWorkers
		}
		return nil
	})

	return n, err
}

func (r *preferencesRepository) SetMaxWorkers(n int) error {
	return r.conn.Update(func(s *domain.Settings) error {
		s.MaxWorkers = n
		return nil
	})
}

func (r *preferencesRepository) GetSMTP() (domain.SMTPSettings, error) {
	var smtp domain.SMTPSettings

	err := r.conn.View(func(s *domain.Settings) error {
		smtp = s.SMTP
		return nil
	})

	return smtp, err
}

func (r *preferencesRepository) SaveSMTP(smtp domain.SMTPSettings) error {
	return r.conn.Update(func(s *domain.Settings) error {
		s.SMTP = smtp
		return nil
	})
}

// GetSelection devolve a seleção já resolvida (nenhuma seleção salva = tudo)
func (r *preferencesRepository) GetSelection() (domain.Selection, error) {
	var selection domain.Selection

	err := r.conn.View(func(s *domain.Settings) error {
		selection = resolveSelection(s)
		return nil
	})

	return selection, err
}

func (r *preferencesRepository) SaveSelection(selection domain.Selection) error {
	return r.conn.Update(func(s *domain.Settings) error {
		s.SelectedAccounts = appendUnique([]string{}, selection.Accounts...)
		s.SelectedStores = appendUnique([]string{}, selection.Stores...)
		return nil
	})
}

// ResetSelection seleciona todas as lojas e apenas as contas com status OK
func (r *preferencesRepository) ResetSelection() error {
	return r.conn.Update(func(s *domain.Settings) error {
		s.SelectedStores = nil
		s.SelectedAccounts = []string{}
		for _, acc := range s.Accounts {
			if acc.Status == domain.AccountStatusOK {
				s.SelectedAccounts = append(s.SelectedAccounts, acc.Name)
			}
		}
		return nil
	})
}
