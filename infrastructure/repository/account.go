package repository

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liveiq-reports/infrastructure/database/filedb"
	"github.com/vfg2006/liveiq-reports/internal/domain"
)

var (
	ErrNotFound      = errors.New("registro não encontrado")
	ErrAlreadyExists = errors.New("registro já existe")
)

type AccountRepository interface {
	ListAccounts() ([]domain.Account, error)
	GetAccount(name string) (*domain.Account, error)
	CreateAccount(account domain.Account) error
	UpdateAccount(name string, account domain.Account) error
	DeleteAccount(name string) error
	ApplyCheckResults(checked []domain.Account) error
	DisableRateLimited(name string) (bool, error)
}

type accountRepository struct {
	conn filedb.Conn
}

func NewAccountRepository(conn filedb.Conn) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

func (r *accountRepository) ListAccounts() ([]domain.Account, error) {
	var accounts []domain.Account

	err := r.conn.View(func(s *domain.Settings) error {
		accounts = s.Accounts
		return nil
	})

	return accounts, err
}

// GetAccount retorna nil, nil quando a conta não existe
func (r *accountRepository) GetAccount(name string) (*domain.Account, error) {
	var account *domain.Account

	err := r.conn.View(func(s *domain.Settings) error {
		if i := indexOfAccount(s.Accounts, name); i >= 0 {
			account = &s.Accounts[i]
		}
		return nil
	})

	return account, err
}

func (r *accountRepository) CreateAccount(account domain.Account) error {
	return r.conn.Update(func(s *domain.Settings) error {
		if indexOfAccount(s.Accounts, account.Name) >= 0 {
			return fmt.Errorf("%w: conta %s", ErrAlreadyExists, account.Name)
		}

		s.Accounts = append(s.Accounts, account)

		// Uma seleção explícita passa a incluir a conta nova e suas lojas
		if s.SelectedAccounts != nil {
			s.SelectedAccounts = appendUnique(s.SelectedAccounts, account.Name)
		}
		if s.SelectedStores != nil {
			s.SelectedStores = appendUnique(s.SelectedStores, account.StoreIDs...)
		}
		return nil
	})
}

// UpdateAccount substitui a conta identificada por name (que pode ser renomeada)
func (r *accountRepository) UpdateAccount(name string, account domain.Account) error {
	return r.conn.Update(func(s *domain.Settings) error {
		i := indexOfAccount(s.Accounts, name)
		if i < 0 {
			return fmt.Errorf("%w: conta %s", ErrNotFound, name)
		}
		if account.Name != name && indexOfAccount(s.Accounts, account.Name) >= 0 {
			return fmt.Errorf("%w: conta %s", ErrAlreadyExists, account.Name)
		}

		s.Accounts[i] = account

		if s.SelectedAccounts != nil && account.Name != name {
			s.SelectedAccounts = replaceValue(s.SelectedAccounts, name, account.Name)
		}
		return nil
	})
}

func (r *accountRepository) DeleteAccount(name string) error {
	return r.conn.Update(func(s *domain.Settings) error {
		i := indexOfAccount(s.Accounts, name)
		if i < 0 {
			return fmt.Errorf("%w: conta %s", ErrNotFound, name)
		}

		removed := s.Accounts[i]
		s.Accounts = append(s.Accounts[:i], s.Accounts[i+1:]...)

		if s.SelectedAccounts != nil {
			s.SelectedAccounts = removeValues(s.SelectedAccounts, removed.Name)
		}
		if s.SelectedStores != nil {
			s.SelectedStores = removeValues(s.SelectedStores, removed.StoreIDs...)
		}
		return nil
	})
}

// ApplyCheckResults grava lojas e status verificados nas contas de mesmo nome.
// Contas criadas, removidas ou com credenciais trocadas durante a verificação
// ficam como estão.
func (r *accountRepository) ApplyCheckResults(checked []domain.Account) error {
	return r.conn.Update(func(s *domain.Settings) error {
		for _, c := range checked {
			i := indexOfAccount(s.Accounts, c.Name)
			if i < 0 {
				continue
			}
			acc := &s.Accounts[i]
			if acc.ClientID != c.ClientID || acc.ClientKey != c.ClientKey {
				continue
			}
			acc.StoreIDs = append([]string{}, c.StoreIDs...)
			acc.Status = c.Status
		}
		return nil
	})
}

// DisableRateLimited marca a conta como RATE LIMITED e a retira da seleção
// junto com suas lojas. Retorna false se a conta já estava marcada.
func (r *accountRepository) DisableRateLimited(name string) (bool, error) {
	changed := false

	err := r.conn.Update(func(s *domain.Settings) error {
		i := indexOfAccount(s.Accounts, name)
		if i < 0 {
			return fmt.Errorf("%w: conta %s", ErrNotFound, name)
		}
		if s.Accounts[i].Status == domain.AccountStatusRateLimited {
			return nil
		}

		s.Accounts[i].Status = domain.AccountStatusRateLimited

		selection := resolveSelection(s)
		s.SelectedAccounts = removeValues(selection.Accounts, name)
		s.SelectedStores = removeValues(selection.Stores, s.Accounts[i].StoreIDs...)

		changed = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if changed {
		logrus.WithFields(logrus.Fields{
			"account": name,
		}).Warn("Conta marcada como RATE LIMITED e removida da seleção")
	}

	return changed, nil
}

func indexOfAccount(accounts []domain.Account, name string) int {
	for i, acc := range accounts {
		if acc.Name == name {
			return i
		}
	}
	return -1
}
