package repository

import (
	"fmt"
	"strings"

	"github.com/vfg2006/liveiq-reports/infrastructure/database/filedb"
	"github.com/vfg2006/liveiq-reports/internal/domain"
)

type RecipientRepository interface {
	ListRecipients() ([]string, error)
	AddRecipient(email string) error
	UpdateRecipient(old, email string) error
	DeleteRecipient(email string) error
}

type recipientRepository struct {
	conn filedb.Conn
}

func NewRecipientRepository(conn filedb.Conn) RecipientRepository {
	return &recipientRepository{
		conn: conn,
	}
}

func (r *recipientRepository) ListRecipients() ([]string, error) {
	var emails []string

	err := r.conn.View(func(s *domain.Settings) error {
		emails = s.Emails
		return nil
	})

	return emails, err
}

func (r *recipientRepository) AddRecipient(email string) error {
	return r.conn.Update(func(s *domain.Settings) error {
		if indexOfEmail(s.Emails, email) >= 0 {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, email)
		}

		s.Emails = append(s.Emails, email)
		return nil
	})
}

func (r *recipientRepository) UpdateRecipient(old, email string) error {
	return r.conn.Update(func(s *domain.Settings) error {
		i := indexOfEmail(s.Emails, old)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, old)
		}
		if j := indexOfEmail(s.Emails, email); j >= 0 && j != i {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, email)
		}

		s.Emails[i] = email
		return nil
	})
}

func (r *recipientRepository) DeleteRecipient(email string) error {
	return r.conn.Update(func(s *domain.Settings) error {
		i := indexOfEmail(s.Emails, email)
		if i < 0 {
			return fmt.Errorf("%w: %s", ErrNotFound, email)
		}

		s.Emails = append(s.Emails[:i], s.Emails[i+1:]...)
		return nil
	})
}

// Endereços são comparados sem diferenciar maiúsculas
func indexOfEmail(emails []string, email string) int {
	for i, e := range emails {
		if strings.EqualFold(e, email) {
			return i
		}
	}
	return -1
}
