package filedb

import (
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liveiq-reports/infrastructure/configstore"
	"github.com/vfg2006/liveiq-reports/internal/config"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/log"
)

var ErrLocked = errors.New("configuração bloqueada: informe a senha")

type Conn interface {
	View(fn func(*domain.Settings) error) error
	Update(fn func(*domain.Settings) error) error
	Unlocked() bool
}

// Connection mantém as configurações decifradas em memória depois do desbloqueio
// e serializa as escritas no arquivo cifrado.
type Connection struct {
	mu       sync.RWMutex
	store    *configstore.FileStore
	key      []byte
	settings *domain.Settings
	errorLog *log.ErrorLog
	now      func() time.Time
}

func NewConnection(cfg config.Storage, errorLog *log.ErrorLog) *Connection {
	return &Connection{
		store:    configstore.NewFileStore(cfg.ConfigFile),
		errorLog: errorLog,
		now:      time.Now,
	}
}

// Unlock deriva a chave da senha e carrega o arquivo. Se o arquivo não existe,
// grava a configuração padrão e retorna created=true.
func (c *Connection) Unlock(password string) (bool, error) {
	key := configstore.DeriveKey(password)

	created := false
	settings, err := c.store.Load(key)
	switch {
	case errors.Is(err, configstore.ErrNotFound):
		settings = domain.DefaultSettings()
		if err := c.store.Save(key, settings); err != nil {
			return false, err
		}
		created = true

		logrus.WithFields(logrus.Fields{
			"file": c.store.Path(),
		}).Info("Arquivo de configuração criado")
	case err != nil:
		c.errorLog.Recordf("", "", "Falha ao decifrar configuração: %v", err)
		return false, err
	}

	c.mu.Lock()
	c.key = key
	c.settings = settings
	c.mu.Unlock()

	return created, nil
}

func (c *Connection) Unlocked() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings != nil
}

func (c *Connection) Lock() {
	c.mu.Lock()
	c.key = nil
	c.settings = nil
	c.mu.Unlock()
}

func (c *Connection) Path() string {
	return c.store.Path()
}

// Reset confere a senha contra o arquivo atual, faz o backup e grava a configuração padrão
func (c *Connection) Reset(password string) (string, error) {
	key := configstore.DeriveKey(password)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.store.Load(key); err != nil && !errors.Is(err, configstore.ErrNotFound) {
		c.errorLog.Recordf("", "", "Falha ao validar senha para reset: %v", err)
		return "", err
	}

	backup, settings, err := c.store.Reset(key, c.now())
	if err != nil {
		return backup, err
	}

	c.key = key
	c.settings = settings

	logrus.WithFields(logrus.Fields{
		"file":   c.store.Path(),
		"backup": backup,
	}).Warn("Configuração redefinida")

	return backup, nil
}

// View entrega uma cópia das configurações; alterações feitas por fn são descartadas
func (c *Connection) View(fn func(*domain.Settings) error) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.settings == nil {
		return ErrLocked
	}

	return fn(c.settings.Clone())
}

// Update aplica fn sobre uma cópia e só a publica depois de gravada no arquivo
func (c *Connection) Update(fn func(*domain.Settings) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.settings == nil {
		return ErrLocked
	}

	next := c.settings.Clone()
	if err := fn(next); err != nil {
		return err
	}

	if err := c.store.Save(c.key, next); err != nil {
		return err
	}

	c.settings = next
	return nil
}
