// Package scheduler contém os serviços de agendamento das verificações periódicas
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liveiq-reports/internal/config"
	"github.com/vfg2006/liveiq-reports/internal/domain"
)

// AccountChecker é a parte do serviço de contas usada pelo agendador
type AccountChecker interface {
	CheckAll(ctx context.Context) ([]domain.AccountCheckResult, error)
}

type AccountStatusCheckConfig struct {
	CronSchedule string
	Enabled      bool
}

type AccountStatusCheckService struct {
	scheduler       *gocron.Scheduler
	checker         AccountChecker
	unlocked        func() bool
	config          AccountStatusCheckConfig
	running         bool
	mutex           sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastResults     []domain.AccountCheckResult
	lastError       string
}

// NewAccountStatusCheckService cria o agendador. unlocked informa se a configuração
// já foi aberta; enquanto não for, as execuções são ignoradas.
func NewAccountStatusCheckService(checker AccountChecker, unlocked func() bool, cfg *config.Config) *AccountStatusCheckService {
	checkConfig := AccountStatusCheckConfig{
		CronSchedule: cfg.AccountCheck.CronSchedule, // Default: a cada 6 horas
		Enabled:      cfg.AccountCheck.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": checkConfig.CronSchedule,
		"enabled":       checkConfig.Enabled,
	}).Info("Configuração do agendador de verificação de contas carregada")

	return &AccountStatusCheckService{
		scheduler: gocron.NewScheduler(time.Local),
		checker:   checker,
		unlocked:  unlocked,
		config:    checkConfig,
	}
}

func (s *AccountStatusCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de verificação de contas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de verificação de contas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunCheck(ctx); err != nil {
			logrus.WithError(err).Error("Erro na verificação agendada das contas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação de contas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de verificação de contas")
		s.scheduler.Stop()
	}()

	return nil
}

// RunCheck executa a verificação de todas as contas. Uma execução em andamento
// ou uma configuração ainda bloqueada fazem a chamada retornar sem nada fazer.
func (s *AccountStatusCheckService) RunCheck(ctx context.Context) error {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Warn("Verificação de contas já está em execução")
		return nil
	}
	if s.unlocked != nil && !s.unlocked() {
		s.mutex.Unlock()
		logrus.Info("Configuração bloqueada, verificação de contas ignorada")
		return nil
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mutex.Unlock()

	logrus.Info("Iniciando verificação de contas")

	results, err := s.checker.CheckAll(ctx)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.running = false
	s.lastCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
		return err
	}

	s.lastError = ""
	s.lastResults = results

	logrus.WithField("accounts", len(results)).Info("Verificação de contas concluída")
	return nil
}

// TriggerManualSync inicia a verificação em segundo plano; false se já havia uma em andamento
func (s *AccountStatusCheckService) TriggerManualSync() bool {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Verificação de contas já em andamento, ignorando solicitação manual")
		return false
	}
	s.mutex.Unlock()

	logrus.Info("Iniciando verificação manual de contas")
	go func() {
		if err := s.RunCheck(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na verificação manual das contas")
		}
	}()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *AccountStatusCheckService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_results":      s.lastResults,
		"last_error":        s.lastError,
	}
}
