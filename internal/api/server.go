package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liveiq-reports/internal/api/handler"
	"github.com/vfg2006/liveiq-reports/internal/api/handler/router"
	"github.com/vfg2006/liveiq-reports/internal/config"
	"github.com/vfg2006/liveiq-reports/internal/scheduler"
	"github.com/vfg2006/liveiq-reports/internal/usecases/account"
	"github.com/vfg2006/liveiq-reports/internal/usecases/authenticating"
	"github.com/vfg2006/liveiq-reports/internal/usecases/exporting"
	"github.com/vfg2006/liveiq-reports/internal/usecases/mailing"
	"github.com/vfg2006/liveiq-reports/internal/usecases/reporting"
	"github.com/vfg2006/liveiq-reports/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
	lock       func()
}

// Services reúne os casos de uso expostos pela API
type Services struct {
	Authenticator      authenticating.Authenticator
	Accounts           account.AccountService
	Reporter           reporting.Reporter
	Exporter           exporting.Exporter
	Mailer             mailing.Mailer
	AccountStatusCheck *scheduler.AccountStatusCheckService

	// Lock descarta as configurações decifradas ao desligar
	Lock func()
}

func New(config *config.Config, services Services) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if services.AccountStatusCheck != nil {
		cronServices.AccountStatusCheck = services.AccountStatusCheck
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(services, cronServices),
			ReadHeaderTimeout: 2 * time.Second,
		},
		lock: services.Lock,
	}

	return srv, nil
}

// NewHandler monta as rotas com a cadeia de middlewares
func NewHandler(services Services, cronServices handler.CronJobServices) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Accounts(services.Accounts)...),
		router.WithRoutes(handler.Reports(services.Reporter, services.Exporter, services.Mailer)...),
		router.WithRoutes(handler.Mailing(services.Mailer)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)
	logrus.WithField("routes", rt.Routes()).Debugf("%d rotas registradas", len(rt.Routes()))

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if s.lock != nil {
		s.lock()
	}
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
