package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/liveiq-reports/infrastructure/database/filedb"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/infrastructure/repository"
	"github.com/vfg2006/liveiq-reports/internal/api"
	"github.com/vfg2006/liveiq-reports/internal/config"
	"github.com/vfg2006/liveiq-reports/internal/scheduler"
	"github.com/vfg2006/liveiq-reports/internal/usecases/account"
	"github.com/vfg2006/liveiq-reports/internal/usecases/authenticating"
	"github.com/vfg2006/liveiq-reports/internal/usecases/exporting"
	"github.com/vfg2006/liveiq-reports/internal/usecases/mailing"
	"github.com/vfg2006/liveiq-reports/internal/usecases/reporting"
	"github.com/vfg2006/liveiq-reports/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errorLog, err := log.NewErrorLog(cfg.Storage.ErrorLogFile)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o log de erros")
	}
	defer errorLog.Close()

	conn := fileConn(cfg, errorLog)

	accountRepo := repository.NewAccountRepository(conn)
	preferencesRepo := repository.NewPreferencesRepository(conn)
	recipientRepo := repository.NewRecipientRepository(conn)

	liveiqClient := liveiqclient.NewClient(cfg)
	liveiqIntegrator := liveiq.New(cfg, liveiqClient)

	authenticator := authenticating.NewService(conn, cfg)
	accountService := account.NewService(accountRepo, preferencesRepo, liveiqIntegrator, errorLog, cfg)
	reportService := reporting.NewService(cfg, liveiqIntegrator, accountRepo, preferencesRepo, errorLog)
	exporter := exporting.NewService(cfg.Storage)
	mailer := mailing.NewService(recipientRepo, preferencesRepo, exporter, mailing.NewSMTPSender(), errorLog)

	accountStatusCheck := scheduler.NewAccountStatusCheckService(accountService, conn.Unlocked, cfg)
	if err := accountStatusCheck.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação de contas")
	} else {
		logrus.Info("Agendador de verificação de contas iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:      authenticator,
		Accounts:           accountService,
		Reporter:           reportService,
		Exporter:           exporter,
		Mailer:             mailer,
		AccountStatusCheck: accountStatusCheck,
		Lock:               conn.Lock,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// fileConn abre o arquivo de configuração cifrado. Sem CONFIG_PASSWORD ele
// fica bloqueado até o primeiro POST /v1/login.
func fileConn(cfg *config.Config, errorLog *log.ErrorLog) *filedb.Connection {
	conn := filedb.NewConnection(cfg.Storage, errorLog)

	if cfg.App.ConfigPassword == "" {
		logrus.WithField("file", conn.Path()).Info("Configuração bloqueada, aguardando login")
		return conn
	}

	created, err := conn.Unlock(cfg.App.ConfigPassword)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir o arquivo de configuração")
	}

	logrus.WithFields(logrus.Fields{
		"file":    conn.Path(),
		"created": created,
	}).Info("Arquivo de configuração aberto com sucesso")
	return conn
}
