package handler

import (
	"net/http"

	"github.com/vfg2006/liveiq-reports/internal/api/handler/router"
	"github.com/vfg2006/liveiq-reports/internal/usecases/account"
	"github.com/vfg2006/liveiq-reports/internal/usecases/authenticating"
	"github.com/vfg2006/liveiq-reports/internal/usecases/exporting"
	"github.com/vfg2006/liveiq-reports/internal/usecases/mailing"
	"github.com/vfg2006/liveiq-reports/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/config/reset",
			Method:  http.MethodPost,
			Handler: ResetConfig(service),
		},
	}
}

func Accounts(service account.AccountService) []router.Route {
	return []router.Route{
		{
			Path:      "/v1/accounts",
			Method:    http.MethodGet,
			Handler:   ListAccounts(service),
			Protected: true,
		},
		{
			Path:      "/v1/accounts",
			Method:    http.MethodPost,
			Handler:   CreateAccount(service),
			Protected: true,
		},
		{
			Path:      "/v1/accounts/:name",
			Method:    http.MethodPut,
			Handler:   UpdateAccount(service),
			Protected: true,
		},
		{
			Path:      "/v1/accounts/:name",
			Method:    http.MethodDelete,
			Handler:   DeleteAccount(service),
			Protected: true,
		},
		{
			Path:      "/v1/accounts/check",
			Method:    http.MethodPost,
			Handler:   CheckAccounts(service),
			Protected: true,
		},
		{
			Path:      "/v1/stores",
			Method:    http.MethodGet,
			Handler:   StoreTree(service),
			Protected: true,
		},
		{
			Path:      "/v1/selection",
			Method:    http.MethodPut,
			Handler:   SaveSelection(service),
			Protected: true,
		},
		{
			Path:      "/v1/settings/workers",
			Method:    http.MethodGet,
			Handler:   GetWorkers(service),
			Protected: true,
		},
		{
			Path:      "/v1/settings/workers",
			Method:    http.MethodPut,
			Handler:   SetWorkers(service),
			Protected: true,
		},
	}
}

// Reports registra a execução dos relatórios e as formas de entrega
func Reports(service reporting.Reporter, exporter exporting.Exporter, mailer mailing.Mailer) []router.Route {
	return []router.Route{
		{
			Path:      "/v1/reports/types",
			Method:    http.MethodGet,
			Handler:   ReportTypes(service),
			Protected: true,
		},
		{
			Path:      "/v1/reports/presets",
			Method:    http.MethodGet,
			Handler:   DatePresets(),
			Protected: true,
		},
		{
			Path:      "/v1/reports/:type",
			Method:    http.MethodPost,
			Handler:   RunReport(service),
			Protected: true,
		},
		{
			Path:      "/v1/reports/:type/export",
			Method:    http.MethodPost,
			Handler:   ExportReport(service, exporter),
			Protected: true,
		},
		{
			Path:      "/v1/reports/:type/email",
			Method:    http.MethodPost,
			Handler:   EmailReport(service, mailer),
			Protected: true,
		},
		{
			Path:      "/v1/reports/:type/mailto",
			Method:    http.MethodPost,
			Handler:   MailtoReport(service, mailer),
			Protected: true,
		},
	}
}

func Mailing(service mailing.Mailer) []router.Route {
	return []router.Route{
		{
			Path:      "/v1/recipients",
			Method:    http.MethodGet,
			Handler:   ListRecipients(service),
			Protected: true,
		},
		{
			Path:      "/v1/recipients",
			Method:    http.MethodPost,
			Handler:   AddRecipient(service),
			Protected: true,
		},
		{
			Path:      "/v1/recipients/:email",
			Method:    http.MethodPut,
			Handler:   UpdateRecipient(service),
			Protected: true,
		},
		{
			Path:      "/v1/recipients/:email",
			Method:    http.MethodDelete,
			Handler:   DeleteRecipient(service),
			Protected: true,
		},
		{
			Path:      "/v1/smtp",
			Method:    http.MethodGet,
			Handler:   GetSMTP(service),
			Protected: true,
		},
		{
			Path:      "/v1/smtp",
			Method:    http.MethodPut,
			Handler:   SaveSMTP(service),
			Protected: true,
		},
		{
			Path:      "/v1/smtp/test",
			Method:    http.MethodPost,
			Handler:   TestSMTP(service),
			Protected: true,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:      "/v1/cron/:type/run",
			Method:    http.MethodPost,
			Handler:   RunCronJob(services),
			Protected: true,
		},
		{
			Path:      "/v1/cron/status",
			Method:    http.MethodGet,
			Handler:   GetCronStatus(services),
			Protected: true,
		},
	}
}
