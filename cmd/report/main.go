// Comando report gera um relatório da LiveIQ pela linha de comando usando o
// mesmo arquivo de configuração cifrado da API.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/liveiq-reports/infrastructure/database/filedb"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/infrastructure/repository"
	"github.com/vfg2006/liveiq-reports/internal/config"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/internal/presenter"
	"github.com/vfg2006/liveiq-reports/internal/usecases/exporting"
	"github.com/vfg2006/liveiq-reports/internal/usecases/mailing"
	"github.com/vfg2006/liveiq-reports/internal/usecases/reporting"
	"github.com/vfg2006/liveiq-reports/pkg/log"
)

type options struct {
	reportType string
	body       domain.ReportRequestBody
	format     presenter.Format
	export     bool
	email      bool
	recipients []string
	mailto     bool
	password   string
	logLevel   string
}

var errMissingType = errors.New("--type é obrigatório")

func parseOptions(args []string, env func(string) string) (*options, error) {
	fs := pflag.NewFlagSet("report", pflag.ContinueOnError)
	fs.SortFlags = false

	reportType := fs.StringP("type", "t", "", "tipo do relatório: "+reportTypesUsage())
	start := fs.String("start", "", "data inicial (YYYY-MM-DD)")
	end := fs.String("end", "", "data final (YYYY-MM-DD)")
	preset := fs.String("preset", "", `período pré-definido, ex.: "Past 7 Days"`)
	stores := fs.StringSlice("stores", nil, "lojas separadas por vírgula (padrão: seleção salva)")
	endpoint := fs.String("endpoint", "", "endpoint do relatório custom")
	flatten := fs.Bool("flatten", false, "achata o JSON do relatório custom")
	format := fs.StringP("format", "f", string(presenter.FormatTXT), "formato: txt, csv, json, pdf ou xlsx")
	export := fs.Bool("export", false, "grava o arquivo na pasta de relatórios")
	email := fs.StringSlice("email", nil, "envia por SMTP (--email=a@b,c@d); sem valor usa os destinatários salvos")
	// --email sozinho vira uma lista de vazios, descartados em cleanRecipients
	fs.Lookup("email").NoOptDefVal = ","
	mailto := fs.Bool("mailto", false, "exporta e imprime a URL mailto")
	password := fs.String("password", "", "senha do arquivo de configuração (padrão: CONFIG_PASSWORD)")
	logLevel := fs.String("log-level", "", "nível de log (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if strings.TrimSpace(*reportType) == "" {
		return nil, errMissingType
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("argumentos inesperados %q; destinatários vão em --email=a@b,c@d", fs.Args())
	}

	f, err := presenter.ParseFormat(*format)
	if err != nil {
		return nil, err
	}

	opts := &options{
		reportType: *reportType,
		body: domain.ReportRequestBody{
			StartDate: *start,
			EndDate:   *end,
			Preset:    *preset,
			Stores:    *stores,
			Endpoint:  *endpoint,
			Flatten:   *flatten,
		},
		format:     f,
		export:     *export,
		email:      fs.Changed("email"),
		recipients: *email,
		mailto:     *mailto,
		password:   *password,
		logLevel:   *logLevel,
	}
	if opts.email {
		opts.recipients = cleanRecipients(*email)
	}
	if opts.password == "" {
		opts.password = env("CONFIG_PASSWORD")
	}

	return opts, nil
}

func cleanRecipients(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func reportTypesUsage() string {
	types := domain.ReportTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func main() {
	logrus.SetOutput(os.Stderr)
	log.Setup("info")

	opts, err := parseOptions(os.Args[1:], os.Getenv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		logrus.WithError(err).Error("Relatório não gerado")
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *options, stdout io.Writer) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "erro ao carregar configuração")
	}

	level := cfg.App.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	log.Setup(level)

	if opts.password == "" {
		return errors.New("informe a senha com --password ou CONFIG_PASSWORD")
	}

	errorLog, err := log.NewErrorLog(cfg.Storage.ErrorLogFile)
	if err != nil {
		return err
	}
	defer errorLog.Close()

	conn := filedb.NewConnection(cfg.Storage, errorLog)
	if _, err := conn.Unlock(opts.password); err != nil {
		return errors.Wrap(err, "erro ao abrir o arquivo de configuração")
	}
	defer conn.Lock()

	accountRepo := repository.NewAccountRepository(conn)
	preferencesRepo := repository.NewPreferencesRepository(conn)
	recipientRepo := repository.NewRecipientRepository(conn)

	integrator := liveiq.New(cfg, liveiqclient.NewClient(cfg))
	reportService := reporting.NewService(cfg, integrator, accountRepo, preferencesRepo, errorLog)
	exporter := exporting.NewService(cfg.Storage)
	mailer := mailing.NewService(recipientRepo, preferencesRepo, exporter, mailing.NewSMTPSender(), errorLog)

	req, err := reporting.BuildRequest(opts.reportType, opts.body, time.Now())
	if err != nil {
		return err
	}

	report, err := reportService.Run(ctx, req)
	if err != nil {
		return err
	}

	return deliver(opts, report, stdout, exporter, mailer)
}

// deliver imprime o relatório ou executa as entregas pedidas nas flags
func deliver(opts *options, report *domain.Report, stdout io.Writer, exporter exporting.Exporter, mailer mailing.Mailer) error {
	if !opts.export && !opts.email && !opts.mailto {
		return presenter.Render(stdout, report, opts.format)
	}

	if opts.export {
		exported, err := exporter.Export(report, opts.format)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Exported: %s\n", exported.Path)
	}

	if opts.email {
		sent, err := mailer.SendReport(report, opts.format, opts.recipients)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Sent \"%s\" to %s\n", sent.Subject, strings.Join(sent.Recipients, ", "))
	}

	if opts.mailto {
		m, err := mailer.Mailto(report, opts.format, opts.recipients)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Attach %s\n%s\n", m.File, m.URL)
	}

	return nil
}
