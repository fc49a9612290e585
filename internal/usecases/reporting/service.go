package reporting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/infrastructure/repository"
	"github.com/vfg2006/liveiq-reports/internal/config"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/apiErrors"
	"github.com/vfg2006/liveiq-reports/pkg/log"
	"github.com/vfg2006/liveiq-reports/pkg/utils"
)

// Reporter executa relatórios sob demanda
type Reporter interface {
	// Run valida o pedido, busca os dados na LiveIQ e monta o documento
	Run(ctx context.Context, req *domain.ReportRequest) (*domain.Report, error)

	// Types lista os relatórios disponíveis e seus limites de período
	Types() []TypeInfo
}

type Service struct {
	cfg                   *config.Config
	integrator            liveiq.LiveIQIntegrator
	accountRepository     repository.AccountRepository
	preferencesRepository repository.PreferencesRepository
	errorLog              *log.ErrorLog
	modules               map[domain.ReportType]Module
	now                   func() time.Time
}

func NewService(
	cfg *config.Config,
	integrator liveiq.LiveIQIntegrator,
	accountRepo repository.AccountRepository,
	preferencesRepo repository.PreferencesRepository,
	errorLog *log.ErrorLog,
) *Service {
	return &Service{
		cfg:                   cfg,
		integrator:            integrator,
		accountRepository:     accountRepo,
		preferencesRepository: preferencesRepo,
		errorLog:              errorLog,
		modules:               defaultModules(),
		now:                   time.Now,
	}
}

func (s *Service) Types() []TypeInfo {
	infos := make([]TypeInfo, 0, len(s.modules))
	for _, t := range domain.ReportTypes() {
		m, ok := s.modules[t]
		if !ok {
			continue
		}
		info := TypeInfo{Type: t, Title: t.Title(), MaxDays: m.MaxDays()}
		if t == domain.ReportCustom {
			info.Endpoints = liveiqclient.Endpoints()
		}
		infos = append(infos, info)
	}
	return infos
}

func (s *Service) Run(ctx context.Context, req *domain.ReportRequest) (*domain.Report, error) {
	module, ok := s.modules[req.Type]
	if !ok {
		return nil, NewReportError(domain.ErrUnknownReportType, apiErrors.ErrInvalidRequest, string(req.Type))
	}

	if err := validateRange(req, module.MaxDays()); err != nil {
		return nil, err
	}
	if v, ok := module.(Validator); ok {
		if err := v.Validate(req); err != nil {
			return nil, err
		}
	}

	stores, err := s.resolveStores(req)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepository.ListAccounts()
	if err != nil {
		return nil, NewReportError(ErrLoadAccounts, apiErrors.ErrStorageOperation, err.Error())
	}

	routes, unrouted := BuildRoutes(accounts, stores)
	if len(routes) == 0 {
		s.errorLog.Record("", string(req.Type), "No valid accounts with selected stores found")
		return nil, NewReportError(ErrNoValidAccounts, apiErrors.ErrNoValidAccounts, "")
	}

	logger := log.L.WithContext(ctx).WithFields(log.Fields{
		"report": string(req.Type),
		"start":  req.Start(),
		"end":    req.End(),
		"preset": req.Preset,
	})
	if len(unrouted) > 0 {
		logger.WithField("stores", unrouted).Warn("Lojas sem conta válida serão reportadas sem dados")
	}

	// Uma execução iniciada vai até o fim mesmo que o cliente desconecte
	ctx = context.WithoutCancel(ctx)

	if err := s.integrator.CheckConnection(ctx); err != nil {
		s.errorLog.Record("", "", "No internet connection")
		return nil, NewReportError(err, apiErrors.ErrCommunication, "")
	}

	workers, err := s.preferencesRepository.GetMaxWorkers()
	if err != nil || workers < 1 {
		workers = domain.DefaultMaxWorkers
	}

	tasks := module.Plan(req, routes)
	acc := module.NewAccumulator(req)
	outcome := newRunOutcome()

	logger.WithFields(log.Fields{
		"tasks":    len(tasks),
		"stores":   len(routes),
		"accounts": len(GroupByAccount(routes)),
		"workers":  workers,
	}).Info("Buscando dados do relatório")

	s.fetchAll(ctx, tasks, workers, acc, outcome)

	report := &domain.Report{
		ID:          uuid.NewString(),
		Type:        req.Type,
		Title:       req.Type.Title(),
		StartDate:   req.Start(),
		EndDate:     req.End(),
		Stores:      stores,
		GeneratedAt: s.now(),
	}
	report.StoreStatus = outcome.statuses(stores, routes, acc)
	report.Notices = outcome.notices
	acc.Build(report)

	logger.WithField("report_id", report.ID).Info("Relatório gerado")

	return report, nil
}

func validateRange(req *domain.ReportRequest, maxDays int) error {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return NewReportError(ErrMissingDates, apiErrors.ErrMissingRequiredData, "")
	}
	if req.StartDate.After(req.EndDate) {
		return NewReportError(ErrInvertedRange, apiErrors.ErrInvalidDateRange,
			fmt.Sprintf("%s > %s", req.Start(), req.End()))
	}
	if days := req.Days(); days > maxDays {
		return NewReportError(ErrRangeTooLarge, apiErrors.ErrRangeTooLarge,
			fmt.Sprintf("%d dias solicitados, máximo %d", days, maxDays))
	}
	return nil
}

// resolveStores usa as lojas do pedido ou, se vazio, a seleção persistida
func (s *Service) resolveStores(req *domain.ReportRequest) ([]string, error) {
	stores := dedupStores(req.StoreIDs)

	if len(stores) == 0 {
		selection, err := s.preferencesRepository.GetSelection()
		if err != nil {
			return nil, NewReportError(errors.Join(ErrNoStoresSelected, err), apiErrors.ErrStorageOperation, "")
		}
		stores = dedupStores(selection.Stores)
	}

	if len(stores) == 0 {
		return nil, NewReportError(ErrNoStoresSelected, apiErrors.ErrNoStoresSelected, "")
	}
	return stores, nil
}

func dedupStores(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	utils.SortStoreIDs(out)
	return out
}

// sortedKeys devolve as chaves de um mapa em ordem alfabética
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
