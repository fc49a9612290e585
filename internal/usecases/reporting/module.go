package reporting

import (
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/internal/domain"
)

// Module é um tipo de relatório: Plan define as chamadas à LiveIQ e o
// Accumulator agrega as respostas e monta as seções do documento.
type Module interface {
	Type() domain.ReportType
	MaxDays() int
	Plan(req *domain.ReportRequest, routes []Route) []FetchTask
	NewAccumulator(req *domain.ReportRequest) Accumulator
}

// Validator é implementado pelos módulos que têm parâmetros próprios
type Validator interface {
	Validate(req *domain.ReportRequest) error
}

// Accumulator recebe as respostas uma a uma, sempre da mesma goroutine
type Accumulator interface {
	Fold(task FetchTask, payload []byte) error
	HasData(storeID string) bool
	Build(report *domain.Report)
}

// TypeInfo descreve um relatório disponível
type TypeInfo struct {
	Type      domain.ReportType       `json:"type"`
	Title     string                  `json:"title"`
	MaxDays   int                     `json:"max_days"`
	Endpoints []liveiqclient.Endpoint `json:"endpoints,omitempty"`
}

func defaultModules() map[domain.ReportType]Module {
	modules := []Module{
		salesModule{},
		laborModule{},
		thirdPartyModule{},
		discountsModule{},
		itemsSoldModule{},
		transactionsModule{},
		customModule{},
	}

	registry := make(map[domain.ReportType]Module, len(modules))
	for _, m := range modules {
		registry[m.Type()] = m
	}
	return registry
}

// perStoreTasks cria uma chamada por loja cobrindo todo o período
func perStoreTasks(endpoint liveiqclient.Endpoint, req *domain.ReportRequest, routes []Route) []FetchTask {
	tasks := make([]FetchTask, 0, len(routes))
	for _, r := range routes {
		tasks = append(tasks, FetchTask{
			Endpoint:    endpoint,
			Account:     r.Account,
			Credentials: r.Credentials,
			StoreIDs:    []string{r.StoreID},
			Start:       req.Start(),
			End:         req.End(),
		})
	}
	return tasks
}

// perStoreDayTasks cria uma chamada por loja e por dia
func perStoreDayTasks(endpoint liveiqclient.Endpoint, req *domain.ReportRequest, routes []Route) []FetchTask {
	dates := req.Dates()
	tasks := make([]FetchTask, 0, len(routes)*len(dates))
	for _, r := range routes {
		for _, d := range dates {
			tasks = append(tasks, FetchTask{
				Endpoint:    endpoint,
				Account:     r.Account,
				Credentials: r.Credentials,
				StoreIDs:    []string{r.StoreID},
				Start:       d,
				End:         d,
				Date:        d,
			})
		}
	}
	return tasks
}
