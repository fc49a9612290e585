package reporting

import (
	"sort"

	"github.com/vfg2006/liveiq-reports/pkg/utils"
)

const noDate = "(no date)"

// Metrics soma valores por nome de campo
type Metrics map[string]float64

func (m Metrics) Add(other Metrics) {
	for k, v := range other {
		m[k] += v
	}
}

func (m Metrics) Clone() Metrics {
	out := make(Metrics, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Aggregator acumula métricas por loja e por dia. O resumo da loja é sempre
// a soma das linhas diárias, porque as duas visões recebem os mesmos Add.
type Aggregator struct {
	fields []string
	stores map[string]Metrics
	daily  map[string]map[string]Metrics
}

func NewAggregator(fields ...string) *Aggregator {
	return &Aggregator{
		fields: fields,
		stores: make(map[string]Metrics),
		daily:  make(map[string]map[string]Metrics),
	}
}

func (a *Aggregator) Fields() []string {
	return a.fields
}

func (a *Aggregator) Add(storeID, date string, m Metrics) {
	if date == "" {
		date = noDate
	}

	if _, ok := a.stores[storeID]; !ok {
		a.stores[storeID] = a.empty()
	}
	a.stores[storeID].Add(m)

	byStore, ok := a.daily[date]
	if !ok {
		byStore = make(map[string]Metrics)
		a.daily[date] = byStore
	}
	if _, ok := byStore[storeID]; !ok {
		byStore[storeID] = a.empty()
	}
	byStore[storeID].Add(m)
}

func (a *Aggregator) HasStore(storeID string) bool {
	_, ok := a.stores[storeID]
	return ok
}

// StoreSummary devolve a soma de todos os dias da loja (zerada se a loja não tiver dados)
func (a *Aggregator) StoreSummary(storeID string) Metrics {
	if m, ok := a.stores[storeID]; ok {
		return m.Clone()
	}
	return a.empty()
}

// Daily devolve as métricas de cada loja no dia
func (a *Aggregator) Daily(date string) map[string]Metrics {
	out := make(map[string]Metrics, len(a.daily[date]))
	for storeID, m := range a.daily[date] {
		out[storeID] = m.Clone()
	}
	return out
}

// DailyRow devolve a métrica de uma loja em um dia
func (a *Aggregator) DailyRow(storeID, date string) (Metrics, bool) {
	m, ok := a.daily[date][storeID]
	if !ok {
		return nil, false
	}
	return m.Clone(), true
}

// DayTotal soma todas as lojas de um dia
func (a *Aggregator) DayTotal(date string) Metrics {
	total := a.empty()
	for _, m := range a.daily[date] {
		total.Add(m)
	}
	return total
}

func (a *Aggregator) Dates() []string {
	dates := make([]string, 0, len(a.daily))
	for d := range a.daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

func (a *Aggregator) Stores() []string {
	stores := make([]string, 0, len(a.stores))
	for s := range a.stores {
		stores = append(stores, s)
	}
	utils.SortStoreIDs(stores)
	return stores
}

func (a *Aggregator) GrandTotal() Metrics {
	total := a.empty()
	for _, m := range a.stores {
		total.Add(m)
	}
	return total
}

func (a *Aggregator) empty() Metrics {
	m := make(Metrics, len(a.fields))
	for _, f := range a.fields {
		m[f] = 0
	}
	return m
}
