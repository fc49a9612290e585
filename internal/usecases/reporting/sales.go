package reporting

import (
	"fmt"

	liveiqdomain "github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/domain"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/internal/domain"
)

const (
	salesTagTop   = "top"
	salesTagDaily = "daily"

	fieldSales     = "sales"
	fieldTax       = "tax"
	fieldUnits     = "units"
	fieldTxns      = "txns"
	fieldCashCard  = "cash_card"
	fieldTPSales   = "third_party_sales"
	fieldTPTxns    = "third_party_txns"
	columnStore    = "store"
	columnDate     = "date"
	columnAccount  = "account"
	allStoresLabel = "All Stores"
)

var salesFields = []string{fieldSales, fieldTax, fieldUnits, fieldTxns, fieldCashCard, fieldTPSales, fieldTPTxns}

type salesModule struct{}

func (salesModule) Type() domain.ReportType { return domain.ReportSales }

func (salesModule) MaxDays() int { return 30 }

// Plan faz duas chamadas por loja: o resumo do período (ou do dia) e a quebra diária
func (salesModule) Plan(req *domain.ReportRequest, routes []Route) []FetchTask {
	top := liveiqclient.SalesSummary
	if req.SingleDay() {
		top = liveiqclient.DailySalesSummary
	}

	var tasks []FetchTask
	for _, t := range perStoreTasks(top, req, routes) {
		t.Tag = salesTagTop
		tasks = append(tasks, t)
	}
	for _, t := range perStoreTasks(liveiqclient.DailySalesSummary, req, routes) {
		t.Tag = salesTagDaily
		tasks = append(tasks, t)
	}
	return tasks
}

func (salesModule) NewAccumulator(req *domain.ReportRequest) Accumulator {
	return &salesAccumulator{
		req:   req,
		top:   make(map[string]Metrics),
		daily: NewAggregator(salesFields...),
	}
}

type salesAccumulator struct {
	req   *domain.ReportRequest
	top   map[string]Metrics
	daily *Aggregator
}

func salesMetrics(rec liveiqdomain.Record) Metrics {
	return Metrics{
		fieldSales:    rec.Float("netSales", "netSalesTotal"),
		fieldTax:      rec.Float("tax"),
		fieldUnits:    rec.Float("units", "unitCount"),
		fieldTxns:     rec.Float("transactions", "transactionCount"),
		fieldCashCard: rec.Float("cashCardTotal"),
		fieldTPSales:  rec.Float("thirdPartySales", "thirdPartySaleTotal"),
		fieldTPTxns:   rec.Float("thirdPartyTransactions", "thirdPartyTransactionCount"),
	}
}

func (a *salesAccumulator) Fold(task FetchTask, payload []byte) error {
	storeID := task.StoreIDs[0]

	if task.Tag == salesTagTop {
		rec, err := liveiqdomain.DecodeFirst(payload)
		if err != nil {
			return err
		}
		if len(rec) > 0 {
			a.top[storeID] = salesMetrics(rec)
		}
		return nil
	}

	records, err := liveiqdomain.DecodeRecords(payload)
	if err != nil {
		return err
	}
	for _, rec := range records {
		a.daily.Add(storeID, rec.DateKey(), salesMetrics(rec))
	}
	return nil
}

func (a *salesAccumulator) HasData(storeID string) bool {
	_, ok := a.top[storeID]
	return ok || a.daily.HasStore(storeID)
}

func salesColumns(first domain.Column) []domain.Column {
	return []domain.Column{
		first,
		moneyCol(fieldSales, "Sales", 10),
		moneyCol(fieldTax, "Tax", 8),
		countCol(fieldUnits, "Units", 5),
		countCol(fieldTxns, "Txns", 5),
		moneyCol(fieldCashCard, "Cash/Card", 10),
		moneyCol(fieldTPSales, "3rd $", 8),
		countCol(fieldTPTxns, "3rd Txns", 9),
	}
}

func (a *salesAccumulator) Build(report *domain.Report) {
	storeCols := salesColumns(textCol(columnStore, "Store", 6))
	dateCols := salesColumns(textCol(columnDate, "Date", 10))

	topTitle := fmt.Sprintf("Sales Summary (%s→%s)", a.req.Start(), a.req.End())
	if a.req.SingleDay() {
		topTitle = fmt.Sprintf("Daily Sales Summary (%s)", a.req.Start())
	}

	var entries []domain.Row
	for _, sid := range report.Stores {
		if m, ok := a.top[sid]; ok {
			entries = append(entries, metricsRow(m, domain.Row{columnStore: sid}))
		}
	}
	report.Sections = append(report.Sections, domain.Section{
		Key:     "entries",
		Title:   topTitle,
		Columns: storeCols,
		Groups:  singleGroup(entries, "No data available."),
	})

	var summary []domain.Row
	for _, sid := range a.daily.Stores() {
		summary = append(summary, metricsRow(a.daily.StoreSummary(sid), domain.Row{columnStore: sid}))
	}
	if len(summary) > 0 {
		summary = append(summary, metricsRow(a.daily.GrandTotal(), domain.Row{columnStore: allStoresLabel}))
	}
	report.Sections = append(report.Sections, domain.Section{
		Key:     "store_summary",
		Title:   "Store Summary",
		Columns: storeCols,
		Groups:  singleGroup(summary, "No data available."),
	})

	if !a.req.SingleDay() {
		perDay := domain.Section{Key: "per_day", Title: "Per-Day Sales Summary", GroupLabel: "Date", Columns: storeCols}
		for _, date := range a.daily.Dates() {
			day := a.daily.Daily(date)
			group := domain.Group{Title: date}
			for _, sid := range a.daily.Stores() {
				if m, ok := day[sid]; ok {
					group.Rows = append(group.Rows, metricsRow(m, domain.Row{columnStore: sid}))
				}
			}
			perDay.Groups = append(perDay.Groups, group)
		}
		report.Sections = append(report.Sections, perDay)
	}

	perStore := domain.Section{Key: "per_store", Title: "Per-Store Breakdown", GroupLabel: "Store", Columns: dateCols}
	for _, sid := range report.Stores {
		group := domain.Group{Title: sid, Empty: "No data for this store."}
		for _, date := range a.daily.Dates() {
			if m, ok := a.daily.DailyRow(sid, date); ok {
				group.Rows = append(group.Rows, metricsRow(m, domain.Row{columnDate: date}))
			}
		}
		perStore.Groups = append(perStore.Groups, group)
	}
	report.Sections = append(report.Sections, perStore)
}
