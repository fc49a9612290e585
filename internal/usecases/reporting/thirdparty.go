package reporting

import (
	"strings"

	liveiqdomain "github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/domain"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/internal/domain"
)

const (
	fieldTotalSales = "total_sales"
	fieldTotalNet   = "total_net"
	fieldTotalTxns  = "total_txns"
	totalLabel      = "Total"
)

// thirdPartyProvider é um parceiro de entrega e o prefixo das suas colunas
type thirdPartyProvider struct {
	name   string
	prefix string
}

var thirdPartyProviders = []thirdPartyProvider{
	{name: "doordash", prefix: "DD"},
	{name: "grubhub", prefix: "GH"},
	{name: "uber", prefix: "UE"},
	{name: "ezcater", prefix: "EC"},
}

func (p thirdPartyProvider) txnsField() string  { return strings.ToLower(p.prefix) + "_txns" }
func (p thirdPartyProvider) netField() string   { return strings.ToLower(p.prefix) + "_net" }
func (p thirdPartyProvider) salesField() string { return strings.ToLower(p.prefix) + "_sales" }

func thirdPartyFields() []string {
	fields := []string{fieldTotalSales, fieldTotalNet, fieldTotalTxns}
	for _, p := range thirdPartyProviders {
		fields = append(fields, p.txnsField(), p.netField(), p.salesField())
	}
	return fields
}

func thirdPartyColumns(first domain.Column) []domain.Column {
	cols := []domain.Column{
		first,
		moneyCol(fieldTotalSales, "TotSales", 10),
		moneyCol(fieldTotalNet, "TotNet", 10),
		countCol(fieldTotalTxns, "TotTxns", 8),
	}
	for _, p := range thirdPartyProviders {
		cols = append(cols,
			countCol(p.txnsField(), p.prefix+"-T", 6),
			moneyCol(p.netField(), p.prefix+"-N", 8),
			moneyCol(p.salesField(), p.prefix+"-S", 8),
		)
	}
	return cols
}

type thirdPartyModule struct{}

func (thirdPartyModule) Type() domain.ReportType { return domain.ReportThirdParty }

func (thirdPartyModule) MaxDays() int { return 7 }

func (thirdPartyModule) Plan(req *domain.ReportRequest, routes []Route) []FetchTask {
	return perStoreDayTasks(liveiqclient.ThirdPartySalesSummary, req, routes)
}

func (thirdPartyModule) NewAccumulator(req *domain.ReportRequest) Accumulator {
	return &thirdPartyAccumulator{
		req: req,
		agg: NewAggregator(thirdPartyFields()...),
	}
}

type thirdPartyAccumulator struct {
	req *domain.ReportRequest
	agg *Aggregator
}

func (a *thirdPartyAccumulator) Fold(task FetchTask, payload []byte) error {
	rec, err := liveiqdomain.DecodeFirst(payload)
	if err != nil {
		return err
	}
	if len(rec) == 0 {
		return nil
	}

	m := Metrics{
		fieldTotalSales: rec.Float("totalSales"),
		fieldTotalNet:   rec.Float("totalNetSales"),
		fieldTotalTxns:  rec.Float("totalTransactions"),
	}

	byProvider := make(map[string]liveiqdomain.Record)
	for _, p := range rec.Records("providers") {
		byProvider[strings.ToLower(p.String("provider"))] = p
	}
	for _, p := range thirdPartyProviders {
		pr := byProvider[p.name]
		m[p.txnsField()] = pr.Float("transactions")
		m[p.netField()] = pr.Float("netSales")
		m[p.salesField()] = pr.Float("sales")
	}

	a.agg.Add(task.StoreIDs[0], task.Date, m)
	return nil
}

// HasData considera apenas lojas com vendas ou transações no período
func (a *thirdPartyAccumulator) HasData(storeID string) bool {
	if !a.agg.HasStore(storeID) {
		return false
	}
	m := a.agg.StoreSummary(storeID)
	return m[fieldTotalSales] > 0 || m[fieldTotalTxns] > 0
}

func (a *thirdPartyAccumulator) Build(report *domain.Report) {
	storeCols := thirdPartyColumns(textCol(columnStore, "Store", 6))

	title := "Third-Party Summary"
	if !a.req.SingleDay() {
		title = "Third-Party Summary (All Days)"
	}

	var rows []domain.Row
	grand := NewAggregator(thirdPartyFields()...)
	for _, sid := range a.agg.Stores() {
		if !a.HasData(sid) {
			continue
		}
		m := a.agg.StoreSummary(sid)
		grand.Add(totalLabel, "", m)
		rows = append(rows, metricsRow(m, domain.Row{columnStore: sid}))
	}
	if len(rows) > 0 {
		rows = append(rows, metricsRow(grand.StoreSummary(totalLabel), domain.Row{columnStore: totalLabel}))
	}
	report.Sections = append(report.Sections, domain.Section{
		Key:     "summary",
		Title:   title,
		Columns: storeCols,
		Groups:  singleGroup(rows, "No third-party sales."),
	})

	if !a.req.SingleDay() {
		daily := domain.Section{Key: "daily", Title: "Per-Day Third-Party Summary", GroupLabel: "Date", Columns: storeCols}
		for _, date := range a.agg.Dates() {
			day := a.agg.Daily(date)
			group := domain.Group{Title: date}
			for _, sid := range a.agg.Stores() {
				if m, ok := day[sid]; ok {
					group.Rows = append(group.Rows, metricsRow(m, domain.Row{columnStore: sid}))
				}
			}
			if len(group.Rows) > 0 {
				group.Rows = append(group.Rows, metricsRow(a.agg.DayTotal(date), domain.Row{columnStore: totalLabel}))
			}
			daily.Groups = append(daily.Groups, group)
		}
		report.Sections = append(report.Sections, daily)
	}

	perStore := domain.Section{
		Key:        "per_store",
		Title:      "Per-Store Breakdown",
		GroupLabel: "Store",
		Columns:    thirdPartyColumns(textCol(columnDate, "Date", 10)),
	}
	for _, sid := range report.Stores {
		group := domain.Group{Title: sid, Empty: "No data for this store."}
		for _, date := range a.agg.Dates() {
			if m, ok := a.agg.DailyRow(sid, date); ok {
				group.Rows = append(group.Rows, metricsRow(m, domain.Row{columnDate: date}))
			}
		}
		perStore.Groups = append(perStore.Groups, group)
	}
	report.Sections = append(report.Sections, perStore)
}
