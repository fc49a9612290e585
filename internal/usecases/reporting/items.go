package reporting

import (
	"sort"
	"strings"

	liveiqdomain "github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/domain"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/internal/domain"
)

const (
	columnPLU      = "plu"
	fieldTotalCnt  = "total_count"
	fieldTotalSold = "total_sales"
)

type itemsSoldModule struct{}

func (itemsSoldModule) Type() domain.ReportType { return domain.ReportItemsSold }

func (itemsSoldModule) MaxDays() int { return 7 }

func (itemsSoldModule) Plan(req *domain.ReportRequest, routes []Route) []FetchTask {
	return perStoreDayTasks(liveiqclient.TransactionDetails, req, routes)
}

func (itemsSoldModule) NewAccumulator(req *domain.ReportRequest) Accumulator {
	return &itemsAccumulator{
		req:    req,
		all:    make(map[itemKey]*itemTotals),
		daily:  make(map[string]map[itemKey]*itemTotals),
		stores: make(map[string]map[itemKey]*itemTotals),
		totals: NewAggregator(fieldTotalCnt, fieldTotalSold),
	}
}

type itemKey struct {
	description string
	plu         string
}

type itemTotals struct {
	count float64
	total float64
}

type itemsAccumulator struct {
	req    *domain.ReportRequest
	all    map[itemKey]*itemTotals
	daily  map[string]map[itemKey]*itemTotals
	stores map[string]map[itemKey]*itemTotals
	totals *Aggregator
}

func (a *itemsAccumulator) Fold(task FetchTask, payload []byte) error {
	transactions, err := liveiqdomain.DecodeRecords(payload)
	if err != nil {
		return err
	}

	sid := task.StoreIDs[0]
	for _, it := range flattenItems(transactions) {
		if !strings.EqualFold(it.String("type"), "sale") {
			continue
		}

		key := itemKey{
			description: it.StringOr("Unknown", "description"),
			plu:         it.StringOr("N/A", "plu"),
		}
		qty := 1.0
		if it.Has("quantity") {
			qty = it.Float("quantity")
		}
		price := it.Float("adjustedPrice") * qty

		addItem(a.all, key, qty, price)
		addItem(bucket(a.daily, task.Date), key, qty, price)
		addItem(bucket(a.stores, sid), key, qty, price)
		a.totals.Add(sid, task.Date, Metrics{fieldTotalCnt: qty, fieldTotalSold: price})
	}
	return nil
}

func bucket(m map[string]map[itemKey]*itemTotals, key string) map[itemKey]*itemTotals {
	b, ok := m[key]
	if !ok {
		b = make(map[itemKey]*itemTotals)
		m[key] = b
	}
	return b
}

func addItem(m map[itemKey]*itemTotals, key itemKey, qty, price float64) {
	t, ok := m[key]
	if !ok {
		t = &itemTotals{}
		m[key] = t
	}
	t.count += qty
	t.total += price
}

func (a *itemsAccumulator) HasData(storeID string) bool {
	return a.totals.HasStore(storeID)
}

// itemRows ordena por quantidade decrescente; empates por descrição e PLU
func itemRows(m map[itemKey]*itemTotals) []domain.Row {
	keys := make([]itemKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := m[keys[i]].count, m[keys[j]].count
		if ci != cj {
			return ci > cj
		}
		if keys[i].description != keys[j].description {
			return keys[i].description < keys[j].description
		}
		return keys[i].plu < keys[j].plu
	})

	rows := make([]domain.Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, domain.Row{
			columnDesc: k.description,
			columnPLU:  k.plu,
			fieldCount: m[k].count,
			fieldTotal: m[k].total,
		})
	}
	return rows
}

func (a *itemsAccumulator) Build(report *domain.Report) {
	itemCols := []domain.Column{
		textCol(columnDesc, "Description", 25),
		textCol(columnPLU, "PLU", 6),
		countCol(fieldCount, "Count", 10),
		moneyCol(fieldTotal, "Total", 10),
	}

	title := "All Items Sold"
	if !a.req.SingleDay() {
		title = "All Items Sold (Aggregated)"
	}
	report.Sections = append(report.Sections, domain.Section{
		Key:     "all_items",
		Title:   title,
		Columns: itemCols,
		Groups:  singleGroup(itemRows(a.all), "No items sold."),
	})

	if !a.req.SingleDay() {
		daily := domain.Section{Key: "daily", Title: "Items Sold per Day", GroupLabel: "Date", Columns: itemCols}
		for _, date := range sortedKeys(a.daily) {
			daily.Groups = append(daily.Groups, domain.Group{
				Title: "Items Sold on " + date,
				Rows:  itemRows(a.daily[date]),
			})
		}
		report.Sections = append(report.Sections, daily)
	}

	var storeRows []domain.Row
	for _, sid := range a.totals.Stores() {
		storeRows = append(storeRows, metricsRow(a.totals.StoreSummary(sid), domain.Row{columnStore: sid}))
	}
	report.Sections = append(report.Sections, domain.Section{
		Key:   "store_summary",
		Title: "Store Summary",
		Columns: []domain.Column{
			textCol(columnStore, "Store", 6),
			countCol(fieldTotalCnt, "Total Count", 12),
			moneyCol(fieldTotalSold, "Total Sales", 12),
		},
		Groups: singleGroup(storeRows, "No items sold."),
	})

	perStore := domain.Section{Key: "per_store", Title: "Per-Store Item Summaries", GroupLabel: "Store", Columns: itemCols}
	for _, sid := range report.Stores {
		perStore.Groups = append(perStore.Groups, domain.Group{
			Title: "Items Sold at Store " + sid,
			Rows:  itemRows(a.stores[sid]),
			Empty: "No items sold at this store.",
		})
	}
	report.Sections = append(report.Sections, perStore)
}
