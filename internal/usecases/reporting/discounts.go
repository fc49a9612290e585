package reporting

import (
	"fmt"
	"sort"
	"strings"

	liveiqdomain "github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/domain"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/utils"
)

const (
	fieldCount    = "count"
	fieldOrig     = "orig"
	fieldAdj      = "adj"
	fieldDiscount = "discount"
	fieldTotal    = "total"
	fieldSave     = "save"
	columnCode    = "code"
	columnDesc    = "description"
)

type discountsModule struct{}

func (discountsModule) Type() domain.ReportType { return domain.ReportDiscounts }

func (discountsModule) MaxDays() int { return 7 }

func (discountsModule) Plan(req *domain.ReportRequest, routes []Route) []FetchTask {
	return perStoreDayTasks(liveiqclient.TransactionDetails, req, routes)
}

func (discountsModule) NewAccumulator(req *domain.ReportRequest) Accumulator {
	return &discountsAccumulator{
		req:        req,
		discounts:  make(map[string]*discountEntry),
		daily:      make(map[string]map[string]*discountTotals),
		storeItems: make(map[string]map[string]*discountTotals),
		stores:     NewAggregator(fieldCount, fieldSave),
	}
}

// discountTotals guarda somas; as médias saem na montagem do relatório
type discountTotals struct {
	count int
	orig  float64
	adj   float64
	save  float64
}

func (t *discountTotals) add(orig, adj float64) {
	t.count++
	t.orig += orig
	t.adj += adj
	t.save += orig - adj
}

// row calcula preço médio original, ajustado, desconto unitário e total
func (t *discountTotals) row(extra domain.Row) domain.Row {
	row := domain.Row{fieldCount: float64(t.count)}
	if t.count > 0 {
		avgOrig := t.orig / float64(t.count)
		avgAdj := t.adj / float64(t.count)
		unit := utils.RoundWithTwoDecimalPlace(avgOrig - avgAdj)
		row[fieldOrig] = avgOrig
		row[fieldAdj] = avgAdj
		row[fieldDiscount] = unit
		row[fieldTotal] = unit * float64(t.count)
	}
	for k, v := range extra {
		row[k] = v
	}
	return row
}

type discountEntry struct {
	key    string
	code   string
	desc   string
	totals discountTotals
	stores map[string]*discountTotals
}

type discountsAccumulator struct {
	req        *domain.ReportRequest
	discounts  map[string]*discountEntry
	daily      map[string]map[string]*discountTotals
	storeItems map[string]map[string]*discountTotals
	stores     *Aggregator
}

func (a *discountsAccumulator) Fold(task FetchTask, payload []byte) error {
	transactions, err := liveiqdomain.DecodeRecords(payload)
	if err != nil {
		return err
	}

	sid := task.StoreIDs[0]
	for _, it := range flattenItems(transactions) {
		a.scan(sid, task.Date, it)
	}
	return nil
}

func (a *discountsAccumulator) scan(sid, date string, it liveiqdomain.Record) {
	code := strings.TrimSpace(it.String("discountCode"))
	if code == "" {
		return
	}

	orig := it.Float("originalPrice")
	adj := orig
	if it.Has("adjustedPrice") {
		adj = it.Float("adjustedPrice")
	}
	if orig-adj <= 0 {
		return
	}

	desc := strings.TrimSpace(it.String("discount", "description"))
	key := code + "|" + desc

	entry, ok := a.discounts[key]
	if !ok {
		entry = &discountEntry{key: key, code: code, desc: desc, stores: make(map[string]*discountTotals)}
		a.discounts[key] = entry
	}
	entry.totals.add(orig, adj)
	totalsFor(entry.stores, sid).add(orig, adj)

	if _, ok := a.daily[date]; !ok {
		a.daily[date] = make(map[string]*discountTotals)
	}
	totalsFor(a.daily[date], key).add(orig, adj)

	if _, ok := a.storeItems[sid]; !ok {
		a.storeItems[sid] = make(map[string]*discountTotals)
	}
	totalsFor(a.storeItems[sid], key).add(orig, adj)

	a.stores.Add(sid, date, Metrics{fieldCount: 1, fieldSave: orig - adj})
}

func totalsFor(m map[string]*discountTotals, key string) *discountTotals {
	t, ok := m[key]
	if !ok {
		t = &discountTotals{}
		m[key] = t
	}
	return t
}

func (a *discountsAccumulator) HasData(storeID string) bool {
	return a.stores.HasStore(storeID)
}

// sortedByCount ordena chaves pela contagem decrescente, desempatando pela chave
func sortedByCount(m map[string]*discountTotals) []string {
	keys := sortedKeys(m)
	sort.SliceStable(keys, func(i, j int) bool {
		return m[keys[i]].count > m[keys[j]].count
	})
	return keys
}

func (a *discountsAccumulator) entriesByCount() []*discountEntry {
	entries := make([]*discountEntry, 0, len(a.discounts))
	for _, k := range sortedKeys(a.discounts) {
		entries = append(entries, a.discounts[k])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].totals.count > entries[j].totals.count
	})
	return entries
}

func (a *discountsAccumulator) Build(report *domain.Report) {
	priceCols := []domain.Column{
		countCol(fieldCount, "Count", 5),
		moneyCol(fieldOrig, "Orig", 7),
		moneyCol(fieldAdj, "Adj", 7),
		moneyCol(fieldDiscount, "Disc", 7),
		moneyCol(fieldTotal, "Total", 9),
	}
	codeCols := append([]domain.Column{
		textCol(columnCode, "Code", 10),
		textCol(columnDesc, "Desc", 25),
	}, priceCols...)

	entries := a.entriesByCount()

	perDiscount := domain.Section{
		Key:        "discounts",
		Title:      "Discounts",
		GroupLabel: "Discount",
		Columns:    append([]domain.Column{textCol(columnStore, "Store", 6)}, priceCols...),
	}
	for _, e := range entries {
		group := domain.Group{Title: fmt.Sprintf("%s  (%s)", truncate(e.desc, 25), e.code)}
		stores := sortedKeys(e.stores)
		utils.SortStoreIDs(stores)
		for _, sid := range stores {
			group.Rows = append(group.Rows, e.stores[sid].row(domain.Row{columnStore: sid}))
		}
		perDiscount.Groups = append(perDiscount.Groups, group)
	}
	if len(perDiscount.Groups) == 0 {
		perDiscount.Groups = singleGroup(nil, "No discounts found.")
	}
	report.Sections = append(report.Sections, perDiscount)

	var summary []domain.Row
	for _, e := range entries {
		summary = append(summary, domain.Row{
			columnCode: e.code,
			columnDesc: e.desc,
			fieldCount: float64(e.totals.count),
			fieldTotal: e.totals.save,
		})
	}
	report.Sections = append(report.Sections, domain.Section{
		Key:   "summary",
		Title: "Per-Discount Averages",
		Columns: []domain.Column{
			textCol(columnCode, "Code", 10),
			textCol(columnDesc, "Desc", 25),
			countCol(fieldCount, "Count", 6),
			moneyCol(fieldTotal, "Total", 10),
		},
		Groups: singleGroup(summary, "No discounts found."),
	})

	if !a.req.SingleDay() {
		daily := domain.Section{Key: "daily", Title: "Daily Breakdown", GroupLabel: "Date", Columns: codeCols}
		for _, date := range sortedKeys(a.daily) {
			group := domain.Group{Title: date}
			for _, key := range sortedByCount(a.daily[date]) {
				e := a.discounts[key]
				group.Rows = append(group.Rows, a.daily[date][key].row(domain.Row{columnCode: e.code, columnDesc: e.desc}))
			}
			daily.Groups = append(daily.Groups, group)
		}
		report.Sections = append(report.Sections, daily)
	}

	perStore := domain.Section{Key: "per_store", Title: "Per-Store Discounts", GroupLabel: "Store", Columns: codeCols}
	for _, sid := range report.Stores {
		group := domain.Group{Title: sid, Empty: "No discounts for this store."}
		for _, key := range sortedByCount(a.storeItems[sid]) {
			e := a.discounts[key]
			group.Rows = append(group.Rows, a.storeItems[sid][key].row(domain.Row{columnCode: e.code, columnDesc: e.desc}))
		}
		perStore.Groups = append(perStore.Groups, group)
	}
	report.Sections = append(report.Sections, perStore)

	var storeRows []domain.Row
	for _, sid := range a.stores.Stores() {
		m := a.stores.StoreSummary(sid)
		storeRows = append(storeRows, domain.Row{columnStore: sid, fieldCount: m[fieldCount], fieldTotal: m[fieldSave]})
	}
	if len(storeRows) > 0 {
		g := a.stores.GrandTotal()
		storeRows = append(storeRows, domain.Row{columnStore: allStoresLabel, fieldCount: g[fieldCount], fieldTotal: g[fieldSave]})
	}
	report.Sections = append(report.Sections, domain.Section{
		Key:   "store_summary",
		Title: "Store Summary",
		Columns: []domain.Column{
			textCol(columnStore, "Store", 10),
			countCol(fieldCount, "Count", 6),
			moneyCol(fieldTotal, "Total", 10),
		},
		Groups: singleGroup(storeRows, "No discounts found."),
	})
}
