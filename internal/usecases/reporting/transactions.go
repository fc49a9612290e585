package reporting

import (
	"sort"
	"strings"
	"time"

	liveiqdomain "github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/domain"
	"github.com/vfg2006/liveiq-reports/infrastructure/integrator/liveiq/liveiqclient"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/log"
	"github.com/vfg2006/liveiq-reports/pkg/utils"
)

const (
	fieldNet         = "net"
	fieldEatIn       = "eat_in"
	fieldToGo        = "to_go"
	fieldDelivery    = "delivery"
	fieldAvgTicket   = "avg_ticket"
	fieldVoidCount   = "void_count"
	fieldVoidTotal   = "void_total"
	fieldRefundCount = "refund_count"
	fieldRefundTotal = "refund_total"

	columnTime     = "time"
	columnType     = "type"
	columnReceipt  = "receipt"
	columnClerk    = "clerk"
	columnChannel  = "channel"
	columnSaleType = "sale_type"
	columnSource   = "order_source"
	columnProvider = "delivery_provider"
	columnPartner  = "delivery_partner"
	fieldNetTotal  = "net_total"
	fieldAmount    = "amount"
	fieldTxnUnits  = "units"
	fieldTxnTotal  = "total"
	fieldTxnTax    = "tax"
)

var transactionFields = []string{
	fieldSales, fieldNet, fieldTax, fieldUnits, fieldTxns,
	fieldEatIn, fieldToGo, fieldDelivery,
	fieldVoidCount, fieldVoidTotal, fieldRefundCount, fieldRefundTotal,
}

type transactionsModule struct{}

func (transactionsModule) Type() domain.ReportType { return domain.ReportTransactions }

func (transactionsModule) MaxDays() int { return 7 }

func (transactionsModule) Plan(req *domain.ReportRequest, routes []Route) []FetchTask {
	return perStoreDayTasks(liveiqclient.TransactionSummary, req, routes)
}

func (transactionsModule) NewAccumulator(req *domain.ReportRequest) Accumulator {
	return &transactionsAccumulator{
		req:     req,
		summary: NewAggregator(transactionFields...),
	}
}

type transaction struct {
	store    string
	date     string
	time     string
	kind     string
	receipt  string
	clerk    string
	channel  string
	saleType string
	units    int
	source   string
	provider string
	partner  string
	total    float64
	netTotal float64
	tax      float64
}

type transactionsAccumulator struct {
	req          *domain.ReportRequest
	transactions []transaction
	summary      *Aggregator
}

func (a *transactionsAccumulator) Fold(task FetchTask, payload []byte) error {
	records, err := liveiqdomain.DecodeRecords(payload)
	if err != nil {
		return err
	}

	sid := task.StoreIDs[0]
	for _, rec := range records {
		date := rec.DateKey()
		if date == "" {
			date = task.Date
		}
		if _, err := time.Parse(domain.DateLayout, date); err != nil {
			log.L.WithFields(log.Fields{"store": sid, "date": date}).Warn("Transação com data inválida ignorada")
			continue
		}

		txn := transaction{
			store:    sid,
			date:     date,
			time:     clockTime(rec.String("time")),
			kind:     rec.StringOr("Unknown", "type"),
			receipt:  rec.StringOr("N/A", "receiptNumber"),
			clerk:    rec.StringOr("Unknown", "clerkName"),
			channel:  rec.String("channel"),
			saleType: rec.String("saleType"),
			units:    rec.Int("units"),
			source:   rec.String("orderSource"),
			provider: rec.String("deliveryProvider"),
			partner:  rec.String("deliveryPartner"),
			total:    rec.Float("total"),
			netTotal: rec.Float("netTotal"),
			tax:      rec.Float("tax"),
		}
		a.transactions = append(a.transactions, txn)
		a.summary.Add(sid, date, txn.metrics())
	}
	return nil
}

// clockTime extrai HH:MM:SS de um timestamp ISO; outros formatos passam direto
func clockTime(raw string) string {
	i := strings.Index(raw, "T")
	if i < 0 {
		return raw
	}
	t := raw[i+1:]
	if j := strings.Index(t, "."); j >= 0 {
		t = t[:j]
	}
	return t
}

func (t transaction) metrics() Metrics {
	m := Metrics{
		fieldSales: t.total,
		fieldNet:   t.netTotal,
		fieldTax:   t.tax,
		fieldUnits: float64(t.units),
		fieldTxns:  1,
	}

	switch strings.ToLower(t.saleType) {
	case "eatin":
		m[fieldEatIn] = 1
	case "togo":
		m[fieldToGo] = 1
	case "delivery":
		m[fieldDelivery] = 1
	}

	switch strings.ToLower(t.kind) {
	case "void":
		m[fieldVoidCount] = 1
		m[fieldVoidTotal] = t.total
	case "refund":
		m[fieldRefundCount] = 1
		m[fieldRefundTotal] = t.total
	}
	return m
}

func (t transaction) voidOrRefund() bool {
	k := strings.ToLower(t.kind)
	return k == "void" || k == "refund"
}

func (a *transactionsAccumulator) HasData(storeID string) bool {
	return a.summary.HasStore(storeID)
}

// summaryRow acrescenta o ticket médio, calculado a partir das somas
func summaryRow(m Metrics, extra domain.Row) domain.Row {
	row := metricsRow(m, extra)
	row[fieldAvgTicket] = 0.0
	if m[fieldTxns] > 0 {
		row[fieldAvgTicket] = m[fieldSales] / m[fieldTxns]
	}
	return row
}

func summaryColumns(first domain.Column) []domain.Column {
	return []domain.Column{
		first,
		moneyCol(fieldSales, "TotSales", 9),
		moneyCol(fieldNet, "TotNet", 9),
		moneyCol(fieldTax, "TotTax", 8),
		countCol(fieldUnits, "TotUnits", 8),
		countCol(fieldTxns, "TotTxns", 7),
		countCol(fieldEatIn, "EatIn", 5),
		countCol(fieldToGo, "ToGo", 5),
		countCol(fieldDelivery, "Deliv", 5),
		moneyCol(fieldAvgTicket, "AvgTx$", 7),
		countCol(fieldVoidCount, "Void#", 5),
		moneyCol(fieldVoidTotal, "Void$", 8),
		countCol(fieldRefundCount, "Rfund#", 6),
		moneyCol(fieldRefundTotal, "Rfund$", 8),
	}
}

func (a *transactionsAccumulator) sorted() []transaction {
	list := append([]transaction(nil), a.transactions...)
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].store != list[j].store {
			return utils.StoreLess(list[i].store, list[j].store)
		}
		if list[i].date != list[j].date {
			return list[i].date < list[j].date
		}
		if list[i].time != list[j].time {
			return list[i].time < list[j].time
		}
		return list[i].receipt < list[j].receipt
	})
	return list
}

func (a *transactionsAccumulator) Build(report *domain.Report) {
	list := a.sorted()

	detail := domain.Section{
		Key:        "transactions",
		Title:      "Transactions",
		GroupLabel: "Store",
		Columns: []domain.Column{
			textCol(columnDate, "Date", 10),
			textCol(columnTime, "Time", 8),
			textCol(columnType, "Type", 5),
			textCol(columnReceipt, "Receipt", 10),
			textCol(columnClerk, "Clerk", 20),
			textCol(columnChannel, "Channel", 20),
			textCol(columnSaleType, "Sale Type", 10),
			countCol(fieldTxnUnits, "Units", 5),
			textCol(columnSource, "Order Source", 20),
			textCol(columnProvider, "Delivery Provider", 15),
			textCol(columnPartner, "Delivery Partner", 15),
			moneyCol(fieldTxnTotal, "Total", 9),
			moneyCol(fieldNetTotal, "Net Total", 9),
			moneyCol(fieldTxnTax, "Tax", 8),
		},
	}
	for _, sid := range report.Stores {
		group := domain.Group{Title: "Transactions for Store " + sid, Empty: "No transactions for this store."}
		for _, t := range list {
			if t.store != sid {
				continue
			}
			group.Rows = append(group.Rows, domain.Row{
				columnDate:     t.date,
				columnTime:     t.time,
				columnType:     t.kind,
				columnReceipt:  t.receipt,
				columnClerk:    truncate(t.clerk, 20),
				columnChannel:  truncate(t.channel, 20),
				columnSaleType: truncate(t.saleType, 10),
				fieldTxnUnits:  float64(t.units),
				columnSource:   truncate(t.source, 20),
				columnProvider: truncate(t.provider, 15),
				columnPartner:  truncate(t.partner, 15),
				fieldTxnTotal:  t.total,
				fieldNetTotal:  t.netTotal,
				fieldTxnTax:    t.tax,
			})
		}
		detail.Groups = append(detail.Groups, group)
	}
	report.Sections = append(report.Sections, detail)

	var summaries []domain.Row
	for _, sid := range report.Stores {
		summaries = append(summaries, summaryRow(a.summary.StoreSummary(sid), domain.Row{columnStore: sid}))
	}
	report.Sections = append(report.Sections, domain.Section{
		Key:     "store_summaries",
		Title:   "Store Summaries",
		Columns: summaryColumns(textCol(columnStore, "Store", 6)),
		Groups:  singleGroup(summaries, ""),
	})

	if !a.req.SingleDay() {
		perDay := domain.Section{
			Key:        "per_day",
			Title:      "Per-Day Summary",
			GroupLabel: "Date",
			Columns:    summaryColumns(textCol(columnStore, "Store", 6)),
		}
		for _, date := range a.summary.Dates() {
			day := a.summary.Daily(date)
			group := domain.Group{Title: date}
			for _, sid := range a.summary.Stores() {
				if m, ok := day[sid]; ok {
					group.Rows = append(group.Rows, summaryRow(m, domain.Row{columnStore: sid}))
				}
			}
			perDay.Groups = append(perDay.Groups, group)
		}
		report.Sections = append(report.Sections, perDay)

		perStore := domain.Section{
			Key:        "per_store",
			Title:      "Per-Store Breakdown",
			GroupLabel: "Store",
			Columns:    summaryColumns(textCol(columnDate, "Date", 10)),
		}
		for _, sid := range report.Stores {
			group := domain.Group{Title: sid, Empty: "No transactions for this store."}
			for _, date := range a.summary.Dates() {
				if m, ok := a.summary.DailyRow(sid, date); ok {
					group.Rows = append(group.Rows, summaryRow(m, domain.Row{columnDate: date}))
				}
			}
			perStore.Groups = append(perStore.Groups, group)
		}
		report.Sections = append(report.Sections, perStore)
	}

	var voids []domain.Row
	for _, sid := range report.Stores {
		m := a.summary.StoreSummary(sid)
		voids = append(voids, domain.Row{
			columnStore:      sid,
			fieldVoidCount:   m[fieldVoidCount],
			fieldVoidTotal:   m[fieldVoidTotal],
			fieldRefundCount: m[fieldRefundCount],
			fieldRefundTotal: m[fieldRefundTotal],
		})
	}
	report.Sections = append(report.Sections, domain.Section{
		Key:   "void_refund_summary",
		Title: "Void/Refund Summary",
		Columns: []domain.Column{
			textCol(columnStore, "Store", 6),
			countCol(fieldVoidCount, "Void #", 6),
			moneyCol(fieldVoidTotal, "Void $", 8),
			countCol(fieldRefundCount, "Refund #", 8),
			moneyCol(fieldRefundTotal, "Refund $", 8),
		},
		Groups: singleGroup(voids, ""),
	})

	var voided []domain.Row
	for _, t := range list {
		if !t.voidOrRefund() {
			continue
		}
		voided = append(voided, domain.Row{
			columnStore:   t.store,
			columnDate:    t.date,
			columnTime:    t.time,
			columnType:    t.kind,
			columnReceipt: t.receipt,
			columnClerk:   truncate(t.clerk, 15),
			fieldAmount:   t.total,
		})
	}
	report.Sections = append(report.Sections, domain.Section{
		Key:   "voided_refunded",
		Title: "Voided/Refunded Transactions",
		Columns: []domain.Column{
			textCol(columnStore, "Store", 6),
			textCol(columnDate, "Date", 10),
			textCol(columnTime, "Time", 8),
			textCol(columnType, "Type", 5),
			textCol(columnReceipt, "Receipt #", 9),
			textCol(columnClerk, "Clerk", 15),
			moneyCol(fieldAmount, "Amount $", 8),
		},
		Groups: singleGroup(voided, "No voided or refunded transactions."),
	})
}
