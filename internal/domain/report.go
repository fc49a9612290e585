package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrUnknownReportType = errors.New("tipo de relatório desconhecido")

type ReportType string

const (
	ReportSales        ReportType = "sales"
	ReportLabor        ReportType = "labor"
	ReportThirdParty   ReportType = "third-party"
	ReportDiscounts    ReportType = "discounts"
	ReportItemsSold    ReportType = "items-sold"
	ReportTransactions ReportType = "transactions"
	ReportCustom       ReportType = "custom"
)

var reportTypeLabels = map[ReportType]struct {
	title string
	file  string
}{
	ReportSales:        {"Sales Report", "Sales"},
	ReportLabor:        {"Labor Hours", "Labor"},
	ReportThirdParty:   {"3rd-Party Sales", "3rd-Party"},
	ReportDiscounts:    {"Discounts", "Discounts"},
	ReportItemsSold:    {"Items Sold", "Items-Sold"},
	ReportTransactions: {"Transactions", "Transactions"},
	ReportCustom:       {"Endpoint View", "Custom"},
}

func ReportTypes() []ReportType {
	return []ReportType{
		ReportSales,
		ReportLabor,
		ReportThirdParty,
		ReportDiscounts,
		ReportItemsSold,
		ReportTransactions,
		ReportCustom,
	}
}

func ParseReportType(s string) (ReportType, error) {
	t := ReportType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := reportTypeLabels[t]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownReportType, s)
	}
	return t, nil
}

// Title é o título exibido no cabeçalho do relatório
func (t ReportType) Title() string {
	return reportTypeLabels[t].title
}

// FileLabel é o prefixo usado nos arquivos exportados
func (t ReportType) FileLabel() string {
	return reportTypeLabels[t].file
}

type ReportRequest struct {
	Type      ReportType
	StartDate time.Time
	EndDate   time.Time
	StoreIDs  []string
	Endpoint  string
	Flatten   bool
	Preset    string // período pré-definido equivalente às datas, ou Custom
}

// Days retorna a quantidade de dias do intervalo, incluindo as duas pontas
func (r ReportRequest) Days() int {
	start := time.Date(r.StartDate.Year(), r.StartDate.Month(), r.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(r.EndDate.Year(), r.EndDate.Month(), r.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

func (r ReportRequest) SingleDay() bool {
	return r.Start() == r.End()
}

func (r ReportRequest) Start() string {
	return r.StartDate.Format(DateLayout)
}

func (r ReportRequest) End() string {
	return r.EndDate.Format(DateLayout)
}

// Dates lista cada dia do intervalo no formato YYYY-MM-DD
func (r ReportRequest) Dates() []string {
	var dates []string
	for d := r.StartDate; !d.After(r.EndDate); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates
}

type ColumnKind int

const (
	ColumnText ColumnKind = iota
	ColumnInteger
	ColumnMoney
	ColumnHours
	ColumnBlock
)

type Column struct {
	Key    string
	Header string
	Kind   ColumnKind
	Width  int
}

// Row é uma linha plana de métrica → valor (string ou float64)
type Row map[string]any

type Group struct {
	Title string
	Rows  []Row
	Empty string
}

type Section struct {
	Key        string
	Title      string
	GroupLabel string
	Columns    []Column
	Groups     []Group
}

type StoreOutcome string

const (
	OutcomeOK          StoreOutcome = "ok"
	OutcomeNoData      StoreOutcome = "no data"
	OutcomeRateLimited StoreOutcome = "rate limited"
	OutcomeFailed      StoreOutcome = "fetch failed"
)

type StoreStatus struct {
	StoreID string       `json:"store"`
	Account string       `json:"account,omitempty"`
	Outcome StoreOutcome `json:"outcome"`
	Message string       `json:"message,omitempty"`
}

type Report struct {
	ID          string
	Type        ReportType
	Title       string
	StartDate   string
	EndDate     string
	Stores      []string
	GeneratedAt time.Time
	Sections    []Section
	StoreStatus []StoreStatus
	Notices     []string
}

func (r *Report) Range() string {
	return fmt.Sprintf("%s → %s", r.StartDate, r.EndDate)
}

// Subject é o assunto usado nos e-mails do relatório
func (r *Report) Subject() string {
	return fmt.Sprintf("%s – %s", r.Title, r.Range())
}

func (r *Report) Section(key string) *Section {
	for i := range r.Sections {
		if r.Sections[i].Key == key {
			return &r.Sections[i]
		}
	}
	return nil
}

func (r *Report) Status(storeID string) (StoreStatus, bool) {
	for _, st := range r.StoreStatus {
		if st.StoreID == storeID {
			return st, true
		}
	}
	return StoreStatus{}, false
}

func (s *Section) Group(title string) *Group {
	for i := range s.Groups {
		if s.Groups[i].Title == title {
			return &s.Groups[i]
		}
	}
	return nil
}

// ReportRequestBody é o pedido de relatório como chega pela API ou pela CLI.
// Preset, quando informado e diferente de Custom, substitui as datas.
type ReportRequestBody struct {
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Preset    string   `json:"preset,omitempty"`
	Stores    []string `json:"stores,omitempty"`
	Endpoint  string   `json:"endpoint,omitempty"`
	Flatten   bool     `json:"flatten,omitempty"`
}
