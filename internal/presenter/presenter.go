package presenter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/liveiq-reports/internal/domain"
)

var ErrUnknownFormat = errors.New("formato de exportação desconhecido")

type Format string

const (
	FormatTXT  Format = "txt"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

var contentTypes = map[Format]string{
	FormatTXT:  "text/plain; charset=utf-8",
	FormatCSV:  "text/csv; charset=utf-8",
	FormatJSON: "application/json",
	FormatPDF:  "application/pdf",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

func Formats() []Format {
	return []Format{FormatTXT, FormatCSV, FormatJSON, FormatPDF, FormatXLSX}
}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	if _, ok := contentTypes[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

func (f Format) Extension() string {
	return string(f)
}

func (f Format) ContentType() string {
	return contentTypes[f]
}

// Renderer escreve o documento do relatório em um formato de saída
type Renderer interface {
	Render(w io.Writer, report *domain.Report) error
}

func NewRenderer(format Format) (Renderer, error) {
	switch format {
	case FormatTXT:
		return textRenderer{}, nil
	case FormatCSV:
		return csvRenderer{}, nil
	case FormatJSON:
		return jsonRenderer{}, nil
	case FormatPDF:
		return pdfRenderer{}, nil
	case FormatXLSX:
		return xlsxRenderer{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Render é um atalho para NewRenderer + Render
func Render(w io.Writer, report *domain.Report, format Format) error {
	r, err := NewRenderer(format)
	if err != nil {
		return err
	}
	return r.Render(w, report)
}

// headerLines são as linhas de abertura comuns a todos os formatos
func headerLines(report *domain.Report) []string {
	return []string{
		fmt.Sprintf("%s: %s", report.Title, report.Range()),
		"Generated on " + report.GeneratedAt.Format("2006-01-02 15:04:05"),
		fmt.Sprintf("Date Range: %s to %s", report.StartDate, report.EndDate),
		"Stores: " + strings.Join(report.Stores, ", "),
	}
}

var statusColumns = []domain.Column{
	{Key: "store", Header: "Store", Kind: domain.ColumnText, Width: 6},
	{Key: "account", Header: "Account", Kind: domain.ColumnText, Width: 20},
	{Key: "outcome", Header: "Outcome", Kind: domain.ColumnText, Width: 12},
	{Key: "message", Header: "Message", Kind: domain.ColumnText},
}

// statusSection transforma o resultado por loja em uma seção comum
func statusSection(report *domain.Report) domain.Section {
	rows := make([]domain.Row, 0, len(report.StoreStatus))
	for _, st := range report.StoreStatus {
		rows = append(rows, domain.Row{
			"store":   st.StoreID,
			"account": st.Account,
			"outcome": string(st.Outcome),
			"message": st.Message,
		})
	}
	return domain.Section{
		Key:     "store_status",
		Title:   "Store Status",
		Columns: statusColumns,
		Groups:  []domain.Group{{Rows: rows}},
	}
}

// sections devolve as seções do relatório seguidas do status por loja
func sections(report *domain.Report) []domain.Section {
	out := append([]domain.Section{}, report.Sections...)
	if len(report.StoreStatus) > 0 {
		out = append(out, statusSection(report))
	}
	return out
}
