package presenter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		ID:          "r-1",
		Type:        domain.ReportSales,
		Title:       "Sales Report",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-02",
		Stores:      []string{"25", "300"},
		GeneratedAt: time.Date(2024, 1, 3, 8, 30, 0, 0, time.UTC),
		Sections: []domain.Section{
			{
				Key:   "store_summary",
				Title: "Store Summary",
				Columns: []domain.Column{
					{Key: "store", Header: "Store", Kind: domain.ColumnText, Width: 6},
					{Key: "sales", Header: "Sales", Kind: domain.ColumnMoney, Width: 10},
					{Key: "txns", Header: "Txns", Kind: domain.ColumnInteger, Width: 5},
				},
				Groups: []domain.Group{{Rows: []domain.Row{
					{"store": "25", "sales": 1234.5, "txns": 10.0},
					{"store": "300", "sales": 0.1 + 0.2, "txns": 2.0},
				}}},
			},
			{
				Key:        "per_store",
				Title:      "Per-Store Breakdown",
				GroupLabel: "Store",
				Columns: []domain.Column{
					{Key: "date", Header: "Date", Kind: domain.ColumnText, Width: 10},
					{Key: "sales", Header: "Sales", Kind: domain.ColumnMoney, Width: 10},
				},
				Groups: []domain.Group{
					{Title: "25", Rows: []domain.Row{{"date": "2024-01-01", "sales": 1234.5}}},
					{Title: "300", Empty: "No data for this store."},
				},
			},
		},
		StoreStatus: []domain.StoreStatus{
			{StoreID: "25", Account: "Conta A", Outcome: domain.OutcomeOK},
			{StoreID: "300", Account: "Conta B", Outcome: domain.OutcomeRateLimited},
		},
		Notices: []string{"Account Conta B disabled due to rate limits. Clear via Check Rate Limits."},
	}
}

func render(t *testing.T, format Format, report *domain.Report) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, report, format))
	return buf.Bytes()
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "minúsculo", input: "csv", want: FormatCSV},
		{name: "maiúsculo com ponto", input: ".PDF", want: FormatPDF},
		{name: "xlsx", input: " xlsx ", want: FormatXLSX},
		{name: "desconhecido", input: "doc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	for _, format := range []Format{FormatTXT, FormatCSV, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			first := render(t, format, sampleReport())
			second := render(t, format, sampleReport())
			assert.Equal(t, first, second)
		})
	}
}

func TestTextLines(t *testing.T) {
	lines := TextLines(sampleReport())

	assert.Equal(t, []string{
		"Sales Report: 2024-01-01 → 2024-01-02",
		"Generated on 2024-01-03 08:30:00",
		"Date Range: 2024-01-01 to 2024-01-02",
		"Stores: 25, 300",
		"⚠️ Account Conta B disabled due to rate limits. Clear via Check Rate Limits.",
		"",
		"=== Store Summary ===",
	}, lines[:7])

	out := strings.Join(lines, "\n")
	assert.Contains(t, out, "1234.50")
	assert.Contains(t, out, "0.30")
	assert.Contains(t, out, "No data for this store.")
	assert.Contains(t, out, "=== Store Status ===")
	assert.Contains(t, out, "rate limited")
}

func TestCSVRender(t *testing.T) {
	out := string(render(t, FormatCSV, sampleReport()))

	assert.True(t, strings.HasPrefix(out, "Sales Report: 2024-01-01 → 2024-01-02\n"))
	assert.Contains(t, out, "Notice,Account Conta B disabled due to rate limits. Clear via Check Rate Limits.\n")
	assert.Contains(t, out, "\nStore,Sales,Txns\n25,1234.50,10\n300,0.30,2\n")
	assert.Contains(t, out, "\nStore,Date,Sales\n25,2024-01-01,1234.50\n")
}

func TestJSONRender(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal(render(t, FormatJSON, sampleReport()), &doc))

	assert.Equal(t, "2024-01-03T08:30:00Z", doc.GeneratedAt)
	require.Len(t, doc.Sections, 2)
	rows := doc.Sections[0].Groups[0].Rows
	assert.Equal(t, 1234.5, rows[0]["sales"])
	assert.Equal(t, 0.3, rows[1]["sales"])
	assert.Equal(t, 10.0, rows[0]["txns"])
	assert.Empty(t, doc.Sections[1].Groups[1].Rows)
	assert.Len(t, doc.StoreStatus, 2)
}

func TestPDFRender(t *testing.T) {
	out := render(t, FormatPDF, sampleReport())
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestXLSXRender(t *testing.T) {
	out := render(t, FormatXLSX, sampleReport())

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Report", "Store Summary", "Per-Store Breakdown", "Store Status"}, f.GetSheetList())

	title, err := f.GetCellValue("Report", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Sales Report: 2024-01-01 → 2024-01-02", title)

	group, err := f.GetCellValue("Per-Store Breakdown", "A2")
	require.NoError(t, err)
	assert.Equal(t, "25", group)
}

func TestSheetName(t *testing.T) {
	used := map[string]bool{"Report": true}

	assert.Equal(t, "Daily Breakdown", sheetName("Daily Breakdown", used))
	assert.Equal(t, "Daily Breakdown (2)", sheetName("Daily Breakdown", used))
	assert.Equal(t, "Sales Summary (2024-01-01-2024-", sheetName("Sales Summary (2024-01-01/2024-01-02)", used))
	assert.Len(t, []rune(sheetName("Per-Discount Averages and Other Totals", used)), 31)
}

func TestDisplayCell(t *testing.T) {
	money := domain.Column{Kind: domain.ColumnMoney}
	count := domain.Column{Kind: domain.ColumnInteger}
	hours := domain.Column{Kind: domain.ColumnHours}
	text := domain.Column{Kind: domain.ColumnText}

	assert.Equal(t, "12,345.60", displayCell(money, 12345.6))
	assert.Equal(t, "1,200", displayCell(count, 1199.6))
	assert.Equal(t, "1234.50", displayCell(hours, 1234.5))
	assert.Equal(t, "Footlong", displayCell(text, "Footlong"))
	assert.Equal(t, "", displayCell(money, nil))
}
