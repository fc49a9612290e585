package presenter

import (
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/vfg2006/liveiq-reports/internal/domain"
)

const (
	pdfFontSize   = 7.0
	pdfLineHeight = 3.6
	// largura de um caractere Courier em mm para pdfFontSize
	pdfCharWidth = pdfFontSize * 0.6 * 25.4 / 72
)

type pdfRenderer struct{}

// Render gera um PDF paisagem com uma tabela por grupo. As fontes padrão do
// PDF usam cp1252, por isso os textos passam pelo tradutor do gofpdf.
func (pdfRenderer) Render(w io.Writer, report *domain.Report) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(report.Title, true)
	pdf.SetCreationDate(report.GeneratedAt)
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string {
		return tr(strings.ReplaceAll(s, "→", "->"))
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	header := headerLines(report)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, text(header[0]), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range header[1:] {
		pdf.CellFormat(0, 5, text(line), "", 1, "L", false, 0, "")
	}
	for _, notice := range report.Notices {
		pdf.SetTextColor(180, 0, 0)
		pdf.CellFormat(0, 5, text(notice), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}

	for _, section := range sections(report) {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, text(section.Title), "", 1, "L", false, 0, "")

		widths := pdfWidths(section.Columns, usable)

		for _, group := range section.Groups {
			if group.Title != "" {
				pdf.SetFont("Helvetica", "B", 9)
				pdf.CellFormat(0, 5, text(group.Title), "", 1, "L", false, 0, "")
			}

			if block, ok := blockColumn(section.Columns); ok {
				pdf.SetFont("Courier", "", pdfFontSize)
				for _, row := range group.Rows {
					pdf.MultiCell(usable, pdfLineHeight, text(formatCell(block, row[block.Key])), "", "L", false)
				}
				if len(group.Rows) == 0 && group.Empty != "" {
					pdf.CellFormat(0, pdfLineHeight, text(group.Empty), "", 1, "L", false, 0, "")
				}
				continue
			}

			pdf.SetFont("Courier", "B", pdfFontSize)
			pdf.SetFillColor(230, 230, 230)
			for i, col := range section.Columns {
				pdf.CellFormat(widths[i], pdfLineHeight+1, text(col.Header), "1", 0, pdfAlign(col), true, 0, "")
			}
			pdf.Ln(-1)

			pdf.SetFont("Courier", "", pdfFontSize)
			for _, row := range group.Rows {
				for i, col := range section.Columns {
					pdf.CellFormat(widths[i], pdfLineHeight, text(displayCell(col, row[col.Key])), "1", 0, pdfAlign(col), false, 0, "")
				}
				pdf.Ln(-1)
			}
			if len(group.Rows) == 0 && group.Empty != "" {
				pdf.CellFormat(0, pdfLineHeight, text(group.Empty), "", 1, "L", false, 0, "")
			}
		}
	}

	return pdf.Output(w)
}

// pdfWidths distribui a largura útil proporcionalmente à largura de cada coluna
func pdfWidths(cols []domain.Column, usable float64) []float64 {
	widths := make([]float64, len(cols))
	var total float64
	for i, col := range cols {
		chars := columnWidth(col)
		if chars == 0 || col.Width == 0 {
			chars = 30
		}
		widths[i] = float64(chars+1) * pdfCharWidth
		total += widths[i]
	}

	if total > usable {
		scale := usable / total
		for i := range widths {
			widths[i] *= scale
		}
	}
	return widths
}

func pdfAlign(col domain.Column) string {
	if rightAligned(col) {
		return "R"
	}
	return "L"
}
