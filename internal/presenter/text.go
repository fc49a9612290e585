package presenter

import (
	"bufio"
	"io"
	"strings"

	"github.com/vfg2006/liveiq-reports/internal/domain"
)

const separator = "─"

type textRenderer struct{}

func (textRenderer) Render(w io.Writer, report *domain.Report) error {
	bw := bufio.NewWriter(w)
	for _, line := range TextLines(report) {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// TextLines monta a versão em texto do relatório, linha a linha. É também a
// base dos formatos PDF e do corpo exibido pela CLI.
func TextLines(report *domain.Report) []string {
	lines := headerLines(report)

	for _, notice := range report.Notices {
		lines = append(lines, "⚠️ "+notice)
	}

	for _, section := range sections(report) {
		lines = append(lines, "", "=== "+section.Title+" ===")
		lines = append(lines, sectionLines(section)...)
	}
	return lines
}

func sectionLines(section domain.Section) []string {
	var lines []string
	header := headerRow(section.Columns)
	rule := strings.Repeat(separator, len([]rune(header)))

	for i, group := range section.Groups {
		if group.Title != "" {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, group.Title)
		}

		if block, ok := blockColumn(section.Columns); ok {
			for _, row := range group.Rows {
				lines = append(lines, strings.Split(formatCell(block, row[block.Key]), "\n")...)
			}
			if len(group.Rows) == 0 && group.Empty != "" {
				lines = append(lines, group.Empty)
			}
			continue
		}

		lines = append(lines, header, rule)
		for _, row := range group.Rows {
			lines = append(lines, dataRow(section.Columns, row))
		}
		if len(group.Rows) == 0 && group.Empty != "" {
			lines = append(lines, group.Empty)
		}
		lines = append(lines, rule)
	}
	return lines
}

func blockColumn(cols []domain.Column) (domain.Column, bool) {
	if len(cols) == 1 && cols[0].Kind == domain.ColumnBlock {
		return cols[0], true
	}
	return domain.Column{}, false
}

func headerRow(cols []domain.Column) string {
	cells := make([]string, len(cols))
	for i, col := range cols {
		cells[i] = pad(col.Header, columnWidth(col), rightAligned(col))
	}
	return strings.TrimRight(strings.Join(cells, "  "), " ")
}

func dataRow(cols []domain.Column, row domain.Row) string {
	cells := make([]string, len(cols))
	for i, col := range cols {
		cells[i] = pad(formatCell(col, row[col.Key]), columnWidth(col), rightAligned(col))
	}
	return strings.TrimRight(strings.Join(cells, "  "), " ")
}
