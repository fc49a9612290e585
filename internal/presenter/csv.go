package presenter

import (
	"encoding/csv"
	"io"

	"github.com/vfg2006/liveiq-reports/internal/domain"
)

type csvRenderer struct{}

// Render grava o cabeçalho, uma linha em branco e cada seção com o título,
// os nomes das colunas e as linhas. Seções agrupadas ganham a coluna do grupo.
func (csvRenderer) Render(w io.Writer, report *domain.Report) error {
	cw := csv.NewWriter(w)

	for _, line := range headerLines(report) {
		if err := cw.Write([]string{line}); err != nil {
			return err
		}
	}
	for _, notice := range report.Notices {
		if err := cw.Write([]string{"Notice", notice}); err != nil {
			return err
		}
	}

	for _, section := range sections(report) {
		if err := cw.Write([]string{}); err != nil {
			return err
		}
		if err := cw.Write([]string{section.Title}); err != nil {
			return err
		}

		header := make([]string, 0, len(section.Columns)+1)
		if section.GroupLabel != "" {
			header = append(header, section.GroupLabel)
		}
		for _, col := range section.Columns {
			header = append(header, col.Header)
		}
		if err := cw.Write(header); err != nil {
			return err
		}

		for _, group := range section.Groups {
			for _, row := range group.Rows {
				record := make([]string, 0, len(header))
				if section.GroupLabel != "" {
					record = append(record, group.Title)
				}
				for _, col := range section.Columns {
					record = append(record, formatCell(col, row[col.Key]))
				}
				if err := cw.Write(record); err != nil {
					return err
				}
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
