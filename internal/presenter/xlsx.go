package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Report"
	maxSheetName  = 31
	defaultSheet  = "Sheet1"
	moneyNumFmt   = 2 // 0.00
	integerNumFmt = 1 // 0
)

type xlsxRenderer struct{}

type xlsxStyles struct {
	bold    int
	money   int
	integer int
}

// Render cria uma aba de resumo e uma aba por seção
func (xlsxRenderer) Render(w io.Writer, report *domain.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, summarySheet); err != nil {
		return errors.Wrap(err, "erro ao renomear aba")
	}

	styles, err := newXLSXStyles(f)
	if err != nil {
		return err
	}

	row := 1
	for _, line := range headerLines(report) {
		if err := setRow(f, summarySheet, row, []any{line}); err != nil {
			return err
		}
		row++
	}
	for _, notice := range report.Notices {
		if err := setRow(f, summarySheet, row, []any{"Notice", notice}); err != nil {
			return err
		}
		row++
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", styles.bold); err != nil {
		return errors.Wrap(err, "erro ao aplicar estilo")
	}

	used := map[string]bool{summarySheet: true}
	for _, section := range sections(report) {
		name := sheetName(section.Title, used)
		if _, err := f.NewSheet(name); err != nil {
			return errors.Wrapf(err, "erro ao criar aba %s", name)
		}
		if err := writeSection(f, name, section, styles); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

func newXLSXStyles(f *excelize.File) (xlsxStyles, error) {
	var s xlsxStyles
	var err error

	if s.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return s, errors.Wrap(err, "erro ao criar estilo")
	}
	if s.money, err = f.NewStyle(&excelize.Style{NumFmt: moneyNumFmt}); err != nil {
		return s, errors.Wrap(err, "erro ao criar estilo")
	}
	if s.integer, err = f.NewStyle(&excelize.Style{NumFmt: integerNumFmt}); err != nil {
		return s, errors.Wrap(err, "erro ao criar estilo")
	}
	return s, nil
}

func writeSection(f *excelize.File, sheet string, section domain.Section, styles xlsxStyles) error {
	offset := 0
	header := make([]any, 0, len(section.Columns)+1)
	if section.GroupLabel != "" {
		header = append(header, section.GroupLabel)
		offset = 1
	}
	for _, col := range section.Columns {
		header = append(header, col.Header)
	}

	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, styles.bold); err != nil {
		return errors.Wrap(err, "erro ao aplicar estilo")
	}

	r := 2
	for _, group := range section.Groups {
		for _, row := range group.Rows {
			values := make([]any, 0, len(header))
			if offset == 1 {
				values = append(values, group.Title)
			}
			for _, col := range section.Columns {
				values = append(values, cellValue(col, row[col.Key]))
			}
			if err := setRow(f, sheet, r, values); err != nil {
				return err
			}

			for i, col := range section.Columns {
				style := 0
				switch col.Kind {
				case domain.ColumnMoney, domain.ColumnHours:
					style = styles.money
				case domain.ColumnInteger:
					style = styles.integer
				}
				if style == 0 {
					continue
				}
				cell, _ := excelize.CoordinatesToCellName(i+1+offset, r)
				if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
					return errors.Wrap(err, "erro ao aplicar estilo")
				}
			}
			r++
		}
	}

	for i, col := range section.Columns {
		name, _ := excelize.ColumnNumberToName(i + 1 + offset)
		width := float64(columnWidth(col) + 2)
		if col.Width == 0 {
			width = 60
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return errors.Wrap(err, "erro ao ajustar coluna")
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.Wrap(err, "coordenada inválida")
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "erro ao gravar linha %d da aba %s", row, sheet)
	}
	return nil
}

// sheetName remove caracteres proibidos, limita a 31 caracteres e evita repetição
func sheetName(title string, used map[string]bool) string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '-'
		}
		return r
	}, title)
	clean = strings.TrimSpace(clean)
	if clean == "" {
		clean = "Section"
	}

	name := truncateRunes(clean, maxSheetName)
	for i := 2; used[name]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		name = truncateRunes(clean, maxSheetName-len(suffix)) + suffix
	}
	used[name] = true
	return name
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
