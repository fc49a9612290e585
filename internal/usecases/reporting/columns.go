package reporting

import (
	"github.com/vfg2006/liveiq-reports/internal/domain"
)

func textCol(key, header string, width int) domain.Column {
	return domain.Column{Key: key, Header: header, Kind: domain.ColumnText, Width: width}
}

func countCol(key, header string, width int) domain.Column {
	return domain.Column{Key: key, Header: header, Kind: domain.ColumnInteger, Width: width}
}

func moneyCol(key, header string, width int) domain.Column {
	return domain.Column{Key: key, Header: header, Kind: domain.ColumnMoney, Width: width}
}

func hoursCol(key, header string, width int) domain.Column {
	return domain.Column{Key: key, Header: header, Kind: domain.ColumnHours, Width: width}
}

func blockCol(key, header string) domain.Column {
	return domain.Column{Key: key, Header: header, Kind: domain.ColumnBlock}
}

// metricsRow copia as métricas para uma linha, acrescentando os campos extras
func metricsRow(m Metrics, extra domain.Row) domain.Row {
	row := make(domain.Row, len(m)+len(extra))
	for k, v := range m {
		row[k] = v
	}
	for k, v := range extra {
		row[k] = v
	}
	return row
}

func singleGroup(rows []domain.Row, empty string) []domain.Group {
	return []domain.Group{{Rows: rows, Empty: empty}}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
