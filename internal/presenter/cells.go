package presenter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vfg2006/liveiq-reports/internal/domain"
	"github.com/vfg2006/liveiq-reports/pkg/utils"
)

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// formatCell converte o valor de acordo com o tipo da coluna
func formatCell(col domain.Column, v any) string {
	if v == nil {
		return ""
	}

	switch col.Kind {
	case domain.ColumnInteger:
		if n, ok := numeric(v); ok {
			return strconv.FormatInt(int64(math.Round(n)), 10)
		}
	case domain.ColumnMoney, domain.ColumnHours:
		if n, ok := numeric(v); ok {
			return strconv.FormatFloat(n, 'f', 2, 64)
		}
	}

	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// displayCell agrupa milhares nos números; usado só no PDF, que não precisa
// bater byte a byte com TXT e CSV
func displayCell(col domain.Column, v any) string {
	n, ok := numeric(v)
	if !ok {
		return formatCell(col, v)
	}

	switch col.Kind {
	case domain.ColumnInteger:
		return utils.FormatCount(int(math.Round(n)))
	case domain.ColumnMoney:
		return utils.FormatMoney(n)
	}
	return formatCell(col, v)
}

// cellValue devolve o valor tipado usado em JSON e XLSX
func cellValue(col domain.Column, v any) any {
	switch col.Kind {
	case domain.ColumnInteger:
		if n, ok := numeric(v); ok {
			return int64(math.Round(n))
		}
	case domain.ColumnMoney, domain.ColumnHours:
		if n, ok := numeric(v); ok {
			return math.Round(n*100) / 100
		}
	}
	if v == nil {
		return ""
	}
	return formatCell(col, v)
}

func rightAligned(col domain.Column) bool {
	switch col.Kind {
	case domain.ColumnInteger, domain.ColumnMoney, domain.ColumnHours:
		return true
	}
	return false
}

func columnWidth(col domain.Column) int {
	w := col.Width
	if n := utf8.RuneCountInString(col.Header); n > w {
		w = n
	}
	return w
}

func pad(s string, width int, right bool) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	fill := strings.Repeat(" ", width-n)
	if right {
		return fill + s
	}
	return s + fill
}
