package utils

import (
	"math"
	"sort"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatMoney agrupa milhares: 1234.5 -> "1,234.50"
func FormatMoney(f float64) string {
	return printer.Sprintf("%.2f", RoundWithTwoDecimalPlace(f))
}

// FormatCount agrupa milhares em inteiros: 12345 -> "12,345"
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// SortStoreIDs ordena números de loja numericamente; IDs não numéricos vão para o fim em ordem alfabética
func SortStoreIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		return StoreLess(ids[i], ids[j])
	})
}

func StoreLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
