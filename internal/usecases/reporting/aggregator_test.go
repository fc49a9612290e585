package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregatorStoreSummaryMatchesDailyRows(t *testing.T) {
	agg := NewAggregator("sales", "txns")

	agg.Add("200", "2024-01-02", Metrics{"sales": 10.1, "txns": 1})
	agg.Add("200", "2024-01-01", Metrics{"sales": 20.2, "txns": 2})
	agg.Add("35", "2024-01-01", Metrics{"sales": 5})
	agg.Add("200", "2024-01-02", Metrics{"sales": 0.3, "txns": 1})

	assert.Equal(t, []string{"35", "200"}, agg.Stores())
	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, agg.Dates())

	for _, sid := range agg.Stores() {
		sum := Metrics{}
		for _, date := range agg.Dates() {
			if m, ok := agg.DailyRow(sid, date); ok {
				sum.Add(m)
			}
		}
		summary := agg.StoreSummary(sid)
		for _, f := range agg.Fields() {
			assert.InDelta(t, summary[f], sum[f], 1e-6, "loja %s campo %s", sid, f)
		}
	}

	assert.InDelta(t, 35.6, agg.GrandTotal()["sales"], 1e-9)
	assert.InDelta(t, 25.2, agg.DayTotal("2024-01-01")["sales"], 1e-9)
	assert.Equal(t, 0.0, agg.StoreSummary("999")["sales"])
	assert.False(t, agg.HasStore("999"))
}

func TestAggregatorMissingDate(t *testing.T) {
	agg := NewAggregator("sales")
	agg.Add("1", "", Metrics{"sales": 1})

	assert.Equal(t, []string{"(no date)"}, agg.Dates())
}
