package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenJSON(t *testing.T) {
	var v any
	require.NoError(t, json.Unmarshal([]byte(`{
		"b": 1,
		"a": {"x": [10, {"y": "z"}], "n": null}
	}`), &v))

	assert.Equal(t, []FlatField{
		{Key: "a.n", Value: nil},
		{Key: "a.x[0]", Value: 10.0},
		{Key: "a.x[1].y", Value: "z"},
		{Key: "b", Value: 1.0},
	}, FlattenJSON(v))
}

func TestFormatScalar(t *testing.T) {
	assert.Equal(t, "None", FormatScalar(nil))
	assert.Equal(t, "12345", FormatScalar(12345.0))
	assert.Equal(t, "1.5", FormatScalar(1.5))
	assert.Equal(t, "True", FormatScalar(true))
	assert.Equal(t, "abc", FormatScalar("abc"))
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson([]byte(`{"a":1}`)))
	assert.Equal(t, "nada", PrettyJson([]byte("nada")))
}

func TestSortStoreIDs(t *testing.T) {
	ids := []string{"200", "35", "abc", "1000", "7"}
	SortStoreIDs(ids)
	assert.Equal(t, []string{"7", "35", "200", "1000", "abc"}, ids)
}

func TestFormatNumbers(t *testing.T) {
	assert.Equal(t, "1,234.50", FormatMoney(1234.5))
	assert.Equal(t, "0.00", FormatMoney(0))
	assert.Equal(t, "12,345", FormatCount(12345))
	assert.Equal(t, 2.35, RoundWithTwoDecimalPlace(2.345000001))
}

func TestGenerateSuffix(t *testing.T) {
	suffix, err := GenerateSuffix()
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{4}$`), suffix)
}
