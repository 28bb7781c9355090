package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortField(t *testing.T) {
	for _, name := range []string{"name", "startDate", "endDate", "clicks", "cost", "revenue", "profit"} {
		field, ok := ParseSortField(name)
		assert.True(t, ok, name)
		assert.Equal(t, SortField(name), field)
	}

	_, ok := ParseSortField("budget")
	assert.False(t, ok)

	_, ok = ParseSortField("")
	assert.False(t, ok)
}

func TestCompareByProfitUsesDerivedValue(t *testing.T) {
	a := Campaign{ID: "a", Cost: 300, Revenue: 500} // profit 200
	b := Campaign{ID: "b", Cost: 10, Revenue: 100}  // profit 90

	assert.Equal(t, 1, Compare(a, b, SortByProfit))
	assert.Equal(t, -1, Compare(b, a, SortByProfit))
	assert.Equal(t, 0, Compare(a, a, SortByProfit))
}

func TestCompareByName(t *testing.T) {
	a := Campaign{Name: "Autumn"}
	b := Campaign{Name: "Winter"}

	assert.Equal(t, -1, Compare(a, b, SortByName))
	assert.Equal(t, 1, Compare(b, a, SortByName))
	assert.Equal(t, 0, Compare(a, a, SortByName))
}

func TestCompareByDateParsesInstants(t *testing.T) {
	early := Campaign{StartDate: "2024-01-01", EndDate: "2024-01-10"}
	late := Campaign{StartDate: "2024-06-01", EndDate: "2024-06-10"}

	assert.Equal(t, -1, Compare(early, late, SortByStartDate))
	assert.Equal(t, -1, Compare(early, late, SortByEndDate))
}

func TestDateValue(t *testing.T) {
	assert.Equal(t, float64(0), DateValue(""))
	assert.Equal(t, float64(0), DateValue("not-a-date"))
	assert.Greater(t, DateValue("2024-01-01"), float64(0))
	assert.Greater(t, DateValue("2024-01-01T12:00:00Z"), DateValue("2024-01-01"))
}

func TestProfitNeverStored(t *testing.T) {
	c := Campaign{Revenue: 500, Cost: 300}
	assert.Equal(t, 200.0, c.Profit())
}
