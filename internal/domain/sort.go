package domain

import "strings"

// SortField names a sortable campaign column. Profit is a pseudo-field
// computed at sort time.
type SortField string

const (
	SortByName      SortField = "name"
	SortByStartDate SortField = "startDate"
	SortByEndDate   SortField = "endDate"
	SortByClicks    SortField = "clicks"
	SortByCost      SortField = "cost"
	SortByRevenue   SortField = "revenue"
	SortByProfit    SortField = "profit"
)

// SortDirection is the order applied to the active sort field.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ParseSortField maps a raw column name onto a SortField. The second
// return value reports whether the name is a known column.
func ParseSortField(s string) (SortField, bool) {
	switch SortField(s) {
	case SortByName, SortByStartDate, SortByEndDate, SortByClicks, SortByCost, SortByRevenue, SortByProfit:
		return SortField(s), true
	}
	return "", false
}

// Compare resolves the comparison value of both campaigns for the given
// field and returns -1, 0 or +1. Name compares lexicographically; date
// fields compare as parsed instants; profit is computed from revenue and
// cost; everything else compares numerically.
func Compare(a, b Campaign, field SortField) int {
	if field == SortByName {
		return strings.Compare(a.Name, b.Name)
	}

	av := numericValue(a, field)
	bv := numericValue(b, field)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	}
	return 0
}

func numericValue(c Campaign, field SortField) float64 {
	switch field {
	case SortByStartDate:
		return DateValue(c.StartDate)
	case SortByEndDate:
		return DateValue(c.EndDate)
	case SortByClicks:
		return float64(c.Clicks)
	case SortByCost:
		return c.Cost
	case SortByRevenue:
		return c.Revenue
	case SortByProfit:
		return c.Profit()
	}
	return 0
}
