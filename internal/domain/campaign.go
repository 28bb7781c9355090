package domain

import "time"

// Campaign is a single marketing campaign record. Dates are kept in their
// ISO-8601 wire form; this is also the persisted shape.
type Campaign struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Clicks    int     `json:"clicks"`
	Cost      float64 `json:"cost"`
	Revenue   float64 `json:"revenue"`
}

// Profit returns revenue minus cost. It is derived on demand and never
// part of the persisted record.
func (c Campaign) Profit() float64 {
	return c.Revenue - c.Cost
}

// CampaignView is a Campaign with the computed profit column, as handed
// to the rendering layer.
type CampaignView struct {
	Campaign
	Profit float64 `json:"profit"`
}

// date layouts accepted when resolving a date field for comparison
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// DateValue parses an ISO-8601 date into an epoch-seconds comparison value.
// Absent or unparseable dates resolve to 0 so they sort as a well-defined
// degenerate case rather than failing.
func DateValue(s string) float64 {
	if s == "" {
		return 0
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return float64(t.Unix())
		}
	}
	return 0
}
