// Package series defines the canonical time-series shape exchanged between
// the data client, cache, forecaster, and presentation collaborators, and the
// normalizer that produces it from raw provider records.
package series

import (
	"time"

	"macrotrends/internal/catalog"
)

// RawRecord is a single provider observation as returned by the data client.
// A nil Value is a provider gap, which is distinct from zero.
type RawRecord struct {
	CountryCode   string
	CountryName   string
	IndicatorCode string
	Year          int
	Value         *float64
}

// Point is one year of a normalized series. Present is false for provider
// gaps; Value is meaningless when Present is false.
type Point struct {
	Year    int     `json:"year"`
	Value   float64 `json:"value"`
	Present bool    `json:"present"`
}

// TimeSeries is the canonical ordered series for one (country, indicator)
// pair. Points cover a contiguous, strictly increasing year range; gaps are
// explicit absent points, never dropped indices.
type TimeSeries struct {
	Country   catalog.CountryKey   `json:"country"`
	Indicator catalog.IndicatorKey `json:"indicator"`
	Points    []Point              `json:"points"`
	FetchedAt time.Time            `json:"fetched_at"`
}

// StartYear returns the first year covered by the series.
func (ts *TimeSeries) StartYear() int {
	if len(ts.Points) == 0 {
		return 0
	}
	return ts.Points[0].Year
}

// EndYear returns the last year covered by the series.
func (ts *TimeSeries) EndYear() int {
	if len(ts.Points) == 0 {
		return 0
	}
	return ts.Points[len(ts.Points)-1].Year
}

// Value returns the value for a year and whether it is present.
func (ts *TimeSeries) Value(year int) (float64, bool) {
	if len(ts.Points) == 0 || year < ts.StartYear() || year > ts.EndYear() {
		return 0, false
	}
	p := ts.Points[year-ts.StartYear()]
	if !p.Present {
		return 0, false
	}
	return p.Value, true
}

// PresentCount returns the number of present points.
func (ts *TimeSeries) PresentCount() int {
	n := 0
	for _, p := range ts.Points {
		if p.Present {
			n++
		}
	}
	return n
}
