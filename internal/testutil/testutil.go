// Package testutil provides World Bank response fixtures and a mock series
// fetcher shared by package tests and the integration test.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"macrotrends/internal/series"
)

// Obs is one (year, value) observation used to build response fixtures. A nil
// Value renders as JSON null, the provider's representation of a gap.
type Obs struct {
	Year  int
	Value *float64
}

// Float returns a pointer to v, for building Obs values inline.
func Float(v float64) *float64 {
	return &v
}

// WorldBankPage renders one page of a World Bank v2 indicator response:
// a two-element JSON array of [pagination metadata, observation rows].
func WorldBankPage(countryCode, countryName, indicatorCode string, page, pages int, observations []Obs) string {
	rows := make([]map[string]any, 0, len(observations))
	for _, o := range observations {
		rows = append(rows, map[string]any{
			"indicator":       map[string]string{"id": indicatorCode, "value": ""},
			"country":         map[string]string{"id": countryCode, "value": countryName},
			"countryiso3code": countryCode,
			"date":            fmt.Sprintf("%d", o.Year),
			"value":           o.Value,
			"unit":            "",
			"obs_status":      "",
			"decimal":         0,
		})
	}

	meta := map[string]any{
		"page":     page,
		"pages":    pages,
		"per_page": len(observations),
		"total":    len(observations) * pages,
	}

	body, err := json.Marshal([]any{meta, rows})
	if err != nil {
		panic(err)
	}
	return string(body)
}

// WorldBankErrorEnvelope renders the provider's rejected-request shape: a 200
// response whose single array element carries a message list.
func WorldBankErrorEnvelope(id, key, value string) string {
	body, err := json.Marshal([]any{
		map[string]any{
			"message": []map[string]string{
				{"id": id, "key": key, "value": value},
			},
		},
	})
	if err != nil {
		panic(err)
	}
	return string(body)
}

// MockSeriesFetcher is a mock implementation of the service.SeriesFetcher
// interface for testing. Calls counts FetchSeries invocations.
type MockSeriesFetcher struct {
	FetchFunc func(ctx context.Context, countryCode, indicatorCode string, startYear, endYear int) ([]series.RawRecord, error)
	Calls     atomic.Int64
}

// FetchSeries implements the SeriesFetcher interface
func (m *MockSeriesFetcher) FetchSeries(ctx context.Context, countryCode, indicatorCode string, startYear, endYear int) ([]series.RawRecord, error) {
	m.Calls.Add(1)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, countryCode, indicatorCode, startYear, endYear)
	}
	return nil, nil
}

// Records builds raw records with present values for every listed year.
func Records(countryCode, indicatorCode string, values map[int]float64) []series.RawRecord {
	out := make([]series.RawRecord, 0, len(values))
	for year, value := range values {
		v := value
		out = append(out, series.RawRecord{
			CountryCode:   countryCode,
			IndicatorCode: indicatorCode,
			Year:          year,
			Value:         &v,
		})
	}
	return out
}
