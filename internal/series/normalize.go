package series

import (
	"fmt"
	"time"

	"macrotrends/internal/catalog"
)

// Normalize converts raw provider records into a canonical series covering
// [startYear, endYear] inclusive. Every year in the range gets exactly one
// point; years the provider did not return become absent points. Records
// outside the range are dropped. When the provider returns two records for
// the same year (revised figures), the later record in input order wins.
func Normalize(country catalog.CountryKey, indicator catalog.IndicatorKey, records []RawRecord, startYear, endYear int) (*TimeSeries, error) {
	if startYear > endYear {
		return nil, fmt.Errorf("series: start year %d after end year %d", startYear, endYear)
	}

	points := make([]Point, endYear-startYear+1)
	for i := range points {
		points[i] = Point{Year: startYear + i}
	}

	for _, rec := range records {
		if rec.Year < startYear || rec.Year > endYear {
			continue
		}
		if rec.Value == nil {
			points[rec.Year-startYear] = Point{Year: rec.Year}
			continue
		}
		points[rec.Year-startYear] = Point{Year: rec.Year, Value: *rec.Value, Present: true}
	}

	return &TimeSeries{
		Country:   country,
		Indicator: indicator,
		Points:    points,
		FetchedAt: time.Now().UTC(),
	}, nil
}
