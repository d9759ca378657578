// Package service wires the catalog, data client, cache, normalizer, and
// forecaster into the request/response pipeline consumed by presentation
// collaborators. It is the only layer allowed to decide that a stale cache
// entry may be served in place of a failed live fetch.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"macrotrends/internal/cache"
	"macrotrends/internal/catalog"
	"macrotrends/internal/forecast"
	"macrotrends/internal/series"
	"macrotrends/internal/worldbank"
)

// SeriesFetcher is the data-client contract the service depends on. The
// worldbank.Client satisfies it; tests substitute mocks.
type SeriesFetcher interface {
	FetchSeries(ctx context.Context, countryCode, indicatorCode string, startYear, endYear int) ([]series.RawRecord, error)
}

// Service is the pipeline orchestrator. Each invocation is independent and
// stateless apart from the shared cache store.
type Service struct {
	fetcher SeriesFetcher
	store   *cache.Store
	now     func() time.Time
}

// New creates a Service around a data client and cache store.
func New(fetcher SeriesFetcher, store *cache.Store) *Service {
	return &Service{
		fetcher: fetcher,
		store:   store,
		now:     time.Now,
	}
}

// countryResult carries one country's outcome over the fan-out channel.
type countryResult struct {
	country catalog.CountryKey
	series  *series.TimeSeries
	err     error
}

// GetSeries retrieves the indicator series for every requested country,
// one concurrent fetch per country. Successfully retrieved countries are
// always returned; per-country failures are aggregated into the returned
// error so the caller can render partial results alongside the failures.
func (s *Service) GetSeries(ctx context.Context, countries []catalog.CountryKey, indicator catalog.IndicatorKey, startYear, endYear int, forceRefresh bool) (map[catalog.CountryKey]*series.TimeSeries, error) {
	if len(countries) == 0 {
		return nil, errors.New("no countries requested")
	}

	results := make(chan countryResult, len(countries))
	var wg sync.WaitGroup

	for _, country := range countries {
		wg.Add(1)
		go func(country catalog.CountryKey) {
			defer wg.Done()
			ts, err := s.getOne(ctx, country, indicator, startYear, endYear, forceRefresh)
			results <- countryResult{country: country, series: ts, err: err}
		}(country)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make(map[catalog.CountryKey]*series.TimeSeries, len(countries))
	var errs []error
	for result := range results {
		if result.err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", result.country.ISO3, result.err))
			continue
		}
		out[result.country] = result.series
	}

	return out, errors.Join(errs...)
}

// GetForecast retrieves one country's series (through the same cache path as
// GetSeries) and projects the next year's value.
func (s *Service) GetForecast(ctx context.Context, country catalog.CountryKey, indicator catalog.IndicatorKey, startYear, endYear int) (*forecast.Result, error) {
	ts, err := s.getOne(ctx, country, indicator, startYear, endYear, false)
	if err != nil {
		return nil, err
	}
	return forecast.Project(ts)
}

// getOne runs the cache-then-fetch pipeline for a single (country, indicator,
// range) tuple.
func (s *Service) getOne(ctx context.Context, country catalog.CountryKey, indicator catalog.IndicatorKey, startYear, endYear int, forceRefresh bool) (*series.TimeSeries, error) {
	key := cache.Key{
		CountryCode:   country.ISO3,
		IndicatorCode: indicator.Code,
		StartYear:     startYear,
		EndYear:       endYear,
	}

	var staleEntry *cache.Entry
	if entry, ok := s.store.Get(ctx, key); ok {
		if !forceRefresh && !s.store.Stale(entry, s.now()) {
			return entry.Series, nil
		}
		staleEntry = entry
	}

	records, err := s.fetcher.FetchSeries(ctx, country.ISO3, indicator.Code, startYear, endYear)
	if err != nil {
		var unavailable *worldbank.UnavailableError
		if errors.As(err, &unavailable) && staleEntry != nil {
			slog.Warn("provider unavailable, serving stale cache entry",
				"key", key.String(),
				"stored_at", staleEntry.StoredAt,
				"error", err)
			return staleEntry.Series, nil
		}
		return nil, err
	}

	ts, err := series.Normalize(country, indicator, records, startYear, endYear)
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(ctx, key, ts); err != nil {
		// A cache write failure must not fail the request.
		slog.Warn("cache write failed", "key", key.String(), "error", err)
	}

	return ts, nil
}
