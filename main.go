package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"macrotrends/internal/cache"
	"macrotrends/internal/catalog"
	"macrotrends/internal/config"
	"macrotrends/internal/series"
	"macrotrends/internal/service"
	"macrotrends/internal/worldbank"
)

func main() {
	var (
		listFlag      = flag.String("list", "", "list catalog entries: categories, indicators, or countries")
		categoryFlag  = flag.String("category", "ECONOMY & GDP", "indicator category")
		indicatorFlag = flag.String("indicator", "GDP (current US$)", "indicator display name within the category")
		countriesFlag = flag.String("countries", "USA", "comma-separated countries (ISO3 codes or display names)")
		startFlag     = flag.Int("start", 2000, "first year of the requested range")
		endFlag       = flag.Int("end", time.Now().Year()-1, "last year of the requested range")
		refreshFlag   = flag.Bool("refresh", false, "bypass the cache and refetch from the live API")
		forecastFlag  = flag.Bool("forecast", false, "project the next year's value for each country")
		csvFlag       = flag.Bool("csv", false, "write the series as CSV to stdout instead of a table")
	)
	flag.Parse()

	if *listFlag != "" {
		if err := runList(*listFlag, *categoryFlag); err != nil {
			log.Fatalf("List failed: %v", err)
		}
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := run(ctx, cfg, *categoryFlag, *indicatorFlag, *countriesFlag, *startFlag, *endFlag, *refreshFlag, *forecastFlag, *csvFlag); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, category, indicatorName, countriesArg string, startYear, endYear int, refresh, withForecast, asCSV bool) error {
	indicator, err := catalog.ResolveIndicator(category, indicatorName)
	if err != nil {
		return err
	}

	countries, err := resolveCountries(countriesArg)
	if err != nil {
		return err
	}

	store, err := cache.Open(cfg.CacheDir, cfg.CacheTTL)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer store.Close()

	client := worldbank.NewClient(worldbank.Options{
		BaseURL:           cfg.WorldBankBaseURL,
		Timeout:           cfg.RequestTimeout,
		RetryCount:        cfg.RetryCount,
		RetryWaitTime:     cfg.RetryWait,
		RetryMaxWaitTime:  cfg.RetryMaxWait,
		RequestsPerSecond: cfg.RateLimitRPS,
		PerPage:           cfg.PerPage,
	})
	defer client.Close()

	svc := service.New(client, store)

	// Add timeout to prevent hanging indefinitely
	fetchCtx, fetchCancel := context.WithTimeout(ctx, 2*time.Minute)
	defer fetchCancel()

	result, fetchErr := svc.GetSeries(fetchCtx, countries, indicator, startYear, endYear, refresh)

	if asCSV {
		ordered := orderSeries(countries, result)
		if err := series.WriteCSV(os.Stdout, ordered...); err != nil {
			return err
		}
	} else {
		printTable(countries, indicator, result)
	}

	if withForecast {
		for _, country := range countries {
			if _, ok := result[country]; !ok {
				continue
			}
			projection, err := svc.GetForecast(fetchCtx, country, indicator, startYear, endYear)
			if err != nil {
				fmt.Printf("Forecast unavailable for %s: %v\n", country.Name, err)
				continue
			}
			fmt.Println(projection.Summary())
		}
	}

	if fetchErr != nil {
		return fmt.Errorf("some countries failed: %w", fetchErr)
	}
	return nil
}

// resolveCountries accepts a comma-separated mix of ISO3 codes and catalog
// display names.
func resolveCountries(arg string) ([]catalog.CountryKey, error) {
	parts := strings.Split(arg, ",")
	countries := make([]catalog.CountryKey, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		country, err := catalog.ResolveCountryCode(name)
		if err != nil {
			country, err = catalog.ResolveCountry(name)
		}
		if err != nil {
			return nil, err
		}
		countries = append(countries, country)
	}
	if len(countries) == 0 {
		return nil, fmt.Errorf("no countries specified")
	}
	return countries, nil
}

func runList(what, category string) error {
	switch what {
	case "categories":
		for _, c := range catalog.Categories() {
			fmt.Println(c)
		}
	case "indicators":
		indicators, err := catalog.Indicators(category)
		if err != nil {
			return err
		}
		for _, ind := range indicators {
			fmt.Printf("%-55s %s\n", ind.Name, ind.Code)
		}
	case "countries":
		for _, c := range catalog.Countries() {
			fmt.Printf("%s  %s\n", c.ISO3, c.Name)
		}
	default:
		return fmt.Errorf("unknown list target %q (want categories, indicators, or countries)", what)
	}
	return nil
}

// orderSeries returns the fetched series in request order, skipping failures.
func orderSeries(countries []catalog.CountryKey, result map[catalog.CountryKey]*series.TimeSeries) []*series.TimeSeries {
	ordered := make([]*series.TimeSeries, 0, len(result))
	for _, country := range countries {
		if ts, ok := result[country]; ok {
			ordered = append(ordered, ts)
		}
	}
	return ordered
}

func printTable(countries []catalog.CountryKey, indicator catalog.IndicatorKey, result map[catalog.CountryKey]*series.TimeSeries) {
	fmt.Printf("%s (%s)\n", indicator.Name, indicator.Code)
	fmt.Println("================================================")
	for _, country := range countries {
		ts, ok := result[country]
		if !ok {
			continue
		}
		fmt.Printf("%s (%s)  %d present of %d years\n", ts.Country.Name, ts.Country.ISO3, ts.PresentCount(), len(ts.Points))
		years := presentYears(ts)
		sort.Ints(years)
		for _, year := range years {
			v, _ := ts.Value(year)
			fmt.Printf("  %d  %g\n", year, v)
		}
	}
}

func presentYears(ts *series.TimeSeries) []int {
	var years []int
	for _, p := range ts.Points {
		if p.Present {
			years = append(years, p.Year)
		}
	}
	return years
}
