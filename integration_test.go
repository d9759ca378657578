package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"macrotrends/internal/cache"
	"macrotrends/internal/catalog"
	"macrotrends/internal/service"
	"macrotrends/internal/testutil"
	"macrotrends/internal/worldbank"
)

func newIntegrationClient(baseURL string) *worldbank.Client {
	return worldbank.NewClient(worldbank.Options{
		BaseURL:           baseURL,
		Timeout:           2 * time.Second,
		RetryCount:        2,
		RetryWaitTime:     10 * time.Millisecond,
		RetryMaxWaitTime:  50 * time.Millisecond,
		RequestsPerSecond: 1000,
		PerPage:           1000,
	})
}

func newIntegrationStore(t *testing.T) *cache.Store {
	t.Helper()
	store, err := cache.Open(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("cache.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// TestIntegration_FetchNormalizeCache covers the full pipeline against a mock
// World Bank server: paginated fetch, gap-filling normalization, and the
// cache absorbing the second request.
func TestIntegration_FetchNormalizeCache(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		switch page {
		case 1:
			w.Write([]byte(testutil.WorldBankPage("USA", "United States", "NY.GDP.MKTP.CD", 1, 2, []testutil.Obs{
				{Year: 2004, Value: testutil.Float(500)},
				{Year: 2003, Value: nil},
			})))
		default:
			w.Write([]byte(testutil.WorldBankPage("USA", "United States", "NY.GDP.MKTP.CD", 2, 2, []testutil.Obs{
				{Year: 2002, Value: testutil.Float(300)},
				{Year: 2000, Value: testutil.Float(100)},
			})))
		}
	}))
	defer server.Close()

	client := newIntegrationClient(server.URL)
	defer client.Close()
	svc := service.New(client, newIntegrationStore(t))

	usa := catalog.CountryKey{ISO3: "USA", Name: "United States"}
	gdp, err := catalog.ResolveIndicator("ECONOMY & GDP", "GDP (current US$)")
	if err != nil {
		t.Fatalf("ResolveIndicator() failed: %v", err)
	}
	ctx := context.Background()

	result, err := svc.GetSeries(ctx, []catalog.CountryKey{usa}, gdp, 2000, 2004, false)
	if err != nil {
		t.Fatalf("GetSeries() returned unexpected error: %v", err)
	}

	ts := result[usa]
	if ts == nil {
		t.Fatal("GetSeries() result missing USA")
	}
	if len(ts.Points) != 5 {
		t.Fatalf("len(Points) = %d, want 5 (2000 through 2004)", len(ts.Points))
	}
	if ts.PresentCount() != 3 {
		t.Errorf("PresentCount() = %d, want 3", ts.PresentCount())
	}
	if v, present := ts.Value(2004); !present || v != 500 {
		t.Errorf("Value(2004) = (%v, %v), want (500, true)", v, present)
	}
	if _, present := ts.Value(2001); present {
		t.Error("Value(2001) reported present, want gap")
	}
	if _, present := ts.Value(2003); present {
		t.Error("Value(2003) reported present, want gap (explicit null)")
	}

	requestsAfterFirst := requests.Load()
	if requestsAfterFirst != 2 {
		t.Errorf("first GetSeries() issued %d requests, want 2 pages", requestsAfterFirst)
	}

	// Second identical request must be answered from the cache.
	if _, err := svc.GetSeries(ctx, []catalog.CountryKey{usa}, gdp, 2000, 2004, false); err != nil {
		t.Fatalf("second GetSeries() failed: %v", err)
	}
	if got := requests.Load(); got != requestsAfterFirst {
		t.Errorf("second GetSeries() issued %d extra requests, want 0", got-requestsAfterFirst)
	}
}

// TestIntegration_StaleFallback verifies that when the provider goes down
// after a successful fetch, an expired cache entry is still served.
func TestIntegration_StaleFallback(t *testing.T) {
	var failing atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(testutil.WorldBankPage("DEU", "Germany", "SP.POP.TOTL", 1, 1, []testutil.Obs{
			{Year: 2001, Value: testutil.Float(82)},
			{Year: 2000, Value: testutil.Float(81)},
		})))
	}))
	defer server.Close()

	client := newIntegrationClient(server.URL)
	defer client.Close()
	store := newIntegrationStore(t)
	svc := service.New(client, store)

	deu := catalog.CountryKey{ISO3: "DEU", Name: "Germany"}
	pop, err := catalog.ResolveIndicator("POPULATION & DEMOGRAPHICS", "Population, total")
	if err != nil {
		t.Fatalf("ResolveIndicator() failed: %v", err)
	}
	ctx := context.Background()

	if _, err := svc.GetSeries(ctx, []catalog.CountryKey{deu}, pop, 2000, 2001, false); err != nil {
		t.Fatalf("warm-up GetSeries() failed: %v", err)
	}

	failing.Store(true)

	// Force a refresh so the service must go back to the (now failing)
	// provider and fall back to the cached entry.
	result, err := svc.GetSeries(ctx, []catalog.CountryKey{deu}, pop, 2000, 2001, true)
	if err != nil {
		t.Fatalf("GetSeries() failed instead of serving the cached entry: %v", err)
	}
	ts := result[deu]
	if ts == nil {
		t.Fatal("GetSeries() result missing DEU after fallback")
	}
	if v, present := ts.Value(2001); !present || v != 82 {
		t.Errorf("fallback Value(2001) = (%v, %v), want (82, true)", v, present)
	}
}

// TestIntegration_Forecast runs the pipeline end to end through the
// projection step.
func TestIntegration_Forecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(testutil.WorldBankPage("USA", "United States", "NY.GDP.MKTP.CD", 1, 1, []testutil.Obs{
			{Year: 2002, Value: testutil.Float(120)},
			{Year: 2001, Value: testutil.Float(110)},
			{Year: 2000, Value: testutil.Float(100)},
		})))
	}))
	defer server.Close()

	client := newIntegrationClient(server.URL)
	defer client.Close()
	svc := service.New(client, newIntegrationStore(t))

	usa := catalog.CountryKey{ISO3: "USA", Name: "United States"}
	gdp, err := catalog.ResolveIndicator("ECONOMY & GDP", "GDP (current US$)")
	if err != nil {
		t.Fatalf("ResolveIndicator() failed: %v", err)
	}

	result, err := svc.GetForecast(context.Background(), usa, gdp, 2000, 2002)
	if err != nil {
		t.Fatalf("GetForecast() returned unexpected error: %v", err)
	}
	if result.ProjectedYear != 2003 {
		t.Errorf("ProjectedYear = %d, want 2003", result.ProjectedYear)
	}
	if diff := result.ProjectedValue - 130; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("ProjectedValue = %v, want 130", result.ProjectedValue)
	}
}

// TestIntegration_InvalidIndicator verifies that the provider's 200-with-
// message rejection shape surfaces as a request error, not a silent empty
// series.
func TestIntegration_InvalidIndicator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(testutil.WorldBankErrorEnvelope("120", "Invalid value", "The provided parameter value is not valid")))
	}))
	defer server.Close()

	client := newIntegrationClient(server.URL)
	defer client.Close()
	svc := service.New(client, newIntegrationStore(t))

	usa := catalog.CountryKey{ISO3: "USA", Name: "United States"}
	bogus := catalog.IndicatorKey{Category: "ECONOMY & GDP", Name: "Bogus", Code: "NO.SUCH.CODE"}

	_, err := svc.GetSeries(context.Background(), []catalog.CountryKey{usa}, bogus, 2000, 2001, false)
	if err == nil {
		t.Fatal("GetSeries() expected error for rejected indicator, got nil")
	}
}

func TestResolveCountries(t *testing.T) {
	countries, err := resolveCountries("USA, Germany ,JPN")
	if err != nil {
		t.Fatalf("resolveCountries() returned unexpected error: %v", err)
	}
	if len(countries) != 3 {
		t.Fatalf("resolveCountries() returned %d countries, want 3", len(countries))
	}
	if countries[0].ISO3 != "USA" || countries[1].ISO3 != "DEU" || countries[2].ISO3 != "JPN" {
		t.Errorf("resolveCountries() = %v, want USA, DEU, JPN", countries)
	}

	if _, err := resolveCountries("Atlantis"); err == nil {
		t.Error("resolveCountries() expected error for unknown country, got nil")
	}

	if _, err := resolveCountries(" , "); err == nil {
		t.Error("resolveCountries() expected error for empty list, got nil")
	}
}
