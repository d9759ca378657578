// Package worldbank implements the data client for the World Bank Open Data
// API v2. It aggregates paginated responses, retries transient failures with
// backoff, and classifies terminal failures so the pipeline orchestrator can
// decide whether a stale cache entry may be served.
package worldbank

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
	"resty.dev/v3"

	"macrotrends/internal/series"
)

const (
	// DefaultBaseURL is the production World Bank API endpoint. The API is
	// keyless.
	DefaultBaseURL = "https://api.worldbank.org/v2"

	defaultRetryCount        = 3
	defaultRetryWaitTime     = 1 * time.Second
	defaultRetryMaxWaitTime  = 10 * time.Second
	defaultTimeout           = 30 * time.Second
	defaultRequestsPerSecond = 10.0
	defaultPerPage           = 1000
)

// Options configures a Client. Zero values fall back to the package defaults
// above.
type Options struct {
	BaseURL           string
	Timeout           time.Duration
	RetryCount        int
	RetryWaitTime     time.Duration
	RetryMaxWaitTime  time.Duration
	RequestsPerSecond float64
	PerPage           int
}

// Client fetches indicator series from the World Bank. All configuration is
// supplied at construction; there is no hidden process-wide state.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	perPage int
}

// NewClient creates a World Bank client with retry logic, exponential backoff,
// and a request rate limiter.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RetryCount <= 0 {
		opts.RetryCount = defaultRetryCount
	}
	if opts.RetryWaitTime <= 0 {
		opts.RetryWaitTime = defaultRetryWaitTime
	}
	if opts.RetryMaxWaitTime <= 0 {
		opts.RetryMaxWaitTime = defaultRetryMaxWaitTime
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = defaultRequestsPerSecond
	}
	if opts.PerPage <= 0 {
		opts.PerPage = defaultPerPage
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(opts.RetryWaitTime).
		SetRetryMaxWaitTime(opts.RetryMaxWaitTime).
		AddRetryConditions(retryCondition).
		AddRetryHooks(retryHook)

	return &Client{
		http:    client,
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		perPage: opts.PerPage,
	}
}

// Close releases resources held by the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

// FetchSeries retrieves all observations for one (country, indicator, range)
// tuple, walking every page of the paginated response before returning. The
// provider returning fewer years than requested is normal and yields a short
// record list, not an error.
func (c *Client) FetchSeries(ctx context.Context, countryCode, indicatorCode string, startYear, endYear int) ([]series.RawRecord, error) {
	if startYear > endYear {
		return nil, &InvalidRequestError{Message: fmt.Sprintf("start year %d after end year %d", startYear, endYear)}
	}

	var records []series.RawRecord
	page := 1
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &UnavailableError{Message: "rate limiter interrupted", Cause: err}
		}

		meta, pageRecords, err := c.fetchPage(ctx, countryCode, indicatorCode, startYear, endYear, page)
		if err != nil {
			return nil, err
		}
		records = append(records, pageRecords...)

		if meta.Pages <= 1 || page >= meta.Pages {
			break
		}
		page++
	}

	return records, nil
}

func (c *Client) fetchPage(ctx context.Context, countryCode, indicatorCode string, startYear, endYear, page int) (pageEnvelope, []series.RawRecord, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("country", countryCode).
		SetPathParam("indicator", indicatorCode).
		SetQueryParams(map[string]string{
			"date":     fmt.Sprintf("%d:%d", startYear, endYear),
			"format":   "json",
			"per_page": strconv.Itoa(c.perPage),
			"page":     strconv.Itoa(page),
		}).
		Get("/country/{country}/indicator/{indicator}")

	if err != nil {
		return pageEnvelope{}, nil, &UnavailableError{Message: "request failed", Cause: err}
	}

	if !resp.IsSuccess() {
		status := resp.StatusCode()
		if status >= 400 && status < 500 && status != http.StatusTooManyRequests && status != http.StatusRequestTimeout {
			return pageEnvelope{}, nil, &InvalidRequestError{StatusCode: status, Message: string(resp.Bytes())}
		}
		// Retries are already exhausted by the time we see this status.
		return pageEnvelope{}, nil, &UnavailableError{StatusCode: status, Message: "retries exhausted"}
	}

	return parsePage(resp.Bytes())
}

// retryCondition determines whether a request should be retried based on the
// response and error.
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r.StatusCode() >= 500 {
		return true
	}
	if r.StatusCode() == http.StatusTooManyRequests {
		return true
	}
	if r.StatusCode() == http.StatusRequestTimeout {
		return true
	}
	return false
}

// retryHook logs retry attempts for observability
func retryHook(r *resty.Response, err error) {
	if err != nil {
		slog.Debug("retrying world bank request due to error",
			"url", r.Request.URL,
			"attempt", r.Request.Attempt,
			"error", err.Error())
		return
	}

	slog.Debug("retrying world bank request due to status code",
		"url", r.Request.URL,
		"attempt", r.Request.Attempt,
		"status_code", r.StatusCode())
}
