// Package forecast fits a linear trend to a normalized series and projects
// one year past the last observed value. It is a deliberately small model:
// one feature (the year), ordinary least squares, recomputed on every request.
package forecast

import (
	"fmt"
	"math"

	"macrotrends/internal/series"
)

// Method identifies the fitting method used for a projection.
type Method string

// MethodLinearTrend is the only supported method: value = slope*year + intercept.
const MethodLinearTrend Method = "linear_trend"

// minSamples is the floor below which no trend can be fit. Callers are
// expected to warn on low sample counts above this floor; the forecaster only
// refuses the mathematically impossible cases.
const minSamples = 2

// InsufficientDataError reports a series too sparse to fit a trend.
type InsufficientDataError struct {
	Points int
}

// Error implements the error interface
func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("cannot fit a trend from %d present point(s); need at least %d", e.Points, minSamples)
}

// Result is a one-step-ahead projection together with fit diagnostics. It is
// derived data and never persisted.
type Result struct {
	Basis          *series.TimeSeries
	Method         Method
	ProjectedYear  int
	ProjectedValue float64
	Slope          float64
	Intercept      float64
	R2             float64
	MAE            float64
	LowerBound     float64 // ProjectedValue - 2*MAE
	UpperBound     float64 // ProjectedValue + 2*MAE
	SampleSize     int
}

// Project fits an ordinary least-squares line through the present points of
// the series and projects the year after the last present one. Absent points
// are excluded from the fit; negative values are legitimate (trade balances
// go below zero) and receive no special treatment.
func Project(ts *series.TimeSeries) (*Result, error) {
	years := make([]float64, 0, len(ts.Points))
	values := make([]float64, 0, len(ts.Points))
	lastYear := 0
	for _, p := range ts.Points {
		if !p.Present {
			continue
		}
		years = append(years, float64(p.Year))
		values = append(values, p.Value)
		lastYear = p.Year
	}

	n := len(values)
	if n < minSamples {
		return nil, &InsufficientDataError{Points: n}
	}

	slope, intercept := olsFit(years, values)

	// Residual diagnostics over the fitted points.
	var ssRes, ssTot, absSum float64
	meanY := mean(values)
	for i := range values {
		fitted := slope*years[i] + intercept
		resid := values[i] - fitted
		ssRes += resid * resid
		absSum += math.Abs(resid)
		dev := values[i] - meanY
		ssTot += dev * dev
	}

	r2 := 1.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}
	mae := absSum / float64(n)

	projectedYear := lastYear + 1
	projectedValue := slope*float64(projectedYear) + intercept
	margin := 2 * mae

	return &Result{
		Basis:          ts,
		Method:         MethodLinearTrend,
		ProjectedYear:  projectedYear,
		ProjectedValue: projectedValue,
		Slope:          slope,
		Intercept:      intercept,
		R2:             r2,
		MAE:            mae,
		LowerBound:     projectedValue - margin,
		UpperBound:     projectedValue + margin,
		SampleSize:     n,
	}, nil
}

// Summary returns a human-readable description of the fitted model.
func (r *Result) Summary() string {
	trend := "increasing"
	if r.Slope < 0 {
		trend = "decreasing"
	}
	return fmt.Sprintf(
		"%s %s: %s by %.4g per year over %d observations (R²=%.4f, MAE=%.4g); projected %d value %.4g",
		r.Basis.Country.Name,
		r.Basis.Indicator.Name,
		trend,
		math.Abs(r.Slope),
		r.SampleSize,
		r.R2,
		r.MAE,
		r.ProjectedYear,
		r.ProjectedValue,
	)
}

// olsFit computes the least-squares slope and intercept. Inputs are
// mean-centered before the sums so large year values do not lose precision.
func olsFit(xs, ys []float64) (slope, intercept float64) {
	meanX := mean(xs)
	meanY := mean(ys)

	var num, den float64
	for i := range xs {
		dx := xs[i] - meanX
		num += dx * (ys[i] - meanY)
		den += dx * dx
	}
	// den is positive whenever two distinct years are present, which the
	// normalizer's strictly increasing year invariant guarantees.
	slope = num / den
	intercept = meanY - slope*meanX
	return slope, intercept
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
