package series

import (
	"bytes"
	"strings"
	"testing"

	"macrotrends/internal/catalog"
)

var (
	testCountry   = catalog.CountryKey{ISO3: "USA", Name: "United States"}
	testIndicator = catalog.IndicatorKey{Category: "ECONOMY & GDP", Name: "GDP (current US$)", Code: "NY.GDP.MKTP.CD"}
)

func fv(v float64) *float64 { return &v }

func record(year int, value *float64) RawRecord {
	return RawRecord{
		CountryCode:   testCountry.ISO3,
		CountryName:   testCountry.Name,
		IndicatorCode: testIndicator.Code,
		Year:          year,
		Value:         value,
	}
}

func TestNormalize_FullCoverage(t *testing.T) {
	records := []RawRecord{
		record(2000, fv(100)),
		record(2001, fv(110)),
		record(2002, fv(120)),
	}

	ts, err := Normalize(testCountry, testIndicator, records, 2000, 2002)
	if err != nil {
		t.Fatalf("Normalize() returned unexpected error: %v", err)
	}

	if len(ts.Points) != 3 {
		t.Fatalf("len(Points) = %d, want 3", len(ts.Points))
	}
	for i, p := range ts.Points {
		if p.Year != 2000+i {
			t.Errorf("Points[%d].Year = %d, want %d", i, p.Year, 2000+i)
		}
		if !p.Present {
			t.Errorf("Points[%d] unexpectedly absent", i)
		}
	}
	if v, ok := ts.Value(2001); !ok || v != 110 {
		t.Errorf("Value(2001) = (%v, %v), want (110, true)", v, ok)
	}
}

func TestNormalize_PartialCoverage(t *testing.T) {
	// Provider returns 2010-2015 only when 2000-2020 was requested.
	records := make([]RawRecord, 0, 6)
	for year := 2010; year <= 2015; year++ {
		records = append(records, record(year, fv(float64(year))))
	}

	ts, err := Normalize(testCountry, testIndicator, records, 2000, 2020)
	if err != nil {
		t.Fatalf("Normalize() returned unexpected error: %v", err)
	}

	if len(ts.Points) != 21 {
		t.Fatalf("len(Points) = %d, want 21", len(ts.Points))
	}

	for _, p := range ts.Points {
		wantPresent := p.Year >= 2010 && p.Year <= 2015
		if p.Present != wantPresent {
			t.Errorf("year %d: Present = %v, want %v", p.Year, p.Present, wantPresent)
		}
	}

	if ts.PresentCount() != 6 {
		t.Errorf("PresentCount() = %d, want 6", ts.PresentCount())
	}
}

func TestNormalize_StrictlyIncreasingYears(t *testing.T) {
	// Provider order is newest-first, which is how the API actually responds.
	records := []RawRecord{
		record(2003, fv(3)),
		record(2002, fv(2)),
		record(2000, fv(1)),
	}

	ts, err := Normalize(testCountry, testIndicator, records, 2000, 2003)
	if err != nil {
		t.Fatalf("Normalize() returned unexpected error: %v", err)
	}

	for i := 1; i < len(ts.Points); i++ {
		if ts.Points[i].Year <= ts.Points[i-1].Year {
			t.Fatalf("years not strictly increasing: %d after %d", ts.Points[i].Year, ts.Points[i-1].Year)
		}
	}
}

func TestNormalize_DuplicateYearLastWins(t *testing.T) {
	records := []RawRecord{
		record(2010, fv(100)),
		record(2010, fv(105)), // revised figure arrives later
	}

	ts, err := Normalize(testCountry, testIndicator, records, 2010, 2010)
	if err != nil {
		t.Fatalf("Normalize() returned unexpected error: %v", err)
	}

	if v, ok := ts.Value(2010); !ok || v != 105 {
		t.Errorf("Value(2010) = (%v, %v), want (105, true)", v, ok)
	}
}

func TestNormalize_NullValueIsAbsentNotZero(t *testing.T) {
	records := []RawRecord{
		record(2000, fv(0)), // genuine zero
		record(2001, nil),   // provider gap
	}

	ts, err := Normalize(testCountry, testIndicator, records, 2000, 2001)
	if err != nil {
		t.Fatalf("Normalize() returned unexpected error: %v", err)
	}

	if v, ok := ts.Value(2000); !ok || v != 0 {
		t.Errorf("Value(2000) = (%v, %v), want (0, true)", v, ok)
	}
	if _, ok := ts.Value(2001); ok {
		t.Error("Value(2001) reported present, want absent")
	}
}

func TestNormalize_RecordsOutsideRangeDropped(t *testing.T) {
	records := []RawRecord{
		record(1999, fv(1)),
		record(2000, fv(2)),
		record(2001, fv(3)),
	}

	ts, err := Normalize(testCountry, testIndicator, records, 2000, 2000)
	if err != nil {
		t.Fatalf("Normalize() returned unexpected error: %v", err)
	}

	if len(ts.Points) != 1 {
		t.Fatalf("len(Points) = %d, want 1", len(ts.Points))
	}
	if v, ok := ts.Value(2000); !ok || v != 2 {
		t.Errorf("Value(2000) = (%v, %v), want (2, true)", v, ok)
	}
}

func TestNormalize_InvalidRange(t *testing.T) {
	_, err := Normalize(testCountry, testIndicator, nil, 2020, 2000)
	if err == nil {
		t.Fatal("Normalize() expected error for inverted range, got nil")
	}
}

func TestTabular(t *testing.T) {
	ts, err := Normalize(testCountry, testIndicator, []RawRecord{
		record(2000, fv(1.5)),
		record(2002, fv(-3)),
	}, 2000, 2002)
	if err != nil {
		t.Fatalf("Normalize() returned unexpected error: %v", err)
	}

	rows := Tabular(ts)

	want := [][]string{
		{"country", "year", "value"},
		{"United States", "2000", "1.5"},
		{"United States", "2001", ""},
		{"United States", "2002", "-3"},
	}

	if len(rows) != len(want) {
		t.Fatalf("len(rows) = %d, want %d", len(rows), len(want))
	}
	for i := range want {
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Errorf("rows[%d][%d] = %q, want %q", i, j, rows[i][j], want[i][j])
			}
		}
	}
}

func TestWriteCSV(t *testing.T) {
	ts, err := Normalize(testCountry, testIndicator, []RawRecord{
		record(2000, fv(100)),
	}, 2000, 2000)
	if err != nil {
		t.Fatalf("Normalize() returned unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, ts); err != nil {
		t.Fatalf("WriteCSV() returned unexpected error: %v", err)
	}

	got := buf.String()
	wantLines := []string{"country,year,value", "United States,2000,100"}
	for _, line := range wantLines {
		if !strings.Contains(got, line) {
			t.Errorf("WriteCSV() output missing line %q; got:\n%s", line, got)
		}
	}
}
