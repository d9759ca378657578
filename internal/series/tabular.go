package series

import (
	"encoding/csv"
	"io"
	"strconv"
)

// tabularHeader is the column layout consumed by the CSV download path.
var tabularHeader = []string{"country", "year", "value"}

// Tabular flattens one or more series into a row-oriented table with a header
// row. Absent points produce an empty value cell so downstream consumers can
// tell a gap from zero.
func Tabular(list ...*TimeSeries) [][]string {
	rows := make([][]string, 0, 1)
	rows = append(rows, tabularHeader)
	for _, ts := range list {
		for _, p := range ts.Points {
			value := ""
			if p.Present {
				value = strconv.FormatFloat(p.Value, 'f', -1, 64)
			}
			rows = append(rows, []string{ts.Country.Name, strconv.Itoa(p.Year), value})
		}
	}
	return rows
}

// WriteCSV renders the tabular form of the given series as CSV.
func WriteCSV(w io.Writer, list ...*TimeSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(Tabular(list...)); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
