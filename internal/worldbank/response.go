package worldbank

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"macrotrends/internal/series"
)

// pageEnvelope is the first element of the World Bank v2 response array. On
// success it carries pagination metadata; on a rejected request the API still
// answers 200 with a one-element array whose first element holds Message.
type pageEnvelope struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
	Message []struct {
		ID    string `json:"id"`
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"message"`
}

// observation is one row of the second element of the response array.
type observation struct {
	Indicator struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	} `json:"indicator"`
	Country struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	} `json:"country"`
	CountryISO3 string   `json:"countryiso3code"`
	Date        string   `json:"date"`
	Value       *float64 `json:"value"`
}

// parsePage decodes one page of the provider response. The expected shape is
// a two-element array [meta, rows]; rows may be null when the provider has no
// data for the requested range, which is normal. Any other shape fails fast
// rather than propagating loosely typed data downstream.
func parsePage(body []byte) (pageEnvelope, []series.RawRecord, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(body, &elements); err != nil {
		return pageEnvelope{}, nil, &InvalidRequestError{Message: fmt.Sprintf("unexpected response shape: %v", err)}
	}
	if len(elements) == 0 {
		return pageEnvelope{}, nil, &InvalidRequestError{Message: "empty response array"}
	}

	var envelope pageEnvelope
	if err := json.Unmarshal(elements[0], &envelope); err != nil {
		return pageEnvelope{}, nil, &InvalidRequestError{Message: fmt.Sprintf("unexpected response metadata: %v", err)}
	}

	if len(envelope.Message) > 0 {
		details := make([]string, 0, len(envelope.Message))
		for _, m := range envelope.Message {
			details = append(details, fmt.Sprintf("%s (%s)", m.Value, m.ID))
		}
		return pageEnvelope{}, nil, &InvalidRequestError{Message: strings.Join(details, "; ")}
	}

	if len(elements) < 2 {
		return pageEnvelope{}, nil, &InvalidRequestError{Message: "response missing data element"}
	}

	var rows []observation
	if string(elements[1]) != "null" {
		if err := json.Unmarshal(elements[1], &rows); err != nil {
			return pageEnvelope{}, nil, &InvalidRequestError{Message: fmt.Sprintf("unexpected data element: %v", err)}
		}
	}

	records := make([]series.RawRecord, 0, len(rows))
	for _, row := range rows {
		year, err := strconv.Atoi(row.Date)
		if err != nil {
			return pageEnvelope{}, nil, &InvalidRequestError{Message: fmt.Sprintf("unexpected observation date %q", row.Date)}
		}
		code := row.CountryISO3
		if code == "" {
			code = row.Country.ID
		}
		records = append(records, series.RawRecord{
			CountryCode:   code,
			CountryName:   row.Country.Value,
			IndicatorCode: row.Indicator.ID,
			Year:          year,
			Value:         row.Value,
		})
	}

	return envelope, records, nil
}
