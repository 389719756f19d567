package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// parseYearMonth extracts the period filter from query parameters. Both
// year and month must be given together; neither means the all-time view.
func parseYearMonth(r *http.Request) (year, month int, err error) {
	yearStr := strings.TrimSpace(r.URL.Query().Get("year"))
	monthStr := strings.TrimSpace(r.URL.Query().Get("month"))

	if yearStr == "" && monthStr == "" {
		return 0, 0, nil
	}
	if yearStr == "" || monthStr == "" {
		return 0, 0, errors.New("year and month must be provided together")
	}

	year, err = strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return 0, 0, errors.New("invalid year")
	}
	month, err = strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, errors.New("invalid month")
	}

	return year, month, nil
}

// parseID extracts the numeric id path segment.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// decodeJSON decodes the request body into dst, rejecting unknown fields
// and trailing garbage.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected trailing data")
	}
	return nil
}

// sanitizeInput removes potentially dangerous characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	result := strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
	return result
}
