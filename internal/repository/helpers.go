package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
)

// singletonID keys the one-row settings, email and timer tables.
const singletonID = "default"

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// formatInstant stores t as RFC3339 UTC; the zero time is stored as "".
func formatInstant(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// formatMonth stores ym as YYYY-MM; the zero month is stored as "".
func formatMonth(ym domain.YearMonth) string {
	if ym == (domain.YearMonth{}) {
		return ""
	}
	return ym.String()
}

func formatDate(t time.Time) string {
	return t.Format(domain.DateLayout)
}

func parseStoredDate(s string) (time.Time, error) {
	d, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored date %q: %w", s, err)
	}
	return d, nil
}

func parseStoredClock(s string) (domain.ClockTime, error) {
	c, err := domain.ParseClockTime(s)
	if err != nil {
		return 0, fmt.Errorf("parsing stored time %q: %w", s, err)
	}
	return c, nil
}

// encodeList stores a string slice as a JSON array column. Addresses may
// legally contain commas, so no separator character is safe.
func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encoding list: %w", err)
	}
	return string(b), nil
}

// decodeList is the inverse of encodeList. Columns written before the JSON
// format are comma-separated and still read back; an empty list yields nil.
func decodeList(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if !strings.HasPrefix(s, "[") {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("decoding list %q: %w", s, err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
