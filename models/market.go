package models

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DateKeyFormat is the time layout behind every series key (YYYY-MM).
const DateKeyFormat = "2006-01"

// ErrEmptyQuery is returned when a location query is missing a component.
var ErrEmptyQuery = errors.New("location query requires both city and state")

// LocationQuery is the immutable (city, state) pair one run operates on.
// No validation beyond non-emptiness — the site's own search/autocomplete
// is the real validator.
type LocationQuery struct {
	City  string
	State string
}

// Validate rejects queries with an empty city or state.
func (q LocationQuery) Validate() error {
	if strings.TrimSpace(q.City) == "" || strings.TrimSpace(q.State) == "" {
		return ErrEmptyQuery
	}
	return nil
}

// String renders the query exactly as it is typed into the search box.
func (q LocationQuery) String() string {
	return q.City + ", " + q.State
}

// AnchorObservation is the single real price read from the page. Every
// other point in the series is synthesized from this one value.
type AnchorObservation struct {
	Price      float64
	ObservedAt time.Time
}

// MonthlySeries maps YYYY-MM date keys to prices rounded to cents.
type MonthlySeries map[string]float64

// SortedKeys returns the date keys in ascending order.
func (s MonthlySeries) SortedKeys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SeriesReport holds the computed summary over a generated series.
type SeriesReport struct {
	Entries      int
	MinPrice     float64
	MaxPrice     float64
	AveragePrice float64
	FirstMonth   string
	LastMonth    string
}

// FormatUSD renders a price as "$1,234,567.89".
func FormatUSD(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := "$" + b.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
