package models

import (
	"errors"
	"testing"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{875250, "$875,250.00"},
		{1200.5, "$1,200.50"},
		{999.99, "$999.99"},
		{1000000, "$1,000,000.00"},
		{450000, "$450,000.00"},
		{0, "$0.00"},
	}

	for _, tt := range tests {
		got := FormatUSD(tt.value)
		if got != tt.want {
			t.Errorf("FormatUSD(%v) = %q; want %q", tt.value, got, tt.want)
		}
	}
}

func TestLocationQueryValidate(t *testing.T) {
	tests := []struct {
		query   LocationQuery
		wantErr bool
	}{
		{LocationQuery{City: "Austin", State: "TX"}, false},
		{LocationQuery{City: "", State: "TX"}, true},
		{LocationQuery{City: "Austin", State: ""}, true},
		{LocationQuery{City: "  ", State: "TX"}, true},
	}

	for _, tt := range tests {
		err := tt.query.Validate()
		if tt.wantErr && !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("Validate(%+v) = %v; want ErrEmptyQuery", tt.query, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Validate(%+v) = %v; want nil", tt.query, err)
		}
	}
}

func TestLocationQueryString(t *testing.T) {
	q := LocationQuery{City: "Austin", State: "TX"}
	if got := q.String(); got != "Austin, TX" {
		t.Errorf("String() = %q; want %q", got, "Austin, TX")
	}
}

func TestMonthlySeriesSortedKeys(t *testing.T) {
	s := MonthlySeries{"2024-01": 1, "2023-03": 2, "2023-12": 3}
	keys := s.SortedKeys()

	want := []string{"2023-03", "2023-12", "2024-01"}
	if len(keys) != len(want) {
		t.Fatalf("SortedKeys() returned %d keys; want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("SortedKeys()[%d] = %q; want %q", i, keys[i], want[i])
		}
	}
}
