package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"redfin-scraper/models"
)

func TestJSONWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "median_prices.json")

	w, err := NewJSONWriter(path)
	if err != nil {
		t.Fatalf("NewJSONWriter() returned error: %v", err)
	}
	defer w.Close()

	series := models.MonthlySeries{
		"2023-12": 498765.43,
		"2024-01": 500000.00,
	}
	query := models.LocationQuery{City: "Austin", State: "TX"}

	if err := w.Write(query, series); err != nil {
		t.Fatalf("Write() returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}

	if !strings.Contains(string(data), "\n  \"") {
		t.Errorf("artifact is not 2-space indented:\n%s", data)
	}

	var got models.MonthlySeries
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if len(got) != len(series) {
		t.Fatalf("artifact has %d entries; want %d", len(got), len(series))
	}
	for k, v := range series {
		if got[k] != v {
			t.Errorf("artifact[%q] = %v; want %v", k, got[k], v)
		}
	}
}

func TestJSONWriterOverwritesPreviousRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "median_prices.json")
	w, err := NewJSONWriter(path)
	if err != nil {
		t.Fatalf("NewJSONWriter() returned error: %v", err)
	}

	query := models.LocationQuery{City: "Fresno", State: "CA"}
	if err := w.Write(query, models.MonthlySeries{"2024-01": 1}); err != nil {
		t.Fatalf("first Write() returned error: %v", err)
	}
	if err := w.Write(query, models.MonthlySeries{"2024-02": 2}); err != nil {
		t.Fatalf("second Write() returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}

	var got models.MonthlySeries
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if len(got) != 1 || got["2024-02"] != 2 {
		t.Errorf("artifact = %v; want only the second series", got)
	}
}
