package services

import (
	"testing"

	"redfin-scraper/models"
)

func TestInsightsGenerate(t *testing.T) {
	series := models.MonthlySeries{
		"2023-11": 490000.00,
		"2023-12": 510000.00,
		"2024-01": 500000.00,
	}

	report := NewInsightService(newTestLogger()).Generate(series)

	if report.Entries != 3 {
		t.Errorf("Entries = %d; want 3", report.Entries)
	}
	if report.MinPrice != 490000.00 || report.MaxPrice != 510000.00 {
		t.Errorf("min/max = %v/%v; want 490000/510000", report.MinPrice, report.MaxPrice)
	}
	if report.AveragePrice != 500000.00 {
		t.Errorf("AveragePrice = %v; want 500000", report.AveragePrice)
	}
	if report.FirstMonth != "2023-11" || report.LastMonth != "2024-01" {
		t.Errorf("month range = %s … %s; want 2023-11 … 2024-01", report.FirstMonth, report.LastMonth)
	}
}

func TestInsightsGenerateEmptySeries(t *testing.T) {
	report := NewInsightService(newTestLogger()).Generate(models.MonthlySeries{})
	if report.Entries != 0 {
		t.Errorf("Entries = %d; want 0", report.Entries)
	}
}
