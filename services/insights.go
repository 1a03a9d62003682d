package services

import (
	"fmt"
	"strings"

	"redfin-scraper/models"
	"redfin-scraper/utils"
)

// InsightService summarizes a generated series for the console report.
type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes min/max/average and the covered month range.
func (s *InsightService) Generate(series models.MonthlySeries) *models.SeriesReport {
	report := &models.SeriesReport{Entries: len(series)}
	if len(series) == 0 {
		return report
	}

	keys := series.SortedKeys()
	report.FirstMonth = keys[0]
	report.LastMonth = keys[len(keys)-1]

	report.MinPrice = series[keys[0]]
	report.MaxPrice = series[keys[0]]

	var total float64
	for _, k := range keys {
		v := series[k]
		total += v
		if v < report.MinPrice {
			report.MinPrice = v
		}
		if v > report.MaxPrice {
			report.MaxPrice = v
		}
	}
	report.AveragePrice = round2(total / float64(len(keys)))

	return report
}

// Print renders the report to stdout.
func (s *InsightService) Print(r *models.SeriesReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 MEDIAN PRICE SERIES SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("  Months covered : \033[1m%d\033[0m (%s — %s)\n", r.Entries, r.FirstMonth, r.LastMonth)
	fmt.Printf("  %s\n", thin)
	if r.Entries > 0 {
		fmt.Printf("  Average price : \033[1;32m%s\033[0m\n", models.FormatUSD(r.AveragePrice))
		fmt.Printf("  Minimum price : \033[1;32m%s\033[0m\n", models.FormatUSD(r.MinPrice))
		fmt.Printf("  Maximum price : \033[1;32m%s\033[0m\n", models.FormatUSD(r.MaxPrice))
	} else {
		fmt.Printf("  No series data\n")
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
}
