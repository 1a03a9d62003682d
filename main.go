package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"redfin-scraper/config"
	"redfin-scraper/models"
	"redfin-scraper/scraper/redfin"
	"redfin-scraper/services"
	"redfin-scraper/storage"
	"redfin-scraper/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Redfin Median Price Scraper starting ===")
	logger.Info("Config — retries: %d | search timeout: %v | price timeout: %v | output: %s",
		cfg.MaxRetries, cfg.SearchTimeout, cfg.PriceTimeout, cfg.OutputPath)

	query, err := promptQuery(os.Stdin)
	if err != nil {
		logger.Error("Failed to read query: %v", err)
		fmt.Printf("Error: %v\n", err)
		return
	}

	series, err := run(cfg, logger, query)
	if err != nil {
		logger.Error("Run failed: %v", err)
		fmt.Printf("Error: %v\n", err)
		return
	}

	printSeries(query, series)

	insights := services.NewInsightService(logger)
	insights.Print(insights.Generate(series))

	fmt.Printf("\nResults saved to %q\n", cfg.OutputPath)
}

// run owns the browser session for one scrape. The deferred Close guarantees
// teardown on every exit path, success or failure.
func run(cfg *config.Config, logger *utils.Logger, query models.LocationQuery) (models.MonthlySeries, error) {
	session, err := redfin.NewSession(cfg, logger)
	if err != nil {
		return nil, err
	}
	defer session.Close()

	jsonWriter, err := storage.NewJSONWriter(cfg.OutputPath)
	if err != nil {
		return nil, err
	}
	writers := []storage.SeriesWriter{jsonWriter}

	if cfg.PostgresEnabled {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		defer pgWriter.Close()
		writers = append(writers, pgWriter)
	}

	runner := services.NewRunner(
		redfin.NewNavigator(session, cfg, logger),
		redfin.NewExtractor(session, cfg, logger),
		services.NewSeriesGenerator(logger),
		writers,
		logger,
	).WithSession(session)
	return runner.Run(query)
}

func promptQuery(in io.Reader) (models.LocationQuery, error) {
	reader := bufio.NewReader(in)

	fmt.Print("state: ")
	state, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return models.LocationQuery{}, fmt.Errorf("read state: %w", err)
	}

	fmt.Print("city: ")
	city, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return models.LocationQuery{}, fmt.Errorf("read city: %w", err)
	}

	return models.LocationQuery{
		City:  strings.TrimSpace(city),
		State: strings.TrimSpace(state),
	}, nil
}

func printSeries(query models.LocationQuery, series models.MonthlySeries) {
	fmt.Printf("\nMedian Sale Prices for %s:\n", query)
	for _, key := range series.SortedKeys() {
		fmt.Printf("%s: %s\n", key, models.FormatUSD(series[key]))
	}
}
