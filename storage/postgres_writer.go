package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"redfin-scraper/models"
)

// PostgresWriter persists generated series rows to PostgreSQL. Optional
// backend; the JSON artifact is the primary sink.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema
// migrations, and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS median_prices (
			id         SERIAL PRIMARY KEY,
			city       VARCHAR(100)  NOT NULL,
			state      VARCHAR(50)   NOT NULL,
			month      CHAR(7)       NOT NULL,
			price      NUMERIC(12,2) NOT NULL,
			scraped_at TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
			UNIQUE (city, state, month)
		);

		CREATE INDEX IF NOT EXISTS idx_median_prices_month ON median_prices(month);
		CREATE INDEX IF NOT EXISTS idx_median_prices_city  ON median_prices(city, state);
	`)
	return err
}

// Write upserts every month row for the query in one batch statement.
func (pw *PostgresWriter) Write(query models.LocationQuery, series models.MonthlySeries) error {
	if len(series) == 0 {
		return nil
	}

	keys := series.SortedKeys()
	valueStrings := make([]string, 0, len(keys))
	valueArgs := make([]interface{}, 0, len(keys)*4)

	for idx, month := range keys {
		base := idx * 4
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d)", base+1, base+2, base+3, base+4))
		valueArgs = append(valueArgs, query.City, query.State, month, series[month])
	}

	stmt := fmt.Sprintf(`
		INSERT INTO median_prices (city, state, month, price)
		VALUES %s
		ON CONFLICT (city, state, month)
		DO UPDATE SET price = EXCLUDED.price, scraped_at = NOW()
	`, strings.Join(valueStrings, ","))

	if _, err := pw.db.Exec(stmt, valueArgs...); err != nil {
		return fmt.Errorf("postgres: insert series: %w", err)
	}
	return nil
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
