package sql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/rs/zerolog"
)

const defaultTable = "sales_records"

// Store reads sales records from a relational table. It is driver agnostic;
// the DSN and driver come from the profile registry.
type Store struct {
	db    *sql.DB
	table string
}

func NewStore(db *sql.DB, table string) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	if table == "" {
		table = defaultTable
	}
	return &Store{db: db, table: table}, nil
}

func (s *Store) Load(ctx context.Context) ([]store.SalesRecord, error) {
	logger := zerolog.Ctx(ctx)

	query := fmt.Sprintf(`
		SELECT
			sale_date,
			product,
			region,
			sales,
			profit
		FROM %s
		ORDER BY sale_date`, s.table)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("sales query failed: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Warn().Err(err).Msg("failed to close sales query rows")
		}
	}(rows)

	var records []store.SalesRecord
	for rows.Next() {
		var (
			date            time.Time
			product, region string
			sales, profit   int64
		)
		if err := rows.Scan(&date, &product, &region, &sales, &profit); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		records = append(records, store.SalesRecord{
			Date:    date,
			Product: product,
			Region:  region,
			Sales:   sales,
			Profit:  profit,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sales rows: %w", err)
	}

	return records, nil
}
