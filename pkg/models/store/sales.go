package store

import "time"

// SalesRecord is the row shape shared by the record stores (SQL, CSV,
// synthetic). Amounts are int64 to match the storage column types; the
// adapters narrow them for the domain layer.
type SalesRecord struct {
	Date    time.Time
	Product string
	Region  string
	Sales   int64
	Profit  int64
}

type DatasetStats struct {
	RecordsCount    int64
	FirstRecordDate *time.Time
	LastRecordDate  *time.Time
}
