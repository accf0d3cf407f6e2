package sales

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/store"
)

var csvHeader = []string{"Date", "Product", "Region", "Sales", "Profit"}

const csvDateFormat = "2006-01-02"

type csvStore struct {
	path string
}

// NewCSVStore reads records from a CSV file in the export schema
// (Date,Product,Region,Sales,Profit). The file is our own format, so parsing
// is strict: a wrong header or a malformed row is an error, not a skip.
func NewCSVStore(path string) Store {
	return &csvStore{path: path}
}

func (s *csvStore) Load(_ context.Context) ([]store.SalesRecord, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open csv file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(csvHeader)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if !slices.Equal(header, csvHeader) {
		return nil, fmt.Errorf("unexpected csv header %v, want %v", header, csvHeader)
	}

	var records []store.SalesRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		record, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func parseRow(row []string) (store.SalesRecord, error) {
	date, err := time.Parse(csvDateFormat, row[0])
	if err != nil {
		return store.SalesRecord{}, fmt.Errorf("parse date %q: %w", row[0], err)
	}
	sales, err := strconv.ParseInt(row[3], 10, 64)
	if err != nil {
		return store.SalesRecord{}, fmt.Errorf("parse sales %q: %w", row[3], err)
	}
	profit, err := strconv.ParseInt(row[4], 10, 64)
	if err != nil {
		return store.SalesRecord{}, fmt.Errorf("parse profit %q: %w", row[4], err)
	}

	return store.SalesRecord{
		Date:    date,
		Product: row[1],
		Region:  row[2],
		Sales:   sales,
		Profit:  profit,
	}, nil
}
