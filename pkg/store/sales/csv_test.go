package sales

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVStore_Load(t *testing.T) {
	path := writeTempCSV(t, "Date,Product,Region,Sales,Profit\n"+
		"2020-01-01,Product A,North,100,10\n"+
		"2020-01-02,Product B,South,200,20\n")

	records, err := NewCSVStore(path).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []store.SalesRecord{
		{
			Date:    time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
			Product: "Product A",
			Region:  "North",
			Sales:   100,
			Profit:  10,
		},
		{
			Date:    time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC),
			Product: "Product B",
			Region:  "South",
			Sales:   200,
			Profit:  20,
		},
	}, records)
}

func TestCSVStore_RejectsWrongHeader(t *testing.T) {
	path := writeTempCSV(t, "Day,Product,Region,Sales,Profit\n2020-01-01,Product A,North,100,10\n")

	_, err := NewCSVStore(path).Load(context.Background())
	assert.ErrorContains(t, err, "unexpected csv header")
}

func TestCSVStore_RejectsMalformedRow(t *testing.T) {
	path := writeTempCSV(t, "Date,Product,Region,Sales,Profit\n2020-01-01,Product A,North,not-a-number,10\n")

	_, err := NewCSVStore(path).Load(context.Background())
	assert.ErrorContains(t, err, "line 2")
}

func TestCSVStore_MissingFile(t *testing.T) {
	_, err := NewCSVStore(filepath.Join(t.TempDir(), "missing.csv")).Load(context.Background())
	assert.ErrorContains(t, err, "open csv file")
}
