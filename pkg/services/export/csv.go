package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// FileName is the download name of the filtered data export.
const FileName = "filtered_sales_data.csv"

var header = []string{"Date", "Product", "Region", "Sales", "Profit"}

const dateFormat = "2006-01-02"

// WriteRecords serializes a filtered view as UTF-8 CSV: header row included,
// no index column. The output round-trips through sales.NewCSVStore.
func WriteRecords(w io.Writer, records []domain.SalesRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Date.Format(dateFormat),
			r.Product,
			r.Region,
			strconv.Itoa(r.Sales),
			strconv.Itoa(r.Profit),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
