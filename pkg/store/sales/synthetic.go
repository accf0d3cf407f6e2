package sales

import (
	"context"
	"math/rand"
	"slices"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/store"
)

// Category sets and value ranges of the demo dataset.
var (
	DefaultProducts = []string{"Product A", "Product B", "Product C"}
	DefaultRegions  = []string{"North", "South", "East", "West"}

	// DefaultEpoch is the first date of a generated dataset.
	DefaultEpoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
)

const (
	DefaultRecordCount = 100

	minSales  = 100
	maxSales  = 1000 // exclusive
	minProfit = 10
	maxProfit = 200 // exclusive
)

// SyntheticSettings configure a generated dataset. Zero values fall back to
// the defaults above. Seed 0 derives the seed from the wall clock, so every
// such store carries a different dataset; any other seed is reproducible.
type SyntheticSettings struct {
	Records int
	Seed    int64
	Epoch   time.Time
}

type syntheticStore struct {
	records []store.SalesRecord
}

// NewSyntheticStore generates the record set once, at construction time.
// Dates form a contiguous run of consecutive calendar days starting at the
// epoch; products and regions are drawn uniformly from the fixed sets.
func NewSyntheticStore(settings SyntheticSettings) Store {
	count := settings.Records
	if count <= 0 {
		count = DefaultRecordCount
	}
	epoch := settings.Epoch
	if epoch.IsZero() {
		epoch = DefaultEpoch
	}
	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	records := make([]store.SalesRecord, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, store.SalesRecord{
			Date:    epoch.AddDate(0, 0, i),
			Product: DefaultProducts[rng.Intn(len(DefaultProducts))],
			Region:  DefaultRegions[rng.Intn(len(DefaultRegions))],
			Sales:   int64(minSales + rng.Intn(maxSales-minSales)),
			Profit:  int64(minProfit + rng.Intn(maxProfit-minProfit)),
		})
	}

	return &syntheticStore{records: records}
}

func (s *syntheticStore) Load(_ context.Context) ([]store.SalesRecord, error) {
	return slices.Clone(s.records), nil
}
