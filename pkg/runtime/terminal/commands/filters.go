package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/store/sales"
	"github.com/spf13/cobra"
)

const dateFormat = "2006-01-02"

// StoreResolver turns a profile selection into a record store. An empty
// config path means the built-in synthetic dataset.
type StoreResolver func(ctx context.Context, configPath, profile string) (sales.Store, error)

// Reporter renders a finished report.
type Reporter interface {
	Handle(report *domain.Report) error
}

// filterFlags are the filter parameters shared by the report and export
// commands.
type filterFlags struct {
	configPath string
	profile    string
	start      string
	end        string
	regions    []string
	products   []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to the profile registry file (omit for the built-in demo dataset)")
	cmd.Flags().StringVar(&f.profile, "profile", "default", "Dataset profile name")
	cmd.Flags().StringVar(&f.start, "start", "", "Start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&f.end, "end", "", "End date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringSliceVar(&f.regions, "regions", nil, "Regions to include (default all)")
	cmd.Flags().StringSliceVar(&f.products, "products", nil, "Products to include (default all)")
}

func (f *filterFlags) criteria() (domain.FilterCriteria, error) {
	var criteria domain.FilterCriteria

	if f.start != "" {
		start, err := time.Parse(dateFormat, f.start)
		if err != nil {
			return criteria, fmt.Errorf("invalid start date %q", f.start)
		}
		criteria.StartDate = start
	}
	if f.end != "" {
		end, err := time.Parse(dateFormat, f.end)
		if err != nil {
			return criteria, fmt.Errorf("invalid end date %q", f.end)
		}
		criteria.EndDate = end
	}
	criteria.Regions = f.regions
	criteria.Products = f.products

	return criteria, nil
}
