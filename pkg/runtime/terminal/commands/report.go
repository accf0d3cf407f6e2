package commands

import (
	"fmt"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/de-tools/sales-atlas/pkg/services/dashboard"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	filters    filterFlags
	freq       string
	chart      string
	cumulative bool
	plain      bool

	resolver      StoreResolver
	plainReporter Reporter
	tableReporter Reporter
}

func NewReportCmd(resolver StoreResolver, plainReporter, tableReporter Reporter) *cobra.Command {
	rc := &ReportCmd{
		resolver:      resolver,
		plainReporter: plainReporter,
		tableReporter: tableReporter,
	}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the sales dashboard as a text report",
		RunE:  rc.run,
	}

	rc.filters.register(cmd)
	cmd.Flags().StringVar(&rc.freq, "freq", "daily", "Trend aggregation (daily, weekly, monthly)")
	cmd.Flags().StringVar(&rc.chart, "chart", "line", "Chart type hint (line, area)")
	cmd.Flags().BoolVar(&rc.cumulative, "cumulative", false, "Show the sales trend as a running total")
	cmd.Flags().BoolVar(&rc.plain, "plain", false, "Plain list output instead of tables")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	criteria, err := rc.filters.criteria()
	if err != nil {
		return err
	}
	freq, err := domain.ParseFrequency(rc.freq)
	if err != nil {
		return err
	}
	chart, err := domain.ParseChartType(rc.chart)
	if err != nil {
		return err
	}

	store, err := rc.resolver(ctx, rc.filters.configPath, rc.filters.profile)
	if err != nil {
		return fmt.Errorf("resolve dataset profile: %w", err)
	}

	svc := dashboard.NewService(store)
	opts := dashboard.Options{Frequency: freq, Cumulative: rc.cumulative}
	snapshot, err := svc.Snapshot(ctx, criteria, opts)
	if err != nil {
		return fmt.Errorf("build dashboard snapshot: %w", err)
	}

	reporter := rc.tableReporter
	if rc.plain {
		reporter = rc.plainReporter
	}
	return reporter.Handle(dashboard.BuildReport(snapshot, opts, chart))
}
