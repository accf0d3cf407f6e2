package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/de-tools/sales-atlas/pkg/services/dashboard"
	"github.com/de-tools/sales-atlas/pkg/services/export"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	filters filterFlags
	out     string

	resolver StoreResolver
	output   io.Writer
}

func NewExportCmd(resolver StoreResolver, output io.Writer) *cobra.Command {
	ec := &ExportCmd{resolver: resolver, output: output}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered records as CSV",
		RunE:  ec.run,
	}

	ec.filters.register(cmd)
	cmd.Flags().StringVar(&ec.out, "out", export.FileName, "Output file (use - for stdout)")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	criteria, err := ec.filters.criteria()
	if err != nil {
		return err
	}

	store, err := ec.resolver(ctx, ec.filters.configPath, ec.filters.profile)
	if err != nil {
		return fmt.Errorf("resolve dataset profile: %w", err)
	}

	view, err := dashboard.NewService(store).Records(ctx, criteria)
	if err != nil {
		return fmt.Errorf("load filtered records: %w", err)
	}

	if ec.out == "-" {
		return export.WriteRecords(ec.output, view)
	}

	file, err := os.Create(ec.out)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	if err := export.WriteRecords(file, view); err != nil {
		return err
	}

	fmt.Fprintf(ec.output, "Exported %d records to %s\n", len(view), ec.out)
	return nil
}
