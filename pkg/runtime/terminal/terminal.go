package terminal

import (
	"io"
	"os"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/sales-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	resolver commands.StoreResolver
	output   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Resolver commands.StoreResolver
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		resolver: opts.Resolver,
		output:   opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Sales analytics dashboard tool",
	}

	cmd.AddCommand(commands.NewReportCmd(
		cli.resolver,
		NewReporter(cli.output),
		export.NewReporter(cli.output),
	))
	cmd.AddCommand(commands.NewExportCmd(cli.resolver, cli.output))
	cmd.AddCommand(commands.NewProfilesCmd(cli.output))

	return cmd
}
