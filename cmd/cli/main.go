package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal"
	"github.com/de-tools/sales-atlas/pkg/services/registry"
	"github.com/de-tools/sales-atlas/pkg/store/sales"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Resolver: resolveStore,
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func resolveStore(ctx context.Context, configPath, profile string) (sales.Store, error) {
	if configPath == "" {
		return sales.NewSyntheticStore(sales.SyntheticSettings{}), nil
	}

	reg, err := registry.NewRegistry(configPath)
	if err != nil {
		return nil, err
	}
	return reg.Resolve(ctx, profile)
}
