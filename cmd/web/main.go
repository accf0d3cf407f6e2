package main

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/de-tools/sales-atlas/pkg/server"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/dashboard"
	"github.com/de-tools/sales-atlas/pkg/services/registry"
	"github.com/de-tools/sales-atlas/pkg/store/sales"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Sales Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the dataset config file (omit for the built-in demo dataset)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load dataset config: %w", err)
		}
		cfg = loaded
		logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	}

	store, err := resolveStore(ctx, cfg, &logger)
	if err != nil {
		return err
	}

	api := server.NewWebAPI(server.Config{
		Addr: listenAddr(),
		Dependencies: server.Dependencies{
			Dashboard: dashboard.NewService(store),
			Logger:    logger,
		},
	})

	return api.Start()
}

func resolveStore(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (sales.Store, error) {
	if cfg.Registry == "" {
		logger.Info().
			Int("records", cfg.Records).
			Int64("seed", cfg.Seed).
			Msg("serving a synthetic dataset")
		return sales.NewSyntheticStore(sales.SyntheticSettings{
			Records: cfg.Records,
			Seed:    cfg.Seed,
		}), nil
	}

	reg, err := registry.NewRegistry(cfg.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile registry: %w", err)
	}

	profiles, _ := reg.Profiles(ctx)
	logger.Info().Strs("profiles", profiles).Msg("profile registry loaded")

	store, err := reg.Resolve(ctx, cfg.Profile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile %q: %w", cfg.Profile, err)
	}
	return store, nil
}

func listenAddr() string {
	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "8080"
	}

	return net.JoinHostPort(host, port)
}
