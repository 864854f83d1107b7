package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"dexfetch/internal/batch"
	"dexfetch/internal/config"
	"dexfetch/internal/extract"
	"dexfetch/internal/fetcher"
	"dexfetch/internal/observability"
	"dexfetch/internal/storage"
)

var (
	cfgFile    string
	verbose    bool
	outputPath string
	outputType string
	delay      string
	timeout    string
	userAgent  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dexfetch",
		Short: "dexfetch — Bulbapedia Pokédex record extractor",
		Long: `dexfetch reads a list of Pokémon names, fetches each Bulbapedia page,
recovers the category title, Japanese name, and National Pokédex number with
layered best-effort heuristics, and writes one fixed-format record per name.

Missing fields degrade to empty strings and still produce a record; only a
failed fetch skips a name.`,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runCmd creates the "run" subcommand.
func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [input-file]",
		Short: "Process a list of Pokémon names",
		Long:  "Read newline-delimited Pokémon names from the input file and write one record per name.",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path")
	cmd.Flags().StringVarP(&outputType, "format", "f", "", "output format: text, jsonl, mongodb")
	cmd.Flags().StringVar(&delay, "delay", "", "pause between page fetches (e.g. 1s)")
	cmd.Flags().StringVar(&timeout, "timeout", "", "per-fetch timeout (e.g. 10s)")
	cmd.Flags().StringVar(&userAgent, "user-agent", "", "custom User-Agent string")

	return cmd
}

// runBatch executes the run command.
func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyCLIOverrides(cfg)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := setupLogger(cfg)

	names, err := batch.ReadNamesFile(args[0])
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no names found in %s", args[0])
	}

	logger.Info("starting batch",
		"input", args[0],
		"names", len(names),
		"output", cfg.Storage.OutputPath,
		"format", cfg.Storage.Type,
		"delay", cfg.Batch.Delay,
	)

	var f fetcher.Fetcher
	switch cfg.Fetcher.Type {
	case "browser":
		f, err = fetcher.NewBrowserFetcher(cfg, logger)
	default:
		f, err = fetcher.NewHTTPFetcher(cfg, logger)
	}
	if err != nil {
		return fmt.Errorf("create fetcher: %w", err)
	}
	defer f.Close()

	store, err := storage.New(cfg.Storage.Type, cfg.Storage.OutputPath,
		cfg.Storage.MongoURI, cfg.Storage.MongoDatabase, cfg.Storage.MongoCollection, logger)
	if err != nil {
		return fmt.Errorf("create storage: %w", err)
	}

	metrics := observability.NewMetrics(logger)
	if cfg.Metrics.Enabled {
		if err := metrics.StartServer(cfg.Metrics.Port, cfg.Metrics.Path); err != nil {
			logger.Warn("failed to start metrics server", "error", err)
		}
	}

	runner := batch.NewRunner(f, extract.New(logger), store, metrics, cfg.Batch.Delay, logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received signal, stopping after current name", "signal", sig)
		cancel()
	}()

	start := time.Now()
	stats, runErr := runner.Run(ctx, names)

	if err := store.Close(); err != nil {
		logger.Error("close storage", "error", err)
	}

	elapsed := time.Since(start)
	logger.Info("run finished",
		"elapsed", elapsed,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"total", stats.Total,
	)

	fmt.Printf("\nProcessed %d/%d Pokemon in %s\n", stats.Succeeded, stats.Total, elapsed.Round(time.Millisecond))
	if cfg.Storage.Type != "mongodb" {
		fmt.Printf("Results written to: %s\n", cfg.Storage.OutputPath)
	}

	return runErr
}

// versionCmd creates the "version" subcommand.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dexfetch %s\n", config.Version)
		},
	}
}

// configCmd creates the "config" subcommand for inspecting configuration.
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Printf("Fetcher:\n")
			fmt.Printf("  Type:             %s\n", cfg.Fetcher.Type)
			fmt.Printf("  Request Timeout:  %s\n", cfg.Fetcher.RequestTimeout)
			fmt.Printf("  Follow Redirects: %v\n", cfg.Fetcher.FollowRedirects)
			fmt.Printf("  Max Body Size:    %d bytes\n", cfg.Fetcher.MaxBodySize)
			fmt.Printf("\nBatch:\n")
			fmt.Printf("  Delay:            %s\n", cfg.Batch.Delay)
			fmt.Printf("\nStorage:\n")
			fmt.Printf("  Type:             %s\n", cfg.Storage.Type)
			fmt.Printf("  Output Path:      %s\n", cfg.Storage.OutputPath)
			fmt.Printf("\nMetrics:\n")
			fmt.Printf("  Enabled:          %v\n", cfg.Metrics.Enabled)
			fmt.Printf("  Port:             %d\n", cfg.Metrics.Port)
			return nil
		},
	}
}

// setupLogger creates a structured logger from the logging config.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// applyCLIOverrides applies command-line flag values to the config.
func applyCLIOverrides(cfg *config.Config) {
	if outputPath != "" {
		cfg.Storage.OutputPath = outputPath
	}
	if outputType != "" {
		cfg.Storage.Type = outputType
	}
	if delay != "" {
		if d, err := time.ParseDuration(delay); err == nil {
			cfg.Batch.Delay = d
		}
	}
	if timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			cfg.Fetcher.RequestTimeout = d
		}
	}
	if userAgent != "" {
		cfg.Fetcher.UserAgent = userAgent
	}
}
