package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mmynk/eatnsplit/internal/calculator"
	"github.com/mmynk/eatnsplit/internal/config"
	"github.com/mmynk/eatnsplit/internal/metrics"
	"github.com/mmynk/eatnsplit/internal/middleware"
	"github.com/mmynk/eatnsplit/internal/service"
	"github.com/mmynk/eatnsplit/internal/storage/memory"
	"github.com/mmynk/eatnsplit/internal/tui"
	"github.com/mmynk/eatnsplit/pkg/logging"
)

// Set via ldflags at build time
var version = "dev"

type rootOptions struct {
	configPath       string
	logLevel         string
	logFile          string
	metricsAddr      string
	placeholderImage string
}

func main() {
	if err := newRootCmd(&rootOptions{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eatnsplit",
		Short: "Split bills with friends from the terminal",
		Long: `Eat-'n-Split keeps a list of friends and what you owe each other.

Select a friend to split a bill with them, add new friends, or delete
friends you have settled up with.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFile, "log-file", "", "Log file path (the TUI owns the terminal)")
	flags.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	flags.StringVar(&opts.placeholderImage, "placeholder-image", "", "Default image URL for new friends")

	cmd.AddCommand(newVersionCmd(), newListCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "version",
		Short:  "Print the version",
		Args:   cobra.NoArgs,
		PreRun: setupConsoleLogging,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "eatnsplit %s\n", version)
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "list",
		Short:  "Print the starting friend list and balances",
		Args:   cobra.NoArgs,
		PreRun: setupConsoleLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			friends := memory.NewSeeded().List()
			slog.Debug("Listing friends", "count", len(friends))

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "NAME", "BALANCE", "STANDING")
			for _, f := range friends {
				t.Row(f.ID, f.Name, fmt.Sprintf("%d", f.Balance), f.Describe())
			}

			s := calculator.Summarize(friends)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, t.String())
			fmt.Fprintf(out, "You are owed $%d, you owe $%d (net %d)\n", s.TotalOwed, s.TotalOwing, s.Net)
			return nil
		},
	}
}

// setupConsoleLogging logs to stderr for subcommands that don't start the TUI.
func setupConsoleLogging(cmd *cobra.Command, args []string) {
	logging.Setup()
}

// loadConfig applies flags the user set on top of config.Load.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr = opts.metricsAddr
	}
	if flags.Changed("placeholder-image") {
		cfg.PlaceholderImage = opts.placeholderImage
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logFile, err := logging.SetupFile(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer logFile.Close()

	store := memory.NewSeeded()
	reg := prometheus.NewRegistry()
	coord := service.NewCoordinator(store, metrics.New(reg, store), middleware.Logging())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	metricsDone := make(chan struct{})
	if cfg.MetricsAddr != "" {
		go func() {
			defer close(metricsDone)
			if err := metrics.Serve(ctx, cfg.MetricsAddr, reg); err != nil {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
	} else {
		close(metricsDone)
	}

	slog.Info("Starting eatnsplit", "version", version, "friends", store.Len(), "metrics_addr", cfg.MetricsAddr)

	m := tui.New(coord, tui.Options{PlaceholderImage: cfg.PlaceholderImage})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, runErr := p.Run()

	cancel()
	<-metricsDone

	if runErr != nil {
		return fmt.Errorf("failed to run app: %w", runErr)
	}
	slog.Info("Exiting eatnsplit", "friends", store.Len())
	return nil
}
