// Command monitor reports realized P&L and account state for a Bitget
// USDT-futures account.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/seojun-park/bitget-monitor/internal/bitget"
	"github.com/seojun-park/bitget-monitor/internal/config"
	"github.com/seojun-park/bitget-monitor/internal/pnl"
	"github.com/seojun-park/bitget-monitor/internal/version"
	"github.com/seojun-park/bitget-monitor/internal/watch"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	configPath string
	verbose    bool

	cfg    *config.MonitorConfig
	engine *pnl.Engine
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "monitor",
		Short:         "Bitget USDT-futures P&L monitor",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "configs/monitor.yaml", "path to config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newReportCmd(a),
		newWatchCmd(a),
		newTodayCmd(a),
		newAccountCmd(a),
		newPositionsCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the environment, logging, configuration, and the engine. Runs
// once per invocation before any subcommand.
func (a *app) setup() error {
	// Credentials may live in a .env file during development; a missing
	// file is not an error.
	_ = godotenv.Load()

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(a.logger)

	a.logger.Debug("starting monitor",
		"version", version.Version,
		"commit", version.Commit,
		"config", a.configPath,
	)

	cfg, err := config.LoadAndValidate(a.configPath)
	if err != nil {
		a.logger.Error("failed to load config", "error", err)
		return err
	}
	a.cfg = cfg

	client := bitget.NewClient(
		cfg.API.BaseURL,
		bitget.Credentials{
			AccessKey:  cfg.API.AccessKey,
			SecretKey:  cfg.API.SecretKey,
			Passphrase: cfg.API.Passphrase,
		},
		bitget.WithLogger(a.logger),
		bitget.WithTimeout(cfg.API.Timeout),
		bitget.WithRetries(cfg.API.MaxRetries, time.Second),
	)

	a.engine = pnl.New(client, cfg, pnl.WithLogger(a.logger))
	return nil
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// printJSON writes v to stdout, indented for humans.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newReportCmd(a *app) *cobra.Command {
	var windowDays int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Reconcile realized P&L over the trailing window",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			days := windowDays
			if days <= 0 {
				days = a.cfg.Report.WindowDays
			}

			result := a.engine.GetProfitAndLoss(ctx, days)
			return printJSON(result)
		},
	}

	cmd.Flags().IntVar(&windowDays, "window", 0, "window in days (default from config)")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	var (
		interval   time.Duration
		windowDays int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rerun reconciliation on an interval until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			days := windowDays
			if days <= 0 {
				days = a.cfg.Report.WindowDays
			}

			w := watch.New(
				watch.Config{Interval: interval, WindowDays: days},
				a.engine,
				watch.ReportHandlerFunc(func(r pnl.Result) error {
					return printJSON(r)
				}),
				a.logger,
			)
			if err := w.Start(ctx); err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}

			<-ctx.Done()

			stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer stopCancel()
			return w.Stop(stopCtx)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 15*time.Minute, "time between passes")
	cmd.Flags().IntVar(&windowDays, "window", 0, "window in days (default from config)")
	return cmd
}

func newTodayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Realized P&L for the current trading day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			total, err := a.engine.TodayRealizedPnL(ctx)
			if err != nil {
				return fmt.Errorf("today realized pnl: %w", err)
			}
			return printJSON(map[string]any{
				"realized_pnl": total,
				"timezone":     a.cfg.Report.Timezone,
			})
		},
	}
}

func newAccountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Current futures account summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			summary, err := a.engine.AccountSummary(ctx)
			if err != nil {
				return fmt.Errorf("account summary: %w", err)
			}

			price, err := a.engine.LastPrice(ctx)
			if err != nil {
				// Price is decoration on the summary; log and move on.
				a.logger.Warn("failed to fetch last price", "error", err)
			}

			return printJSON(map[string]any{
				"account":    summary,
				"symbol":     a.cfg.Market.Symbol,
				"last_price": price,
			})
		},
	}
}

func newPositionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "positions",
		Short: "Currently open positions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			positions, err := a.engine.OpenPositions(ctx)
			if err != nil {
				return fmt.Errorf("open positions: %w", err)
			}
			return printJSON(positions)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// No config or credentials needed to print a version.
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("monitor", version.String())
		},
	}
}
