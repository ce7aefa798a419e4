// Package watch reruns reconciliation on a fixed interval.
//
// A Watcher produces a fresh P&L report every tick and hands it to a
// handler. A report pass that degrades (source "error") is still delivered;
// the handler decides what to do with it.
package watch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/seojun-park/bitget-monitor/internal/pnl"
)

// Reconciler produces one P&L report over a trailing window.
type Reconciler interface {
	GetProfitAndLoss(ctx context.Context, windowDays int) pnl.Result
}

// ReportHandler receives each report as it is produced.
type ReportHandler interface {
	HandleReport(result pnl.Result) error
}

// ReportHandlerFunc is a function adapter for ReportHandler.
type ReportHandlerFunc func(pnl.Result) error

func (f ReportHandlerFunc) HandleReport(r pnl.Result) error { return f(r) }

// Config holds watcher configuration.
type Config struct {
	Interval   time.Duration // time between passes (default: 15m)
	WindowDays int           // trailing window per pass (default: 7)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval:   15 * time.Minute,
		WindowDays: 7,
	}
}

// Watcher periodically reconciles P&L and delivers the reports.
type Watcher struct {
	cfg        Config
	reconciler Reconciler
	handler    ReportHandler
	logger     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a Watcher.
func New(cfg Config, reconciler Reconciler, handler ReportHandler, logger *slog.Logger) *Watcher {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = DefaultConfig().WindowDays
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		cfg:        cfg,
		reconciler: reconciler,
		handler:    handler,
		logger:     logger,
	}
}

// Start begins the watch loop.
func (w *Watcher) Start(ctx context.Context) error {
	w.ctx, w.cancel = context.WithCancel(ctx)

	w.wg.Add(1)
	go w.run()

	w.logger.Info("watcher started",
		"interval", w.cfg.Interval,
		"window_days", w.cfg.WindowDays,
	)
	return nil
}

// Stop gracefully shuts down the watcher.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.cancel()
	}

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("watcher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the main watch loop. One pass fires immediately on start.
func (w *Watcher) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	w.pass()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.pass()
		}
	}
}

// pass runs one reconciliation and delivers the report.
func (w *Watcher) pass() {
	start := time.Now()
	result := w.reconciler.GetProfitAndLoss(w.ctx, w.cfg.WindowDays)

	if w.handler != nil {
		if err := w.handler.HandleReport(result); err != nil {
			w.logger.Warn("report handler failed", "err", err)
		}
	}

	w.logger.Info("watch pass complete",
		"source", result.Source,
		"confidence", result.Confidence,
		"total_pnl", result.TotalPnL,
		"duration", time.Since(start),
	)
}
