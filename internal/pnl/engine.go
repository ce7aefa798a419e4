// Package pnl reconciles realized profit-and-loss from multiple exchange
// data sources.
//
// Three independent aggregators estimate the same quantity: the booked
// account ledger, raw trade fills, and the open-position snapshot. Each
// yields a Result with a confidence rank; a selector then picks the best
// estimate. Aggregator failures never abort a report — a failed source
// degrades to an empty low-confidence result and the others still compete.
package pnl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/seojun-park/bitget-monitor/internal/bitget"
	"github.com/seojun-park/bitget-monitor/internal/collect"
	"github.com/seojun-park/bitget-monitor/internal/config"
	"github.com/seojun-park/bitget-monitor/internal/tradeday"
)

// Engine runs reconciliation passes against one exchange account.
type Engine struct {
	client *bitget.Client
	market config.MarketConfig
	copts  collect.Options
	loc    *time.Location
	logger *slog.Logger
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
		e.copts.Logger = logger
	}
}

// WithClock overrides the engine's time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates a reconciliation engine from a signed API client and the
// monitor configuration.
func New(client *bitget.Client, cfg *config.MonitorConfig, opts ...Option) *Engine {
	e := &Engine{
		client: client,
		market: cfg.Market,
		copts: collect.Options{
			PageSize: cfg.Collector.PageSize,
			MaxPages: cfg.Collector.MaxPages,
			Pacing:   cfg.Collector.Pacing,
		},
		loc:    tradeday.Location(cfg.Report.Timezone),
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.copts.Logger = e.logger
	return e
}

// billsPage returns a PageFunc over one ledger business-type stream.
func (e *Engine) billsPage(businessType string, win tradeday.Range) collect.PageFunc {
	return func(ctx context.Context, cursor string, limit int) ([]bitget.Record, error) {
		return e.client.GetBills(ctx, bitget.BillsOptions{
			ProductType:  e.market.ProductType,
			MarginCoin:   e.market.MarginCoin,
			BusinessType: businessType,
			StartTime:    win.Start,
			EndTime:      win.End,
			Limit:        limit,
			Cursor:       cursor,
		})
	}
}

// fillsPage returns a PageFunc over one fill-history sub-range.
func (e *Engine) fillsPage(win tradeday.Range) collect.PageFunc {
	return func(ctx context.Context, cursor string, limit int) ([]bitget.Record, error) {
		return e.client.GetFills(ctx, bitget.FillsOptions{
			Symbol:      e.market.Symbol,
			ProductType: e.market.ProductType,
			StartTime:   win.Start,
			EndTime:     win.End,
			Limit:       limit,
			Cursor:      cursor,
		})
	}
}

// aggregator is one source estimate producer.
type aggregator func(ctx context.Context, win tradeday.Range, windowDays int) (Result, error)

// GetProfitAndLoss reconciles realized P&L over the trailing window. The
// three aggregators run concurrently; a source that errors is degraded to
// an empty low-confidence result rather than failing the pass. Only when
// every source errors does the report carry Source "error".
func (e *Engine) GetProfitAndLoss(ctx context.Context, windowDays int) Result {
	if windowDays <= 0 {
		windowDays = 7
	}

	end := e.now()
	win := tradeday.Range{
		Start: end.Add(-time.Duration(windowDays) * 24 * time.Hour),
		End:   end,
	}

	logger := e.logger.With("pass_id", uuid.NewString(), "window_days", windowDays)
	logger.Info("reconciliation pass started",
		"symbol", e.market.Symbol,
		"window_start", win.Start.In(e.loc).Format(time.RFC3339),
		"window_end", win.End.In(e.loc).Format(time.RFC3339),
	)

	var ledger, fills, snapshot Result
	var ledgerErr, fillsErr, snapshotErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ledger, ledgerErr = e.runSource(gctx, logger, SourceLedger, e.aggregateLedger, win, windowDays)
		return nil
	})
	g.Go(func() error {
		fills, fillsErr = e.runSource(gctx, logger, SourceFills, e.aggregateFills, win, windowDays)
		return nil
	})
	g.Go(func() error {
		snapshot, snapshotErr = e.runSource(gctx, logger, SourcePosition, e.aggregateSnapshot, win, windowDays)
		return nil
	})
	_ = g.Wait()

	if ledgerErr != nil && fillsErr != nil && snapshotErr != nil {
		logger.Error("all data sources failed",
			"ledger_error", ledgerErr,
			"fills_error", fillsErr,
			"snapshot_error", snapshotErr,
		)
		return Result{
			WindowDays: windowDays,
			Source:     SourceError,
			Confidence: ConfidenceNone,
			Diagnostic: "all data sources failed: " + ledgerErr.Error(),
		}
	}

	selected := Select(ledger, fills, snapshot, windowDays)
	logger.Info("reconciliation pass finished",
		"source", selected.Source,
		"confidence", selected.Confidence,
		"total_pnl", selected.TotalPnL,
		"trade_count", selected.TradeCount,
	)
	return selected
}

// runSource executes one aggregator, degrading failure to an empty
// low-confidence result so the remaining sources still compete. The
// original error is returned alongside for all-fail detection.
func (e *Engine) runSource(ctx context.Context, logger *slog.Logger, source Source, agg aggregator, win tradeday.Range, windowDays int) (Result, error) {
	result, err := agg(ctx, win, windowDays)
	if err != nil {
		logger.Warn("data source failed", "source", source, "error", err)
		return Result{
			WindowDays: windowDays,
			Source:     source,
			Confidence: ConfidenceLow,
			Diagnostic: err.Error(),
		}, err
	}
	return result, nil
}

// TodayRealizedPnL sums realized profit net of fees across today's fills,
// with the trading day bounded in the report timezone.
func (e *Engine) TodayRealizedPnL(ctx context.Context) (float64, error) {
	now := e.now()
	win := tradeday.Range{Start: tradeday.StartOfDay(now, e.loc), End: now}

	records, err := collect.All(ctx, e.fillsPage(win), e.copts)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, r := range records {
		total += r.Float(profitFields...) - fillFee(r)
	}
	return total, nil
}

// AccountSummary fetches the current futures account state.
func (e *Engine) AccountSummary(ctx context.Context) (bitget.AccountSummary, error) {
	record, err := e.client.GetAccount(ctx, e.market.ProductType, e.market.MarginCoin)
	if err != nil {
		return bitget.AccountSummary{}, err
	}
	return bitget.AccountSummaryFrom(record), nil
}

// LastPrice fetches the last traded price of the monitored symbol.
func (e *Engine) LastPrice(ctx context.Context) (float64, error) {
	record, err := e.client.GetTicker(ctx, e.market.Symbol, e.market.ProductType)
	if err != nil {
		return 0, err
	}
	return bitget.LastPrice(record), nil
}

// OpenPositions fetches the currently open positions for the product line.
func (e *Engine) OpenPositions(ctx context.Context) ([]bitget.Position, error) {
	records, err := e.client.GetPositions(ctx, e.market.ProductType, e.market.MarginCoin)
	if err != nil {
		return nil, err
	}

	var out []bitget.Position
	for _, r := range records {
		if p := bitget.PositionFrom(r); p.IsOpen() {
			out = append(out, p)
		}
	}
	return out, nil
}
