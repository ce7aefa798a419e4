package pnl

import "github.com/seojun-park/bitget-monitor/internal/tradeday"

// Source identifies which data source produced a result.
type Source string

const (
	// SourceLedger is the booked transaction trail (settlement, fee,
	// funding) — the authoritative accounting record.
	SourceLedger Source = "ledger"

	// SourceFills is reconstruction from raw trade execution records.
	SourceFills Source = "fills"

	// SourcePosition is the cumulative achieved profit reported on open
	// positions, lifetime-since-open rather than window-bounded.
	SourcePosition Source = "position"

	// SourceError marks a result produced when no source had usable data.
	SourceError Source = "error"
)

// Confidence is a coarse rank used only to break ties between competing
// source estimates. It is not a statistical measure.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceNone   Confidence = "none"
)

// Result is one aggregate profit-and-loss estimate. Immutable once
// produced by its aggregator.
type Result struct {
	TotalPnL     float64              `json:"total_pnl"`
	Daily        []tradeday.DayAmount `json:"daily_pnl"`
	TradeCount   int                  `json:"trade_count"`
	TotalFees    float64              `json:"total_fees"`
	AverageDaily float64              `json:"average_daily"`
	WindowDays   int                  `json:"window_days"`
	Source       Source               `json:"source"`
	Confidence   Confidence           `json:"confidence"`
	Diagnostic   string               `json:"diagnostic,omitempty"`
}

// empty reports whether the result carries no signal at all.
func (r Result) empty() bool {
	return r.TotalPnL == 0 && r.TradeCount == 0 && len(r.Daily) == 0
}
