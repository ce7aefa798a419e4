package pnl

import (
	"context"
	"math"
	"time"

	"github.com/seojun-park/bitget-monitor/internal/bitget"
	"github.com/seojun-park/bitget-monitor/internal/collect"
	"github.com/seojun-park/bitget-monitor/internal/tradeday"
)

// maxFillLookback is the per-call lookback span the fill-history endpoint
// enforces; longer windows are split into consecutive sub-ranges.
const maxFillLookback = 7 * 24 * time.Hour

// Ordered profit aliases for fill records.
var profitFields = []string{"profit", "realizedPnl", "pnl"}

// aggregateFills reconstructs realized P&L from raw execution records.
// Fills are reconstructable but subject to pagination and field drift, so
// the result rates medium confidence.
func (e *Engine) aggregateFills(ctx context.Context, win tradeday.Range, windowDays int) (Result, error) {
	var all []bitget.Record
	for _, sub := range tradeday.SplitWindow(win.Start, win.End, maxFillLookback) {
		records, err := collect.All(ctx, e.fillsPage(sub), e.copts)
		if err != nil {
			return Result{}, err
		}
		all = append(all, records...)
	}

	// Sub-ranges can overlap at the seams; identity dedup again after
	// concatenation.
	all = collect.Dedup(all)

	buckets := tradeday.NewBuckets(e.loc)
	var totalFees float64

	for _, r := range all {
		profit := r.Float(profitFields...)
		fee := fillFee(r)
		totalFees += fee
		buckets.Add(r.Time("cTime", "ctime"), profit-fee)
	}

	total := buckets.Total()
	return Result{
		TotalPnL:     total,
		Daily:        buckets.Sorted(),
		TradeCount:   len(all),
		TotalFees:    totalFees,
		AverageDaily: averageDaily(total, windowDays),
		WindowDays:   windowDays,
		Source:       SourceFills,
		Confidence:   ConfidenceMedium,
	}, nil
}

// fillFee sums the fee-breakdown list, falling back to the flat fee field
// when no breakdown is present. Fees are reported negative; magnitudes are
// what get charged.
func fillFee(r bitget.Record) float64 {
	details := r.List("feeDetail")
	if len(details) == 0 {
		return math.Abs(r.Float("fee"))
	}

	var sum float64
	for _, d := range details {
		sum += math.Abs(d.Float("totalFee", "fee"))
	}
	return sum
}
