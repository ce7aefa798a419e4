package pnl

import (
	"context"
	"time"

	"github.com/seojun-park/bitget-monitor/internal/bitget"
	"github.com/seojun-park/bitget-monitor/internal/tradeday"
)

// aggregateSnapshot reads the cumulative achieved profit reported on open
// positions. The figure is lifetime-since-open, not window-bounded: it only
// rates medium confidence when it is non-zero AND every contributing
// position is younger than the requested window, otherwise it would
// misrepresent a bounded report.
func (e *Engine) aggregateSnapshot(ctx context.Context, win tradeday.Range, windowDays int) (Result, error) {
	records, err := e.client.GetPositions(ctx, e.market.ProductType, e.market.MarginCoin)
	if err != nil {
		return Result{}, err
	}

	var total float64
	var count int
	var oldest time.Time

	for _, r := range records {
		p := bitget.PositionFrom(r)
		if !p.IsOpen() {
			continue
		}
		total += p.AchievedProfits
		count++
		if oldest.IsZero() || (!p.OpenedAt.IsZero() && p.OpenedAt.Before(oldest)) {
			oldest = p.OpenedAt
		}
	}

	confidence := ConfidenceLow
	if total != 0 && withinWindow(oldest, win) {
		confidence = ConfidenceMedium
	}

	return Result{
		TotalPnL:     total,
		TradeCount:   count,
		AverageDaily: averageDaily(total, windowDays),
		WindowDays:   windowDays,
		Source:       SourcePosition,
		Confidence:   confidence,
	}, nil
}

// withinWindow reports whether the position age fits the requested window.
// An unknown open time fails the check.
func withinWindow(openedAt time.Time, win tradeday.Range) bool {
	if openedAt.IsZero() {
		return false
	}
	return !openedAt.Before(win.Start)
}
