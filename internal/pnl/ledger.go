package pnl

import (
	"context"
	"math"

	"github.com/seojun-park/bitget-monitor/internal/collect"
	"github.com/seojun-park/bitget-monitor/internal/tradeday"
)

// Ledger business-type streams queried per window. Settlement and funding
// net into daily P&L; fees are tracked separately.
const (
	businessSettle  = "settle"
	businessFee     = "fee"
	businessFunding = "funding"
)

var ledgerStreams = []string{businessSettle, businessFee, businessFunding}

// Ordered amount aliases for ledger entries.
var billAmountFields = []string{"amount", "size"}

// aggregateLedger reconstructs realized P&L from booked account bills.
// Entries are immutable booked truth, so any data at all rates high
// confidence.
func (e *Engine) aggregateLedger(ctx context.Context, win tradeday.Range, windowDays int) (Result, error) {
	buckets := tradeday.NewBuckets(e.loc)
	var totalFees float64
	var count int

	for _, stream := range ledgerStreams {
		records, err := collect.All(ctx, e.billsPage(stream, win), e.copts)
		if err != nil {
			return Result{}, err
		}

		for _, r := range records {
			amount := r.Float(billAmountFields...)
			switch stream {
			case businessFee:
				totalFees += math.Abs(amount)
			default:
				buckets.Add(r.Time("cTime", "ctime"), amount)
			}
			count++
		}
	}

	confidence := ConfidenceLow
	if count > 0 {
		confidence = ConfidenceHigh
	}

	total := buckets.Total()
	return Result{
		TotalPnL:     total,
		Daily:        buckets.Sorted(),
		TradeCount:   count,
		TotalFees:    totalFees,
		AverageDaily: averageDaily(total, windowDays),
		WindowDays:   windowDays,
		Source:       SourceLedger,
		Confidence:   confidence,
	}, nil
}

func averageDaily(total float64, windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}
	return total / float64(windowDays)
}
