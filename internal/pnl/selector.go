package pnl

// Select picks the result to report from the three competing source
// estimates. The order is strict: booked ledger data beats fill
// reconstruction, which beats the position snapshot; a low-confidence
// ledger with activity still beats nothing. Only when no source carries
// any signal does the report degrade to an error result.
func Select(ledger, fills, snapshot Result, windowDays int) Result {
	switch {
	case ledger.Confidence == ConfidenceHigh && ledger.TotalPnL != 0:
		return ledger

	case fills.Confidence == ConfidenceMedium && fills.TotalPnL != 0:
		return fills

	case snapshot.TotalPnL != 0:
		// Lifetime-since-open figure amortized over the window; there is
		// no per-day breakdown to report.
		snapshot.AverageDaily = averageDaily(snapshot.TotalPnL, windowDays)
		return snapshot

	case ledger.TradeCount > 0:
		// Booked entries exist but net to zero. Zero is the answer.
		return ledger

	case !fills.empty():
		return fills
	}

	return Result{
		WindowDays: windowDays,
		Source:     SourceError,
		Confidence: ConfidenceNone,
		Diagnostic: "no data source returned a usable signal",
	}
}
