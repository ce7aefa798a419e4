package bitget

import "time"

// Ordered candidate-field tables per logical value. The exchange has exposed
// each of these under different names across API revisions; lookups try the
// aliases in order and take the first populated one.
var (
	equityFields      = []string{"accountEquity", "usdtEquity"}
	availableFields   = []string{"crossedMaxAvailable", "available", "crossedAvailable"}
	unrealizedFields  = []string{"unrealizedPL", "unrealizedPnl"}
	marginRatioFields = []string{"crossedRiskRate", "marginRatio"}

	sizeFields        = []string{"total", "size"}
	entryPriceFields  = []string{"openPriceAvg", "averageOpenPrice", "openPrice"}
	marginFields      = []string{"marginSize", "margin"}
	liquidationFields = []string{"liquidationPrice", "liqPrice", "estLiqPrice", "liqPx"}
	achievedFields    = []string{"achievedProfits", "achievedProfit"}
	openTimeFields    = []string{"cTime", "ctime", "createdTime"}

	lastPriceFields = []string{"lastPr", "last"}
)

// AccountSummary is the typed view of the futures account endpoint.
type AccountSummary struct {
	Equity        float64 `json:"equity"`
	Available     float64 `json:"available"`
	UnrealizedPnL float64 `json:"unrealized_pnl"`
	MarginRatio   float64 `json:"margin_ratio"` // percent
	Locked        float64 `json:"locked"`
}

// AccountSummaryFrom builds an AccountSummary from a raw account record.
func AccountSummaryFrom(r Record) AccountSummary {
	return AccountSummary{
		Equity:        r.Float(equityFields...),
		Available:     r.Float(availableFields...),
		UnrealizedPnL: r.Float(unrealizedFields...),
		MarginRatio:   r.Float(marginRatioFields...) * 100,
		Locked:        r.Float("locked"),
	}
}

// Position is the typed view of one open position.
type Position struct {
	Symbol           string    `json:"symbol"`
	Side             string    `json:"side"` // long or short
	Size             float64   `json:"size"`
	EntryPrice       float64   `json:"entry_price"`
	UnrealizedPnL    float64   `json:"unrealized_pnl"`
	Margin           float64   `json:"margin"`
	Leverage         int       `json:"leverage"`
	LiquidationPrice float64   `json:"liquidation_price"`
	AchievedProfits  float64   `json:"achieved_profits"`
	OpenedAt         time.Time `json:"opened_at"`
}

// PositionFrom builds a Position from a raw position record.
func PositionFrom(r Record) Position {
	return Position{
		Symbol:           r.Str("symbol"),
		Side:             r.Str("holdSide", "side"),
		Size:             r.Float(sizeFields...),
		EntryPrice:       r.Float(entryPriceFields...),
		UnrealizedPnL:    r.Float(unrealizedFields...),
		Margin:           r.Float(marginFields...),
		Leverage:         int(r.Int64("leverage")),
		LiquidationPrice: r.FloatNonZero(liquidationFields...),
		AchievedProfits:  r.Float(achievedFields...),
		OpenedAt:         r.Time(openTimeFields...),
	}
}

// IsOpen reports whether the position carries size.
func (p Position) IsOpen() bool { return p.Size > 0 }

// LastPrice extracts the last traded price from a ticker record.
func LastPrice(r Record) float64 {
	return r.Float(lastPriceFields...)
}
