package bitget

import (
	"encoding/json"
	"testing"
	"time"
)

func recordFromJSON(t *testing.T, src string) Record {
	t.Helper()
	var r Record
	if err := json.Unmarshal([]byte(src), &r); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	return r
}

func TestRecordFloat(t *testing.T) {
	t.Run("string number", func(t *testing.T) {
		r := recordFromJSON(t, `{"profit": "12.5"}`)
		if got := r.Float("profit"); got != 12.5 {
			t.Errorf("Float(profit) = %v, want 12.5", got)
		}
	})

	t.Run("json number", func(t *testing.T) {
		r := recordFromJSON(t, `{"profit": 12.5}`)
		if got := r.Float("profit"); got != 12.5 {
			t.Errorf("Float(profit) = %v, want 12.5", got)
		}
	})

	t.Run("alias order", func(t *testing.T) {
		r := recordFromJSON(t, `{"realizedPnl": "3.0", "pnl": "9.0"}`)
		if got := r.Float("profit", "realizedPnl", "pnl"); got != 3.0 {
			t.Errorf("Float = %v, want 3.0 (first populated alias)", got)
		}
	})

	t.Run("empty string is not populated", func(t *testing.T) {
		r := recordFromJSON(t, `{"profit": "", "realizedPnl": "7.0"}`)
		if got := r.Float("profit", "realizedPnl"); got != 7.0 {
			t.Errorf("Float = %v, want 7.0 (skip empty alias)", got)
		}
	})

	t.Run("populated zero counts", func(t *testing.T) {
		r := recordFromJSON(t, `{"profit": "0", "realizedPnl": "7.0"}`)
		if got := r.Float("profit", "realizedPnl"); got != 0 {
			t.Errorf("Float = %v, want 0 (explicit zero wins)", got)
		}
	})

	t.Run("missing everywhere", func(t *testing.T) {
		r := recordFromJSON(t, `{}`)
		if got := r.Float("profit", "realizedPnl", "pnl"); got != 0 {
			t.Errorf("Float = %v, want 0", got)
		}
		if r.Has("profit", "realizedPnl", "pnl") {
			t.Error("Has = true, want false")
		}
	})
}

func TestRecordFloatNonZero(t *testing.T) {
	r := recordFromJSON(t, `{"liquidationPrice": "0", "estLiqPrice": "61250.5"}`)
	if got := r.FloatNonZero("liquidationPrice", "liqPrice", "estLiqPrice"); got != 61250.5 {
		t.Errorf("FloatNonZero = %v, want 61250.5 (skip placeholder zero)", got)
	}
}

func TestRecordStr(t *testing.T) {
	r := recordFromJSON(t, `{"tradeId": "", "fillId": "abc-123"}`)
	if got := r.Str("tradeId", "fillId", "id"); got != "abc-123" {
		t.Errorf("Str = %q, want %q", got, "abc-123")
	}
}

func TestRecordTime(t *testing.T) {
	r := recordFromJSON(t, `{"cTime": "1704067200000"}`)
	want := time.UnixMilli(1704067200000)
	if got := r.Time("cTime"); !got.Equal(want) {
		t.Errorf("Time(cTime) = %v, want %v", got, want)
	}

	empty := recordFromJSON(t, `{}`)
	if got := empty.Time("cTime"); !got.IsZero() {
		t.Errorf("Time on missing field = %v, want zero time", got)
	}
}

func TestRecordList(t *testing.T) {
	r := recordFromJSON(t, `{"feeDetail": [{"totalFee": "-0.5"}, {"totalFee": "-0.25"}]}`)
	fees := r.List("feeDetail")
	if len(fees) != 2 {
		t.Fatalf("List(feeDetail) len = %d, want 2", len(fees))
	}
	if got := fees[0].Float("totalFee"); got != -0.5 {
		t.Errorf("fees[0].Float(totalFee) = %v, want -0.5", got)
	}
}

func TestPositionFrom(t *testing.T) {
	r := recordFromJSON(t, `{
		"symbol": "BTCUSDT",
		"holdSide": "long",
		"total": "0.05",
		"openPriceAvg": "60000",
		"unrealizedPL": "125.5",
		"marginSize": "300",
		"leverage": "10",
		"liquidationPrice": "54100.2",
		"achievedProfits": "200",
		"cTime": "1704067200000"
	}`)

	p := PositionFrom(r)

	if p.Symbol != "BTCUSDT" {
		t.Errorf("Symbol = %q, want BTCUSDT", p.Symbol)
	}
	if p.Side != "long" {
		t.Errorf("Side = %q, want long", p.Side)
	}
	if p.Size != 0.05 {
		t.Errorf("Size = %v, want 0.05", p.Size)
	}
	if p.EntryPrice != 60000 {
		t.Errorf("EntryPrice = %v, want 60000", p.EntryPrice)
	}
	if p.Leverage != 10 {
		t.Errorf("Leverage = %d, want 10", p.Leverage)
	}
	if p.AchievedProfits != 200 {
		t.Errorf("AchievedProfits = %v, want 200", p.AchievedProfits)
	}
	if !p.IsOpen() {
		t.Error("IsOpen = false, want true")
	}
	if p.OpenedAt.IsZero() {
		t.Error("OpenedAt is zero, want parsed cTime")
	}
}

func TestPositionFromLegacyAliases(t *testing.T) {
	r := recordFromJSON(t, `{
		"symbol": "BTCUSDT",
		"holdSide": "short",
		"size": "0.02",
		"averageOpenPrice": "61000",
		"margin": "120",
		"liqPx": "66900"
	}`)

	p := PositionFrom(r)

	if p.Size != 0.02 {
		t.Errorf("Size via legacy alias = %v, want 0.02", p.Size)
	}
	if p.EntryPrice != 61000 {
		t.Errorf("EntryPrice via legacy alias = %v, want 61000", p.EntryPrice)
	}
	if p.Margin != 120 {
		t.Errorf("Margin via legacy alias = %v, want 120", p.Margin)
	}
	if p.LiquidationPrice != 66900 {
		t.Errorf("LiquidationPrice via legacy alias = %v, want 66900", p.LiquidationPrice)
	}
}

func TestAccountSummaryFrom(t *testing.T) {
	r := recordFromJSON(t, `{
		"accountEquity": "4350.75",
		"crossedMaxAvailable": "1200.5",
		"unrealizedPL": "-42.25",
		"crossedRiskRate": "0.12",
		"locked": "0"
	}`)

	a := AccountSummaryFrom(r)

	if a.Equity != 4350.75 {
		t.Errorf("Equity = %v, want 4350.75", a.Equity)
	}
	if a.Available != 1200.5 {
		t.Errorf("Available = %v, want 1200.5", a.Available)
	}
	if a.UnrealizedPnL != -42.25 {
		t.Errorf("UnrealizedPnL = %v, want -42.25", a.UnrealizedPnL)
	}
	if a.MarginRatio != 12 {
		t.Errorf("MarginRatio = %v, want 12", a.MarginRatio)
	}
}
