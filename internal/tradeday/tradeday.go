// Package tradeday handles trading-day arithmetic for the monitor.
//
// The exchange account is reported against a fixed source timezone
// (Asia/Seoul): daily P&L buckets follow that calendar, not UTC.
package tradeday

import (
	"sort"
	"time"
)

// DateFormat is the bucket key layout.
const DateFormat = "2006-01-02"

// Location resolves a timezone name, falling back to a fixed KST offset
// when the IANA database is unavailable on the host.
func Location(name string) *time.Location {
	if name == "" {
		name = "Asia/Seoul"
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	if name == "Asia/Seoul" {
		return time.FixedZone("KST", 9*60*60)
	}
	return time.UTC
}

// Key returns the trading-day bucket key for a timestamp.
func Key(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateFormat)
}

// StartOfDay returns midnight of t's trading day.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// Range is a half-open time window [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

// SplitWindow cuts [start, end) into consecutive, non-overlapping sub-ranges
// no longer than max. Used for endpoints that cap the per-call lookback span.
func SplitWindow(start, end time.Time, max time.Duration) []Range {
	if !start.Before(end) || max <= 0 {
		return nil
	}

	var out []Range
	for cur := start; cur.Before(end); {
		next := cur.Add(max)
		if next.After(end) {
			next = end
		}
		out = append(out, Range{Start: cur, End: next})
		cur = next
	}
	return out
}

// DayAmount is one trading day's net amount.
type DayAmount struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// Buckets accumulates amounts per trading day.
type Buckets struct {
	loc     *time.Location
	amounts map[string]float64
}

// NewBuckets creates an accumulator in the given timezone.
func NewBuckets(loc *time.Location) *Buckets {
	return &Buckets{
		loc:     loc,
		amounts: make(map[string]float64),
	}
}

// Add accrues amount into the bucket for ts's trading day.
func (b *Buckets) Add(ts time.Time, amount float64) {
	b.amounts[Key(ts, b.loc)] += amount
}

// Total returns the sum over all buckets.
func (b *Buckets) Total() float64 {
	var total float64
	for _, v := range b.amounts {
		total += v
	}
	return total
}

// Len returns the number of non-empty buckets.
func (b *Buckets) Len() int {
	return len(b.amounts)
}

// Sorted returns the buckets ordered by date, keys unique.
func (b *Buckets) Sorted() []DayAmount {
	out := make([]DayAmount, 0, len(b.amounts))
	for date, amount := range b.amounts {
		out = append(out, DayAmount{Date: date, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
