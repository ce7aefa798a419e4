package bitget

import (
	"strconv"
	"time"
)

// Record is a raw API object. Bitget reports the same logical value under
// different field names across API versions, and numbers arrive as either
// JSON numbers or strings, so typed views are built through ordered
// candidate-field lookups instead of fixed struct tags.
type Record map[string]any

// Str returns the first present, non-empty string value among keys.
func (r Record) Str(keys ...string) string {
	for _, k := range keys {
		v, ok := r[k]
		if !ok {
			continue
		}
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Float returns the first present, parseable numeric value among keys.
// A populated zero counts; missing keys and empty strings do not.
func (r Record) Float(keys ...string) float64 {
	f, _ := r.lookupFloat(keys)
	return f
}

// FloatNonZero returns the first present, non-zero numeric value among keys.
// Used where the exchange reports placeholder zeros under stale aliases.
func (r Record) FloatNonZero(keys ...string) float64 {
	for _, k := range keys {
		if f, ok := toFloat(r[k]); ok && f != 0 {
			return f
		}
	}
	return 0
}

// Has reports whether any of the keys carries a parseable numeric value.
func (r Record) Has(keys ...string) bool {
	_, ok := r.lookupFloat(keys)
	return ok
}

// Int64 returns the first present numeric value among keys, truncated.
func (r Record) Int64(keys ...string) int64 {
	return int64(r.Float(keys...))
}

// Time interprets the first present value among keys as epoch milliseconds.
// Returns the zero time when no key is populated.
func (r Record) Time(keys ...string) time.Time {
	ms := r.Int64(keys...)
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// List returns the nested array under key as records.
func (r Record) List(key string) []Record {
	raw, ok := r[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(raw))
	for _, item := range raw {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Record(m))
		}
	}
	return out
}

func (r Record) lookupFloat(keys []string) (float64, bool) {
	for _, k := range keys {
		if f, ok := toFloat(r[k]); ok {
			return f, true
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		if t == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
