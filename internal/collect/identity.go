package collect

import (
	"strconv"
	"strings"

	"github.com/seojun-park/bitget-monitor/internal/bitget"
)

// idFields is the ordered identity alias table. Overlapping queries and API
// version drift expose the same logical event under different id names.
var idFields = []string{"tradeId", "fillId", "billId", "id", "orderId"}

// Identity returns a stable identity for a record: the first non-empty id
// alias, else a composite of creation time, size, and price.
func Identity(r bitget.Record) string {
	if id := r.Str(idFields...); id != "" {
		return id
	}

	parts := []string{
		strconv.FormatInt(r.Int64("cTime", "ctime", "createdTime"), 10),
		strconv.FormatFloat(r.Float("size", "baseVolume", "amount"), 'g', -1, 64),
		strconv.FormatFloat(r.Float("price", "priceAvg", "fillPrice"), 'g', -1, 64),
	}
	return strings.Join(parts, "|")
}

// Dedup removes records already seen by identity, preserving order. Reused
// when concatenating overlapping sub-range collections.
func Dedup(records []bitget.Record) []bitget.Record {
	seen := make(map[string]struct{}, len(records))
	out := make([]bitget.Record, 0, len(records))
	for _, r := range records {
		id := Identity(r)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, r)
	}
	return out
}
