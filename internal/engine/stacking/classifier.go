package stacking

import (
	"math"

	"github.com/statforge/statforge/internal/entities"
)

// ClassifyStat maps a numeric value to its rank band. The value is
// truncated to an integer; non-finite and negative values floor to 0,
// which always maps to the lowest band. Bands are closed intervals
// except the top band, which is open-ended. An unmatched value (only
// possible with a gapped table) falls back to the highest band rather
// than failing: classification is display computation and never errors.
func (e *Engine) ClassifyStat(table entities.RankTable, value float64) entities.RankBand {
	if len(table) == 0 {
		table = entities.DefaultRankTable()
	}

	v := 0
	if !math.IsNaN(value) && !math.IsInf(value, 0) {
		v = int(math.Floor(value))
	}
	if v <= 0 {
		return table[0]
	}

	// Band count is small (~30), a linear scan beats the bookkeeping
	// of a binary search here.
	for _, band := range table {
		if band.Contains(v) {
			return band
		}
	}
	return table[len(table)-1]
}
