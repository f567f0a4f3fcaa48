package models

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts free-form numeric input to a float64 the way the
// capture forms treat it: non-numeric, NaN and infinite values count as zero.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
