// Package streak counts runs of qualifying days.
package streak

import (
	"time"

	"github.com/julianstephens/lifetrack/internal/utils"
)

// Backward counts consecutive qualifying days ending at from, walking back
// at most lookback days. A day that does not qualify ends the run, so a
// missing entry for from itself yields 0.
func Backward(from time.Time, lookback int, qualifies func(date string) bool) int {
	day := utils.StartOfDay(from)
	n := 0
	for i := 0; i < lookback; i++ {
		if !qualifies(utils.DateKey(day.AddDate(0, 0, -i))) {
			break
		}
		n++
	}
	return n
}

// Longest returns the longest run of true values. Callers pass outcomes in
// date order; days without an entry are simply absent and do not break a run.
func Longest(outcomes []bool) int {
	longest, current := 0, 0
	for _, ok := range outcomes {
		if !ok {
			current = 0
			continue
		}
		current++
		if current > longest {
			longest = current
		}
	}
	return longest
}
