package paper

import "math"

// Per-question page weights plus one page for the header block. Advisory only:
// the estimate never gates validation or rendering.
const (
	mcqPageWeight   = 0.15
	shortPageWeight = 0.08
	longPageWeight  = 0.12
)

// EstimatePages approximates the printed page count from question counts.
func EstimatePages(mcqCount, shortCount, longCount int) int {
	return int(math.Ceil(float64(mcqCount)*mcqPageWeight +
		float64(shortCount)*shortPageWeight +
		float64(longCount)*longPageWeight + 1))
}
