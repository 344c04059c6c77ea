package summary

import "time"

// YearProgress returns the elapsed fraction of now's calendar year as a
// percentage in [0, 100). It is 0 at exactly year start and approaches but
// never reaches 100 at year end.
func YearProgress(now time.Time) float64 {
	startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	endOfYear := time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, now.Location())

	total := endOfYear.Sub(startOfYear)
	elapsed := now.Sub(startOfYear)

	return float64(elapsed) / float64(total) * 100
}
