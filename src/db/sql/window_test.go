package db

import (
	"testing"
	"time"
)

func TestYearWindow(t *testing.T) {
	cases := []struct {
		year      int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{2024, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{2025, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{1970, time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), time.Date(1971, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		start, end := yearWindow(tc.year)
		if !start.Equal(tc.wantStart) {
			t.Fatalf("year %d: start %v, expected %v", tc.year, start, tc.wantStart)
		}
		if !end.Equal(tc.wantEnd) {
			t.Fatalf("year %d: end %v, expected %v", tc.year, end, tc.wantEnd)
		}
	}
}

// The window is start-inclusive and end-exclusive: a row at exactly the next
// Jan 1 midnight belongs to the next year, never to both or neither.
func TestYearWindowBoundaries(t *testing.T) {
	_, end2024 := yearWindow(2024)
	start2025, _ := yearWindow(2025)

	if !end2024.Equal(start2025) {
		t.Fatalf("2024 end %v must equal 2025 start %v", end2024, start2025)
	}

	boundary := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	// date < end still admits the last instant of the year
	if lastInstant := end2024.Add(-time.Nanosecond); !lastInstant.Before(end2024) {
		t.Fatalf("last instant %v must fall inside the 2024 window", lastInstant)
	}
	// date < end excludes the boundary instant from the earlier year
	if boundary.Before(end2024) {
		t.Fatalf("boundary %v must not fall inside the 2024 window", boundary)
	}
	// and the same instant passes the next year's inclusive start
	if boundary.Before(start2025) {
		t.Fatalf("boundary %v must fall inside the 2025 window", boundary)
	}
}
