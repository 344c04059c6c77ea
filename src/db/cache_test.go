package db

import (
	"testing"
	"time"
)

func TestSummaryCacheKey(t *testing.T) {
	if got := SummaryCacheKey(7, 2024); got != "summary:7:2024" {
		t.Fatalf("unexpected key %q", got)
	}
}

// A date near midnight in a non-UTC zone must invalidate the UTC year it is
// aggregated into, not its local year.
func TestSummaryCacheKeyForDate(t *testing.T) {
	ist := time.FixedZone("IST", int((5*time.Hour+30*time.Minute)/time.Second))
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC), "summary:7:2024"},
		// 2025-01-01T00:00+05:30 is 2024-12-31T18:30 UTC
		{time.Date(2025, time.January, 1, 0, 0, 0, 0, ist), "summary:7:2024"},
		{time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), "summary:7:2025"},
	}
	for _, tc := range cases {
		if got := SummaryCacheKeyForDate(7, tc.date); got != tc.want {
			t.Fatalf("%v: expected %q, got %q", tc.date, tc.want, got)
		}
	}
}

func TestClearUserSummaryCaches(t *testing.T) {
	InitCache()

	SetSummaryCache(SummaryCacheKey(1, 2024), "a")
	SetSummaryCache(SummaryCacheKey(1, 2025), "b")
	SetSummaryCache(SummaryCacheKey(2, 2024), "c")
	Cache.Wait()

	ClearUserSummaryCaches(1)

	SummaryCacheKeys.RLock()
	defer SummaryCacheKeys.RUnlock()
	if _, present := SummaryCacheKeys.m[SummaryCacheKey(1, 2024)]; present {
		t.Fatalf("user 1 keys must be cleared")
	}
	if _, present := SummaryCacheKeys.m[SummaryCacheKey(1, 2025)]; present {
		t.Fatalf("user 1 keys must be cleared")
	}
	if _, present := SummaryCacheKeys.m[SummaryCacheKey(2, 2024)]; !present {
		t.Fatalf("user 2 keys must survive")
	}
}
