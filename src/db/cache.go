package db

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"
)

// Dashboard summaries are cached per (user, year). Keys are tracked in a
// concurrent set so all cached years for one user can be dropped at once.
var (
	Cache            *ristretto.Cache
	SummaryCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func SummaryCacheKey(userID, year int) string {
	return fmt.Sprintf("summary:%d:%d", userID, year)
}

// SummaryCacheKeyForDate keys by the date's UTC year, matching the UTC
// aggregation window, so a write near midnight in another zone invalidates
// the year it is actually summed into.
func SummaryCacheKeyForDate(userID int, date time.Time) string {
	return SummaryCacheKey(userID, date.UTC().Year())
}

func SetSummaryCache(cacheKey string, value interface{}) {
	SummaryCacheKeys.Lock()
	SummaryCacheKeys.m[cacheKey] = struct{}{}
	SummaryCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func DelSummaryCache(cacheKey string) {
	SummaryCacheKeys.Lock()
	delete(SummaryCacheKeys.m, cacheKey)
	SummaryCacheKeys.Unlock()
	Cache.Del(cacheKey)
}

// ClearUserSummaryCaches drops every cached year for one user.
func ClearUserSummaryCaches(userID int) {
	prefix := fmt.Sprintf("summary:%d:", userID)
	SummaryCacheKeys.Lock()
	for key := range SummaryCacheKeys.m {
		if strings.HasPrefix(key, prefix) {
			Cache.Del(key)
			delete(SummaryCacheKeys.m, key)
		}
	}
	SummaryCacheKeys.Unlock()
}

func ClearAllSummaryCaches() {
	SummaryCacheKeys.Lock()
	for key := range SummaryCacheKeys.m {
		Cache.Del(key)
	}
	SummaryCacheKeys.m = make(map[string]struct{})
	SummaryCacheKeys.Unlock()
}
