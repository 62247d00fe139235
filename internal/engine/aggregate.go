package engine

import (
	"sync"

	"github.com/livp123/logsift/internal/metrics"
	"github.com/livp123/logsift/internal/utils/logger"
)

// Aggregate produces the per-address in-window counts for every address
// whose key passes the address range test. Addresses with zero matching
// timestamps still appear with count 0: the filter operates on the address
// set first, independent of whether any timestamp matches.
//
// The index is read-only here, so with workers > 1 the key set is fanned
// out across a worker pool; only the result map is guarded. workers <= 1 is
// the sequential reference path.
func Aggregate(idx *Index, criteria Criteria, workers int) map[string]int {
	result := make(map[string]int)
	keys := idx.Keys()

	if workers <= 1 {
		for _, key := range keys {
			if count, ok := countKey(idx, criteria, key); ok {
				result[key] = count
			}
		}
		return result
	}

	if workers > len(keys) {
		workers = len(keys)
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	keyChan := make(chan string, len(keys))
	for _, key := range keys {
		keyChan <- key
	}
	close(keyChan)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key := range keyChan {
				if count, ok := countKey(idx, criteria, key); ok {
					mu.Lock()
					result[key] = count
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	return result
}

// countKey applies the address test and, if it passes, scans the key's
// timestamp sequence once. An unexpected fault degrades to skipping this
// key instead of aborting the whole aggregation.
func countKey(idx *Index, criteria Criteria, key string) (count int, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Get(nil).Warnf("⚠️ Skipping address %q: aggregation fault: %v", key, r)
			count, ok = 0, false
		}
	}()

	if !criteria.InAddressRange(key) {
		return 0, false
	}
	metrics.AddressesSelectedTotal.Inc()

	for _, ts := range idx.Timestamps(key) {
		if criteria.InWindow(ts) {
			count++
		}
	}
	metrics.MatchesTotal.Add(float64(count))

	return count, true
}
