package report_cache

import (
	"sync"
	"time"

	"github.com/shopmetrics/ecommerce-insights/reports"
)

const TTL = 5 * time.Minute

// One bundle covers every insights endpoint; the source tables only
// change when the seed/load step rewrites them, so a short TTL is enough.

type entry struct {
	bundle    *reports.Bundle
	fetchedAt time.Time
}

var (
	mu     sync.RWMutex
	cached *entry
)

func Get() (*reports.Bundle, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cached != nil && time.Since(cached.fetchedAt) < TTL {
		return cached.bundle, true
	}
	return nil, false
}

func Set(b *reports.Bundle) {
	mu.Lock()
	defer mu.Unlock()
	cached = &entry{bundle: b, fetchedAt: time.Now()}
}

// Invalidate drops the cached bundle (call after reloading the dataset).
func Invalidate() {
	mu.Lock()
	cached = nil
	mu.Unlock()
}
