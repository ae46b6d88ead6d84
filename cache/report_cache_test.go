package report_cache

import (
	"testing"

	"github.com/shopmetrics/ecommerce-insights/reports"
)

func TestCacheRoundTrip(t *testing.T) {
	Invalidate()

	if _, ok := Get(); ok {
		t.Fatalf("empty cache returned a bundle")
	}

	b := &reports.Bundle{UserCount: 7}
	Set(b)

	got, ok := Get()
	if !ok {
		t.Fatalf("cache miss after Set")
	}
	if got != b {
		t.Fatalf("cache returned a different bundle")
	}

	Invalidate()
	if _, ok := Get(); ok {
		t.Fatalf("cache hit after Invalidate")
	}
}
