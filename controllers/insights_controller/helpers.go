package insights_controller

import (
	"fmt"

	"github.com/shopmetrics/ecommerce-insights/analytics"
	report_cache "github.com/shopmetrics/ecommerce-insights/cache"
	"github.com/shopmetrics/ecommerce-insights/config"
	"github.com/shopmetrics/ecommerce-insights/reports"
)

// currentBundle returns the cached report bundle, recomputing from a
// fresh dataset snapshot when the cache has expired. Only a failed table
// load is an error here; per-report failures live inside the bundle.
func currentBundle() (*reports.Bundle, error) {
	if b, ok := report_cache.Get(); ok {
		return b, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	dataset, err := analytics.Load(ctx, config.DB)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	b := reports.Compute(dataset, analytics.DefaultTopN)
	report_cache.Set(b)
	return b, nil
}
