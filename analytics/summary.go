package analytics

import "github.com/shopmetrics/ecommerce-insights/models"

// Summary derives the run-level totals from the spending summary. Total
// revenue is the sum of per-user spend, which equals the sum of order
// totals by the total_amount invariant. AvgOrderValue is exactly 0.0 for
// an empty order set. Values stay unrounded here; sinks round.
func Summary(spending []models.UserSpendingSummary, totalOrders int) models.SummaryStats {
	var revenue float64
	for _, row := range spending {
		revenue += row.TotalSpent
	}

	avg := 0.0
	if totalOrders > 0 {
		avg = revenue / float64(totalOrders)
	}

	return models.SummaryStats{
		TotalRevenue:  revenue,
		TotalOrders:   totalOrders,
		AvgOrderValue: avg,
	}
}
