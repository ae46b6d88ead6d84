package analytics

import (
	"sort"

	"github.com/shopmetrics/ecommerce-insights/models"
)

// MonthlyOrderTrend truncates each order date to its calendar month and
// counts orders per month, chronologically ascending. The series is
// sparse: months without orders are not synthesized.
func MonthlyOrderTrend(d *Dataset) []models.MonthlyOrderCount {
	byMonth := make(map[string]int)
	for _, o := range d.Orders {
		byMonth[o.OrderDate.Format("2006-01")]++
	}

	rows := make([]models.MonthlyOrderCount, 0, len(byMonth))
	for month, count := range byMonth {
		rows = append(rows, models.MonthlyOrderCount{Month: month, OrderCount: count})
	}

	// "YYYY-MM" keys sort chronologically as strings.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })

	return rows
}
