package models

// UserSpendingSummary is one row of the user spending report. Every user
// appears exactly once; users without orders carry zero counts. AvgRating
// is nil when the user has written no reviews — zero would read as a real
// rating, so it is never coerced.
type UserSpendingSummary struct {
	UserID     int      `json:"user_id"`
	Name       string   `json:"name"`
	City       string   `json:"city"`
	NumOrders  int      `json:"num_orders"`
	TotalSpent float64  `json:"total_spent"`
	AvgRating  *float64 `json:"avg_rating"`
}

// ProductSalesRow is one row of the top-selling products report.
type ProductSalesRow struct {
	ProductID         int     `json:"product_id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	TotalQuantitySold int     `json:"total_quantity_sold"`
	TotalRevenue      float64 `json:"total_revenue"`
}

// CategoryRevenueRow is summed revenue for one product category.
type CategoryRevenueRow struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

// MonthlyOrderCount is the number of orders placed in one calendar month.
// Month is rendered as "YYYY-MM"; months without orders are not synthesized.
type MonthlyOrderCount struct {
	Month      string `json:"year_month"`
	OrderCount int    `json:"order_count"`
}

// ActiveUserRow is one row of the most-active-users report.
type ActiveUserRow struct {
	UserID     int    `json:"user_id"`
	Name       string `json:"name"`
	OrderCount int    `json:"order_count"`
}

// RatingBucket is the review count for one rating value. The distribution
// always carries all five buckets, zero counts included.
type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// PriceRatingCorrelation is the Pearson coefficient between product price
// and mean product rating. Defined is false when fewer than two products
// have reviews or either vector is constant.
type PriceRatingCorrelation struct {
	Coefficient *float64 `json:"coefficient"`
	Defined     bool     `json:"defined"`
}

// SummaryStats are the run-level totals. AvgOrderValue is exactly 0.0 for
// an empty order set. Values are accumulated unrounded; rounding happens
// at the presentation boundary only.
type SummaryStats struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalOrders   int     `json:"total_orders"`
	AvgOrderValue float64 `json:"avg_order_value"`
}
