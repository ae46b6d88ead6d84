package analytics

import (
	"sort"

	"github.com/shopmetrics/ecommerce-insights/models"
)

// UserSpending builds the spending summary: one row per user with order
// count, total spent, and the mean rating that user has given. Left-join
// semantics: users without orders appear with zero spend, and AvgRating
// stays nil for users without reviews. Rows are ordered by total spent
// descending; the sort is stable so equal spenders keep user insertion
// order.
func UserSpending(d *Dataset) ([]models.UserSpendingSummary, error) {
	rows := make([]models.UserSpendingSummary, len(d.Users))
	idx := make(map[int]int, len(d.Users))
	for i, u := range d.Users {
		rows[i] = models.UserSpendingSummary{UserID: u.UserID, Name: u.Name, City: u.City}
		idx[u.UserID] = i
	}

	for _, o := range d.Orders {
		i, ok := idx[o.UserID]
		if !ok {
			return nil, &ReferentialGapError{Table: "orders", Column: "user_id", Value: o.UserID, Referenced: "users"}
		}
		rows[i].NumOrders++
		rows[i].TotalSpent += o.TotalAmount
	}

	ratingSum := make(map[int]float64)
	ratingCount := make(map[int]int)
	for _, r := range d.Reviews {
		if _, ok := idx[r.UserID]; !ok {
			return nil, &ReferentialGapError{Table: "reviews", Column: "user_id", Value: r.UserID, Referenced: "users"}
		}
		ratingSum[r.UserID] += float64(r.Rating)
		ratingCount[r.UserID]++
	}
	for i := range rows {
		if n := ratingCount[rows[i].UserID]; n > 0 {
			avg := Round2(ratingSum[rows[i].UserID] / float64(n))
			rows[i].AvgRating = &avg
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalSpent > rows[j].TotalSpent
	})

	return rows, nil
}
