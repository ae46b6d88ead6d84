package analytics

import (
	"sort"

	"github.com/shopmetrics/ecommerce-insights/models"
)

// MostActiveUsers counts orders per user and joins the user's display
// name. Only users with at least one order appear. Ordered by order count
// descending with user_id ascending on ties, truncated to topN.
func MostActiveUsers(d *Dataset, topN int) ([]models.ActiveUserRow, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	users := d.userByID()
	counts := make(map[int]int)
	for _, o := range d.Orders {
		if _, ok := users[o.UserID]; !ok {
			return nil, &ReferentialGapError{Table: "orders", Column: "user_id", Value: o.UserID, Referenced: "users"}
		}
		counts[o.UserID]++
	}

	rows := make([]models.ActiveUserRow, 0, len(counts))
	for id, n := range counts {
		rows = append(rows, models.ActiveUserRow{UserID: id, Name: users[id].Name, OrderCount: n})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].OrderCount != rows[j].OrderCount {
			return rows[i].OrderCount > rows[j].OrderCount
		}
		return rows[i].UserID < rows[j].UserID
	})

	if len(rows) > topN {
		rows = rows[:topN]
	}
	return rows, nil
}
