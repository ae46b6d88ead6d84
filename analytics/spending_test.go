package analytics

import (
	"errors"
	"testing"
	"time"

	"github.com/shopmetrics/ecommerce-insights/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUserSpending_OuterJoinCompleteness(t *testing.T) {
	d := &Dataset{
		Users: []models.User{
			{UserID: 1, Name: "A"},
			{UserID: 2, Name: "B"},
		},
		Orders: []models.Order{
			{OrderID: 1, UserID: 1, OrderDate: day(2025, 1, 10), TotalAmount: 100.0},
		},
	}

	rows, err := UserSpending(d)
	if err != nil {
		t.Fatalf("UserSpending() error = %v", err)
	}
	if len(rows) != len(d.Users) {
		t.Fatalf("row count = %d, want %d (one row per user)", len(rows), len(d.Users))
	}

	if rows[0].UserID != 1 || rows[0].NumOrders != 1 || rows[0].TotalSpent != 100.0 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].UserID != 2 || rows[1].NumOrders != 0 || rows[1].TotalSpent != 0.0 {
		t.Fatalf("user without orders must appear with zero spend, got %+v", rows[1])
	}
	if rows[0].AvgRating != nil || rows[1].AvgRating != nil {
		t.Fatalf("avg rating must be nil without reviews, got %+v and %+v", rows[0].AvgRating, rows[1].AvgRating)
	}
}

func TestUserSpending_AvgRatingRoundedNotCoerced(t *testing.T) {
	d := &Dataset{
		Users: []models.User{
			{UserID: 1, Name: "rater"},
			{UserID: 2, Name: "silent"},
		},
		Reviews: []models.Review{
			{ReviewID: 1, UserID: 1, ProductID: 9, Rating: 5},
			{ReviewID: 2, UserID: 1, ProductID: 9, Rating: 4},
			{ReviewID: 3, UserID: 1, ProductID: 9, Rating: 4},
		},
	}

	rows, err := UserSpending(d)
	if err != nil {
		t.Fatalf("UserSpending() error = %v", err)
	}

	var rater, silent models.UserSpendingSummary
	for _, r := range rows {
		switch r.UserID {
		case 1:
			rater = r
		case 2:
			silent = r
		}
	}
	if rater.AvgRating == nil || *rater.AvgRating != 4.33 {
		t.Fatalf("avg rating = %v, want 4.33 (13/3 rounded to 2dp)", rater.AvgRating)
	}
	if silent.AvgRating != nil {
		t.Fatalf("user without reviews got avg rating %v, want nil", *silent.AvgRating)
	}
}

func TestUserSpending_OrderingAndStableTies(t *testing.T) {
	d := &Dataset{
		Users: []models.User{
			{UserID: 3, Name: "first-zero"},
			{UserID: 1, Name: "big"},
			{UserID: 7, Name: "second-zero"},
			{UserID: 2, Name: "small"},
		},
		Orders: []models.Order{
			{OrderID: 1, UserID: 1, TotalAmount: 500},
			{OrderID: 2, UserID: 2, TotalAmount: 50},
			{OrderID: 3, UserID: 1, TotalAmount: 250},
		},
	}

	rows, err := UserSpending(d)
	if err != nil {
		t.Fatalf("UserSpending() error = %v", err)
	}

	for i := 1; i < len(rows); i++ {
		if rows[i].TotalSpent > rows[i-1].TotalSpent {
			t.Fatalf("rows not descending by total_spent at %d: %+v", i, rows)
		}
	}
	// Equal spenders keep user insertion order.
	if rows[2].UserID != 3 || rows[3].UserID != 7 {
		t.Fatalf("tied zero spenders reordered: got %d then %d, want 3 then 7", rows[2].UserID, rows[3].UserID)
	}
}

func TestUserSpending_TotalsMatchOrders(t *testing.T) {
	d := &Dataset{
		Users: []models.User{{UserID: 1}, {UserID: 2}, {UserID: 3}},
		Orders: []models.Order{
			{OrderID: 1, UserID: 1, TotalAmount: 10.10},
			{OrderID: 2, UserID: 2, TotalAmount: 20.25},
			{OrderID: 3, UserID: 2, TotalAmount: 0.65},
		},
	}

	rows, err := UserSpending(d)
	if err != nil {
		t.Fatalf("UserSpending() error = %v", err)
	}

	var spent, ordered float64
	for _, r := range rows {
		spent += r.TotalSpent
	}
	for _, o := range d.Orders {
		ordered += o.TotalAmount
	}
	if diff := spent - ordered; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("sum(total_spent)=%v != sum(total_amount)=%v", spent, ordered)
	}
}

func TestUserSpending_ReferentialGap(t *testing.T) {
	d := &Dataset{
		Users:  []models.User{{UserID: 1}},
		Orders: []models.Order{{OrderID: 1, UserID: 99, TotalAmount: 5}},
	}

	_, err := UserSpending(d)
	var gap *ReferentialGapError
	if !errors.As(err, &gap) {
		t.Fatalf("expected ReferentialGapError, got %v", err)
	}
	if gap.Table != "orders" || gap.Column != "user_id" || gap.Value != 99 {
		t.Fatalf("unexpected gap details: %+v", gap)
	}
}
