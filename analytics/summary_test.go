package analytics

import (
	"math"
	"testing"

	"github.com/shopmetrics/ecommerce-insights/models"
)

func TestSummary_DerivesFromSpending(t *testing.T) {
	spending := []models.UserSpendingSummary{
		{UserID: 1, TotalSpent: 150.50},
		{UserID: 2, TotalSpent: 49.50},
		{UserID: 3, TotalSpent: 0},
	}

	s := Summary(spending, 4)
	if s.TotalRevenue != 200.0 {
		t.Fatalf("total revenue = %v, want 200.0", s.TotalRevenue)
	}
	if s.TotalOrders != 4 {
		t.Fatalf("total orders = %d, want 4", s.TotalOrders)
	}
	if math.Abs(s.AvgOrderValue-50.0) > 1e-9 {
		t.Fatalf("avg order value = %v, want 50.0", s.AvgOrderValue)
	}
}

func TestSummary_ZeroOrders(t *testing.T) {
	s := Summary(nil, 0)
	if s.AvgOrderValue != 0.0 {
		t.Fatalf("avg order value = %v, want exactly 0.0 for an empty order set", s.AvgOrderValue)
	}
	if s.TotalRevenue != 0.0 || s.TotalOrders != 0 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{2.675, 2.67}, // stored slightly below 2.675, rounds down
		{4.336, 4.34},
		{100, 100},
		{-1.239, -1.24},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Fatalf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
