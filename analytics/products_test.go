package analytics

import (
	"errors"
	"testing"

	"github.com/shopmetrics/ecommerce-insights/models"
)

func salesFixture() *Dataset {
	return &Dataset{
		Products: []models.Product{
			{ProductID: 1, Name: "Widget", Category: "Toys", Price: 10},
			{ProductID: 2, Name: "Gadget", Category: "Electronics", Price: 2},
			{ProductID: 3, Name: "Unsold", Category: "Books", Price: 99},
		},
		OrderItems: []models.OrderItem{
			{ItemID: 1, OrderID: 1, ProductID: 1, Quantity: 3},
			{ItemID: 2, OrderID: 2, ProductID: 1, Quantity: 2},
			{ItemID: 3, OrderID: 2, ProductID: 2, Quantity: 5},
		},
	}
}

func TestTopSellingProducts_GroupAndTieBreak(t *testing.T) {
	rows, err := TopSellingProducts(salesFixture(), 2)
	if err != nil {
		t.Fatalf("TopSellingProducts() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2", len(rows))
	}

	// Both sold 5 units; the tie resolves by product_id ascending.
	if rows[0].ProductID != 1 || rows[0].TotalQuantitySold != 5 || rows[0].TotalRevenue != 50 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].ProductID != 2 || rows[1].TotalQuantitySold != 5 || rows[1].TotalRevenue != 10 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestTopSellingProducts_OnlySoldProductsAppear(t *testing.T) {
	rows, err := TopSellingProducts(salesFixture(), 0)
	if err != nil {
		t.Fatalf("TopSellingProducts() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2 (unsold product must be absent)", len(rows))
	}
	for _, r := range rows {
		if r.ProductID == 3 {
			t.Fatalf("product without sales appeared: %+v", r)
		}
	}
}

func TestTopSellingProducts_Truncates(t *testing.T) {
	d := salesFixture()
	d.OrderItems = append(d.OrderItems, models.OrderItem{ItemID: 4, OrderID: 3, ProductID: 3, Quantity: 1})

	rows, err := TopSellingProducts(d, 1)
	if err != nil {
		t.Fatalf("TopSellingProducts() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want 1", len(rows))
	}
	if rows[0].ProductID != 1 {
		t.Fatalf("top product = %d, want 1", rows[0].ProductID)
	}
}

func TestTopSellingProducts_ReferentialGap(t *testing.T) {
	d := salesFixture()
	d.OrderItems = append(d.OrderItems, models.OrderItem{ItemID: 4, OrderID: 3, ProductID: 42, Quantity: 1})

	_, err := TopSellingProducts(d, 0)
	var gap *ReferentialGapError
	if !errors.As(err, &gap) {
		t.Fatalf("expected ReferentialGapError, got %v", err)
	}
	if gap.Table != "order_items" || gap.Value != 42 {
		t.Fatalf("unexpected gap details: %+v", gap)
	}
}

func TestCategoryRevenue_OrderingAndTies(t *testing.T) {
	d := &Dataset{
		Products: []models.Product{
			{ProductID: 1, Category: "Books", Price: 5},
			{ProductID: 2, Category: "Toys", Price: 10},
			{ProductID: 3, Category: "Art", Price: 10},
		},
		OrderItems: []models.OrderItem{
			{ItemID: 1, ProductID: 1, Quantity: 4}, // Books: 20
			{ItemID: 2, ProductID: 2, Quantity: 1}, // Toys: 10
			{ItemID: 3, ProductID: 3, Quantity: 1}, // Art: 10
		},
	}

	rows, err := CategoryRevenue(d)
	if err != nil {
		t.Fatalf("CategoryRevenue() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len = %d, want 3", len(rows))
	}
	if rows[0].Category != "Books" || rows[0].Revenue != 20 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	// Revenue tie between Toys and Art resolves alphabetically.
	if rows[1].Category != "Art" || rows[2].Category != "Toys" {
		t.Fatalf("tie not broken by category name: %+v", rows)
	}
}

func TestCategoryRevenue_ReferentialGap(t *testing.T) {
	d := &Dataset{
		OrderItems: []models.OrderItem{{ItemID: 1, ProductID: 7, Quantity: 1}},
	}

	_, err := CategoryRevenue(d)
	var gap *ReferentialGapError
	if !errors.As(err, &gap) {
		t.Fatalf("expected ReferentialGapError, got %v", err)
	}
}
