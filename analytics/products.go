package analytics

import (
	"sort"

	"github.com/shopmetrics/ecommerce-insights/models"
)

// DefaultTopN bounds the ranked reports when the caller passes no limit.
const DefaultTopN = 10

// TopSellingProducts groups order items by product, summing quantity and
// quantity*price. Only products with at least one order item appear.
// Ordered by quantity descending; equal quantities fall back to
// product_id ascending so the ranking is deterministic. Truncated to topN.
func TopSellingProducts(d *Dataset, topN int) ([]models.ProductSalesRow, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	products := d.productByID()
	qty := make(map[int]int)
	revenue := make(map[int]float64)
	for _, item := range d.OrderItems {
		p, ok := products[item.ProductID]
		if !ok {
			return nil, &ReferentialGapError{Table: "order_items", Column: "product_id", Value: item.ProductID, Referenced: "products"}
		}
		qty[item.ProductID] += item.Quantity
		revenue[item.ProductID] += float64(item.Quantity) * p.Price
	}

	rows := make([]models.ProductSalesRow, 0, len(qty))
	for id, q := range qty {
		p := products[id]
		rows = append(rows, models.ProductSalesRow{
			ProductID:         id,
			Name:              p.Name,
			Category:          p.Category,
			TotalQuantitySold: q,
			TotalRevenue:      revenue[id],
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalQuantitySold != rows[j].TotalQuantitySold {
			return rows[i].TotalQuantitySold > rows[j].TotalQuantitySold
		}
		return rows[i].ProductID < rows[j].ProductID
	})

	if len(rows) > topN {
		rows = rows[:topN]
	}
	return rows, nil
}

// CategoryRevenue joins order items to products, sums quantity*price per
// category, and orders by revenue descending with category name ascending
// on ties.
func CategoryRevenue(d *Dataset) ([]models.CategoryRevenueRow, error) {
	products := d.productByID()
	byCategory := make(map[string]float64)
	for _, item := range d.OrderItems {
		p, ok := products[item.ProductID]
		if !ok {
			return nil, &ReferentialGapError{Table: "order_items", Column: "product_id", Value: item.ProductID, Referenced: "products"}
		}
		byCategory[p.Category] += float64(item.Quantity) * p.Price
	}

	rows := make([]models.CategoryRevenueRow, 0, len(byCategory))
	for category, rev := range byCategory {
		rows = append(rows, models.CategoryRevenueRow{Category: category, Revenue: rev})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Revenue != rows[j].Revenue {
			return rows[i].Revenue > rows[j].Revenue
		}
		return rows[i].Category < rows[j].Category
	})

	return rows, nil
}
