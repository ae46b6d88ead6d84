package analytics

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shopmetrics/ecommerce-insights/models"
)

// Dataset is an immutable snapshot of the five source tables for one
// analysis run. Metric functions never mutate it, so any number of them
// may run concurrently over the same snapshot.
type Dataset struct {
	Users      []models.User
	Products   []models.Product
	Orders     []models.Order
	OrderItems []models.OrderItem
	Reviews    []models.Review
}

// Load materializes all five tables from the store. A table that cannot
// be read is a run-level failure: no metric can degrade gracefully
// without its inputs.
func Load(ctx context.Context, db *gorm.DB) (*Dataset, error) {
	d := &Dataset{}

	if err := db.WithContext(ctx).Order("user_id").Find(&d.Users).Error; err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if err := db.WithContext(ctx).Order("product_id").Find(&d.Products).Error; err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if err := db.WithContext(ctx).Order("order_id").Find(&d.Orders).Error; err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	if err := db.WithContext(ctx).Order("item_id").Find(&d.OrderItems).Error; err != nil {
		return nil, fmt.Errorf("load order_items: %w", err)
	}
	if err := db.WithContext(ctx).Order("review_id").Find(&d.Reviews).Error; err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}

	return d, nil
}

func (d *Dataset) productByID() map[int]models.Product {
	m := make(map[int]models.Product, len(d.Products))
	for _, p := range d.Products {
		m[p.ProductID] = p
	}
	return m
}

func (d *Dataset) userByID() map[int]models.User {
	m := make(map[int]models.User, len(d.Users))
	for _, u := range d.Users {
		m[u.UserID] = u
	}
	return m
}
