package analytics

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shopmetrics/ecommerce-insights/models"
)

// setupTestDB creates an in-memory SQLite store with the five tables.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Review{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func TestLoad_MaterializesAllTables(t *testing.T) {
	db := setupTestDB(t)

	// Insert users out of key order; Load must return insertion order by id.
	if err := db.Create(&models.User{UserID: 2, Name: "B"}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := db.Create(&models.User{UserID: 1, Name: "A"}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := db.Create(&models.Product{ProductID: 1, Name: "Widget", Category: "Toys", Price: 9.99}).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	if err := db.Create(&models.Order{OrderID: 1, UserID: 1, OrderDate: day(2025, 2, 1), TotalAmount: 19.98}).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	if err := db.Create(&models.OrderItem{ItemID: 1, OrderID: 1, ProductID: 1, Quantity: 2}).Error; err != nil {
		t.Fatalf("seed order item: %v", err)
	}
	if err := db.Create(&models.Review{ReviewID: 1, UserID: 2, ProductID: 1, Rating: 4, ReviewText: "ok"}).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}

	d, err := Load(context.Background(), db)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(d.Users) != 2 || len(d.Products) != 1 || len(d.Orders) != 1 || len(d.OrderItems) != 1 || len(d.Reviews) != 1 {
		t.Fatalf("unexpected table sizes: %d/%d/%d/%d/%d",
			len(d.Users), len(d.Products), len(d.Orders), len(d.OrderItems), len(d.Reviews))
	}
	if d.Users[0].UserID != 1 || d.Users[1].UserID != 2 {
		t.Fatalf("users not ordered by user_id: %+v", d.Users)
	}
	if d.Orders[0].TotalAmount != 19.98 {
		t.Fatalf("order total = %v, want 19.98", d.Orders[0].TotalAmount)
	}
}

func TestLoad_MissingTablesAreFatal(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if _, err := Load(context.Background(), db); err == nil {
		t.Fatalf("expected error loading from an empty store")
	}
}
