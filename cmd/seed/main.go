package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/joho/godotenv"

	"github.com/shopmetrics/ecommerce-insights/config"
	"github.com/shopmetrics/ecommerce-insights/models"
)

// Generates the synthetic five-table dataset (CSV files plus a full
// reload of the store). Record counts and value ranges match the
// reference dataset: 50 users, 50 products, 200 orders over the trailing
// two years, 150 reviews.
const (
	numUsers    = 50
	numProducts = 50
	numOrders   = 200
	numReviews  = 150
	historyDays = 730
)

var categories = []string{
	"Electronics", "Clothing", "Home & Garden", "Sports", "Books", "Toys", "Food",
}

var reviewTexts = []string{
	"Great product, highly recommend!",
	"Good quality for the price.",
	"Not what I expected, disappointed.",
	"Excellent! Will buy again.",
	"Average product, nothing special.",
	"Poor quality, would not recommend.",
	"Amazing! Exceeded my expectations.",
	"Decent product, does the job.",
	"Terrible experience, waste of money.",
	"Love it! Perfect for my needs.",
}

func init() {
	_ = godotenv.Load()
}

func main() {
	seed := flag.Uint64("seed", 42, "random seed for reproducible datasets")
	dataDir := flag.String("data", "data", "directory for generated CSV files")
	flag.Parse()

	f := gofakeit.New(*seed)

	users := make([]models.User, 0, numUsers)
	for i := 1; i <= numUsers; i++ {
		users = append(users, models.User{
			UserID: i,
			Name:   f.Name(),
			Email:  f.Email(),
			City:   f.City(),
		})
	}

	products := make([]models.Product, 0, numProducts)
	for i := 1; i <= numProducts; i++ {
		products = append(products, models.Product{
			ProductID: i,
			Name:      titleWord(f.Word()) + " " + titleWord(f.Word()),
			Category:  categories[f.Number(0, len(categories)-1)],
			Price:     round2(f.Float64Range(5.99, 999.99)),
		})
	}

	start := time.Now().AddDate(0, 0, -historyDays)
	orders := make([]models.Order, 0, numOrders)
	items := make([]models.OrderItem, 0, numOrders*3)
	itemID := 1
	for i := 1; i <= numOrders; i++ {
		orderDate := start.AddDate(0, 0, f.Number(0, historyDays))
		orderDate = time.Date(orderDate.Year(), orderDate.Month(), orderDate.Day(), 0, 0, 0, 0, time.UTC)

		var total float64
		for n := f.Number(1, 5); n > 0; n-- {
			productID := f.Number(1, numProducts)
			quantity := f.Number(1, 5)
			items = append(items, models.OrderItem{
				ItemID:    itemID,
				OrderID:   i,
				ProductID: productID,
				Quantity:  quantity,
			})
			total += products[productID-1].Price * float64(quantity)
			itemID++
		}

		orders = append(orders, models.Order{
			OrderID:     i,
			UserID:      f.Number(1, numUsers),
			OrderDate:   orderDate,
			TotalAmount: round2(total),
		})
	}

	reviews := make([]models.Review, 0, numReviews)
	for i := 1; i <= numReviews; i++ {
		reviews = append(reviews, models.Review{
			ReviewID:   i,
			UserID:     f.Number(1, numUsers),
			ProductID:  f.Number(1, numProducts),
			Rating:     f.Number(1, 5),
			ReviewText: reviewTexts[f.Number(0, len(reviewTexts)-1)],
		})
	}

	if err := writeCSVFiles(*dataDir, users, products, orders, items, reviews); err != nil {
		log.Fatalf("❌ Failed to write CSV files: %v", err)
	}
	log.Printf("✓ CSV files written to %s/", *dataDir)

	// Default SQLite path lives under database/; the driver will not
	// create the directory itself.
	if os.Getenv("INSIGHTS_DB_URL") == "" {
		if err := os.MkdirAll("database", 0o755); err != nil {
			log.Fatalf("❌ Failed to create database dir: %v", err)
		}
	}
	config.InitDB()
	defer config.CloseDB()

	if err := loadStore(users, products, orders, items, reviews); err != nil {
		log.Fatalf("❌ Failed to load store: %v", err)
	}

	fmt.Println("✅ Dataset generated and loaded")
	fmt.Printf("   users=%d products=%d orders=%d order_items=%d reviews=%d\n",
		len(users), len(products), len(orders), len(items), len(reviews))
}

// loadStore fully replaces the five tables, mirroring an
// if_exists=replace load.
func loadStore(users []models.User, products []models.Product, orders []models.Order, items []models.OrderItem, reviews []models.Review) error {
	db := config.DB

	tables := []any{&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}, &models.Review{}}
	if err := db.Migrator().DropTable(tables...); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	if err := db.CreateInBatches(users, 100).Error; err != nil {
		return fmt.Errorf("insert users: %w", err)
	}
	if err := db.CreateInBatches(products, 100).Error; err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	if err := db.CreateInBatches(orders, 100).Error; err != nil {
		return fmt.Errorf("insert orders: %w", err)
	}
	if err := db.CreateInBatches(items, 100).Error; err != nil {
		return fmt.Errorf("insert order_items: %w", err)
	}
	if err := db.CreateInBatches(reviews, 100).Error; err != nil {
		return fmt.Errorf("insert reviews: %w", err)
	}
	return nil
}

func writeCSVFiles(dir string, users []models.User, products []models.Product, orders []models.Order, items []models.OrderItem, reviews []models.Review) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	userRows := [][]string{}
	for _, u := range users {
		userRows = append(userRows, []string{strconv.Itoa(u.UserID), u.Name, u.Email, u.City})
	}
	if err := writeCSV(filepath.Join(dir, "users.csv"), []string{"user_id", "name", "email", "city"}, userRows); err != nil {
		return err
	}

	productRows := [][]string{}
	for _, p := range products {
		productRows = append(productRows, []string{
			strconv.Itoa(p.ProductID), p.Name, p.Category,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
		})
	}
	if err := writeCSV(filepath.Join(dir, "products.csv"), []string{"product_id", "name", "category", "price"}, productRows); err != nil {
		return err
	}

	orderRows := [][]string{}
	for _, o := range orders {
		orderRows = append(orderRows, []string{
			strconv.Itoa(o.OrderID), strconv.Itoa(o.UserID),
			o.OrderDate.Format("2006-01-02"),
			strconv.FormatFloat(o.TotalAmount, 'f', 2, 64),
		})
	}
	if err := writeCSV(filepath.Join(dir, "orders.csv"), []string{"order_id", "user_id", "order_date", "total_amount"}, orderRows); err != nil {
		return err
	}

	itemRows := [][]string{}
	for _, it := range items {
		itemRows = append(itemRows, []string{
			strconv.Itoa(it.ItemID), strconv.Itoa(it.OrderID),
			strconv.Itoa(it.ProductID), strconv.Itoa(it.Quantity),
		})
	}
	if err := writeCSV(filepath.Join(dir, "order_items.csv"), []string{"item_id", "order_id", "product_id", "quantity"}, itemRows); err != nil {
		return err
	}

	reviewRows := [][]string{}
	for _, r := range reviews {
		reviewRows = append(reviewRows, []string{
			strconv.Itoa(r.ReviewID), strconv.Itoa(r.UserID),
			strconv.Itoa(r.ProductID), strconv.Itoa(r.Rating), r.ReviewText,
		})
	}
	return writeCSV(filepath.Join(dir, "reviews.csv"), []string{"review_id", "user_id", "product_id", "rating", "review_text"}, reviewRows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	return w.WriteAll(rows)
}

func titleWord(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
