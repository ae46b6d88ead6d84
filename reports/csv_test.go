package reports

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopmetrics/ecommerce-insights/models"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestWriteCSVReports(t *testing.T) {
	dir := t.TempDir()
	b := Compute(healthyDataset(), 10)

	if err := WriteCSVReports(b, dir); err != nil {
		t.Fatalf("WriteCSVReports() error = %v", err)
	}

	spending := readCSV(t, filepath.Join(dir, "user_spending_summary.csv"))
	wantHeader := []string{"user_id", "name", "city", "num_orders", "total_spent", "avg_rating"}
	for i, col := range wantHeader {
		if spending[0][i] != col {
			t.Fatalf("spending header = %v, want %v", spending[0], wantHeader)
		}
	}
	if len(spending) != 3 {
		t.Fatalf("spending rows = %d, want header + 2", len(spending))
	}
	// User B placed no orders but reviewed: zero spend, real avg rating.
	if spending[2][0] != "2" || spending[2][4] != "0.00" || spending[2][5] != "2.00" {
		t.Fatalf("unexpected second data row: %v", spending[2])
	}

	summary := readCSV(t, filepath.Join(dir, "summary_stats.csv"))
	if summary[1][0] != "55.00" || summary[1][1] != "2" || summary[1][2] != "27.50" {
		t.Fatalf("unexpected summary row: %v", summary[1])
	}

	dist := readCSV(t, filepath.Join(dir, "rating_distribution.csv"))
	if len(dist) != 6 {
		t.Fatalf("distribution rows = %d, want header + 5 buckets", len(dist))
	}
}

func TestWriteCSVReports_NilAvgRatingBlank(t *testing.T) {
	dir := t.TempDir()
	d := healthyDataset()
	d.Reviews = nil

	b := Compute(d, 10)
	if err := WriteCSVReports(b, dir); err != nil {
		t.Fatalf("WriteCSVReports() error = %v", err)
	}

	spending := readCSV(t, filepath.Join(dir, "user_spending_summary.csv"))
	for _, row := range spending[1:] {
		if row[5] != "" {
			t.Fatalf("avg_rating cell = %q, want empty for users without reviews", row[5])
		}
	}

	corr := readCSV(t, filepath.Join(dir, "price_rating_correlation.csv"))
	if corr[1][0] != "undefined" {
		t.Fatalf("correlation cell = %q, want undefined without reviews", corr[1][0])
	}
}

func TestWriteCSVReports_SkipsFailedReports(t *testing.T) {
	dir := t.TempDir()
	d := healthyDataset()
	d.OrderItems = append(d.OrderItems, models.OrderItem{ItemID: 3, OrderID: 1, ProductID: 99, Quantity: 1})

	b := Compute(d, 10)
	if err := WriteCSVReports(b, dir); err != nil {
		t.Fatalf("WriteCSVReports() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "top_products.csv")); !os.IsNotExist(err) {
		t.Fatalf("top_products.csv should be absent for a failed report")
	}
	if _, err := os.Stat(filepath.Join(dir, "user_spending_summary.csv")); err != nil {
		t.Fatalf("user_spending_summary.csv should still be written: %v", err)
	}
}
