package reports

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/shopmetrics/ecommerce-insights/analytics"
)

// WriteCSVReports writes one CSV per computed report into dir, fully
// overwriting previous runs. Reports that failed to compute are skipped;
// their absence is already recorded in the bundle's Failures.
func WriteCSVReports(b *Bundle, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	if !b.Failed("user_spending_summary") {
		rows := make([][]string, 0, len(b.UserSpending))
		for _, r := range b.UserSpending {
			avg := ""
			if r.AvgRating != nil {
				avg = strconv.FormatFloat(*r.AvgRating, 'f', 2, 64)
			}
			rows = append(rows, []string{
				strconv.Itoa(r.UserID), r.Name, r.City,
				strconv.Itoa(r.NumOrders), money(r.TotalSpent), avg,
			})
		}
		if err := writeCSV(filepath.Join(dir, "user_spending_summary.csv"),
			[]string{"user_id", "name", "city", "num_orders", "total_spent", "avg_rating"}, rows); err != nil {
			return err
		}
	}

	if !b.Failed("top_products") {
		rows := make([][]string, 0, len(b.TopProducts))
		for _, r := range b.TopProducts {
			rows = append(rows, []string{
				strconv.Itoa(r.ProductID), r.Name, r.Category,
				strconv.Itoa(r.TotalQuantitySold), money(r.TotalRevenue),
			})
		}
		if err := writeCSV(filepath.Join(dir, "top_products.csv"),
			[]string{"product_id", "name", "category", "total_quantity_sold", "total_revenue"}, rows); err != nil {
			return err
		}
	}

	if !b.Failed("category_revenue") {
		rows := make([][]string, 0, len(b.CategoryRevenue))
		for _, r := range b.CategoryRevenue {
			rows = append(rows, []string{r.Category, money(r.Revenue)})
		}
		if err := writeCSV(filepath.Join(dir, "category_revenue.csv"),
			[]string{"category", "revenue"}, rows); err != nil {
			return err
		}
	}

	rows := make([][]string, 0, len(b.MonthlyTrend))
	for _, r := range b.MonthlyTrend {
		rows = append(rows, []string{r.Month, strconv.Itoa(r.OrderCount)})
	}
	if err := writeCSV(filepath.Join(dir, "monthly_orders.csv"),
		[]string{"year_month", "order_count"}, rows); err != nil {
		return err
	}

	if !b.Failed("active_users") {
		rows := make([][]string, 0, len(b.ActiveUsers))
		for _, r := range b.ActiveUsers {
			rows = append(rows, []string{strconv.Itoa(r.UserID), r.Name, strconv.Itoa(r.OrderCount)})
		}
		if err := writeCSV(filepath.Join(dir, "active_users.csv"),
			[]string{"user_id", "name", "order_count"}, rows); err != nil {
			return err
		}
	}

	rows = rows[:0]
	for _, r := range b.RatingDistribution {
		rows = append(rows, []string{strconv.Itoa(r.Rating), strconv.Itoa(r.Count)})
	}
	if err := writeCSV(filepath.Join(dir, "rating_distribution.csv"),
		[]string{"rating", "count"}, rows); err != nil {
		return err
	}

	if !b.Failed("price_rating_correlation") {
		coeff := "undefined"
		if b.Correlation.Defined {
			coeff = strconv.FormatFloat(*b.Correlation.Coefficient, 'f', 4, 64)
		}
		if err := writeCSV(filepath.Join(dir, "price_rating_correlation.csv"),
			[]string{"coefficient"}, [][]string{{coeff}}); err != nil {
			return err
		}
	}

	if !b.Failed("summary_stats") {
		if err := writeCSV(filepath.Join(dir, "summary_stats.csv"),
			[]string{"total_revenue", "total_orders", "avg_order_value"},
			[][]string{{
				money(b.Summary.TotalRevenue),
				strconv.Itoa(b.Summary.TotalOrders),
				money(b.Summary.AvgOrderValue),
			}}); err != nil {
			return err
		}
	}

	return nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// money renders a monetary value rounded to 2dp for the sink boundary.
func money(v float64) string {
	return strconv.FormatFloat(analytics.Round2(v), 'f', 2, 64)
}
