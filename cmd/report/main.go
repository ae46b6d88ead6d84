package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/shopmetrics/ecommerce-insights/analytics"
	"github.com/shopmetrics/ecommerce-insights/config"
	"github.com/shopmetrics/ecommerce-insights/reports"
)

func init() {
	_ = godotenv.Load()
}

// One-shot batch run: load the dataset snapshot, compute every report,
// print the tables, and write CSVs, charts, and the summary PDF.
func main() {
	topN := flag.Int("top", analytics.DefaultTopN, "rows to keep in ranked reports")
	outDir := flag.String("out", "reports", "directory for report files")
	flag.Parse()

	config.InitDB()
	defer config.CloseDB()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	dataset, err := analytics.Load(ctx, config.DB)
	if err != nil {
		log.Fatalf("❌ Failed to load dataset: %v", err)
	}
	log.Printf("[report] loaded users=%d products=%d orders=%d order_items=%d reviews=%d",
		len(dataset.Users), len(dataset.Products), len(dataset.Orders),
		len(dataset.OrderItems), len(dataset.Reviews))

	bundle := reports.Compute(dataset, *topN)
	for name, msg := range bundle.Failures {
		log.Printf("[report] WARN %s not computed: %s", name, msg)
	}

	printBundle(bundle)

	if err := reports.WriteCSVReports(bundle, *outDir); err != nil {
		log.Fatalf("❌ Failed to write CSV reports: %v", err)
	}
	if err := reports.WriteCharts(bundle, *outDir); err != nil {
		log.Fatalf("❌ Failed to render charts: %v", err)
	}
	if err := reports.WriteSummaryPDF(bundle, filepath.Join(*outDir, "summary.pdf")); err != nil {
		log.Fatalf("❌ Failed to write summary PDF: %v", err)
	}

	log.Printf("[report] run %s complete — reports written to %s/", bundle.RunID, *outDir)
}

func printBundle(b *reports.Bundle) {
	fmt.Printf("\nTotal Users: %d\nTotal Products: %d\n", b.UserCount, b.ProductCount)

	if !b.Failed("user_spending_summary") {
		fmt.Printf("\nTop %d users by total spent:\n\n", min(20, len(b.UserSpending)))
		w := newTable()
		fmt.Fprintln(w, "user_id\tname\tcity\tnum_orders\ttotal_spent\tavg_rating")
		for i, r := range b.UserSpending {
			if i == 20 {
				break
			}
			avg := "null"
			if r.AvgRating != nil {
				avg = fmt.Sprintf("%.2f", *r.AvgRating)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\t%s\n", r.UserID, r.Name, r.City, r.NumOrders, analytics.Round2(r.TotalSpent), avg)
		}
		w.Flush()
	}

	if !b.Failed("top_products") {
		fmt.Printf("\nTop selling products:\n\n")
		w := newTable()
		fmt.Fprintln(w, "product_id\tname\tcategory\tqty_sold\trevenue")
		for _, r := range b.TopProducts {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.2f\n", r.ProductID, r.Name, r.Category, r.TotalQuantitySold, analytics.Round2(r.TotalRevenue))
		}
		w.Flush()
	}

	fmt.Printf("\nMonthly order trend:\n\n")
	w := newTable()
	fmt.Fprintln(w, "year_month\torder_count")
	for _, r := range b.MonthlyTrend {
		fmt.Fprintf(w, "%s\t%d\n", r.Month, r.OrderCount)
	}
	w.Flush()

	if !b.Failed("category_revenue") {
		fmt.Printf("\nCategory-wise revenue:\n\n")
		w := newTable()
		fmt.Fprintln(w, "category\trevenue")
		for _, r := range b.CategoryRevenue {
			fmt.Fprintf(w, "%s\t%.2f\n", r.Category, analytics.Round2(r.Revenue))
		}
		w.Flush()
	}

	if !b.Failed("active_users") {
		fmt.Printf("\nMost active users:\n\n")
		w := newTable()
		fmt.Fprintln(w, "user_id\tname\torder_count")
		for _, r := range b.ActiveUsers {
			fmt.Fprintf(w, "%d\t%s\t%d\n", r.UserID, r.Name, r.OrderCount)
		}
		w.Flush()
	}

	fmt.Printf("\nRating distribution:\n\n")
	w = newTable()
	fmt.Fprintln(w, "rating\tcount")
	for _, r := range b.RatingDistribution {
		fmt.Fprintf(w, "%d\t%d\n", r.Rating, r.Count)
	}
	w.Flush()

	if !b.Failed("price_rating_correlation") {
		if b.Correlation.Defined {
			fmt.Printf("\nCorrelation between price and rating: %.4f\n", *b.Correlation.Coefficient)
		} else {
			fmt.Printf("\nCorrelation between price and rating: undefined\n")
		}
	}

	if !b.Failed("summary_stats") {
		fmt.Printf("\nSummary stats:\n  total_revenue=%.2f total_orders=%d avg_order_value=%.2f\n",
			analytics.Round2(b.Summary.TotalRevenue), b.Summary.TotalOrders, analytics.Round2(b.Summary.AvgOrderValue))
	}
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}
