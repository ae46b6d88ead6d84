package reports

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/shopmetrics/ecommerce-insights/analytics"
)

// WriteCharts renders the PNG visualizations into dir: top products and
// category revenue bar charts, the monthly order line chart, and the
// rating histogram. Series too small to draw are skipped with a log line
// rather than failing the run.
func WriteCharts(b *Bundle, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	if len(b.TopProducts) > 0 {
		bars := make([]chart.Value, 0, len(b.TopProducts))
		for _, r := range b.TopProducts {
			bars = append(bars, chart.Value{Value: float64(r.TotalQuantitySold), Label: r.Name})
		}
		if err := renderBarChart("Top Products by Sales Volume", bars, filepath.Join(dir, "top_products.png")); err != nil {
			return err
		}
	} else {
		log.Printf("[reports.charts] skip top_products.png: no sales data")
	}

	if len(b.MonthlyTrend) >= 2 {
		xs := make([]time.Time, 0, len(b.MonthlyTrend))
		ys := make([]float64, 0, len(b.MonthlyTrend))
		for _, r := range b.MonthlyTrend {
			t, err := time.Parse("2006-01", r.Month)
			if err != nil {
				return fmt.Errorf("parse month %q: %w", r.Month, err)
			}
			xs = append(xs, t)
			ys = append(ys, float64(r.OrderCount))
		}
		graph := chart.Chart{
			Title: "Monthly Order Trends",
			XAxis: chart.XAxis{
				ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
			},
			Series: []chart.Series{
				chart.TimeSeries{Name: "orders", XValues: xs, YValues: ys},
			},
		}
		if err := renderToFile(&graph, filepath.Join(dir, "monthly_orders.png")); err != nil {
			return err
		}
	} else {
		log.Printf("[reports.charts] skip monthly_orders.png: fewer than 2 months")
	}

	if len(b.CategoryRevenue) > 0 {
		bars := make([]chart.Value, 0, len(b.CategoryRevenue))
		for _, r := range b.CategoryRevenue {
			bars = append(bars, chart.Value{Value: analytics.Round2(r.Revenue), Label: r.Category})
		}
		if err := renderBarChart("Category-wise Revenue", bars, filepath.Join(dir, "category_revenue.png")); err != nil {
			return err
		}
	} else {
		log.Printf("[reports.charts] skip category_revenue.png: no revenue data")
	}

	// The rating histogram always has its five buckets.
	bars := make([]chart.Value, 0, len(b.RatingDistribution))
	for _, r := range b.RatingDistribution {
		bars = append(bars, chart.Value{Value: float64(r.Count), Label: fmt.Sprintf("%d", r.Rating)})
	}
	return renderBarChart("Product Rating Distribution", bars, filepath.Join(dir, "rating_distribution.png"))
}

func renderBarChart(title string, bars []chart.Value, path string) error {
	bc := chart.BarChart{
		Title:      title,
		Height:     512,
		Width:      1024,
		BarWidth:   60,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Bars:       bars,
	}
	return renderToFile(bc, path)
}

type pngRenderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func renderToFile(c pngRenderable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := c.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
