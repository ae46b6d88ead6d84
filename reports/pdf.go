package reports

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/shopmetrics/ecommerce-insights/analytics"
)

// WriteSummaryPDF renders the one-page analytics summary: run totals,
// the top-products and category-revenue tables, and the price/rating
// correlation.
func WriteSummaryPDF(b *Bundle, path string) error {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("E-COMMERCE INSIGHTS", props.Text{
				Size:  24,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Run %s", b.RunID), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(b.GeneratedAt.Format("Jan 02, 2006 15:04 UTC"), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("SUMMARY", props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
		})
	})
	summaryRows := [][]string{
		{"Users", strconv.Itoa(b.UserCount)},
		{"Products", strconv.Itoa(b.ProductCount)},
		{"Total Orders", strconv.Itoa(b.Summary.TotalOrders)},
		{"Total Revenue", fmt.Sprintf("$%.2f", analytics.Round2(b.Summary.TotalRevenue))},
		{"Avg Order Value", fmt.Sprintf("$%.2f", analytics.Round2(b.Summary.AvgOrderValue))},
		{"Price/Rating Correlation", correlationLabel(b)},
	}
	for _, row := range summaryRows {
		label, value := row[0], row[1]
		m.Row(5, func() {
			m.Col(6, func() {
				m.Text(label, props.Text{Size: 9, Color: mediumGray})
			})
			m.Col(6, func() {
				m.Text(value, props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("TOP SELLING PRODUCTS", props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
		})
	})
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Product", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(3, func() {
			m.Text("Qty Sold", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(3, func() {
			m.Text("Revenue", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})
	for _, p := range b.TopProducts {
		row := p
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(row.Name, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(3, func() {
				m.Text(strconv.Itoa(row.TotalQuantitySold), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(3, func() {
				m.Text(fmt.Sprintf("$%.2f", analytics.Round2(row.TotalRevenue)), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("REVENUE BY CATEGORY", props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
		})
	})
	for _, c := range b.CategoryRevenue {
		row := c
		m.Row(5, func() {
			m.Col(6, func() {
				m.Text(row.Category, props.Text{Size: 9, Color: mediumGray})
			})
			m.Col(6, func() {
				m.Text(fmt.Sprintf("$%.2f", analytics.Round2(row.Revenue)), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	if err := m.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func correlationLabel(b *Bundle) string {
	if !b.Correlation.Defined {
		return "undefined"
	}
	return fmt.Sprintf("%.4f", *b.Correlation.Coefficient)
}
