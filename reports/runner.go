package reports

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/shopmetrics/ecommerce-insights/analytics"
	"github.com/shopmetrics/ecommerce-insights/models"
)

// Bundle holds every report computed from one dataset snapshot. A metric
// that failed leaves its field empty and records the cause in Failures
// under its report name; independent metrics still complete.
type Bundle struct {
	RunID       uuid.UUID `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`

	UserCount    int `json:"user_count"`
	ProductCount int `json:"product_count"`

	UserSpending       []models.UserSpendingSummary  `json:"user_spending"`
	TopProducts        []models.ProductSalesRow      `json:"top_products"`
	CategoryRevenue    []models.CategoryRevenueRow   `json:"category_revenue"`
	MonthlyTrend       []models.MonthlyOrderCount    `json:"monthly_trend"`
	ActiveUsers        []models.ActiveUserRow        `json:"active_users"`
	RatingDistribution []models.RatingBucket         `json:"rating_distribution"`
	Correlation        models.PriceRatingCorrelation `json:"price_rating_correlation"`
	Summary            models.SummaryStats           `json:"summary_stats"`

	mu       sync.Mutex
	Failures map[string]string `json:"failures,omitempty"`
}

func (b *Bundle) fail(report string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Failures[report] = err.Error()
}

// Failed reports whether the named report did not compute.
func (b *Bundle) Failed(report string) bool {
	_, ok := b.FailureFor(report)
	return ok
}

// FailureFor returns the recorded failure message for a report, if any.
func (b *Bundle) FailureFor(report string) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	msg, ok := b.Failures[report]
	return msg, ok
}

// Compute evaluates every metric over the snapshot. The metric functions
// are pure and share no state, so they run in parallel; summary stats are
// derived after the spending summary they depend on. A failing metric
// never aborts its siblings.
func Compute(d *analytics.Dataset, topN int) *Bundle {
	b := &Bundle{
		RunID:        uuid.New(),
		GeneratedAt:  time.Now().UTC(),
		UserCount:    len(d.Users),
		ProductCount: len(d.Products),
		Failures:     make(map[string]string),
	}

	var g errgroup.Group

	g.Go(func() error {
		rows, err := analytics.UserSpending(d)
		if err != nil {
			b.fail("user_spending_summary", err)
			b.fail("summary_stats", err)
			return nil
		}
		b.UserSpending = rows
		b.Summary = analytics.Summary(rows, len(d.Orders))
		return nil
	})

	g.Go(func() error {
		rows, err := analytics.TopSellingProducts(d, topN)
		if err != nil {
			b.fail("top_products", err)
			return nil
		}
		b.TopProducts = rows
		return nil
	})

	g.Go(func() error {
		rows, err := analytics.CategoryRevenue(d)
		if err != nil {
			b.fail("category_revenue", err)
			return nil
		}
		b.CategoryRevenue = rows
		return nil
	})

	g.Go(func() error {
		b.MonthlyTrend = analytics.MonthlyOrderTrend(d)
		return nil
	})

	g.Go(func() error {
		rows, err := analytics.MostActiveUsers(d, topN)
		if err != nil {
			b.fail("active_users", err)
			return nil
		}
		b.ActiveUsers = rows
		return nil
	})

	g.Go(func() error {
		b.RatingDistribution = analytics.RatingDistribution(d)
		return nil
	})

	g.Go(func() error {
		corr, err := analytics.PriceRatingCorrelation(d)
		if err != nil {
			b.fail("price_rating_correlation", err)
			return nil
		}
		b.Correlation = corr
		return nil
	})

	// Workers only record per-report failures, so Wait cannot return one.
	_ = g.Wait()

	return b
}
