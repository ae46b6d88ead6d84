package analytics

import (
	"math"
	"sort"

	"github.com/shopmetrics/ecommerce-insights/models"
)

// RatingDistribution counts reviews per rating value. The histogram is
// dense: all five buckets 1-5 are present even with zero occurrences,
// unlike a naive group-by which would omit absent values.
func RatingDistribution(d *Dataset) []models.RatingBucket {
	var counts [5]int
	for _, r := range d.Reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			counts[r.Rating-1]++
		}
	}

	rows := make([]models.RatingBucket, 5)
	for i := range rows {
		rows[i] = models.RatingBucket{Rating: i + 1, Count: counts[i]}
	}
	return rows
}

// PriceRatingCorrelation computes the Pearson coefficient between each
// product's mean rating and its price. Products without reviews are
// excluded from the input set, not imputed with a default rating. The
// result is undefined (Defined=false) with fewer than two qualifying
// products or when either vector is constant; that is a degraded result
// for this metric, never an error.
func PriceRatingCorrelation(d *Dataset) (models.PriceRatingCorrelation, error) {
	products := d.productByID()
	ratingSum := make(map[int]float64)
	ratingCount := make(map[int]int)
	for _, r := range d.Reviews {
		if _, ok := products[r.ProductID]; !ok {
			return models.PriceRatingCorrelation{}, &ReferentialGapError{Table: "reviews", Column: "product_id", Value: r.ProductID, Referenced: "products"}
		}
		ratingSum[r.ProductID] += float64(r.Rating)
		ratingCount[r.ProductID]++
	}

	ids := make([]int, 0, len(ratingCount))
	for id := range ratingCount {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	prices := make([]float64, 0, len(ids))
	ratings := make([]float64, 0, len(ids))
	for _, id := range ids {
		prices = append(prices, products[id].Price)
		ratings = append(ratings, ratingSum[id]/float64(ratingCount[id]))
	}

	coeff, ok := pearson(prices, ratings)
	if !ok {
		return models.PriceRatingCorrelation{}, nil
	}
	return models.PriceRatingCorrelation{Coefficient: &coeff, Defined: true}, nil
}

// pearson reports ok=false when fewer than two points exist or a constant
// vector makes the coefficient undefined.
func pearson(xs, ys []float64) (float64, bool) {
	n := len(xs)
	if n < 2 {
		return 0, false
	}

	var meanX, meanY float64
	for i := 0; i < n; i++ {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var sxx, syy, sxy float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, false
	}
	return sxy / math.Sqrt(sxx*syy), true
}
