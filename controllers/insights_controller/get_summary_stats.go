package insights_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopmetrics/ecommerce-insights/analytics"
	"github.com/shopmetrics/ecommerce-insights/models"
)

// GetSummaryStats returns run-level totals plus dataset counts. Monetary
// values are rounded to 2dp here, at the presentation boundary.
func GetSummaryStats(c *gin.Context) {
	log.Printf("[insights.summary] start")

	b, err := currentBundle()
	if err != nil {
		log.Printf("[insights.summary] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load dataset"))
		return
	}
	if msg, failed := b.FailureFor("summary_stats"); failed {
		log.Printf("[insights.summary] ERROR compute err=%s", msg)
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, msg))
		return
	}

	payload := gin.H{
		"user_count":    b.UserCount,
		"product_count": b.ProductCount,
		"summary": models.SummaryStats{
			TotalRevenue:  analytics.Round2(b.Summary.TotalRevenue),
			TotalOrders:   b.Summary.TotalOrders,
			AvgOrderValue: analytics.Round2(b.Summary.AvgOrderValue),
		},
	}

	log.Printf("[insights.summary] respond 200 revenue=%.2f orders=%d",
		b.Summary.TotalRevenue, b.Summary.TotalOrders)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Summary statistics retrieved successfully", payload))
}
