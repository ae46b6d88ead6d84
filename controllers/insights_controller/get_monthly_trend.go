package insights_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopmetrics/ecommerce-insights/models"
)

// GetMonthlyTrend returns order counts per calendar month,
// chronologically ascending. Months without orders are omitted.
func GetMonthlyTrend(c *gin.Context) {
	log.Printf("[insights.monthly-trend] start")

	b, err := currentBundle()
	if err != nil {
		log.Printf("[insights.monthly-trend] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load dataset"))
		return
	}

	log.Printf("[insights.monthly-trend] respond 200 months=%d", len(b.MonthlyTrend))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly order trend retrieved successfully", b.MonthlyTrend))
}
