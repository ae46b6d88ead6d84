package insights_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopmetrics/ecommerce-insights/models"
)

// GetRatingDistribution returns review counts for every rating value 1-5,
// zero-count buckets included.
func GetRatingDistribution(c *gin.Context) {
	log.Printf("[insights.rating-distribution] start")

	b, err := currentBundle()
	if err != nil {
		log.Printf("[insights.rating-distribution] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load dataset"))
		return
	}

	log.Printf("[insights.rating-distribution] respond 200")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Rating distribution retrieved successfully", b.RatingDistribution))
}
