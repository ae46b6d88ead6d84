package insights_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopmetrics/ecommerce-insights/models"
)

// GetPriceRatingCorrelation returns the Pearson coefficient between
// product price and mean rating. Defined=false means the input set was
// too small or constant; that is a valid degraded result, not an error.
func GetPriceRatingCorrelation(c *gin.Context) {
	log.Printf("[insights.price-rating-correlation] start")

	b, err := currentBundle()
	if err != nil {
		log.Printf("[insights.price-rating-correlation] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load dataset"))
		return
	}
	if msg, failed := b.FailureFor("price_rating_correlation"); failed {
		log.Printf("[insights.price-rating-correlation] ERROR compute err=%s", msg)
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, msg))
		return
	}

	log.Printf("[insights.price-rating-correlation] respond 200 defined=%v", b.Correlation.Defined)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Price-rating correlation retrieved successfully", b.Correlation))
}
