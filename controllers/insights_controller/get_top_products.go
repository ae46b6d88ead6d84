package insights_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopmetrics/ecommerce-insights/models"
)

// GetTopProducts returns the best selling products ranked by quantity
// sold, with total revenue per product.
func GetTopProducts(c *gin.Context) {
	log.Printf("[insights.top-products] start")

	b, err := currentBundle()
	if err != nil {
		log.Printf("[insights.top-products] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load dataset"))
		return
	}
	if msg, failed := b.FailureFor("top_products"); failed {
		log.Printf("[insights.top-products] ERROR compute err=%s", msg)
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, msg))
		return
	}

	log.Printf("[insights.top-products] respond 200 products=%d", len(b.TopProducts))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products retrieved successfully", b.TopProducts))
}
