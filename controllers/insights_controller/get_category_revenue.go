package insights_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopmetrics/ecommerce-insights/models"
)

// GetCategoryRevenue returns summed revenue per product category,
// highest first.
func GetCategoryRevenue(c *gin.Context) {
	log.Printf("[insights.category-revenue] start")

	b, err := currentBundle()
	if err != nil {
		log.Printf("[insights.category-revenue] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load dataset"))
		return
	}
	if msg, failed := b.FailureFor("category_revenue"); failed {
		log.Printf("[insights.category-revenue] ERROR compute err=%s", msg)
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, msg))
		return
	}

	log.Printf("[insights.category-revenue] respond 200 categories=%d", len(b.CategoryRevenue))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category revenue retrieved successfully", b.CategoryRevenue))
}
