package insights_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopmetrics/ecommerce-insights/models"
)

// GetUserSpending returns the user spending summary: one row per user
// with order count, total spent, and average given rating.
func GetUserSpending(c *gin.Context) {
	log.Printf("[insights.user-spending] start")

	b, err := currentBundle()
	if err != nil {
		log.Printf("[insights.user-spending] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load dataset"))
		return
	}
	if msg, failed := b.FailureFor("user_spending_summary"); failed {
		log.Printf("[insights.user-spending] ERROR compute err=%s", msg)
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, msg))
		return
	}

	log.Printf("[insights.user-spending] respond 200 rows=%d", len(b.UserSpending))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "User spending summary retrieved successfully", b.UserSpending))
}
