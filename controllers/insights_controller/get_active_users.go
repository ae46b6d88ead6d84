package insights_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopmetrics/ecommerce-insights/models"
)

// GetActiveUsers returns the users with the most orders.
func GetActiveUsers(c *gin.Context) {
	log.Printf("[insights.active-users] start")

	b, err := currentBundle()
	if err != nil {
		log.Printf("[insights.active-users] ERROR load err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load dataset"))
		return
	}
	if msg, failed := b.FailureFor("active_users"); failed {
		log.Printf("[insights.active-users] ERROR compute err=%s", msg)
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse(c, msg))
		return
	}

	log.Printf("[insights.active-users] respond 200 users=%d", len(b.ActiveUsers))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Most active users retrieved successfully", b.ActiveUsers))
}
