package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/shopmetrics/ecommerce-insights/controllers/insights_controller"
)

func SetupInsightsRoutes(rg *gin.RouterGroup) {
	insights := rg.Group("/insights")

	insights.GET("/user-spending", insights_controller.GetUserSpending)
	insights.GET("/top-products", insights_controller.GetTopProducts)
	insights.GET("/category-revenue", insights_controller.GetCategoryRevenue)
	insights.GET("/monthly-trend", insights_controller.GetMonthlyTrend)
	insights.GET("/active-users", insights_controller.GetActiveUsers)
	insights.GET("/rating-distribution", insights_controller.GetRatingDistribution)
	insights.GET("/price-rating-correlation", insights_controller.GetPriceRatingCorrelation)
	insights.GET("/summary", insights_controller.GetSummaryStats)
}
