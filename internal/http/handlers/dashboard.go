package handlers

import (
	"net/http"
	"time"

	"evtaxi-admin/internal/repositories"
	"evtaxi-admin/internal/services"

	"github.com/gin-gonic/gin"
)

func dashboardService() services.DashboardService {
	return services.DashboardService{Repo: repositories.DashboardRepository{}}
}

// GET /api/dashboard/totals
func DashboardTotals(c *gin.Context) {
	totals, err := dashboardService().GetTotals()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// GET /api/dashboard/revenue/:type?startDate&endDate
func DashboardRevenue(c *gin.Context) {
	series, err := dashboardService().GetRevenueSeries(
		c.Param("type"),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

// GET /api/dashboard/growth/:type?baseDate
func DashboardGrowth(c *gin.Context) {
	reference := time.Now()
	if base := c.Query("baseDate"); base != "" {
		parsed, err := time.ParseInLocation("2006-01-02", base, time.Local)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid baseDate, expected YYYY-MM-DD", err)
			return
		}
		reference = parsed
	}

	result, err := dashboardService().GetGrowthComparison(c.Param("type"), reference)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/dashboard/payment-distribution
func DashboardPaymentDistribution(c *gin.Context) {
	dist, err := dashboardService().GetPaymentDistribution()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dist)
}
