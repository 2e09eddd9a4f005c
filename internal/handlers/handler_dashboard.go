package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
	now              func() time.Time
}

func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := &dashboardHandler{dashboardService: dashboardService, now: time.Now}

	rg.GET("/dashboard", h.dashboard)
	rg.GET("/financial-overview", h.financialOverview)
}

// dashboard godoc
// @Summary Club dashboard
// @Description All-time totals, attendance leaders, recent transactions and expenses by category.
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.Dashboard
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) dashboard(c *gin.Context) {
	d, err := h.dashboardService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, d)
}

// financialOverview godoc
// @Summary Financial overview
// @Description Income and expense for the last six months plus current-year totals.
// @Tags dashboard
// @Produce json
// @Success 200 {object} domain.FinancialOverview
// @Security BearerAuth
// @Router /financial-overview [get]
func (h *dashboardHandler) financialOverview(c *gin.Context) {
	overview, err := h.dashboardService.FinancialOverview(c.Request.Context(), h.now())
	if err != nil {
		respondError(c, err, "Failed to build financial overview")
		return
	}
	c.JSON(http.StatusOK, overview)
}
