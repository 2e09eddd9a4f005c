package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/club_manager_app/internal/core/domain"
	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/dto"
	"github.com/SscSPs/club_manager_app/internal/middleware"
	"github.com/SscSPs/club_manager_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// reportHandler serves the monthly reconciliation and the report archive.
type reportHandler struct {
	reconciliation portssvc.ReconciliationSvc
	archive        portssvc.ReportArchiveSvcFacade
	insights       portssvc.InsightsSvc
}

func newReportHandler(rs portssvc.ReconciliationSvc, as portssvc.ReportArchiveSvcFacade, is portssvc.InsightsSvc) *reportHandler {
	return &reportHandler{reconciliation: rs, archive: as, insights: is}
}

// registerReportRoutes registers reconciliation, archive and insights routes.
func registerReportRoutes(rg *gin.RouterGroup, rs portssvc.ReconciliationSvc, as portssvc.ReportArchiveSvcFacade, is portssvc.InsightsSvc) {
	h := newReportHandler(rs, as, is)

	reports := rg.Group("/reports")
	{
		reports.GET("", h.listReports)
		reports.GET("/preview", h.previewMonth)
		reports.GET("/by-month", h.getReportByMonth)
		reports.GET("/:id", h.getReport)
		reports.GET("/:id/reminder", h.unpaidReminder)

		admin := reports.Group("", middleware.RequireAdmin())
		admin.POST("/freeze", h.freezeMonth)
		admin.DELETE("/:id", h.deleteReport)
	}

	rg.POST("/insights", middleware.RequireAdmin(), h.generateInsights)
}

// previewMonth godoc
// @Summary Preview a month
// @Description Computes the monthly rollup from the live data without archiving it.
// @Tags reports
// @Produce json
// @Param month query string true "YYYY-MM"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Security BearerAuth
// @Router /reports/preview [get]
func (h *reportHandler) previewMonth(c *gin.Context) {
	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	summary, err := h.reconciliation.PreviewMonth(c.Request.Context(), q.Month)
	if err != nil {
		respondError(c, err, "Failed to compute monthly summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlySummaryResponse(*summary))
}

// freezeMonth godoc
// @Summary Freeze a month
// @Description Reconciles the month and archives the result, replacing any earlier report for that month. A narrative is attached unless withNarrative is false; if generation fails a fixed apology text is stored instead.
// @Tags reports
// @Accept json
// @Produce json
// @Param freeze body dto.FreezeMonthRequest true "Month to freeze"
// @Success 201 {object} dto.MonthlyReportResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/freeze [post]
func (h *reportHandler) freezeMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FreezeMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Freezing month", slog.String("month", req.Month), slog.Bool("with_narrative", req.NarrativeEnabled()))
	report, err := h.reconciliation.FreezeMonth(c.Request.Context(), req.Month, portssvc.FreezeOptions{WithNarrative: req.NarrativeEnabled()})
	if err != nil {
		respondError(c, err, "Failed to freeze month")
		return
	}
	c.JSON(http.StatusCreated, toReportResponse(c, *report))
}

// listReports godoc
// @Summary List frozen reports
// @Description Lists archived reports, latest month first.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ListReportsResponse
// @Security BearerAuth
// @Router /reports [get]
func (h *reportHandler) listReports(c *gin.Context) {
	reports, err := h.archive.ListReports(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list reports")
		return
	}
	out := make([]dto.MonthlyReportResponse, len(reports))
	for i, r := range reports {
		out[i] = toReportResponse(c, r)
	}
	c.JSON(http.StatusOK, dto.ListReportsResponse{Reports: out})
}

// getReport godoc
// @Summary Get a frozen report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/{id} [get]
func (h *reportHandler) getReport(c *gin.Context) {
	report, err := h.archive.GetReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve report")
		return
	}
	c.JSON(http.StatusOK, toReportResponse(c, *report))
}

// getReportByMonth godoc
// @Summary Get the frozen report of a month
// @Tags reports
// @Produce json
// @Param month query string true "YYYY-MM"
// @Success 200 {object} dto.MonthlyReportResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/by-month [get]
func (h *reportHandler) getReportByMonth(c *gin.Context) {
	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	report, err := h.archive.GetReportByMonth(c.Request.Context(), q.Month)
	if err != nil {
		respondError(c, err, "Failed to retrieve report")
		return
	}
	c.JSON(http.StatusOK, toReportResponse(c, *report))
}

// deleteReport godoc
// @Summary Delete a frozen report
// @Tags reports
// @Param id path string true "Report ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/{id} [delete]
func (h *reportHandler) deleteReport(c *gin.Context) {
	if err := h.archive.DeleteReport(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete report")
		return
	}
	c.Status(http.StatusNoContent)
}

// unpaidReminder godoc
// @Summary Dues reminder for a report
// @Description Builds a reminder message naming the members who had not paid when the month was frozen.
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} dto.UnpaidReminderResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/{id}/reminder [get]
func (h *reportHandler) unpaidReminder(c *gin.Context) {
	reminder, err := h.archive.UnpaidReminder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to build reminder")
		return
	}
	c.JSON(http.StatusOK, reminder)
}

// generateInsights godoc
// @Summary Club-wide insights
// @Description Asks the narrative generator for an analysis of all club data. Falls back to a fixed text when generation fails.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.InsightsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /insights [post]
func (h *reportHandler) generateInsights(c *gin.Context) {
	resp, err := h.insights.GenerateInsights(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to generate insights")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// toReportResponse renders the narrative markdown alongside the raw text.
func toReportResponse(c *gin.Context, r domain.MonthlyReport) dto.MonthlyReportResponse {
	var summaryHTML *string
	if r.AISummary != nil {
		html, err := utils.RenderMarkdown(*r.AISummary)
		if err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to render report narrative",
				slog.String("report_id", r.ID), slog.String("error", err.Error()))
		} else {
			summaryHTML = &html
		}
	}
	return dto.ToMonthlyReportResponse(r, summaryHTML)
}
