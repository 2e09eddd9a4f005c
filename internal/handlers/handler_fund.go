package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/dto"
	"github.com/SscSPs/club_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type fundHandler struct {
	fundService portssvc.FundSvcFacade
}

func newFundHandler(fs portssvc.FundSvcFacade) *fundHandler {
	return &fundHandler{fundService: fs}
}

// registerFundRoutes registers the monthly dues routes.
func registerFundRoutes(rg *gin.RouterGroup, fundService portssvc.FundSvcFacade) {
	h := newFundHandler(fundService)

	fund := rg.Group("/fund")
	{
		fund.GET("", h.fundStatus)

		admin := fund.Group("", middleware.RequireAdmin())
		admin.POST("/payments", h.recordPayment)
		admin.DELETE("/payments/:id", h.deletePayment)
	}
}

// fundStatus godoc
// @Summary Monthly dues status
// @Description Lists every member with whether a dues payment was recorded for the month.
// @Tags fund
// @Produce json
// @Param month query string true "YYYY-MM"
// @Success 200 {object} domain.FundStatus
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Security BearerAuth
// @Router /fund [get]
func (h *fundHandler) fundStatus(c *gin.Context) {
	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	status, err := h.fundService.FundStatus(c.Request.Context(), q.Month)
	if err != nil {
		respondError(c, err, "Failed to load fund status")
		return
	}
	c.JSON(http.StatusOK, status)
}

// recordPayment godoc
// @Summary Record a dues payment
// @Description Adds a MONTHLY_DUES income for an active member. The amount defaults to the member's support level. A member pays at most once per month.
// @Tags fund
// @Accept json
// @Produce json
// @Param payment body dto.RecordDuesPaymentRequest true "Payment"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /fund/payments [post]
func (h *fundHandler) recordPayment(c *gin.Context) {
	var req dto.RecordDuesPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.fundService.RecordDuesPayment(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		respondError(c, err, "Failed to record payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}

// deletePayment godoc
// @Summary Delete a dues payment
// @Tags fund
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Not a dues payment"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /fund/payments/{id} [delete]
func (h *fundHandler) deletePayment(c *gin.Context) {
	if err := h.fundService.DeleteDuesPayment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}
