package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/dto"
	"github.com/SscSPs/club_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// matchHandler handles HTTP requests related to matches.
type matchHandler struct {
	matchService portssvc.MatchSvcFacade
}

func newMatchHandler(ms portssvc.MatchSvcFacade) *matchHandler {
	return &matchHandler{matchService: ms}
}

// registerMatchRoutes registers routes related to matches.
func registerMatchRoutes(rg *gin.RouterGroup, matchService portssvc.MatchSvcFacade) {
	h := newMatchHandler(matchService)

	matches := rg.Group("/matches")
	{
		matches.GET("", h.listMatches)
		matches.GET("/stats", h.matchStats)
		matches.GET("/:id", h.getMatch)

		admin := matches.Group("", middleware.RequireAdmin())
		admin.POST("", h.createMatch)
		admin.PUT("/:id", h.updateMatch)
		admin.DELETE("/:id", h.deleteMatch)
		admin.POST("/:id/complete", h.completeMatch)
		admin.POST("/:id/expenses", h.recordExpenses)
	}
}

// createMatch godoc
// @Summary Schedule a match
// @Description Creates a SCHEDULED match. External matches need an opponent.
// @Tags matches
// @Accept json
// @Produce json
// @Param match body dto.CreateMatchRequest true "Match details"
// @Success 201 {object} dto.MatchResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /matches [post]
func (h *matchHandler) createMatch(c *gin.Context) {
	var req dto.CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	match, err := h.matchService.AddMatch(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create match")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMatchResponse(*match))
}

// getMatch godoc
// @Summary Get a match
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} dto.MatchResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /matches/{id} [get]
func (h *matchHandler) getMatch(c *gin.Context) {
	match, err := h.matchService.GetMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve match")
		return
	}
	c.JSON(http.StatusOK, dto.ToMatchResponse(*match))
}

// listMatches godoc
// @Summary List matches
// @Tags matches
// @Produce json
// @Param month query string false "YYYY-MM"
// @Param status query string false "SCHEDULED, COMPLETED or CANCELLED"
// @Success 200 {object} dto.ListMatchesResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Security BearerAuth
// @Router /matches [get]
func (h *matchHandler) listMatches(c *gin.Context) {
	var params dto.ListMatchesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	matches, err := h.matchService.ListMatches(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list matches")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMatchesResponse(matches))
}

// matchStats godoc
// @Summary Match statistics
// @Description Completed match counts, results and the total cost of match expenses.
// @Tags matches
// @Produce json
// @Success 200 {object} domain.MatchStats
// @Security BearerAuth
// @Router /matches/stats [get]
func (h *matchHandler) matchStats(c *gin.Context) {
	stats, err := h.matchService.MatchStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to compute match statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// updateMatch godoc
// @Summary Update a match
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param match body dto.UpdateMatchRequest true "Fields to change"
// @Success 200 {object} dto.MatchResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /matches/{id} [put]
func (h *matchHandler) updateMatch(c *gin.Context) {
	var req dto.UpdateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	match, err := h.matchService.UpdateMatch(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update match")
		return
	}
	c.JSON(http.StatusOK, dto.ToMatchResponse(*match))
}

// deleteMatch godoc
// @Summary Delete a match
// @Description Removes the match. Expenses recorded against it stay in the ledger.
// @Tags matches
// @Param id path string true "Match ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /matches/{id} [delete]
func (h *matchHandler) deleteMatch(c *gin.Context) {
	if err := h.matchService.DeleteMatch(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete match")
		return
	}
	c.Status(http.StatusNoContent)
}

// completeMatch godoc
// @Summary Mark a match as played
// @Description Sets the status to COMPLETED. The result defaults to "0 - 0".
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param result body dto.CompleteMatchRequest false "Final score"
// @Success 200 {object} dto.MatchResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /matches/{id}/complete [post]
func (h *matchHandler) completeMatch(c *gin.Context) {
	var req dto.CompleteMatchRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	match, err := h.matchService.CompleteMatch(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to complete match")
		return
	}
	c.JSON(http.StatusOK, dto.ToMatchResponse(*match))
}

// recordExpenses godoc
// @Summary Record the costs of a match
// @Description Adds one expense per positive fee, dated on the match day.
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param fees body dto.RecordMatchExpensesRequest true "Fees"
// @Success 201 {object} dto.RecordMatchExpensesResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /matches/{id}/expenses [post]
func (h *matchHandler) recordExpenses(c *gin.Context) {
	var req dto.RecordMatchExpensesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txns, err := h.matchService.RecordMatchExpenses(c.Request.Context(), c.Param("id"), req, actorFrom(c))
	if err != nil {
		respondError(c, err, "Failed to record match expenses")
		return
	}
	c.JSON(http.StatusCreated, dto.RecordMatchExpensesResponse{Transactions: dto.ToTransactionResponses(txns)})
}
