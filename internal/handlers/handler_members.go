package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/dto"
	"github.com/SscSPs/club_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// memberHandler handles HTTP requests related to the roster.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

// registerMemberRoutes registers routes related to members.
func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := rg.Group("/members")
	{
		members.GET("", h.listMembers)
		members.GET("/:id", h.getMember)

		admin := members.Group("", middleware.RequireAdmin())
		admin.POST("", h.createMember)
		admin.PUT("/:id", h.updateMember)
		admin.DELETE("/:id", h.deleteMember)
		admin.POST("/:id/toggle-fee", h.toggleFeePaid)
		admin.POST("/:id/toggle-active", h.toggleActive)
	}
}

// createMember godoc
// @Summary Add a member
// @Description Adds a member to the roster. Status defaults to ACTIVE and type to INTERNAL.
// @Tags members
// @Accept json
// @Produce json
// @Param member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.memberService.AddMember(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to add member")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMemberResponse(*member))
}

// getMember godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	member, err := h.memberService.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(*member))
}

// listMembers godoc
// @Summary List members
// @Description Lists the roster, optionally filtered by status and type.
// @Tags members
// @Produce json
// @Param status query string false "ACTIVE or INACTIVE"
// @Param type query string false "INTERNAL or EXTERNAL"
// @Success 200 {object} dto.ListMembersResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	var params dto.ListMembersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list members")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Members listed", slog.Int("count", len(members)))
	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

// updateMember godoc
// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param member body dto.UpdateMemberRequest true "Fields to change"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(*member))
}

// deleteMember godoc
// @Summary Delete a member
// @Description Removes the member. Transactions, matches and reports that reference them are kept.
// @Tags members
// @Param id path string true "Member ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id} [delete]
func (h *memberHandler) deleteMember(c *gin.Context) {
	if err := h.memberService.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete member")
		return
	}
	c.Status(http.StatusNoContent)
}

// toggleFeePaid godoc
// @Summary Flip a member's monthly fee flag
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id}/toggle-fee [post]
func (h *memberHandler) toggleFeePaid(c *gin.Context) {
	member, err := h.memberService.ToggleFeePaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to update member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(*member))
}

// toggleActive godoc
// @Summary Flip a member between ACTIVE and INACTIVE
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id}/toggle-active [post]
func (h *memberHandler) toggleActive(c *gin.Context) {
	member, err := h.memberService.ToggleActive(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to update member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(*member))
}
