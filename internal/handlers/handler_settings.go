package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/dto"
	"github.com/SscSPs/club_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler serves the admin-only settings: allow-list, password and access log.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings", middleware.RequireAdmin())
	{
		settings.GET("", h.getSettings)
		settings.POST("/admin-emails", h.addAdminEmail)
		settings.DELETE("/admin-emails/:email", h.removeAdminEmail)
		settings.PUT("/password", h.updatePassword)
		settings.GET("/access-history", h.listAccessHistory)
	}
}

// getSettings godoc
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	resp, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// addAdminEmail godoc
// @Summary Add an admin email
// @Tags settings
// @Accept json
// @Produce json
// @Param email body dto.AddAdminEmailRequest true "Email"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/admin-emails [post]
func (h *settingsHandler) addAdminEmail(c *gin.Context) {
	var req dto.AddAdminEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if _, err := h.settingsService.AddAdminEmail(c.Request.Context(), req.Email); err != nil {
		respondError(c, err, "Failed to add admin email")
		return
	}
	h.getSettings(c)
}

// removeAdminEmail godoc
// @Summary Remove an admin email
// @Description Admins cannot remove their own email.
// @Tags settings
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/admin-emails/{email} [delete]
func (h *settingsHandler) removeAdminEmail(c *gin.Context) {
	email := c.Param("email")
	if _, err := h.settingsService.RemoveAdminEmail(c.Request.Context(), email, actorFrom(c)); err != nil {
		respondError(c, err, "Failed to remove admin email")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Admin email removed", slog.String("email", email))
	h.getSettings(c)
}

// updatePassword godoc
// @Summary Change the shared password
// @Tags settings
// @Accept json
// @Param password body dto.UpdatePasswordRequest true "New password"
// @Success 204 "No Content"
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/password [put]
func (h *settingsHandler) updatePassword(c *gin.Context) {
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.settingsService.UpdatePassword(c.Request.Context(), req.Password); err != nil {
		respondError(c, err, "Failed to update password")
		return
	}
	c.Status(http.StatusNoContent)
}

// listAccessHistory godoc
// @Summary Access history
// @Description Login attempts, newest first.
// @Tags settings
// @Produce json
// @Param limit query int false "Maximum records" default(100)
// @Success 200 {object} dto.AccessHistoryResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/access-history [get]
func (h *settingsHandler) listAccessHistory(c *gin.Context) {
	var params dto.ListAccessHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	records, err := h.settingsService.ListAccessHistory(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, err, "Failed to load access history")
		return
	}
	c.JSON(http.StatusOK, dto.AccessHistoryResponse{Records: records})
}
