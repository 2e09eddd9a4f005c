package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/club_manager_app/internal/core/ports/services"
	"github.com/SscSPs/club_manager_app/internal/dto"
	"github.com/SscSPs/club_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles login, session lookup and logout.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public login route and the session routes.
// loginLimit guards the login route; it may be nil.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade, loginLimit gin.HandlerFunc) {
	h := newAuthHandler(authService)

	auth := r.Group("/api/v1/auth")
	if loginLimit != nil {
		auth.POST("/login", loginLimit, h.login)
	} else {
		auth.POST("/login", h.login)
	}

	session := auth.Group("", middleware.AuthMiddleware(authService))
	{
		session.GET("/session", h.getSession)
		session.POST("/logout", h.logout)
	}
}

// login godoc
// @Summary Log in as a guest or as an admin
// @Description Guests give a display name. Admins give an allow-listed email and the shared password. Every attempt is written to the access history.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login details"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} middleware.BadRequestErrorResponse
// @Failure 401 {object} ErrorResponse "Wrong email or password"
// @Failure 429 {object} ErrorResponse "Too many attempts"
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	logger.Info("Login attempt", slog.String("mode", string(req.Mode)))
	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getSession godoc
// @Summary Current session
// @Description Returns the user behind the bearer token. The admin flag reflects the current allow-list.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/session [get]
func (h *authHandler) getSession(c *gin.Context) {
	session, ok := middleware.GetSessionFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(*session))
}

// logout godoc
// @Summary Log out
// @Description Drops the session behind the bearer token.
// @Tags auth
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	token, ok := middleware.GetSessionTokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}
	c.Status(http.StatusNoContent)
}
