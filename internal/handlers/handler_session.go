package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/rental_management_app/internal/apperrors"
	"github.com/SscSPs/rental_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/rental_management_app/internal/core/ports/services"
	"github.com/SscSPs/rental_management_app/internal/core/session"
	"github.com/SscSPs/rental_management_app/internal/dto"
	"github.com/SscSPs/rental_management_app/internal/middleware"
)

// SessionHandler serves the current identity and route decisions.
type SessionHandler struct {
	sessions         portssvc.SessionResolverSvc
	profiles         portssvc.ProfileSvcFacade
	enableRoleSwitch bool
}

func NewSessionHandler(sessions portssvc.SessionResolverSvc, profiles portssvc.ProfileSvcFacade, enableRoleSwitch bool) *SessionHandler {
	return &SessionHandler{sessions: sessions, profiles: profiles, enableRoleSwitch: enableRoleSwitch}
}

func registerSessionRoutes(r *gin.Engine, v1 *gin.RouterGroup, h *SessionHandler) {
	r.GET("/", h.Root)
	r.GET("/api/v1/access", h.Access)

	me := v1.Group("/me")
	{
		me.GET("", h.Me)
		me.POST("/role", h.SwitchRole)
	}
}

// stateFromRequest resolves the optional bearer token into a session state.
// Any failure is anonymous.
func (h *SessionHandler) stateFromRequest(c *gin.Context) session.State {
	token, ok := middleware.BearerToken(c.GetHeader("Authorization"))
	if !ok {
		return session.State{Status: session.StatusAnonymous}
	}
	id, err := h.sessions.ResolveIdentity(c.Request.Context(), token)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Optional session not resolved", slog.String("error", err.Error()))
		return session.State{Status: session.StatusAnonymous}
	}
	return session.State{Status: session.StatusAuthenticated, Identity: id}
}

// Root godoc
// @Summary Root redirect
// @Description Redirects to the caller's role home, or to the login route without a session.
// @Tags session
// @Success 302
// @Router / [get]
func (h *SessionHandler) Root(c *gin.Context) {
	d := session.Decide(h.stateFromRequest(c), "/")
	c.Redirect(http.StatusFound, d.Location)
}

// Access godoc
// @Summary Route decision
// @Description Tells the frontend whether to render, redirect or show not-found for a path.
// @Tags session
// @Produce json
// @Param path query string true "Frontend path"
// @Param scoped query bool false "Send users entering the other role's subtree to their own home"
// @Success 200 {object} session.Decision
// @Router /access [get]
func (h *SessionHandler) Access(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		appErr := apperrors.NewBadRequestError("path is required")
		c.JSON(appErr.Code, appErr)
		return
	}
	st := h.stateFromRequest(c)
	if c.Query("scoped") == "true" {
		c.JSON(http.StatusOK, session.DecideScoped(st, path))
		return
	}
	c.JSON(http.StatusOK, session.Decide(st, path))
}

// Me godoc
// @Summary Current identity
// @Tags session
// @Produce json
// @Success 200 {object} domain.Identity
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *SessionHandler) Me(c *gin.Context) {
	id, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		respondError(c, "Missing identity", apperrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, id)
}

// SwitchRole godoc
// @Summary Switch role
// @Description Demo control that rewrites the caller's profile role. Answers 404 unless enabled.
// @Tags session
// @Accept json
// @Produce json
// @Param role body dto.SwitchRoleRequest true "New role"
// @Success 200 {object} domain.Identity
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /me/role [post]
func (h *SessionHandler) SwitchRole(c *gin.Context) {
	if !h.enableRoleSwitch {
		respondError(c, "Role switch disabled", apperrors.ErrFeatureDisabled)
		return
	}
	id, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		respondError(c, "Missing identity", apperrors.ErrUnauthorized)
		return
	}
	var req dto.SwitchRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	role, _ := domain.ParseRole(req.Role)
	if err := h.profiles.UpdateRole(c.Request.Context(), id.ID, role); err != nil {
		respondError(c, "Failed to switch role", err)
		return
	}
	h.sessions.Forget(id.ID)

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Role switched",
		slog.String("from", string(id.Role)), slog.String("to", string(role)))
	id.Role = role
	c.JSON(http.StatusOK, id)
}
