package handlers

import (
	"net/http"

	"safebridge/middleware"
	"safebridge/services/policy"
	"safebridge/services/session"
	"safebridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler exposes the simulated-login endpoints.
type SessionHandler struct {
	Service session.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(svc session.SessionService) *SessionHandler {
	return &SessionHandler{Service: svc}
}

// LoginHandler handles POST /session/login.
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req struct {
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	resp, err := h.Service.Login(c.Request.Context(), req.UserID)
	if err != nil {
		getLogger(c).Warn("Login failed", zap.String("userId", req.UserID), zap.Error(err))
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles DELETE /session/logout for the current session.
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	userID := middleware.SessionUserID(c)
	if err := h.Service.Logout(c.Request.Context(), userID); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session closed"})
}

// QuickExitHandler handles POST /session/quick-exit. Deliberately
// unauthenticated: the panic button must work even with a broken session.
func (h *SessionHandler) QuickExitHandler(c *gin.Context) {
	url, err := h.Service.QuickExit(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Quick exit wipe failed", zap.Error(err))
		// Still hand back the redirect; leaving the caller on the page is
		// worse than a partial wipe.
		c.JSON(http.StatusOK, gin.H{"redirect": url, "wiped": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": url, "wiped": true})
}

// ViewsHandler handles GET /views: the tab set for the session role.
func (h *SessionHandler) ViewsHandler(c *gin.Context) {
	role := middleware.SessionRole(c)
	c.JSON(http.StatusOK, gin.H{"role": role, "views": policy.ViewsFor(role)})
}
