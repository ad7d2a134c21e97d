package handlers

import (
	"net/http"

	"safebridge/middleware"
	"safebridge/models"
	"safebridge/services/lifecycle"
	"safebridge/services/policy"
	"safebridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CaseHandler exposes the help-request lifecycle.
type CaseHandler struct {
	Service lifecycle.CaseService
}

// NewCaseHandler creates a new CaseHandler.
func NewCaseHandler(svc lifecycle.CaseService) *CaseHandler {
	return &CaseHandler{Service: svc}
}

// CreateCaseHandler handles POST /cases. The route is gated on the
// create-case capability; the draft itself is free-form and may be fully
// anonymous.
func (h *CaseHandler) CreateCaseHandler(c *gin.Context) {
	var draft models.HelpRequestDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	req, err := h.Service.Create(c.Request.Context(), draft)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// ListCasesHandler handles GET /cases, scoped by the policy table: a
// counsellor sees only their own cases, legal advisors and admins all of
// them.
func (h *CaseHandler) ListCasesHandler(c *gin.Context) {
	cases, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	scoped := policy.ScopeCases(middleware.SessionRole(c), middleware.SessionUserID(c), cases)
	c.JSON(http.StatusOK, scoped)
}

// GetCaseHandler handles GET /cases/:id, with the same scoping as the
// list: counsellors cannot read cases assigned elsewhere.
func (h *CaseHandler) GetCaseHandler(c *gin.Context) {
	req, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	if err := policy.AllowCaseView(middleware.SessionRole(c), middleware.SessionUserID(c), *req); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// AssignCaseHandler handles PUT /cases/:id/assign. An empty counsellorId
// clears the assignment (and still moves the case to Assigned).
func (h *CaseHandler) AssignCaseHandler(c *gin.Context) {
	var req struct {
		CounsellorID string `json:"counsellorId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	caseID := c.Param("id")
	if err := h.checkCaseAccess(c, caseID); err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	updated, err := h.Service.Assign(c.Request.Context(), caseID, req.CounsellorID)
	if err != nil {
		getLogger(c).Error("Assign failed", zap.String("case", caseID), zap.Error(err))
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateCaseStatusHandler handles PUT /cases/:id/status.
func (h *CaseHandler) UpdateCaseStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
		Note   string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	caseID := c.Param("id")
	if err := h.checkCaseAccess(c, caseID); err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	updated, err := h.Service.UpdateStatus(c.Request.Context(), caseID, req.Status, req.Note)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// checkCaseAccess enforces the counsellor "mine" scope on a target case
// before the (caller-trusting) lifecycle engine is invoked.
func (h *CaseHandler) checkCaseAccess(c *gin.Context, caseID string) error {
	target, err := h.Service.Get(c.Request.Context(), caseID)
	if err != nil {
		return err
	}
	return policy.AllowCaseAccess(middleware.SessionRole(c), middleware.SessionUserID(c), *target)
}
