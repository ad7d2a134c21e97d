package handlers

import (
	"net/http"

	"safebridge/middleware"
	"safebridge/models"
	"safebridge/services/directory"
	"safebridge/services/lifecycle"
	"safebridge/services/policy"
	"safebridge/store"
	"safebridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the dashboard aggregates and the admin-only data
// wipe.
type AdminHandler struct {
	Directory directory.DirectoryService
	Cases     lifecycle.CaseService
	Store     *store.Store
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(ds directory.DirectoryService, cs lifecycle.CaseService, st *store.Store) *AdminHandler {
	return &AdminHandler{Directory: ds, Cases: cs, Store: st}
}

// OverviewHandler handles GET /overview: the counts each role's overview
// tab shows. Counsellors get their own caseload, legal advisors the open
// and unassigned picture, admins the full system counts, and everyone else
// the directory sizes.
func (ah *AdminHandler) OverviewHandler(c *gin.Context) {
	role := middleware.SessionRole(c)

	switch role {
	case models.RoleCounsellor:
		cases, err := ah.Cases.List(c.Request.Context())
		if err != nil {
			utils.JSONDomainError(c, err)
			return
		}
		stats := lifecycle.Summarize(policy.MineFilter(cases, middleware.SessionUserID(c)))
		c.JSON(http.StatusOK, gin.H{
			"role":   role,
			"mine":   stats.Total,
			"new":    stats.New,
			"active": stats.Active,
			"closed": stats.Closed,
		})
	case models.RoleLegalAdvisor:
		stats, err := ah.Cases.Stats(c.Request.Context())
		if err != nil {
			utils.JSONDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"role":       role,
			"open":       stats.Total - stats.Closed,
			"closed":     stats.Closed,
			"unassigned": stats.Unassigned,
		})
	case models.RoleAdmin:
		counts, err := ah.Directory.Counts(c.Request.Context())
		if err != nil {
			utils.JSONDomainError(c, err)
			return
		}
		stats, err := ah.Cases.Stats(c.Request.Context())
		if err != nil {
			utils.JSONDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"role":      role,
			"users":     counts.Users,
			"resources": counts.Resources,
			"legal":     counts.Legal,
			"cases":     stats,
		})
	default:
		counts, err := ah.Directory.Counts(c.Request.Context())
		if err != nil {
			utils.JSONDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"role":      role,
			"resources": counts.Resources,
			"legal":     counts.Legal,
		})
	}
}

// WipeDataHandler handles DELETE /admin/data: discard the entire blob. An
// empty store is a valid state; the next boot re-seeds.
func (ah *AdminHandler) WipeDataHandler(c *gin.Context) {
	if err := ah.Store.Wipe(c.Request.Context()); err != nil {
		zap.L().Error("Data wipe failed", zap.Error(err))
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Local data cleared"})
}
