package handlers

import (
	"net/http"

	"safebridge/models"
	"safebridge/services/directory"
	"safebridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DirectoryHandler exposes the resource, legal-entry and user collections.
type DirectoryHandler struct {
	Service directory.DirectoryService
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(svc directory.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Service: svc}
}

// ListResourcesHandler handles GET /resources?q=...
func (h *DirectoryHandler) ListResourcesHandler(c *gin.Context) {
	resources, err := h.Service.ListResources(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resources)
}

// AddResourceHandler handles POST /resources.
func (h *DirectoryHandler) AddResourceHandler(c *gin.Context) {
	var draft models.Resource
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	res, err := h.Service.AddResource(c.Request.Context(), draft)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateResourceHandler handles PUT /resources/:id.
func (h *DirectoryHandler) UpdateResourceHandler(c *gin.Context) {
	var res models.Resource
	if err := c.ShouldBindJSON(&res); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	res.ID = c.Param("id")
	updated, err := h.Service.UpdateResource(c.Request.Context(), res)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteResourceHandler handles DELETE /resources/:id.
func (h *DirectoryHandler) DeleteResourceHandler(c *gin.Context) {
	if err := h.Service.RemoveResource(c.Request.Context(), c.Param("id")); err != nil {
		getLogger(c).Error("Delete resource failed", zap.String("id", c.Param("id")), zap.Error(err))
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resource removed"})
}

// ListLegalHandler handles GET /legal.
func (h *DirectoryHandler) ListLegalHandler(c *gin.Context) {
	entries, err := h.Service.ListLegal(c.Request.Context())
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddLegalHandler handles POST /legal.
func (h *DirectoryHandler) AddLegalHandler(c *gin.Context) {
	var draft models.LegalEntry
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	entry, err := h.Service.AddLegal(c.Request.Context(), draft)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateLegalHandler handles PUT /legal/:id.
func (h *DirectoryHandler) UpdateLegalHandler(c *gin.Context) {
	var entry models.LegalEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	entry.ID = c.Param("id")
	updated, err := h.Service.UpdateLegal(c.Request.Context(), entry)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteLegalHandler handles DELETE /legal/:id.
func (h *DirectoryHandler) DeleteLegalHandler(c *gin.Context) {
	if err := h.Service.RemoveLegal(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Legal entry removed"})
}

// ListUsersHandler handles GET /users.
func (h *DirectoryHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Service.ListUsers(c.Request.Context())
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// AddUserHandler handles POST /users.
func (h *DirectoryHandler) AddUserHandler(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	user, err := h.Service.AddUser(c.Request.Context(), req.Name, req.Role)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUserHandler handles PUT /users/:id.
func (h *DirectoryHandler) UpdateUserHandler(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	user.ID = c.Param("id")
	updated, err := h.Service.UpdateUser(c.Request.Context(), user)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteUserHandler handles DELETE /users/:id.
func (h *DirectoryHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.Service.RemoveUser(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User removed"})
}
