package handlers

import (
	"net/http"

	"restaurant_api/internal/middleware"
	"restaurant_api/internal/models"
	"restaurant_api/internal/services"

	"github.com/gin-gonic/gin"
)

// GroupHandler serves the staff rosters. The same handler backs both the
// manager and delivery-crew routes; the role is bound at registration.
type GroupHandler struct {
	roleService services.RoleService
}

func NewGroupHandler(roleService services.RoleService) *GroupHandler {
	return &GroupHandler{roleService: roleService}
}

func (h *GroupHandler) ListMembers(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		members, err := h.roleService.ListMembers(middleware.CurrentUser(c), role)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, members)
	}
}

func (h *GroupHandler) AddMember(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Username string `json:"username"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "username is required"})
			return
		}
		user, err := h.roleService.AssignRole(middleware.CurrentUser(c), role, req.Username)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "user added to group", "user_id": user.ID})
	}
}

func (h *GroupHandler) GetMember(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		user, err := h.roleService.GetMember(middleware.CurrentUser(c), role, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func (h *GroupHandler) RemoveMember(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := h.roleService.RemoveMember(middleware.CurrentUser(c), role, id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
