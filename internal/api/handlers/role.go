package handlers

import (
	"errors"
	"strconv"

	"uddaan/internal/models"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleService *services.RoleService
}

func NewRoleHandler(roleService *services.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

type RoleRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions" binding:"required"`
}

// GetRoles returns all roles
func (h *RoleHandler) GetRoles(c *gin.Context) {
	roles, err := h.roleService.GetRoles()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get roles"})
		return
	}

	c.JSON(200, gin.H{"success": true, "roles": roles})
}

// GetPermissions returns the capability vocabulary for the role editor
func (h *RoleHandler) GetPermissions(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "permissions": models.Permissions})
}

// CreateRole creates a new role
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	role, err := h.roleService.CreateRole(req.Name, req.Description, req.Permissions)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Role created successfully", "role": role})
}

// UpdateRole updates a role
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid role ID"})
		return
	}

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	role, err := h.roleService.UpdateRole(uint(id), req.Name, req.Description, req.Permissions)
	if err != nil {
		if errors.Is(err, services.ErrRoleNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Role not found"})
			return
		}
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Role updated successfully", "role": role})
}

// DeleteRole deletes a role
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid role ID"})
		return
	}

	if err := h.roleService.DeleteRole(uint(id)); err != nil {
		if errors.Is(err, services.ErrRoleNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Role not found"})
			return
		}
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Role deleted successfully"})
}
