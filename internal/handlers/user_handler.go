package handlers

import (
	"net/http"

	"minivutto_backend/internal/services"
	"minivutto_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	db := h.GetDB(c)

	users, err := h.userService.ListUsers(db)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Users retrieved successfully",
		"total_users": len(users),
		"users":       users,
	})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	db := h.GetDB(c)

	user, err := h.userService.GetUser(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User profile retrieved successfully",
		"user":    user,
	})
}

func (h *UserHandler) UpdateRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	id := c.Param("id")

	if err := h.userService.UpdateRole(db, id, req.Role); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "User role updated successfully",
		"user_id":  id,
		"new_role": req.Role,
	})
}

func (h *UserHandler) UpdateVerified(c *gin.Context) {
	var req dto.UpdateVerifiedRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	id := c.Param("id")

	if err := h.userService.UpdateVerified(db, id, *req.IsVerified); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "User verification status updated successfully",
		"user_id":     id,
		"is_verified": *req.IsVerified,
	})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.userService.UpdateUser(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	db := h.GetDB(c)
	id := c.Param("id")

	if err := h.userService.DeleteUser(db, id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "User deleted successfully",
		"deleted_user_id": id,
	})
}
