package handlers

import (
	"net/http"

	"minivutto_backend/internal/services"
	"minivutto_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// Register handles both registration phases: without an otp field it
// dispatches a verification code (200), with one it creates the
// account (201).
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	result, err := h.authService.Register(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if result.Pending != nil {
		c.JSON(http.StatusOK, result.Pending)
		return
	}
	c.JSON(http.StatusCreated, result.Created)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.authService.Login(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
