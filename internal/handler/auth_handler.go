package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Emmanuel-365/event-app/internal/dto"
	"github.com/Emmanuel-365/event-app/internal/service"
	"github.com/Emmanuel-365/event-app/pkg/response"
)

// AuthHandler exposes registration and login over HTTP
type AuthHandler struct {
	auth service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, resp)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, resp)
}

// Profile handles GET /api/v1/auth/me
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.auth.GetProfile(c.Request.Context(), requester(c).UserID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, dto.ToUserResponse(user))
}
