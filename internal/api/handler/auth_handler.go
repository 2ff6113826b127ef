package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planeacion/backend/internal/dto"
	"planeacion/backend/internal/service"
	"planeacion/backend/pkg/response"
)

// AuthHandler registration, login and current user
type AuthHandler struct {
	authSvc service.AuthService
	logger  *zap.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, logger: logger}
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.Created(c, user)
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, h.logger, err)
		return
	}

	response.OK(c, result)
}

// Me GET /me
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := MustGetCurrentUser(c)
	if !ok {
		return
	}
	response.OK(c, service.ToUserResponse(user))
}
