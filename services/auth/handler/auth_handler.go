package handler

import (
	"net/http"
	"time"

	"auction-spot/internal/auth"
	"auction-spot/services/helpers"
	"auction-spot/utils"

	"github.com/gin-gonic/gin"
)

type AuthServiceInterface interface {
	Login(email string) (auth.LoginResult, error)
}

type AuthHandler struct {
	service AuthServiceInterface
}

func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginHandler handles POST /api/auth/login
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	result, err := h.service.Login(req.Email)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", "login failed", err, nil)
		return
	}

	resp := helpers.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.UTC().Format(time.RFC3339),
		User:      result.User,
	}
	utils.JSONResponse(c, http.StatusOK, resp, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"user_id": result.User.UserID,
		"role":    result.User.Role,
	})
}
