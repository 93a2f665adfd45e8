package handlers

import (
	"errors"
	"net/http"
	"time"

	"blog-cms/helper"
	"blog-cms/middleware"
	"blog-cms/models"
	"blog-cms/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  services.AuthService
	Helper       *helper.HTTPHelper
	cookieTTL    time.Duration
	cookieSecure bool
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper, cookieTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		Helper:       h,
		cookieTTL:    cookieTTL,
		cookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	h.setToken(c, result.Token, int(h.cookieTTL.Seconds()))
	h.Helper.SendSuccess(c, models.AuthResponse{
		User:  models.NewUserResponse(result.User),
		Token: result.Token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		// one message for both cases so logins cannot be enumerated
		if errors.Is(err, models.ErrUserNotFound) || errors.Is(err, models.ErrInvalidPassword) {
			err = models.ErrInvalidCredentials
		}
		h.Helper.SendError(c, err)
		return
	}

	h.setToken(c, result.Token, int(h.cookieTTL.Seconds()))
	h.Helper.SendSuccess(c, models.AuthResponse{
		User:  models.NewUserResponse(result.User),
		Token: result.Token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.setToken(c, "", -1)
	h.Helper.SendSuccess(c, nil)
}

func (h *AuthHandler) setToken(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", h.cookieSecure, true)
}
