package handlers

import (
	"blog-cms/helper"
	"blog-cms/models"
	"blog-cms/services"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the admin user-management routes.
type UserHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(authService services.AuthService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{authService: authService, Helper: h}
}

func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	resp := make([]models.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, models.NewUserResponse(u))
	}
	h.Helper.SendSuccess(c, resp)
}

func (h *UserHandler) GetRoles(c *gin.Context) {
	h.Helper.SendSuccess(c, h.authService.ListRoles())
}

func (h *UserHandler) EditUser(c *gin.Context) {
	var req models.EditUserRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	user, err := h.authService.EditUser(c.Request.Context(), c.Param("id"), models.UserPatch{
		Login: req.Login,
		Role:  req.RoleID,
	})
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	if user == nil {
		h.Helper.SendSuccess(c, nil)
		return
	}

	h.Helper.SendSuccess(c, models.NewUserResponse(*user))
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.authService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, nil)
}
