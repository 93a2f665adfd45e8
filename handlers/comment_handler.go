package handlers

import (
	"blog-cms/helper"
	"blog-cms/models"
	"blog-cms/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

// AddComment attributes the comment to the authenticated caller.
func (h *CommentHandler) AddComment(c *gin.Context) {
	var req models.CommentRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.AddComment(
		c.Request.Context(),
		c.Param("id"),
		c.GetString(helper.UserIDKey),
		req.Content,
	)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, models.NewCommentResponse(*comment))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	err := h.commentService.DeleteComment(c.Request.Context(), c.Param("id"), c.Param("commentId"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, nil)
}
