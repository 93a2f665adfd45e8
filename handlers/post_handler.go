package handlers

import (
	"blog-cms/helper"
	"blog-cms/models"
	"blog-cms/services"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService services.PostService
	Helper      *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService, h *helper.HTTPHelper) *PostHandler {
	return &PostHandler{postService: postService, Helper: h}
}

func (h *PostHandler) GetPosts(c *gin.Context) {
	var params models.PostListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendError(c, models.ErrInvalidQuery)
		return
	}

	posts, lastPage, err := h.postService.GetPosts(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	resp := models.PostListResponse{
		Posts:    make([]models.PostResponse, 0, len(posts)),
		LastPage: lastPage,
	}
	for _, p := range posts {
		resp.Posts = append(resp.Posts, models.NewPostResponse(p))
	}
	h.Helper.SendSuccess(c, resp)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, models.NewPostResponse(*post))
}

func (h *PostHandler) AddPost(c *gin.Context) {
	var req models.PostRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	post, err := h.postService.AddPost(c.Request.Context(), models.PostFields{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Content:  req.Content,
	})
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, models.NewPostResponse(*post))
}

func (h *PostHandler) EditPost(c *gin.Context) {
	var req models.EditPostRequest
	if !h.Helper.BindJSON(c, &req) {
		return
	}

	post, err := h.postService.EditPost(c.Request.Context(), c.Param("id"), models.PostPatch{
		Title:    req.Title,
		ImageURL: req.ImageURL,
		Content:  req.Content,
	})
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, models.NewPostResponse(*post))
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postService.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		h.Helper.SendError(c, err)
		return
	}
	h.Helper.SendSuccess(c, nil)
}
