package services

import (
	"context"
	"strings"
	"time"

	"blog-cms/models"
	"blog-cms/repositories"

	"github.com/google/uuid"
)

type CommentService interface {
	AddComment(ctx context.Context, postID, authorID, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, postID, commentID string) error
}

type commentService struct {
	postRepo repositories.PostRepository
}

func NewCommentService(postRepo repositories.PostRepository) CommentService {
	return &commentService{postRepo: postRepo}
}

func (s *commentService) AddComment(ctx context.Context, postID, authorID, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, models.ErrEmptyComment
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		Content:   content,
		Author:    authorID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.postRepo.AppendComment(ctx, postID, comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, postID, commentID string) error {
	return s.postRepo.RemoveComment(ctx, postID, commentID)
}
