package services

import (
	"context"
	"math"

	"blog-cms/models"
	"blog-cms/repositories"
)

type PostService interface {
	GetPosts(ctx context.Context, params models.PostListParams) ([]models.Post, int, error)
	GetPost(ctx context.Context, id string) (*models.Post, error)
	AddPost(ctx context.Context, fields models.PostFields) (*models.Post, error)
	EditPost(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error)
	DeletePost(ctx context.Context, id string) error
}

type postService struct {
	postRepo repositories.PostRepository
}

func NewPostService(postRepo repositories.PostRepository) PostService {
	return &postService{postRepo: postRepo}
}

// GetPosts returns the requested page and the number of the last page.
// Without a positive limit everything fits on page 1.
func (s *postService) GetPosts(ctx context.Context, params models.PostListParams) ([]models.Post, int, error) {
	if params.Page < 1 {
		params.Page = 1
	}

	posts, total, err := s.postRepo.GetList(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	lastPage := 1
	if params.Limit > 0 {
		lastPage = int(math.Ceil(float64(total) / float64(params.Limit)))
	}
	return posts, lastPage, nil
}

func (s *postService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func (s *postService) AddPost(ctx context.Context, fields models.PostFields) (*models.Post, error) {
	post := &models.Post{
		Title:    fields.Title,
		ImageURL: fields.ImageURL,
		Content:  fields.Content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) EditPost(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error) {
	return s.postRepo.Update(ctx, id, patch)
}

func (s *postService) DeletePost(ctx context.Context, id string) error {
	return s.postRepo.Delete(ctx, id)
}
