package repositories

import (
	"context"
	"errors"
	"fmt"
	"math"

	"blog-cms/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	GetList(ctx context.Context, params models.PostListParams) ([]models.Post, int64, error)
	Update(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	AppendComment(ctx context.Context, postID string, comment models.Comment) error
	RemoveComment(ctx context.Context, postID, commentID string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), id)
}

func (r *postRepository) first(tx *gorm.DB, id string) (*models.Post, error) {
	var post models.Post
	err := tx.Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &post, nil
}

// lockedFirst reads the post under a row lock held until tx ends.
func (r *postRepository) lockedFirst(tx *gorm.DB, id string) (*models.Post, error) {
	return r.first(tx.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetList returns one page of posts, newest first, together with the total
// number of posts matching the search. A non-positive limit returns every
// match. The search term is matched as given, whitespace included.
func (r *postRepository) GetList(ctx context.Context, params models.PostListParams) ([]models.Post, int64, error) {
	search := params.Search
	filtered := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&models.Post{})
		if search != "" {
			pattern := containsPattern(search)
			query = query.Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(content) LIKE ? ESCAPE '\'`, pattern, pattern)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	query := filtered().Order("created_at desc").Order("id desc")
	if params.Limit > 0 {
		page := params.Page
		if page < 1 {
			page = 1
		}
		if page-1 > math.MaxInt/params.Limit {
			return []models.Post{}, total, nil
		}
		query = query.Offset((page - 1) * params.Limit).Limit(params.Limit)
	}

	var posts []models.Post
	if err := query.Find(&posts).Error; err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	return posts, total, nil
}

func (r *postRepository) Update(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, fmt.Errorf("update post: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, models.ErrPostNotFound
		}
	}

	return r.GetByID(ctx, id)
}

// Delete removes the post row; its comments live inside it and go with it.
func (r *postRepository) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Post{})
	if res.Error != nil {
		return fmt.Errorf("delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrPostNotFound
	}
	return nil
}

func (r *postRepository) AppendComment(ctx context.Context, postID string, comment models.Comment) error {
	if err := validateID(postID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, err := r.lockedFirst(tx, postID)
		if err != nil {
			return err
		}
		comments := append(post.Comments, comment)
		if err := tx.Model(post).Update("comments", comments).Error; err != nil {
			return fmt.Errorf("append comment: %w", err)
		}
		return nil
	})
}

func (r *postRepository) RemoveComment(ctx context.Context, postID, commentID string) error {
	if err := validateID(postID); err != nil {
		return err
	}
	if err := validateID(commentID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		post, err := r.lockedFirst(tx, postID)
		if err != nil {
			return err
		}

		kept := make(datatypes.JSONSlice[models.Comment], 0, len(post.Comments))
		for _, c := range post.Comments {
			if c.ID != commentID {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(post.Comments) {
			return models.ErrCommentNotFound
		}

		if err := tx.Model(post).Update("comments", kept).Error; err != nil {
			return fmt.Errorf("remove comment: %w", err)
		}
		return nil
	})
}
