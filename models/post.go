package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Post struct {
	ID        string                       `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title     string                       `json:"title" gorm:"not null"`
	ImageURL  string                       `json:"image_url"`
	Content   string                       `json:"content" gorm:"type:text"`
	Comments  datatypes.JSONSlice[Comment] `json:"comments"`
	CreatedAt time.Time                    `json:"created_at" gorm:"index"`
	UpdatedAt time.Time                    `json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Comments == nil {
		p.Comments = datatypes.JSONSlice[Comment]{}
	}
	return nil
}

// Comment is stored inside its post's comments document and has no row of
// its own.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// PostFields are the attributes of a new post.
type PostFields struct {
	Title    string
	ImageURL string
	Content  string
}

// PostPatch changes only the non-nil fields.
type PostPatch struct {
	Title    *string
	ImageURL *string
	Content  *string
}

type PostListParams struct {
	Search string `form:"search"`
	Limit  int    `form:"limit"`
	Page   int    `form:"page"`
}
