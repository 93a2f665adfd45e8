package models

import "time"

type RegisterRequest struct {
	Login    string `json:"login" validate:"required,max=64"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password"`
}

type EditUserRequest struct {
	Login  *string   `json:"login" validate:"omitempty,min=1,max=64"`
	RoleID *UserRole `json:"roleId"`
}

type PostRequest struct {
	Title    string `json:"title" validate:"max=255"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
	Content  string `json:"content"`
}

type EditPostRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=255"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
	Content  *string `json:"content"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// AuthResult is what register and login hand back to the transport layer.
type AuthResult struct {
	User  User
	Token string
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type UserResponse struct {
	ID           string    `json:"id"`
	Login        string    `json:"login"`
	RoleID       UserRole  `json:"roleId"`
	RegisteredAt time.Time `json:"registeredAt"`
}

type CommentResponse struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"publishedAt"`
}

type PostResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	ImageURL    string            `json:"imageUrl"`
	Content     string            `json:"content"`
	Comments    []CommentResponse `json:"comments"`
	PublishedAt time.Time         `json:"publishedAt"`
}

type PostListResponse struct {
	Posts    []PostResponse `json:"posts"`
	LastPage int            `json:"lastPage"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Login:        u.Login,
		RoleID:       u.Role,
		RegisteredAt: u.CreatedAt,
	}
}

func NewCommentResponse(c Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID,
		Content:     c.Content,
		Author:      c.Author,
		PublishedAt: c.CreatedAt,
	}
}

func NewPostResponse(p Post) PostResponse {
	comments := make([]CommentResponse, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, NewCommentResponse(c))
	}
	return PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		ImageURL:    p.ImageURL,
		Content:     p.Content,
		Comments:    comments,
		PublishedAt: p.CreatedAt,
	}
}
