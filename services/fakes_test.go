package services

import (
	"context"
	"sync"

	"blog-cms/models"

	"github.com/google/uuid"
)

// memUserRepo is a map-backed UserRepository for service tests.
type memUserRepo struct {
	mu      sync.Mutex
	users   map[string]models.User
	creates int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]models.User)}
}

func (m *memUserRepo) Create(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	for _, u := range m.users {
		if u.Login == user.Login {
			return models.ErrDuplicateLogin
		}
	}
	user.ID = uuid.NewString()
	m.users[user.ID] = *user
	return nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return &u, nil
}

func (m *memUserRepo) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Login == login {
			return &u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (m *memUserRepo) List(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memUserRepo) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	if patch.Login != nil {
		u.Login = *patch.Login
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	m.users[id] = u
	return &u, nil
}

func (m *memUserRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return models.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

// countingHasher records calls and delegates to a real hasher.
type countingHasher struct {
	PasswordHasher
	hashes   int
	verifies int
}

func (c *countingHasher) Hash(ctx context.Context, password string) (string, error) {
	c.hashes++
	return c.PasswordHasher.Hash(ctx, password)
}

func (c *countingHasher) Verify(ctx context.Context, password, hash string) bool {
	c.verifies++
	return c.PasswordHasher.Verify(ctx, password, hash)
}

type mockPostRepo struct {
	CreateFunc        func(ctx context.Context, post *models.Post) error
	GetByIDFunc       func(ctx context.Context, id string) (*models.Post, error)
	GetListFunc       func(ctx context.Context, params models.PostListParams) ([]models.Post, int64, error)
	UpdateFunc        func(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error)
	DeleteFunc        func(ctx context.Context, id string) error
	AppendCommentFunc func(ctx context.Context, postID string, comment models.Comment) error
	RemoveCommentFunc func(ctx context.Context, postID, commentID string) error
}

func (m *mockPostRepo) Create(ctx context.Context, post *models.Post) error {
	return m.CreateFunc(ctx, post)
}
func (m *mockPostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockPostRepo) GetList(ctx context.Context, params models.PostListParams) ([]models.Post, int64, error) {
	return m.GetListFunc(ctx, params)
}
func (m *mockPostRepo) Update(ctx context.Context, id string, patch models.PostPatch) (*models.Post, error) {
	return m.UpdateFunc(ctx, id, patch)
}
func (m *mockPostRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}
func (m *mockPostRepo) AppendComment(ctx context.Context, postID string, comment models.Comment) error {
	return m.AppendCommentFunc(ctx, postID, comment)
}
func (m *mockPostRepo) RemoveComment(ctx context.Context, postID, commentID string) error {
	return m.RemoveCommentFunc(ctx, postID, commentID)
}
