package services

import (
	"context"
	"errors"
	"sync"

	"blog-cms/models"
	"blog-cms/repositories"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, login, password string) (*models.AuthResult, error)
	Login(ctx context.Context, login, password string) (*models.AuthResult, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListRoles() []models.RoleInfo
	DeleteUser(ctx context.Context, id string) error
	EditUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	hasher   PasswordHasher
	tokens   TokenService
	log      *zap.Logger

	// decoy is the hash an unknown login is compared against.
	decoyMu sync.Mutex
	decoy   string
}

func NewAuthService(userRepo repositories.UserRepository, hasher PasswordHasher, tokens TokenService, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		log:      log,
	}
}

func (s *authService) Register(ctx context.Context, login, password string) (*models.AuthResult, error) {
	if password == "" {
		return nil, models.ErrEmptyPassword
	}

	hashedPassword, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Login:    login,
		Password: hashedPassword,
		Role:     models.DefaultRole,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("user_id", user.ID), zap.String("login", user.Login))
	return &models.AuthResult{User: *user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, login, password string) (*models.AuthResult, error) {
	user, err := s.userRepo.GetByLogin(ctx, login)
	if errors.Is(err, models.ErrUserNotFound) {
		s.hasher.Verify(ctx, password, s.decoyHash(ctx))
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if !s.hasher.Verify(ctx, password, user.Password) {
		s.log.Debug("password mismatch", zap.String("user_id", user.ID))
		return nil, models.ErrInvalidPassword
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResult{User: *user, Token: token}, nil
}

func (s *authService) decoyHash(ctx context.Context) string {
	s.decoyMu.Lock()
	defer s.decoyMu.Unlock()
	if s.decoy == "" {
		hash, err := s.hasher.Hash(ctx, "decoy-password")
		if err != nil {
			s.log.Warn("decoy hash", zap.Error(err))
			return ""
		}
		s.decoy = hash
	}
	return s.decoy
}

func (s *authService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *authService) ListRoles() []models.RoleInfo {
	return models.Roles()
}

func (s *authService) DeleteUser(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}

// EditUser returns the user after the update, or nil when no such user
// exists.
func (s *authService) EditUser(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	if patch.Role != nil && !patch.Role.Valid() {
		return nil, models.ErrInvalidRole
	}

	user, err := s.userRepo.Update(ctx, id, patch)
	if errors.Is(err, models.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
