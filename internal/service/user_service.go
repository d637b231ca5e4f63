package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/julioszeferino/api-faculdade/internal/auth"
	"github.com/julioszeferino/api-faculdade/internal/cache"
	apperrors "github.com/julioszeferino/api-faculdade/internal/errors"
	"github.com/julioszeferino/api-faculdade/internal/model"
	"github.com/julioszeferino/api-faculdade/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserPatch carries a partial update. Zero-valued fields are left unchanged;
// EhAdmin can only be raised, never lowered, through a patch.
type UserPatch struct {
	Nome      string
	Sobrenome string
	Email     string
	Senha     string
	EhAdmin   bool
}

// UserService exposes user domain operations.
type UserService interface {
	SignUp(ctx context.Context, user *model.User) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uint, patch UserPatch) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	repo   repository.UserRepository
	hasher *auth.PasswordHasher
	cache  *cache.Client
}

// NewUserService builds a UserService with repository, hasher and cache.
func NewUserService(repo repository.UserRepository, hasher *auth.PasswordHasher, cache *cache.Client) UserService {
	return &userService{repo: repo, hasher: hasher, cache: cache}
}

func userCacheKey(id uint) string {
	return fmt.Sprintf("usuario:%d", id)
}

// SignUp hashes the plaintext password carried in user.Senha and persists the
// record. A duplicate email fails with ErrEmailTaken and leaves the existing
// record untouched.
func (s *userService) SignUp(ctx context.Context, user *model.User) (*model.User, error) {
	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	digest, err := s.hasher.Hash(user.Senha)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.Senha = digest

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUser retrieves a user with owned articles, read-through cached.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, userCacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByIDWithArticles(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, userCacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// UpdateUser applies patch semantics: only non-zero fields overwrite. A new
// password is hashed before it is stored.
func (s *userService) UpdateUser(ctx context.Context, id uint, patch UserPatch) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if patch.Nome != "" {
		user.Nome = patch.Nome
	}
	if patch.Sobrenome != "" {
		user.Sobrenome = patch.Sobrenome
	}
	if patch.Email != "" {
		user.Email = patch.Email
	}
	if patch.EhAdmin {
		user.EhAdmin = true
	}
	if patch.Senha != "" {
		digest, err := s.hasher.Hash(patch.Senha)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Senha = digest
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, userCacheKey(id))
	return user, nil
}

// DeleteUser removes the user and cascades to owned articles in a single
// transaction, then drops the stale cache entries.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	user, err := s.repo.FindByIDWithArticles(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	_ = s.cache.Delete(ctx, userCacheKey(id))
	for _, artigo := range user.Artigos {
		_ = s.cache.Delete(ctx, articleCacheKey(artigo.ID))
	}
	return nil
}
