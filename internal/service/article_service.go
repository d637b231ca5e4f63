package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/julioszeferino/api-faculdade/internal/cache"
	apperrors "github.com/julioszeferino/api-faculdade/internal/errors"
	"github.com/julioszeferino/api-faculdade/internal/model"
	"github.com/julioszeferino/api-faculdade/internal/repository"
)

const articleCacheTTL = 5 * time.Minute

func articleCacheKey(id uint) string {
	return fmt.Sprintf("artigo:%d", id)
}

// ArticlePatch carries a partial update; zero-valued fields are left unchanged.
type ArticlePatch struct {
	Titulo    string
	Descricao string
	URLFonte  string
}

// ArticleService exposes article domain operations.
type ArticleService interface {
	CreateArticle(ctx context.Context, article *model.Article, ownerID uint) (*model.Article, error)
	GetArticle(ctx context.Context, id uint) (*model.Article, error)
	ListArticles(ctx context.Context) ([]model.Article, error)
	UpdateArticle(ctx context.Context, id uint, patch ArticlePatch, callerID uint) (*model.Article, error)
	DeleteArticle(ctx context.Context, id, callerID uint) error
}

type articleService struct {
	repo  repository.ArticleRepository
	cache *cache.Client
}

// NewArticleService builds an ArticleService with repository and cache.
func NewArticleService(repo repository.ArticleRepository, cache *cache.Client) ArticleService {
	return &articleService{repo: repo, cache: cache}
}

// CreateArticle persists the article with the authenticated caller as owner.
// Any owner carried in the input is overwritten.
func (s *articleService) CreateArticle(ctx context.Context, article *model.Article, ownerID uint) (*model.Article, error) {
	owner := ownerID
	article.UsuarioID = &owner

	if err := s.repo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	// the owner's cached user embeds its articles
	_ = s.cache.Delete(ctx, userCacheKey(ownerID))
	return article, nil
}

// GetArticle retrieves an article by id, read-through cached.
func (s *articleService) GetArticle(ctx context.Context, id uint) (*model.Article, error) {
	if data, _ := s.cache.Get(ctx, articleCacheKey(id)); data != nil {
		var cached model.Article
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(article); err == nil {
		_ = s.cache.Set(ctx, articleCacheKey(id), payload, articleCacheTTL)
	}
	return article, nil
}

func (s *articleService) ListArticles(ctx context.Context) ([]model.Article, error) {
	return s.repo.List(ctx)
}

// UpdateArticle applies patch semantics over titulo, descricao and url_fonte.
// When the caller is not the current owner, ownership is reassigned to the
// caller; the original API behaves this way, so any authenticated user who
// updates an article takes it over.
func (s *articleService) UpdateArticle(ctx context.Context, id uint, patch ArticlePatch, callerID uint) (*model.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArticleNotFound
		}
		return nil, err
	}

	previousOwner := article.UsuarioID

	if patch.Titulo != "" {
		article.Titulo = patch.Titulo
	}
	if patch.Descricao != "" {
		article.Descricao = patch.Descricao
	}
	if patch.URLFonte != "" {
		article.URLFonte = patch.URLFonte
	}
	if article.UsuarioID == nil || *article.UsuarioID != callerID {
		caller := callerID
		article.UsuarioID = &caller
	}

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	_ = s.cache.Delete(ctx, articleCacheKey(id))
	if previousOwner != nil {
		_ = s.cache.Delete(ctx, userCacheKey(*previousOwner))
	}
	_ = s.cache.Delete(ctx, userCacheKey(callerID))
	return article, nil
}

// DeleteArticle removes the article only when the caller owns it. A non-owner
// gets the same ErrArticleNotFound as a missing id.
func (s *articleService) DeleteArticle(ctx context.Context, id, callerID uint) error {
	if err := s.repo.DeleteOwned(ctx, id, callerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrArticleNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}

	_ = s.cache.Delete(ctx, articleCacheKey(id))
	_ = s.cache.Delete(ctx, userCacheKey(callerID))
	return nil
}
