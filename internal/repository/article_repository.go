package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/julioszeferino/api-faculdade/internal/model"
)

// ArticleRepository defines article persistence operations.
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	FindByID(ctx context.Context, id uint) (*model.Article, error)
	List(ctx context.Context) ([]model.Article, error)
	Update(ctx context.Context, article *model.Article) error
	DeleteOwned(ctx context.Context, id, ownerID uint) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository builds a GORM-backed repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) FindByID(ctx context.Context, id uint) (*model.Article, error) {
	var article model.Article
	if err := r.db.WithContext(ctx).First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List(ctx context.Context) ([]model.Article, error) {
	var articles []model.Article
	if err := r.db.WithContext(ctx).Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) Update(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

// DeleteOwned removes the article only when both id and owner match. A miss on
// either condition reports gorm.ErrRecordNotFound, so callers cannot tell an
// absent article from one owned by somebody else.
func (r *articleRepository) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", id, ownerID).
		Delete(&model.Article{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
