package ports

import (
	"context"

	"github.com/redmisiones/news-api/internal/core/domain"
)

// NewsRepository defines persistence operations for news articles.
type NewsRepository interface {
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)
	FindByID(ctx context.Context, id int64) (*domain.Article, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Article, error)
	Update(ctx context.Context, article *domain.Article) (*domain.Article, error)
	Delete(ctx context.Context, id int64) error
}
