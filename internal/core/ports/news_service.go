package ports

import (
	"context"
	"io"

	"github.com/redmisiones/news-api/internal/core/domain"
)

// ImageUpload is an in-flight image file received with an article.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// CreateArticleInput carries all fields required to publish an article.
type CreateArticleInput struct {
	Title            string
	Subtitle         string
	ImageDescription string
	Body             string
	Image            ImageUpload
}

// UpdateArticleInput carries a partial article update; nil fields are left
// as-is. A non-nil Image replaces the stored one.
type UpdateArticleInput struct {
	Title            *string
	Subtitle         *string
	ImageDescription *string
	Body             *string
	Image            *ImageUpload
}

// NewsService defines the news use cases. Reads are public; writes are
// gated by the authorization middleware and, for updates, by the
// admin-or-author ownership rule enforced here.
type NewsService interface {
	Create(ctx context.Context, author *domain.User, input CreateArticleInput) (*domain.Article, error)
	Get(ctx context.Context, id int64) (*domain.Article, error)
	List(ctx context.Context, skip, limit int) ([]*domain.Article, error)
	Update(ctx context.Context, actor *domain.User, id int64, input UpdateArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, id int64) error
}
