package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/redmisiones/news-api/internal/core/domain"
	"github.com/redmisiones/news-api/internal/core/ports"
)

const (
	maxImageSize    = 5 << 20 // 5MB
	imageKeyPrefix  = "news/"
	defaultNewsPage = 10
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// NewsService implements article CRUD, delegating image bytes to the blob
// store and metadata to the relational repository.
type NewsService struct {
	repo   ports.NewsRepository
	blobs  ports.BlobStore
	logger zerolog.Logger
}

func NewNewsService(repo ports.NewsRepository, blobs ports.BlobStore, logger zerolog.Logger) *NewsService {
	return &NewsService{repo: repo, blobs: blobs, logger: logger}
}

// Create uploads the image, then inserts the article row. If the insert
// fails the uploaded object is removed best-effort so the store does not
// accumulate orphans.
func (s *NewsService) Create(ctx context.Context, author *domain.User, input ports.CreateArticleInput) (*domain.Article, error) {
	key, url, err := s.uploadImage(ctx, input.Image)
	if err != nil {
		return nil, err
	}

	article := &domain.Article{
		Title:            strings.TrimSpace(input.Title),
		Subtitle:         strings.TrimSpace(input.Subtitle),
		Body:             strings.TrimSpace(input.Body),
		ImageDescription: strings.TrimSpace(input.ImageDescription),
		ImageURL:         url,
		CreatedAt:        time.Now().UTC(),
		UserID:           author.ID,
	}

	created, err := s.repo.Create(ctx, article)
	if err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			s.logger.Error().Err(delErr).Str("key", key).Msg("failed to remove orphaned image")
		}
		return nil, err
	}

	s.logger.Info().Int64("article_id", created.ID).Str("user_id", author.ID).Msg("article created")
	return created, nil
}

func (s *NewsService) Get(ctx context.Context, id int64) (*domain.Article, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *NewsService) List(ctx context.Context, skip, limit int) ([]*domain.Article, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultNewsPage
	}
	return s.repo.List(ctx, skip, limit)
}

// Update applies a partial update. Admins may update any article, other
// actors only their own. A new image replaces the stored one; the old object
// is removed best-effort.
func (s *NewsService) Update(ctx context.Context, actor *domain.User, id int64, input ports.UpdateArticleInput) (*domain.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != domain.RoleAdmin && article.UserID != actor.ID {
		return nil, domain.ErrForbidden
	}

	oldURL := article.ImageURL
	if input.Image != nil {
		_, url, err := s.uploadImage(ctx, *input.Image)
		if err != nil {
			return nil, err
		}
		article.ImageURL = url
	}

	if input.Title != nil {
		article.Title = strings.TrimSpace(*input.Title)
	}
	if input.Subtitle != nil {
		article.Subtitle = strings.TrimSpace(*input.Subtitle)
	}
	if input.ImageDescription != nil {
		article.ImageDescription = strings.TrimSpace(*input.ImageDescription)
	}
	if input.Body != nil {
		article.Body = strings.TrimSpace(*input.Body)
	}

	updated, err := s.repo.Update(ctx, article)
	if err != nil {
		return nil, err
	}

	if input.Image != nil && oldURL != "" && oldURL != updated.ImageURL {
		s.deleteImageByURL(ctx, oldURL)
	}
	return updated, nil
}

// Delete removes the article and its stored image. Image removal is a
// best-effort compensating action; its failure is logged, not escalated.
func (s *NewsService) Delete(ctx context.Context, id int64) error {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, article.ID); err != nil {
		return err
	}
	if article.ImageURL != "" {
		s.deleteImageByURL(ctx, article.ImageURL)
	}
	s.logger.Info().Int64("article_id", article.ID).Msg("article deleted")
	return nil
}

// uploadImage validates the file and stores it under a fresh uuid-based key.
func (s *NewsService) uploadImage(ctx context.Context, img ports.ImageUpload) (key, url string, err error) {
	fallbackExt, ok := allowedImageTypes[img.ContentType]
	if !ok {
		return "", "", domain.ErrUnsupportedImageType
	}
	if img.Size > maxImageSize {
		return "", "", domain.ErrImageTooLarge
	}

	ext := strings.ToLower(filepath.Ext(img.Filename))
	if ext == "" {
		ext = fallbackExt
	}
	key = fmt.Sprintf("%s%s%s", imageKeyPrefix, uuid.NewString(), ext)

	url, err = s.blobs.Upload(ctx, key, img.Content, img.ContentType, img.Size)
	if err != nil {
		return "", "", fmt.Errorf("upload image: %w", err)
	}
	return key, url, nil
}

func (s *NewsService) deleteImageByURL(ctx context.Context, url string) {
	key, ok := s.blobs.KeyForURL(url)
	if !ok {
		return
	}
	if err := s.blobs.Delete(ctx, key); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to remove stored image")
	}
}
