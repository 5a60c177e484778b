package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/redmisiones/news-api/internal/core/domain"
)

// NewsRepository persists articles in the news table.
type NewsRepository struct {
	pool *pgxpool.Pool
}

func NewNewsRepository(pool *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{pool: pool}
}

func (r *NewsRepository) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	created := *article
	err := r.pool.QueryRow(ctx, `
		INSERT INTO news (title, subtitle, body, image_description, image_url, created_at, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, created.Title, created.Subtitle, created.Body, created.ImageDescription,
		created.ImageURL, created.CreatedAt, created.UserID).Scan(&created.ID)
	if err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}
	return &created, nil
}

func (r *NewsRepository) FindByID(ctx context.Context, id int64) (*domain.Article, error) {
	var a domain.Article
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, subtitle, body, image_description, image_url, created_at, user_id
		FROM news WHERE id = $1
	`, id).Scan(&a.ID, &a.Title, &a.Subtitle, &a.Body, &a.ImageDescription, &a.ImageURL, &a.CreatedAt, &a.UserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}
	return &a, nil
}

func (r *NewsRepository) List(ctx context.Context, skip, limit int) ([]*domain.Article, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, subtitle, body, image_description, image_url, created_at, user_id
		FROM news ORDER BY created_at DESC OFFSET $1 LIMIT $2
	`, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var articles []*domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Subtitle, &a.Body, &a.ImageDescription, &a.ImageURL, &a.CreatedAt, &a.UserID); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, &a)
	}
	return articles, rows.Err()
}

func (r *NewsRepository) Update(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE news SET title = $2, subtitle = $3, body = $4, image_description = $5, image_url = $6
		WHERE id = $1
	`, article.ID, article.Title, article.Subtitle, article.Body, article.ImageDescription, article.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrArticleNotFound
	}
	return article, nil
}

func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}
