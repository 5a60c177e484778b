package handler

import (
	"time"

	"github.com/redmisiones/news-api/internal/core/domain"
)

type articleResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Subtitle         string    `json:"subtitle"`
	Body             string    `json:"body"`
	ImageDescription string    `json:"image_description"`
	ImageURL         string    `json:"image_url"`
	Date             time.Time `json:"date"`
	UserID           string    `json:"user_id"`
}

func toArticleResponse(a *domain.Article) articleResponse {
	return articleResponse{
		ID:               a.ID,
		Title:            a.Title,
		Subtitle:         a.Subtitle,
		Body:             a.Body,
		ImageDescription: a.ImageDescription,
		ImageURL:         a.ImageURL,
		Date:             a.CreatedAt.UTC(),
		UserID:           a.UserID,
	}
}
