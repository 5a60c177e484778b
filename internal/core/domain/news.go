package domain

import (
	"errors"
	"time"
)

var ErrArticleNotFound = errors.New("article not found")
var ErrUnsupportedImageType = errors.New("unsupported image type")
var ErrImageTooLarge = errors.New("image too large")

// Article is a published news item. The image lives in the blob store; only
// its public URL is persisted alongside the article.
type Article struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Subtitle         string    `json:"subtitle"`
	Body             string    `json:"body"`
	ImageDescription string    `json:"image_description"`
	ImageURL         string    `json:"image_url"`
	CreatedAt        time.Time `json:"date"`
	UserID           string    `json:"user_id"`
}
