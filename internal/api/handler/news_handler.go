package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/redmisiones/news-api/internal/api/metrics"
	"github.com/redmisiones/news-api/internal/api/middleware"
	"github.com/redmisiones/news-api/internal/core/ports"
)

// NewsHandler serves the article routes. Reads are public, writes go through
// the auth middleware.
type NewsHandler struct {
	newsService ports.NewsService
}

func NewNewsHandler(newsService ports.NewsService) *NewsHandler {
	return &NewsHandler{newsService: newsService}
}

// Create handles POST /api/news — a multipart form with the article fields
// and the image file.
func (h *NewsHandler) Create(c echo.Context) error {
	author, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	title := c.FormValue("title")
	subtitle := c.FormValue("subtitle")
	description := c.FormValue("image_description")
	body := c.FormValue("body")
	if title == "" || subtitle == "" || description == "" || body == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title, subtitle, image_description and body are required")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}
	image, closeImage, err := openUpload(fileHeader)
	if err != nil {
		return err
	}
	defer closeImage()

	article, err := h.newsService.Create(c.Request().Context(), author, ports.CreateArticleInput{
		Title:            title,
		Subtitle:         subtitle,
		ImageDescription: description,
		Body:             body,
		Image:            image,
	})
	if err != nil {
		return err
	}

	metrics.ArticlesPublishedTotal.Inc()
	return c.JSON(http.StatusCreated, toArticleResponse(article))
}

// Update handles PUT /api/news/:id. All fields are optional; a new image
// replaces the stored one.
func (h *NewsHandler) Update(c echo.Context) error {
	actor, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := articleID(c)
	if err != nil {
		return err
	}

	var input ports.UpdateArticleInput
	if v := c.FormValue("title"); v != "" {
		input.Title = &v
	}
	if v := c.FormValue("subtitle"); v != "" {
		input.Subtitle = &v
	}
	if v := c.FormValue("image_description"); v != "" {
		input.ImageDescription = &v
	}
	if v := c.FormValue("body"); v != "" {
		input.Body = &v
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		image, closeImage, err := openUpload(fileHeader)
		if err != nil {
			return err
		}
		defer closeImage()
		input.Image = &image
	}

	article, err := h.newsService.Update(c.Request().Context(), actor, id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(article))
}

// List handles GET /api/news?skip=&limit= (public).
func (h *NewsHandler) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	articles, err := h.newsService.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}

	resp := make([]articleResponse, len(articles))
	for i, a := range articles {
		resp[i] = toArticleResponse(a)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/news/:id (public).
func (h *NewsHandler) Get(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return err
	}

	article, err := h.newsService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toArticleResponse(article))
}

// Delete handles DELETE /api/news/:id (admin only, enforced by middleware).
func (h *NewsHandler) Delete(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return err
	}
	if err := h.newsService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "article deleted"})
}

func articleID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid article id")
	}
	return id, nil
}

// openUpload turns a multipart header into the service's ImageUpload DTO.
func openUpload(fh *multipart.FileHeader) (ports.ImageUpload, func(), error) {
	f, err := fh.Open()
	if err != nil {
		return ports.ImageUpload{}, nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable image file")
	}
	return ports.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Content:     f,
	}, func() { _ = f.Close() }, nil
}
