package handlers

import (
	"encoding/json"

	"institut_backend/models"
	"institut_backend/storage"

	"github.com/gofiber/fiber/v2"
)

type NewsHandler struct {
	store storage.Storage
}

func NewNewsHandler(store storage.Storage) *NewsHandler {
	return &NewsHandler{store: store}
}

// GetNews - GET /api/news
// ?published=true limits the list to published articles (public site).
func (h *NewsHandler) GetNews(c *fiber.Ctx) error {
	articles, err := h.store.GetNews()
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération des actualités.", err)
	}

	if c.Query("published") == "true" {
		published := make([]models.News, 0, len(articles))
		for _, a := range articles {
			if a.Published {
				published = append(published, a)
			}
		}
		articles = published
	}

	return c.JSON(articles)
}

// GetNewsArticle - GET /api/news/:id
func (h *NewsHandler) GetNewsArticle(c *fiber.Ctx) error {
	article, err := h.store.GetNewsArticle(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération de l'actualité.", err)
	}
	if article == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Actualité non trouvée"))
	}
	return c.JSON(article)
}

// CreateNews - POST /api/news
func (h *NewsHandler) CreateNews(c *fiber.Ctx) error {
	var req models.InsertNews
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Invalid request body format"))
	}
	if details := req.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewValidationError(details))
	}

	article := req.Model()
	if err := h.store.CreateNews(article); err != nil {
		return internalError(c, "Une erreur est survenue lors de la création de l'actualité.", err)
	}
	return c.Status(fiber.StatusCreated).JSON(article)
}

// UpdateNews - PUT /api/news/:id
func (h *NewsHandler) UpdateNews(c *fiber.Ctx) error {
	article, err := h.store.GetNewsArticle(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la mise à jour de l'actualité.", err)
	}
	if article == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Actualité non trouvée"))
	}

	id, createdAt := article.ID, article.CreatedAt
	if err := json.Unmarshal(c.Body(), article); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Invalid request body format"))
	}
	article.ID, article.CreatedAt = id, createdAt

	updated, err := h.store.UpdateNews(article)
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la mise à jour de l'actualité.", err)
	}
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Actualité non trouvée"))
	}
	return c.JSON(updated)
}

// DeleteNews - DELETE /api/news/:id
func (h *NewsHandler) DeleteNews(c *fiber.Ctx) error {
	deleted, err := h.store.DeleteNews(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la suppression de l'actualité.", err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Actualité non trouvée"))
	}
	return c.JSON(models.DeleteResult{Success: true, Message: "Actualité supprimée avec succès"})
}
