package handlers

import (
	"encoding/json"

	"institut_backend/models"
	"institut_backend/storage"

	"github.com/gofiber/fiber/v2"
)

type GalleryHandler struct {
	store storage.Storage
}

func NewGalleryHandler(store storage.Storage) *GalleryHandler {
	return &GalleryHandler{store: store}
}

// GetGalleryItems - GET /api/gallery (ordered by displayOrder)
// ?published=true limits the list to published images (public site).
func (h *GalleryHandler) GetGalleryItems(c *fiber.Ctx) error {
	items, err := h.store.GetGalleryItems()
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération de la galerie.", err)
	}

	if c.Query("published") == "true" {
		published := make([]models.Gallery, 0, len(items))
		for _, g := range items {
			if g.Published {
				published = append(published, g)
			}
		}
		items = published
	}

	return c.JSON(items)
}

// GetGalleryItem - GET /api/gallery/:id
func (h *GalleryHandler) GetGalleryItem(c *fiber.Ctx) error {
	item, err := h.store.GetGalleryItem(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération de l'image.", err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Image non trouvée"))
	}
	return c.JSON(item)
}

// CreateGalleryItem - POST /api/gallery
func (h *GalleryHandler) CreateGalleryItem(c *fiber.Ctx) error {
	var req models.InsertGallery
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Invalid request body format"))
	}
	if details := req.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewValidationError(details))
	}

	item := req.Model()
	if err := h.store.CreateGalleryItem(item); err != nil {
		return internalError(c, "Une erreur est survenue lors de l'ajout de l'image.", err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateGalleryItem - PUT /api/gallery/:id
func (h *GalleryHandler) UpdateGalleryItem(c *fiber.Ctx) error {
	item, err := h.store.GetGalleryItem(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la mise à jour de l'image.", err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Image non trouvée"))
	}

	id, createdAt := item.ID, item.CreatedAt
	if err := json.Unmarshal(c.Body(), item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Invalid request body format"))
	}
	item.ID, item.CreatedAt = id, createdAt

	updated, err := h.store.UpdateGalleryItem(item)
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la mise à jour de l'image.", err)
	}
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Image non trouvée"))
	}
	return c.JSON(updated)
}

// DeleteGalleryItem - DELETE /api/gallery/:id
func (h *GalleryHandler) DeleteGalleryItem(c *fiber.Ctx) error {
	deleted, err := h.store.DeleteGalleryItem(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la suppression de l'image.", err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Image non trouvée"))
	}
	return c.JSON(models.DeleteResult{Success: true, Message: "Image supprimée avec succès"})
}
