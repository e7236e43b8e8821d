package handlers

import (
	"encoding/json"

	"institut_backend/models"
	"institut_backend/storage"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	store storage.Storage
}

func NewCategoryHandler(store storage.Storage) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// GetCategories - GET /api/categories
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.store.GetCategories()
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération des catégories.", err)
	}
	return c.JSON(categories)
}

// GetCategory - GET /api/categories/:id
func (h *CategoryHandler) GetCategory(c *fiber.Ctx) error {
	category, err := h.store.GetCategory(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération de la catégorie.", err)
	}
	if category == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Catégorie non trouvée"))
	}
	return c.JSON(category)
}

// GetCategoryBySlug - GET /api/categories/slug/:slug
func (h *CategoryHandler) GetCategoryBySlug(c *fiber.Ctx) error {
	category, err := h.store.GetCategoryBySlug(c.Params("slug"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération de la catégorie.", err)
	}
	if category == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Catégorie non trouvée"))
	}
	return c.JSON(category)
}

// CreateCategory - POST /api/categories
func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req models.InsertCategory
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Invalid request body format"))
	}
	if details := req.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewValidationError(details))
	}

	category := req.Model()
	if err := h.store.CreateCategory(category); err != nil {
		return internalError(c, "Une erreur est survenue lors de la création de la catégorie.", err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory - PUT /api/categories/:id
func (h *CategoryHandler) UpdateCategory(c *fiber.Ctx) error {
	category, err := h.store.GetCategory(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la mise à jour de la catégorie.", err)
	}
	if category == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Catégorie non trouvée"))
	}

	id, createdAt := category.ID, category.CreatedAt
	if err := json.Unmarshal(c.Body(), category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Invalid request body format"))
	}
	category.ID, category.CreatedAt = id, createdAt

	updated, err := h.store.UpdateCategory(category)
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la mise à jour de la catégorie.", err)
	}
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Catégorie non trouvée"))
	}
	return c.JSON(updated)
}

// DeleteCategory - DELETE /api/categories/:id
func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	deleted, err := h.store.DeleteCategory(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la suppression de la catégorie.", err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Catégorie non trouvée"))
	}
	return c.JSON(models.DeleteResult{Success: true, Message: "Catégorie supprimée avec succès"})
}
