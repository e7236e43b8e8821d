package handlers

import (
	"encoding/json"
	"strings"

	"institut_backend/internal/ws"
	"institut_backend/models"
	"institut_backend/storage"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	store storage.Storage
	hub   *ws.Hub
}

func NewProductHandler(store storage.Storage, hub *ws.Hub) *ProductHandler {
	return &ProductHandler{store: store, hub: hub}
}

// GetProducts - GET /api/products
// Optional filters: ?q= (name search), ?category= (category id),
// ?published=true (public storefront).
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.store.GetProducts()
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération des produits.", err)
	}

	q := strings.ToLower(c.Query("q"))
	category := c.Query("category")
	publishedOnly := c.Query("published") == "true"

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if category != "" && (p.CategoryID == nil || *p.CategoryID != category) {
			continue
		}
		if publishedOnly && !p.Published {
			continue
		}
		filtered = append(filtered, p)
	}

	return c.JSON(filtered)
}

// GetProduct - GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.store.GetProduct(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération du produit.", err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Produit non trouvé"))
	}
	return c.JSON(product)
}

// GetProductBySlug - GET /api/products/slug/:slug
func (h *ProductHandler) GetProductBySlug(c *fiber.Ctx) error {
	product, err := h.store.GetProductBySlug(c.Params("slug"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération du produit.", err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Produit non trouvé"))
	}
	return c.JSON(product)
}

// CreateProduct - POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req models.InsertProduct
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Invalid request body format"))
	}
	if details := req.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewValidationError(details))
	}

	product := req.Model()
	if err := h.store.CreateProduct(product); err != nil {
		return internalError(c, "Une erreur est survenue lors de la création du produit.", err)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// UpdateProduct - PUT /api/products/:id
// The body is a partial patch merged over the stored row; id and createdAt
// never change, updatedAt always advances.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	product, err := h.store.GetProduct(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la mise à jour du produit.", err)
	}
	if product == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Produit non trouvé"))
	}

	id, createdAt := product.ID, product.CreatedAt
	wasLow := product.IsLowStock() || product.IsOutOfStock()
	if err := json.Unmarshal(c.Body(), product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Invalid request body format"))
	}
	product.ID, product.CreatedAt = id, createdAt

	updated, err := h.store.UpdateProduct(product)
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la mise à jour du produit.", err)
	}
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Produit non trouvé"))
	}

	if !wasLow && (updated.IsLowStock() || updated.IsOutOfStock()) {
		h.hub.Notify(ws.EventStockLow, updated)
	}

	return c.JSON(updated)
}

// DeleteProduct - DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	deleted, err := h.store.DeleteProduct(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la suppression du produit.", err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Produit non trouvé"))
	}
	return c.JSON(models.DeleteResult{Success: true, Message: "Produit supprimé avec succès"})
}
