package handlers

import (
	"encoding/json"

	"institut_backend/models"
	"institut_backend/storage"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	store storage.Storage
}

func NewCustomerHandler(store storage.Storage) *CustomerHandler {
	return &CustomerHandler{store: store}
}

// GetCustomers - GET /api/customers
func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.store.GetCustomers()
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération des clients.", err)
	}
	return c.JSON(customers)
}

// GetCustomer - GET /api/customers/:id
func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	customer, err := h.store.GetCustomer(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération du client.", err)
	}
	if customer == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Client non trouvé"))
	}
	return c.JSON(customer)
}

// CreateCustomer - POST /api/customers
func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req models.InsertCustomer
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Invalid request body format"))
	}
	if details := req.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewValidationError(details))
	}

	customer := req.Model()
	if err := h.store.CreateCustomer(customer); err != nil {
		return internalError(c, "Une erreur est survenue lors de la création du client.", err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// UpdateCustomer - PUT /api/customers/:id
func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	customer, err := h.store.GetCustomer(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la mise à jour du client.", err)
	}
	if customer == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Client non trouvé"))
	}

	id, createdAt := customer.ID, customer.CreatedAt
	if err := json.Unmarshal(c.Body(), customer); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Invalid request body format"))
	}
	customer.ID, customer.CreatedAt = id, createdAt

	updated, err := h.store.UpdateCustomer(customer)
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la mise à jour du client.", err)
	}
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Client non trouvé"))
	}
	return c.JSON(updated)
}

// DeleteCustomer - DELETE /api/customers/:id
func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	deleted, err := h.store.DeleteCustomer(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la suppression du client.", err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Client non trouvé"))
	}
	return c.JSON(models.DeleteResult{Success: true, Message: "Client supprimé avec succès"})
}
