package handlers

import (
	"encoding/json"

	"institut_backend/internal/ws"
	"institut_backend/models"
	"institut_backend/storage"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	store storage.Storage
	hub   *ws.Hub
}

func NewOrderHandler(store storage.Storage, hub *ws.Hub) *OrderHandler {
	return &OrderHandler{store: store, hub: hub}
}

// CreateOrderRequest wraps the order payload with its line items so the
// whole graph is persisted in a single transaction.
type CreateOrderRequest struct {
	models.InsertOrder
	Items []models.InsertOrderItem `json:"items"`
}

// orderWithItems is the detail view returned by GetOrder and CreateOrder.
type orderWithItems struct {
	models.Order
	Items []models.OrderItem `json:"items"`
}

// GetOrders - GET /api/orders
// Optional filter: ?customer= restricts to one customer's orders.
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	var (
		orders []models.Order
		err    error
	)
	if customerID := c.Query("customer"); customerID != "" {
		orders, err = h.store.GetOrdersByCustomer(customerID)
	} else {
		orders, err = h.store.GetOrders()
	}
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération des commandes.", err)
	}
	return c.JSON(orders)
}

// GetCustomerOrders - GET /api/customers/:id/orders
func (h *OrderHandler) GetCustomerOrders(c *fiber.Ctx) error {
	customer, err := h.store.GetCustomer(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération des commandes.", err)
	}
	if customer == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Client non trouvé"))
	}

	orders, err := h.store.GetOrdersByCustomer(customer.ID)
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération des commandes.", err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(orders)
}

// GetOrder - GET /api/orders/:id (items inlined)
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.store.GetOrder(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération de la commande.", err)
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Commande non trouvée"))
	}

	items, err := h.store.GetOrderItems(order.ID)
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération de la commande.", err)
	}

	return c.JSON(orderWithItems{Order: *order, Items: items})
}

// GetOrderItems - GET /api/orders/:id/items
func (h *OrderHandler) GetOrderItems(c *fiber.Ctx) error {
	order, err := h.store.GetOrder(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération de la commande.", err)
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Commande non trouvée"))
	}

	items, err := h.store.GetOrderItems(order.ID)
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération des articles.", err)
	}
	return c.JSON(items)
}

// CreateOrder - POST /api/orders
// Order and items are created atomically; a failure on any item rolls the
// whole order back.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Invalid request body format"))
	}

	details := req.InsertOrder.Validate()
	for i := range req.Items {
		details = append(details, req.Items[i].Validate()...)
	}
	if len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewValidationError(details))
	}

	customer, err := h.store.GetCustomer(req.CustomerID)
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la création de la commande.", err)
	}
	if customer == nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Client non trouvé"))
	}

	order := req.InsertOrder.Model()
	items := make([]*models.OrderItem, len(req.Items))
	for i := range req.Items {
		items[i] = req.Items[i].Model()
	}

	if err := h.store.CreateOrderWithItems(order, items); err != nil {
		return internalError(c, "Une erreur est survenue lors de la création de la commande.", err)
	}

	created := orderWithItems{Order: *order, Items: make([]models.OrderItem, len(items))}
	for i, item := range items {
		created.Items[i] = *item
	}

	h.hub.Notify(ws.EventOrderCreated, created)

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateOrder - PUT /api/orders/:id
// Items are immutable; only the order row itself can be patched. The
// order number never changes.
func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	order, err := h.store.GetOrder(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la mise à jour de la commande.", err)
	}
	if order == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Commande non trouvée"))
	}

	id, number, createdAt := order.ID, order.OrderNumber, order.CreatedAt
	if err := json.Unmarshal(c.Body(), order); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Invalid request body format"))
	}
	order.ID, order.OrderNumber, order.CreatedAt = id, number, createdAt

	if order.Status != "" && !models.ValidOrderStatus(order.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Statut de commande invalide"))
	}
	if order.PaymentStatus != "" && !models.ValidPaymentStatus(order.PaymentStatus) {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Statut de paiement invalide"))
	}

	updated, err := h.store.UpdateOrder(order)
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la mise à jour de la commande.", err)
	}
	if updated == nil {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Commande non trouvée"))
	}
	return c.JSON(updated)
}

// DeleteOrder - DELETE /api/orders/:id
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	deleted, err := h.store.DeleteOrder(c.Params("id"))
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la suppression de la commande.", err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(models.Error("Commande non trouvée"))
	}
	return c.JSON(models.DeleteResult{Success: true, Message: "Commande supprimée avec succès"})
}
