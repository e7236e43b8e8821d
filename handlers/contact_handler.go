package handlers

import (
	"institut_backend/internal/ws"
	"institut_backend/models"
	"institut_backend/storage"

	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	store storage.Storage
	hub   *ws.Hub
}

func NewContactHandler(store storage.Storage, hub *ws.Hub) *ContactHandler {
	return &ContactHandler{store: store, hub: hub}
}

// CreateContact - POST /api/contact
// The only mutating route open to anonymous visitors.
func (h *ContactHandler) CreateContact(c *fiber.Ctx) error {
	var req models.InsertContact
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Invalid request body format"))
	}
	if details := req.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewValidationError(details))
	}

	submission := req.Model()
	if err := h.store.CreateContactSubmission(submission); err != nil {
		return internalError(c, "Une erreur est survenue lors de l'envoi du message.", err)
	}

	h.hub.Notify(ws.EventContactCreated, submission)

	return c.Status(fiber.StatusCreated).JSON(submission)
}

// GetContacts - GET /api/contact (admin)
func (h *ContactHandler) GetContacts(c *fiber.Ctx) error {
	submissions, err := h.store.GetContactSubmissions()
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération des messages.", err)
	}
	return c.JSON(submissions)
}
