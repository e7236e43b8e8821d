package handlers

import (
	"institut_backend/models"
	"institut_backend/storage"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	store storage.Storage
}

func NewSettingsHandler(store storage.Storage) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// GetSetting - GET /api/settings/:key
// An absent key is not an error: the response carries value: null so the
// frontend can fall back to its default.
func (h *SettingsHandler) GetSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	setting, err := h.store.GetSetting(key)
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la récupération du paramètre.", err)
	}
	if setting == nil {
		return c.JSON(fiber.Map{"key": key, "value": nil})
	}
	return c.JSON(fiber.Map{"key": setting.Key, "value": setting.Value})
}

// SetSetting - POST /api/settings (upsert)
func (h *SettingsHandler) SetSetting(c *fiber.Ctx) error {
	var req models.InsertSetting
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Invalid request body format"))
	}
	if details := req.Validate(); len(details) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.NewValidationError(details))
	}

	setting, err := h.store.SetSetting(req.Key, req.Value)
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de l'enregistrement du paramètre.", err)
	}
	return c.JSON(setting)
}
