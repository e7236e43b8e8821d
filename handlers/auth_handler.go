package handlers

import (
	"institut_backend/models"
	"institut_backend/storage"
	"institut_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

type AuthHandler struct {
	store    storage.Storage
	sessions *session.Store
}

func NewAuthHandler(store storage.Storage, sessions *session.Store) *AuthHandler {
	return &AuthHandler{store: store, sessions: sessions}
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login - POST /api/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Invalid request body format"))
	}

	user, err := h.store.GetUserByUsername(req.Username)
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la connexion.", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(models.Error("Identifiants invalides"))
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		return internalError(c, "Une erreur est survenue lors de la connexion.", err)
	}
	sess.Set("user_id", user.ID)
	if err := sess.Save(); err != nil {
		return internalError(c, "Une erreur est survenue lors de la connexion.", err)
	}

	return c.JSON(user)
}

// Logout - POST /api/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err == nil {
		sess.Destroy()
	}
	return c.SendStatus(fiber.StatusOK)
}

// CurrentUser - GET /api/user
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.Error("Non authentifié"))
	}
	userID, ok := sess.Get("user_id").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(models.Error("Non authentifié"))
	}

	user, err := h.store.GetUser(userID)
	if err != nil {
		return internalError(c, "Une erreur est survenue.", err)
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.Error("Non authentifié"))
	}
	return c.JSON(user)
}
