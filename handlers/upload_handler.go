package handlers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"institut_backend/models"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler stores uploaded images on local disk under uploadDir and
// returns the public URL they are served from.
type UploadHandler struct {
	uploadDir string
}

func NewUploadHandler(uploadDir string) *UploadHandler {
	return &UploadHandler{uploadDir: uploadDir}
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadImage - POST /api/upload
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Le fichier image est requis"))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(models.Error("Seuls les fichiers .jpg, .jpeg, .png et .webp sont autorisés"))
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	destination := filepath.Join(h.uploadDir, filename)

	if err := c.SaveFile(file, destination); err != nil {
		return internalError(c, "Une erreur est survenue lors de l'enregistrement du fichier.", err)
	}

	return c.JSON(fiber.Map{"url": "/uploads/" + filename})
}
