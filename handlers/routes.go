package handlers

import (
	"institut_backend/internal/ws"
	"institut_backend/middleware"
	"institut_backend/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// RegisterRoutes wires the full /api surface. Reads on catalog content
// (products, categories, news, gallery, settings, stats) are public;
// POST /api/contact is the only anonymous write. Everything else requires
// an authenticated session.
func RegisterRoutes(app *fiber.App, store storage.Storage, sessions *session.Store, hub *ws.Hub, uploadDir string) {
	auth := NewAuthHandler(store, sessions)
	contact := NewContactHandler(store, hub)
	products := NewProductHandler(store, hub)
	categories := NewCategoryHandler(store)
	customers := NewCustomerHandler(store)
	orders := NewOrderHandler(store, hub)
	news := NewNewsHandler(store)
	gallery := NewGalleryHandler(store)
	settings := NewSettingsHandler(store)
	stats := NewStatsHandler(store)
	upload := NewUploadHandler(uploadDir)
	events := NewEventsHandler(hub)

	api := app.Group("/api")
	requireAuth := middleware.RequireAuth(sessions)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "success", "message": "API is healthy"})
	})

	// Auth
	api.Post("/login", auth.Login)
	api.Post("/logout", auth.Logout)
	api.Get("/user", auth.CurrentUser)

	// Contact
	api.Post("/contact", contact.CreateContact)
	api.Get("/contact", requireAuth, contact.GetContacts)

	// Products
	api.Get("/products", products.GetProducts)
	api.Get("/products/slug/:slug", products.GetProductBySlug)
	api.Get("/products/:id", products.GetProduct)
	api.Post("/products", requireAuth, products.CreateProduct)
	api.Put("/products/:id", requireAuth, products.UpdateProduct)
	api.Delete("/products/:id", requireAuth, products.DeleteProduct)

	// Categories
	api.Get("/categories", categories.GetCategories)
	api.Get("/categories/slug/:slug", categories.GetCategoryBySlug)
	api.Get("/categories/:id", categories.GetCategory)
	api.Post("/categories", requireAuth, categories.CreateCategory)
	api.Put("/categories/:id", requireAuth, categories.UpdateCategory)
	api.Delete("/categories/:id", requireAuth, categories.DeleteCategory)

	// Customers (backoffice only)
	api.Get("/customers", requireAuth, customers.GetCustomers)
	api.Get("/customers/:id", requireAuth, customers.GetCustomer)
	api.Post("/customers", requireAuth, customers.CreateCustomer)
	api.Put("/customers/:id", requireAuth, customers.UpdateCustomer)
	api.Delete("/customers/:id", requireAuth, customers.DeleteCustomer)
	api.Get("/customers/:id/orders", requireAuth, orders.GetCustomerOrders)

	// Orders (backoffice only)
	api.Get("/orders", requireAuth, orders.GetOrders)
	api.Get("/orders/:id", requireAuth, orders.GetOrder)
	api.Get("/orders/:id/items", requireAuth, orders.GetOrderItems)
	api.Post("/orders", requireAuth, orders.CreateOrder)
	api.Put("/orders/:id", requireAuth, orders.UpdateOrder)
	api.Delete("/orders/:id", requireAuth, orders.DeleteOrder)

	// News
	api.Get("/news", news.GetNews)
	api.Get("/news/:id", news.GetNewsArticle)
	api.Post("/news", requireAuth, news.CreateNews)
	api.Put("/news/:id", requireAuth, news.UpdateNews)
	api.Delete("/news/:id", requireAuth, news.DeleteNews)

	// Gallery
	api.Get("/gallery", gallery.GetGalleryItems)
	api.Get("/gallery/:id", gallery.GetGalleryItem)
	api.Post("/gallery", requireAuth, gallery.CreateGalleryItem)
	api.Put("/gallery/:id", requireAuth, gallery.UpdateGalleryItem)
	api.Delete("/gallery/:id", requireAuth, gallery.DeleteGalleryItem)

	// Settings
	api.Get("/settings/:key", settings.GetSetting)
	api.Post("/settings", requireAuth, settings.SetSetting)

	// Dashboard
	api.Get("/shop/stats", stats.GetStats)

	// Uploads
	api.Post("/upload", requireAuth, upload.UploadImage)

	// Live backoffice event feed
	api.Get("/events", requireAuth, events.Upgrade, events.Serve())
}
