package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"institut_backend/internal/ws"
	"institut_backend/middleware"
	"institut_backend/models"
	"institut_backend/storage"
	"institut_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUsername = "admin"
	testPassword = "secret123"
)

func newTestApp(t *testing.T) (*fiber.App, *storage.MemoryStorage) {
	t.Helper()

	store := storage.NewMemoryStorage()
	hash, err := utils.HashPassword(testPassword)
	require.NoError(t, err)
	require.NoError(t, store.CreateUser(&models.User{Username: testUsername, Password: hash}))

	app := fiber.New()
	sessions := middleware.NewSessionStore()
	RegisterRoutes(app, store, sessions, ws.NewHub(), t.TempDir())
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, target, body, cookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	resp.Body.Close()
}

// login authenticates as the seeded admin and returns the session cookie.
func login(t *testing.T, app *fiber.App) string {
	t.Helper()

	resp := doJSON(t, app, "POST", "/api/login",
		`{"username":"`+testUsername+`","password":"`+testPassword+`"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cookies := resp.Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0].Name + "=" + cookies[0].Value
}

func TestLoginInvalidCredentials(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/login", `{"username":"admin","password":"wrong"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body models.ErrorBody
	decodeBody(t, resp, &body)
	assert.Equal(t, "Identifiants invalides", body.Error)
}

func TestLoginAndCurrentUser(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := login(t, app)

	resp := doJSON(t, app, "GET", "/api/user", "", cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var user map[string]interface{}
	decodeBody(t, resp, &user)
	assert.Equal(t, testUsername, user["username"])
	// The password hash must never leave the server.
	_, leaked := user["password"]
	assert.False(t, leaked)
}

func TestCurrentUserWithoutSession(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/user", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := login(t, app)

	resp := doJSON(t, app, "POST", "/api/logout", "", cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/user", "", cookie)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMutationsRequireSession(t *testing.T) {
	app, store := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/news",
		`{"title":"Promo","category":"Offres","date":"Mars 2026","excerpt":"Nouvelle promotion"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// The rejected request must leave no trace.
	news, err := store.GetNews()
	require.NoError(t, err)
	assert.Empty(t, news)
}

func TestContactSubmission(t *testing.T) {
	app, _ := newTestApp(t)

	// Anonymous visitors may submit the form.
	resp := doJSON(t, app, "POST", "/api/contact",
		`{"name":"Marie","email":"marie@example.com","message":"Bonjour, je souhaite un rendez-vous."}`, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.ContactSubmission
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)

	// But the listing is for the backoffice only.
	resp = doJSON(t, app, "GET", "/api/contact", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	cookie := login(t, app)
	resp = doJSON(t, app, "GET", "/api/contact", "", cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var list []models.ContactSubmission
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Marie", list[0].Name)
}

func TestContactValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/contact", `{"name":"M","email":"bad","message":"court"}`, "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body models.ErrorBody
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Error, "Validation error:")
	require.Len(t, body.Details, 3)
	assert.Equal(t, "Le nom doit contenir au moins 2 caractères", body.Details[0].Message)
	assert.Equal(t, "Email invalide", body.Details[1].Message)
	assert.Equal(t, "Le message doit contenir au moins 10 caractères", body.Details[2].Message)
}

func TestProductLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	cookie := login(t, app)

	resp := doJSON(t, app, "POST", "/api/products",
		`{"name":"Crème Hydratante","slug":"creme-hydratante","price":24.99,"stock":10}`, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var product models.Product
	decodeBody(t, resp, &product)
	assert.Equal(t, "24.99", product.Price)
	assert.Equal(t, 10, product.Stock)
	assert.Equal(t, 5, product.LowStockThreshold)
	assert.True(t, product.Published)

	// Public reads.
	resp = doJSON(t, app, "GET", "/api/products", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []models.Product
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)

	resp = doJSON(t, app, "GET", "/api/products/slug/creme-hydratante", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Partial update: only the stock changes.
	resp = doJSON(t, app, "PUT", "/api/products/"+product.ID, `{"stock":0}`, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated models.Product
	decodeBody(t, resp, &updated)
	assert.Equal(t, 0, updated.Stock)
	assert.Equal(t, "Crème Hydratante", updated.Name)
	assert.Equal(t, product.ID, updated.ID)

	resp = doJSON(t, app, "DELETE", "/api/products/"+product.ID, "", cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var deleted models.DeleteResult
	decodeBody(t, resp, &deleted)
	assert.True(t, deleted.Success)

	resp = doJSON(t, app, "GET", "/api/products/"+product.ID, "", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestProductFilters(t *testing.T) {
	app, store := newTestApp(t)

	hidden := false
	require.NoError(t, store.CreateProduct((&models.InsertProduct{Name: "Crème Visage", Slug: "creme-visage", Price: "24.99"}).Model()))
	require.NoError(t, store.CreateProduct((&models.InsertProduct{Name: "Sérum Nuit", Slug: "serum-nuit", Price: "49.90", Published: &hidden}).Model()))

	resp := doJSON(t, app, "GET", "/api/products?q=visage", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []models.Product
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Crème Visage", list[0].Name)

	resp = doJSON(t, app, "GET", "/api/products?published=true", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "creme-visage", list[0].Slug)
}

func TestOrderCreateWithItems(t *testing.T) {
	app, store := newTestApp(t)
	cookie := login(t, app)

	customer := (&models.InsertCustomer{Email: "client@example.com", FirstName: "Jean", LastName: "Dupont"}).Model()
	require.NoError(t, store.CreateCustomer(customer))

	resp := doJSON(t, app, "POST", "/api/orders",
		`{"customerId":"`+customer.ID+`","subtotal":"20.00","total":"24.00","items":[{"productId":"p1","productName":"Crème","quantity":2,"price":"10.00","total":"20.00"}]}`, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		models.Order
		Items []models.OrderItem `json:"items"`
	}
	decodeBody(t, resp, &created)
	assert.Contains(t, created.OrderNumber, "ORD-")
	assert.Equal(t, models.OrderStatusPending, created.Status)
	require.Len(t, created.Items, 1)
	assert.Equal(t, created.Order.ID, created.Items[0].OrderID)

	// The detail view inlines items.
	resp = doJSON(t, app, "GET", "/api/orders/"+created.Order.ID, "", cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &created)
	require.Len(t, created.Items, 1)
	assert.Equal(t, "Crème", created.Items[0].ProductName)
}

func TestOrderCreateUnknownCustomer(t *testing.T) {
	app, store := newTestApp(t)
	cookie := login(t, app)

	resp := doJSON(t, app, "POST", "/api/orders",
		`{"customerId":"missing","subtotal":"10.00","total":"10.00","items":[]}`, cookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	orders, err := store.GetOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderItemValidationBlocksWholeOrder(t *testing.T) {
	app, store := newTestApp(t)
	cookie := login(t, app)

	customer := (&models.InsertCustomer{Email: "client@example.com", FirstName: "Jean", LastName: "Dupont"}).Model()
	require.NoError(t, store.CreateCustomer(customer))

	resp := doJSON(t, app, "POST", "/api/orders",
		`{"customerId":"`+customer.ID+`","subtotal":"10.00","total":"10.00","items":[{"productId":"","productName":"Crème","quantity":1,"price":"10.00","total":"10.00"}]}`, cookie)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	orders, err := store.GetOrders()
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestShopStats(t *testing.T) {
	app, store := newTestApp(t)

	low := 3
	hidden := false
	require.NoError(t, store.CreateProduct((&models.InsertProduct{Name: "Crème", Slug: "creme", Price: "24.99", Stock: intPtr(10)}).Model()))
	require.NoError(t, store.CreateProduct((&models.InsertProduct{Name: "Sérum", Slug: "serum", Price: "49.90", Stock: &low}).Model()))
	require.NoError(t, store.CreateProduct((&models.InsertProduct{Name: "Masque", Slug: "masque", Price: "9.90", Published: &hidden}).Model()))

	require.NoError(t, store.CreateOrderWithItems(&models.Order{CustomerID: "c1", Status: "delivered", PaymentStatus: "paid", Subtotal: "10.00", Total: "10.00"}, nil))
	require.NoError(t, store.CreateOrderWithItems(&models.Order{CustomerID: "c1", Status: "processing", PaymentStatus: "paid", Subtotal: "5.50", Total: "5.50"}, nil))
	require.NoError(t, store.CreateOrderWithItems(&models.Order{CustomerID: "c2", Status: "pending", PaymentStatus: "pending", Subtotal: "100.00", Total: "100.00"}, nil))

	resp := doJSON(t, app, "GET", "/api/shop/stats", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats struct {
		Products struct {
			Total     int `json:"total"`
			Published int `json:"published"`
			LowStock  int `json:"lowStock"`
		} `json:"products"`
		Orders struct {
			Total      int `json:"total"`
			Pending    int `json:"pending"`
			Processing int `json:"processing"`
			Completed  int `json:"completed"`
		} `json:"orders"`
		Revenue struct {
			Total string `json:"total"`
		} `json:"revenue"`
		RecentOrders     []models.Order   `json:"recentOrders"`
		LowStockProducts []models.Product `json:"lowStockProducts"`
	}
	decodeBody(t, resp, &stats)

	assert.Equal(t, 3, stats.Products.Total)
	assert.Equal(t, 2, stats.Products.Published)
	// stock 3 and the unpublished product at stock 0 both sit at or under
	// the default threshold of 5.
	assert.Equal(t, 2, stats.Products.LowStock)

	assert.Equal(t, 3, stats.Orders.Total)
	assert.Equal(t, 1, stats.Orders.Pending)
	assert.Equal(t, 1, stats.Orders.Processing)
	assert.Equal(t, 1, stats.Orders.Completed)

	// Only paid orders count toward revenue.
	assert.Equal(t, "15.50", stats.Revenue.Total)

	require.Len(t, stats.LowStockProducts, 2)
	assert.Equal(t, "masque", stats.LowStockProducts[0].Slug)
	assert.Equal(t, "serum", stats.LowStockProducts[1].Slug)
	assert.Len(t, stats.RecentOrders, 3)
}

func TestSettings(t *testing.T) {
	app, _ := newTestApp(t)

	// A missing key answers 200 with a null value, never 404.
	resp := doJSON(t, app, "GET", "/api/settings/snow_effect", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var setting map[string]interface{}
	decodeBody(t, resp, &setting)
	assert.Equal(t, "snow_effect", setting["key"])
	assert.Nil(t, setting["value"])

	cookie := login(t, app)
	resp = doJSON(t, app, "POST", "/api/settings", `{"key":"snow_effect","value":"true"}`, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/settings/snow_effect", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &setting)
	assert.Equal(t, "true", setting["value"])
}

func TestNewsPublishedFilter(t *testing.T) {
	app, store := newTestApp(t)

	hidden := false
	require.NoError(t, store.CreateNews((&models.InsertNews{Title: "Promo printemps", Category: "Offres", Date: "Mars 2026", Excerpt: "Remise sur les soins"}).Model()))
	require.NoError(t, store.CreateNews((&models.InsertNews{Title: "Brouillon", Category: "Interne", Date: "Avril 2026", Excerpt: "Pas encore publié", Published: &hidden}).Model()))

	resp := doJSON(t, app, "GET", "/api/news", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []models.News
	decodeBody(t, resp, &list)
	assert.Len(t, list, 2)

	resp = doJSON(t, app, "GET", "/api/news?published=true", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Promo printemps", list[0].Title)
}

func TestHealthCheck(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/health", "", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func intPtr(n int) *int { return &n }
