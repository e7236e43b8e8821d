package storage

import (
	"fmt"
	"math/rand"
	"time"

	"institut_backend/models"
)

// Storage is the persistence contract shared by the GORM and in-memory
// implementations. Lookups return (nil, nil) when the id does not exist;
// deletes return (false, nil) in that case. Handlers turn both into 404s.
type Storage interface {
	// Users
	GetUser(id string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error

	// Contact submissions
	CreateContactSubmission(c *models.ContactSubmission) error
	GetContactSubmissions() ([]models.ContactSubmission, error)

	// Products
	GetProducts() ([]models.Product, error)
	GetProduct(id string) (*models.Product, error)
	GetProductBySlug(slug string) (*models.Product, error)
	CreateProduct(p *models.Product) error
	UpdateProduct(p *models.Product) (*models.Product, error)
	DeleteProduct(id string) (bool, error)

	// Categories
	GetCategories() ([]models.Category, error)
	GetCategory(id string) (*models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
	CreateCategory(c *models.Category) error
	UpdateCategory(c *models.Category) (*models.Category, error)
	DeleteCategory(id string) (bool, error)

	// Customers
	GetCustomers() ([]models.Customer, error)
	GetCustomer(id string) (*models.Customer, error)
	GetCustomerByEmail(email string) (*models.Customer, error)
	CreateCustomer(c *models.Customer) error
	UpdateCustomer(c *models.Customer) (*models.Customer, error)
	DeleteCustomer(id string) (bool, error)

	// Orders
	GetOrders() ([]models.Order, error)
	GetOrder(id string) (*models.Order, error)
	GetOrdersByCustomer(customerID string) ([]models.Order, error)
	CreateOrderWithItems(o *models.Order, items []*models.OrderItem) error
	UpdateOrder(o *models.Order) (*models.Order, error)
	DeleteOrder(id string) (bool, error)
	GetOrderItems(orderID string) ([]models.OrderItem, error)

	// News
	GetNews() ([]models.News, error)
	GetNewsArticle(id string) (*models.News, error)
	CreateNews(n *models.News) error
	UpdateNews(n *models.News) (*models.News, error)
	DeleteNews(id string) (bool, error)

	// Gallery
	GetGalleryItems() ([]models.Gallery, error)
	GetGalleryItem(id string) (*models.Gallery, error)
	CreateGalleryItem(g *models.Gallery) error
	UpdateGalleryItem(g *models.Gallery) (*models.Gallery, error)
	DeleteGalleryItem(id string) (bool, error)

	// Settings
	GetSetting(key string) (*models.Setting, error)
	SetSetting(key, value string) (*models.Setting, error)
}

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderNumber generates an externally visible order number with a
// time-based and a random component. Uniqueness is best-effort.
func NewOrderNumber() string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.Intn(len(orderNumberAlphabet))]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
