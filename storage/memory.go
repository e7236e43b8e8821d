package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"institut_backend/models"
)

// MemoryStorage is a mutex-guarded in-memory Storage used by tests and as
// the development fallback when no DATABASE_URL is configured. Slices keep
// insertion order; listings derive their ordering from it.
type MemoryStorage struct {
	mu sync.RWMutex

	users        []models.User
	contacts     []models.ContactSubmission
	products     []models.Product
	categories   []models.Category
	customers    []models.Customer
	orders       []models.Order
	orderItems   []models.OrderItem
	news         []models.News
	galleryItems []models.Gallery
	settings     []models.Setting
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// ============================================
// USERS
// ============================================

func (s *MemoryStorage) GetUser(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&user.ID)
	s.users = append(s.users, *user)
	return nil
}

// ============================================
// CONTACT SUBMISSIONS
// ============================================

func (s *MemoryStorage) CreateContactSubmission(c *models.ContactSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&c.ID)
	c.CreatedAt = time.Now()
	s.contacts = append(s.contacts, *c)
	return nil
}

func (s *MemoryStorage) GetContactSubmissions() ([]models.ContactSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ContactSubmission, 0, len(s.contacts))
	for i := len(s.contacts) - 1; i >= 0; i-- {
		out = append(out, s.contacts[i])
	}
	return out, nil
}

// ============================================
// PRODUCTS
// ============================================

func (s *MemoryStorage) GetProducts() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0, len(s.products))
	for i := len(s.products) - 1; i >= 0; i-- {
		out = append(out, s.products[i])
	}
	return out, nil
}

func (s *MemoryStorage) GetProduct(id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) GetProductBySlug(slug string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.Slug == slug {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) CreateProduct(p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&p.ID)
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products = append(s.products, *p)
	return nil
}

func (s *MemoryStorage) UpdateProduct(p *models.Product) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == p.ID {
			p.CreatedAt = s.products[i].CreatedAt
			p.UpdatedAt = time.Now()
			s.products[i] = *p
			return p, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) DeleteProduct(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ============================================
// CATEGORIES
// ============================================

func (s *MemoryStorage) GetCategories() ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *MemoryStorage) GetCategory(id string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) GetCategoryBySlug(slug string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Slug == slug {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) CreateCategory(c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&c.ID)
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.categories = append(s.categories, *c)
	return nil
}

func (s *MemoryStorage) UpdateCategory(c *models.Category) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == c.ID {
			c.CreatedAt = s.categories[i].CreatedAt
			c.UpdatedAt = time.Now()
			s.categories[i] = *c
			return c, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) DeleteCategory(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ============================================
// CUSTOMERS
// ============================================

func (s *MemoryStorage) GetCustomers() ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Customer, 0, len(s.customers))
	for i := len(s.customers) - 1; i >= 0; i-- {
		out = append(out, s.customers[i])
	}
	return out, nil
}

func (s *MemoryStorage) GetCustomer(id string) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) GetCustomerByEmail(email string) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.Email == email {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) CreateCustomer(c *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&c.ID)
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.customers = append(s.customers, *c)
	return nil
}

func (s *MemoryStorage) UpdateCustomer(c *models.Customer) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			c.CreatedAt = s.customers[i].CreatedAt
			c.UpdatedAt = time.Now()
			s.customers[i] = *c
			return c, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) DeleteCustomer(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ============================================
// ORDERS
// ============================================

func (s *MemoryStorage) GetOrders() ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, s.orders[i])
	}
	return out, nil
}

func (s *MemoryStorage) GetOrder(id string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			o := o
			return &o, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) GetOrdersByCustomer(customerID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for i := len(s.orders) - 1; i >= 0; i-- {
		if s.orders[i].CustomerID == customerID {
			out = append(out, s.orders[i])
		}
	}
	return out, nil
}

func (s *MemoryStorage) CreateOrderWithItems(o *models.Order, items []*models.OrderItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&o.ID)
	if o.OrderNumber == "" {
		o.OrderNumber = NewOrderNumber()
	}
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	s.orders = append(s.orders, *o)
	for _, item := range items {
		ensureID(&item.ID)
		item.OrderID = o.ID
		item.CreatedAt = time.Now()
		s.orderItems = append(s.orderItems, *item)
	}
	return nil
}

func (s *MemoryStorage) UpdateOrder(o *models.Order) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == o.ID {
			o.CreatedAt = s.orders[i].CreatedAt
			o.OrderNumber = s.orders[i].OrderNumber
			o.UpdatedAt = time.Now()
			s.orders[i] = *o
			return o, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) DeleteOrder(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStorage) GetOrderItems(orderID string) ([]models.OrderItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.OrderItem
	for _, item := range s.orderItems {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}
	return out, nil
}

// ============================================
// NEWS
// ============================================

func (s *MemoryStorage) GetNews() ([]models.News, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.News, 0, len(s.news))
	for i := len(s.news) - 1; i >= 0; i-- {
		out = append(out, s.news[i])
	}
	return out, nil
}

func (s *MemoryStorage) GetNewsArticle(id string) (*models.News, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range s.news {
		if n.ID == id {
			n := n
			return &n, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) CreateNews(n *models.News) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&n.ID)
	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now
	s.news = append(s.news, *n)
	return nil
}

func (s *MemoryStorage) UpdateNews(n *models.News) (*models.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.news {
		if s.news[i].ID == n.ID {
			n.CreatedAt = s.news[i].CreatedAt
			n.UpdatedAt = time.Now()
			s.news[i] = *n
			return n, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) DeleteNews(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.news {
		if s.news[i].ID == id {
			s.news = append(s.news[:i], s.news[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ============================================
// GALLERY
// ============================================

func (s *MemoryStorage) GetGalleryItems() ([]models.Gallery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Gallery, len(s.galleryItems))
	copy(out, s.galleryItems)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (s *MemoryStorage) GetGalleryItem(id string) (*models.Gallery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.galleryItems {
		if g.ID == id {
			g := g
			return &g, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) CreateGalleryItem(g *models.Gallery) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ensureID(&g.ID)
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now
	s.galleryItems = append(s.galleryItems, *g)
	return nil
}

func (s *MemoryStorage) UpdateGalleryItem(g *models.Gallery) (*models.Gallery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.galleryItems {
		if s.galleryItems[i].ID == g.ID {
			g.CreatedAt = s.galleryItems[i].CreatedAt
			g.UpdatedAt = time.Now()
			s.galleryItems[i] = *g
			return g, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) DeleteGalleryItem(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.galleryItems {
		if s.galleryItems[i].ID == id {
			s.galleryItems = append(s.galleryItems[:i], s.galleryItems[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ============================================
// SETTINGS
// ============================================

func (s *MemoryStorage) GetSetting(key string) (*models.Setting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, setting := range s.settings {
		if setting.Key == key {
			setting := setting
			return &setting, nil
		}
	}
	return nil, nil
}

func (s *MemoryStorage) SetSetting(key, value string) (*models.Setting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.settings {
		if s.settings[i].Key == key {
			s.settings[i].Value = value
			s.settings[i].UpdatedAt = time.Now()
			setting := s.settings[i]
			return &setting, nil
		}
	}
	setting := models.Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	ensureID(&setting.ID)
	s.settings = append(s.settings, setting)
	copied := setting
	return &copied, nil
}
