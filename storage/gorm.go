package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"institut_backend/models"
)

// GormStorage implements Storage on a GORM Postgres connection.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func notFoundToNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// ============================================
// USERS
// ============================================

func (s *GormStorage) GetUser(id string) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &u, nil
}

func (s *GormStorage) GetUserByUsername(username string) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, "username = ?", username).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &u, nil
}

func (s *GormStorage) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

// ============================================
// CONTACT SUBMISSIONS
// ============================================

func (s *GormStorage) CreateContactSubmission(c *models.ContactSubmission) error {
	return s.db.Create(c).Error
}

func (s *GormStorage) GetContactSubmissions() ([]models.ContactSubmission, error) {
	var subs []models.ContactSubmission
	err := s.db.Order("created_at desc").Find(&subs).Error
	return subs, err
}

// ============================================
// PRODUCTS
// ============================================

func (s *GormStorage) GetProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Order("created_at desc").Find(&products).Error
	return products, err
}

func (s *GormStorage) GetProduct(id string) (*models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &p, nil
}

func (s *GormStorage) GetProductBySlug(slug string) (*models.Product, error) {
	var p models.Product
	if err := s.db.First(&p, "slug = ?", slug).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &p, nil
}

func (s *GormStorage) CreateProduct(p *models.Product) error {
	return s.db.Create(p).Error
}

func (s *GormStorage) UpdateProduct(p *models.Product) (*models.Product, error) {
	tx := s.db.Model(p).Select("*").Omit("id", "created_at").Updates(p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return p, nil
}

func (s *GormStorage) DeleteProduct(id string) (bool, error) {
	tx := s.db.Delete(&models.Product{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

// ============================================
// CATEGORIES
// ============================================

func (s *GormStorage) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("name asc").Find(&categories).Error
	return categories, err
}

func (s *GormStorage) GetCategory(id string) (*models.Category, error) {
	var c models.Category
	if err := s.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &c, nil
}

func (s *GormStorage) GetCategoryBySlug(slug string) (*models.Category, error) {
	var c models.Category
	if err := s.db.First(&c, "slug = ?", slug).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &c, nil
}

func (s *GormStorage) CreateCategory(c *models.Category) error {
	return s.db.Create(c).Error
}

func (s *GormStorage) UpdateCategory(c *models.Category) (*models.Category, error) {
	tx := s.db.Model(c).Select("*").Omit("id", "created_at").Updates(c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return c, nil
}

func (s *GormStorage) DeleteCategory(id string) (bool, error) {
	tx := s.db.Delete(&models.Category{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

// ============================================
// CUSTOMERS
// ============================================

func (s *GormStorage) GetCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.Order("created_at desc").Find(&customers).Error
	return customers, err
}

func (s *GormStorage) GetCustomer(id string) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.First(&c, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &c, nil
}

func (s *GormStorage) GetCustomerByEmail(email string) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.First(&c, "email = ?", email).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &c, nil
}

func (s *GormStorage) CreateCustomer(c *models.Customer) error {
	return s.db.Create(c).Error
}

func (s *GormStorage) UpdateCustomer(c *models.Customer) (*models.Customer, error) {
	tx := s.db.Model(c).Select("*").Omit("id", "created_at").Updates(c)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return c, nil
}

func (s *GormStorage) DeleteCustomer(id string) (bool, error) {
	tx := s.db.Delete(&models.Customer{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

// ============================================
// ORDERS
// ============================================

func (s *GormStorage) GetOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Order("created_at desc").Find(&orders).Error
	return orders, err
}

func (s *GormStorage) GetOrder(id string) (*models.Order, error) {
	var o models.Order
	if err := s.db.First(&o, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &o, nil
}

func (s *GormStorage) GetOrdersByCustomer(customerID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Where("customer_id = ?", customerID).Order("created_at desc").Find(&orders).Error
	return orders, err
}

// CreateOrderWithItems persists the order and its items in one transaction;
// a failing item insert rolls the order back.
func (s *GormStorage) CreateOrderWithItems(o *models.Order, items []*models.OrderItem) error {
	if o.OrderNumber == "" {
		o.OrderNumber = NewOrderNumber()
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.OrderID = o.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStorage) UpdateOrder(o *models.Order) (*models.Order, error) {
	tx := s.db.Model(o).Select("*").Omit("id", "created_at", "order_number").Updates(o)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return o, nil
}

func (s *GormStorage) DeleteOrder(id string) (bool, error) {
	tx := s.db.Delete(&models.Order{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

func (s *GormStorage) GetOrderItems(orderID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := s.db.Where("order_id = ?", orderID).Order("created_at asc").Find(&items).Error
	return items, err
}

// ============================================
// NEWS
// ============================================

func (s *GormStorage) GetNews() ([]models.News, error) {
	var news []models.News
	err := s.db.Order("created_at desc").Find(&news).Error
	return news, err
}

func (s *GormStorage) GetNewsArticle(id string) (*models.News, error) {
	var n models.News
	if err := s.db.First(&n, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &n, nil
}

func (s *GormStorage) CreateNews(n *models.News) error {
	return s.db.Create(n).Error
}

func (s *GormStorage) UpdateNews(n *models.News) (*models.News, error) {
	tx := s.db.Model(n).Select("*").Omit("id", "created_at").Updates(n)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return n, nil
}

func (s *GormStorage) DeleteNews(id string) (bool, error) {
	tx := s.db.Delete(&models.News{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

// ============================================
// GALLERY
// ============================================

func (s *GormStorage) GetGalleryItems() ([]models.Gallery, error) {
	var items []models.Gallery
	err := s.db.Order("display_order asc, created_at desc").Find(&items).Error
	return items, err
}

func (s *GormStorage) GetGalleryItem(id string) (*models.Gallery, error) {
	var g models.Gallery
	if err := s.db.First(&g, "id = ?", id).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &g, nil
}

func (s *GormStorage) CreateGalleryItem(g *models.Gallery) error {
	return s.db.Create(g).Error
}

func (s *GormStorage) UpdateGalleryItem(g *models.Gallery) (*models.Gallery, error) {
	tx := s.db.Model(g).Select("*").Omit("id", "created_at").Updates(g)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	return g, nil
}

func (s *GormStorage) DeleteGalleryItem(id string) (bool, error) {
	tx := s.db.Delete(&models.Gallery{}, "id = ?", id)
	return tx.RowsAffected > 0, tx.Error
}

// ============================================
// SETTINGS
// ============================================

func (s *GormStorage) GetSetting(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := s.db.First(&setting, "key = ?", key).Error; err != nil {
		return nil, notFoundToNil(err)
	}
	return &setting, nil
}

func (s *GormStorage) SetSetting(key, value string) (*models.Setting, error) {
	setting := models.Setting{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": time.Now(),
		}),
	}).Create(&setting).Error
	if err != nil {
		return nil, err
	}
	return s.GetSetting(key)
}
