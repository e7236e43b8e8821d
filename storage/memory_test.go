package storage

import (
	"regexp"
	"testing"

	"institut_backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageMissLookups(t *testing.T) {
	s := NewMemoryStorage()

	p, err := s.GetProduct("nope")
	require.NoError(t, err)
	assert.Nil(t, p)

	updated, err := s.UpdateProduct(&models.Product{ID: "nope", Name: "x"})
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := s.DeleteProduct("nope")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryStorageProductsNewestFirst(t *testing.T) {
	s := NewMemoryStorage()
	first := &models.Product{Name: "Premier", Slug: "premier", Price: "10.00"}
	second := &models.Product{Name: "Second", Slug: "second", Price: "20.00"}
	require.NoError(t, s.CreateProduct(first))
	require.NoError(t, s.CreateProduct(second))

	products, err := s.GetProducts()
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Second", products[0].Name)
	assert.Equal(t, "Premier", products[1].Name)
}

func TestMemoryStorageCategoriesSortedByName(t *testing.T) {
	s := NewMemoryStorage()
	require.NoError(t, s.CreateCategory(&models.Category{Name: "Soins Visage", Slug: "soins-visage"}))
	require.NoError(t, s.CreateCategory(&models.Category{Name: "Maquillage", Slug: "maquillage"}))

	categories, err := s.GetCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Maquillage", categories[0].Name)
	assert.Equal(t, "Soins Visage", categories[1].Name)
}

func TestMemoryStorageUpdatePreservesIdentity(t *testing.T) {
	s := NewMemoryStorage()
	p := &models.Product{Name: "Crème", Slug: "creme", Price: "24.99"}
	require.NoError(t, s.CreateProduct(p))
	created := p.CreatedAt

	patch := *p
	patch.Name = "Crème Riche"
	updated, err := s.UpdateProduct(&patch)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, created, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created))
	assert.Equal(t, "Crème Riche", updated.Name)
}

func TestMemoryStorageCreateOrderWithItems(t *testing.T) {
	s := NewMemoryStorage()
	order := &models.Order{CustomerID: "c1", Status: "pending", PaymentStatus: "pending", Subtotal: "20.00", Total: "24.00"}
	items := []*models.OrderItem{
		{ProductID: "p1", ProductName: "Crème", Quantity: 2, Price: "10.00", Total: "20.00"},
	}
	require.NoError(t, s.CreateOrderWithItems(order, items))

	assert.NotEmpty(t, order.ID)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d+-[0-9A-Z]{9}$`), order.OrderNumber)

	stored, err := s.GetOrderItems(order.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, order.ID, stored[0].OrderID)
	assert.Equal(t, "Crème", stored[0].ProductName)
}

func TestMemoryStorageUpdateOrderKeepsNumber(t *testing.T) {
	s := NewMemoryStorage()
	order := &models.Order{CustomerID: "c1", Status: "pending", PaymentStatus: "pending", Subtotal: "10.00", Total: "10.00"}
	require.NoError(t, s.CreateOrderWithItems(order, nil))
	number := order.OrderNumber

	patch := *order
	patch.OrderNumber = "ORD-FORGED"
	patch.Status = "processing"
	updated, err := s.UpdateOrder(&patch)
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, number, updated.OrderNumber)
	assert.Equal(t, "processing", updated.Status)
}

func TestMemoryStorageGetOrdersByCustomer(t *testing.T) {
	s := NewMemoryStorage()
	require.NoError(t, s.CreateOrderWithItems(&models.Order{CustomerID: "c1", Subtotal: "1", Total: "1"}, nil))
	require.NoError(t, s.CreateOrderWithItems(&models.Order{CustomerID: "c2", Subtotal: "2", Total: "2"}, nil))
	require.NoError(t, s.CreateOrderWithItems(&models.Order{CustomerID: "c1", Subtotal: "3", Total: "3"}, nil))

	orders, err := s.GetOrdersByCustomer("c1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "3", orders[0].Total)
	assert.Equal(t, "1", orders[1].Total)
}

func TestMemoryStorageGallerySortedByDisplayOrder(t *testing.T) {
	s := NewMemoryStorage()
	require.NoError(t, s.CreateGalleryItem(&models.Gallery{ImageURL: "/b.jpg", DisplayOrder: 2}))
	require.NoError(t, s.CreateGalleryItem(&models.Gallery{ImageURL: "/a.jpg", DisplayOrder: 1}))

	items, err := s.GetGalleryItems()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "/a.jpg", items[0].ImageURL)
	assert.Equal(t, "/b.jpg", items[1].ImageURL)
}

func TestMemoryStorageSettingsUpsert(t *testing.T) {
	s := NewMemoryStorage()

	missing, err := s.GetSetting("snow_effect")
	require.NoError(t, err)
	assert.Nil(t, missing)

	created, err := s.SetSetting("snow_effect", "true")
	require.NoError(t, err)
	assert.Equal(t, "true", created.Value)

	updated, err := s.SetSetting("snow_effect", "false")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "false", updated.Value)
}

func TestNewOrderNumberUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := NewOrderNumber()
		assert.False(t, seen[n])
		seen[n] = true
	}
}
