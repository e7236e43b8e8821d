package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertProductValidate(t *testing.T) {
	valid := InsertProduct{Name: "Crème Hydratante", Slug: "creme-hydratante", Price: "24.99"}
	assert.Empty(t, valid.Validate())

	short := InsertProduct{Name: "C", Slug: "c", Price: "24.99"}
	details := short.Validate()
	require.Len(t, details, 2)
	assert.Equal(t, "name", details[0].Field)
	assert.Equal(t, "Le nom doit contenir au moins 2 caractères", details[0].Message)
	assert.Equal(t, "slug", details[1].Field)

	badPrice := InsertProduct{Name: "Crème", Slug: "creme", Price: "abc"}
	details = badPrice.Validate()
	require.Len(t, details, 1)
	assert.Equal(t, "price", details[0].Field)
	assert.Equal(t, "Le prix doit être un nombre décimal valide", details[0].Message)

	negative := -1
	badStock := InsertProduct{Name: "Crème", Slug: "creme", Price: "24.99", Stock: &negative}
	details = badStock.Validate()
	require.Len(t, details, 1)
	assert.Equal(t, "stock", details[0].Field)
	assert.Equal(t, "Le stock ne peut pas être négatif", details[0].Message)
}

func TestInsertProductModelDefaults(t *testing.T) {
	in := InsertProduct{Name: "Crème", Slug: "creme", Price: "24.99"}
	p := in.Model()

	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, 5, p.LowStockThreshold)
	assert.True(t, p.Published)
	assert.False(t, p.Featured)
	assert.NotNil(t, p.Images)
	assert.NotNil(t, p.Tags)
	assert.Empty(t, p.Images)
}

func TestInsertProductModelOverrides(t *testing.T) {
	stock, threshold := 12, 3
	published := false
	in := InsertProduct{
		Name: "Sérum", Slug: "serum", Price: "49.90",
		Stock: &stock, LowStockThreshold: &threshold, Published: &published,
		Images: []string{"/uploads/serum.jpg"},
	}
	p := in.Model()

	assert.Equal(t, 12, p.Stock)
	assert.Equal(t, 3, p.LowStockThreshold)
	assert.False(t, p.Published)
	assert.Equal(t, "/uploads/serum.jpg", p.Images[0])
}

func TestMoneyAcceptsNumberOrString(t *testing.T) {
	var in InsertProduct
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Crème","slug":"creme","price":24.99}`), &in))
	assert.Equal(t, Money("24.99"), in.Price)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"Crème","slug":"creme","price":"19.50"}`), &in))
	assert.Equal(t, Money("19.50"), in.Price)
	assert.Empty(t, in.Validate())
}

func TestProductStockPredicates(t *testing.T) {
	p := Product{Stock: 3, LowStockThreshold: 5}
	assert.True(t, p.IsLowStock())
	assert.False(t, p.IsOutOfStock())

	p.Stock = 5
	assert.True(t, p.IsLowStock())

	p.Stock = 6
	assert.False(t, p.IsLowStock())

	p.Stock = 0
	assert.False(t, p.IsLowStock())
	assert.True(t, p.IsOutOfStock())
}
