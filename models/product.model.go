package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Product is a catalog entry. Money fields are decimal strings; CategoryID
// is a weak reference to Category.
type Product struct {
	ID                string         `gorm:"primaryKey;size:36" json:"id"`
	Name              string         `gorm:"size:255;not null" json:"name"`
	Slug              string         `gorm:"size:255;not null;unique" json:"slug"`
	Description       *string        `gorm:"type:text" json:"description"`
	ShortDescription  *string        `gorm:"type:text" json:"shortDescription"`
	Price             string         `gorm:"type:decimal(10,2);not null" json:"price"`
	CompareAtPrice    *string        `gorm:"type:decimal(10,2)" json:"compareAtPrice"`
	Cost              *string        `gorm:"type:decimal(10,2)" json:"cost"`
	SKU               *string        `gorm:"column:sku;size:100;uniqueIndex" json:"sku"`
	Barcode           *string        `gorm:"size:100" json:"barcode"`
	Stock             int            `gorm:"not null;default:0" json:"stock"`
	LowStockThreshold int            `gorm:"default:5" json:"lowStockThreshold"`
	CategoryID        *string        `gorm:"size:36;index" json:"categoryId"`
	Images            pq.StringArray `gorm:"type:text[]" json:"images"`
	Featured          bool           `gorm:"default:false" json:"featured"`
	Published         bool           `gorm:"default:true" json:"published"`
	Weight            *string        `gorm:"type:decimal(10,2)" json:"weight"`
	Dimensions        *string        `gorm:"size:100" json:"dimensions"`
	Tags              pq.StringArray `gorm:"type:text[]" json:"tags"`
	MetaTitle         *string        `json:"metaTitle"`
	MetaDescription   *string        `gorm:"type:text" json:"metaDescription"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// IsLowStock reports whether stock is positive but at or under the threshold.
func (p *Product) IsLowStock() bool {
	return p.Stock > 0 && p.Stock <= p.LowStockThreshold
}

// IsOutOfStock reports whether the product has no stock left.
func (p *Product) IsOutOfStock() bool {
	return p.Stock == 0
}

// InsertProduct is the creation payload for a product. Price accepts a JSON
// number or string and is normalized to a string.
type InsertProduct struct {
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Description       *string  `json:"description"`
	ShortDescription  *string  `json:"shortDescription"`
	Price             Money    `json:"price"`
	CompareAtPrice    *Money   `json:"compareAtPrice"`
	Cost              *Money   `json:"cost"`
	SKU               *string  `json:"sku"`
	Barcode           *string  `json:"barcode"`
	Stock             *int     `json:"stock"`
	LowStockThreshold *int     `json:"lowStockThreshold"`
	CategoryID        *string  `json:"categoryId"`
	Images            []string `json:"images"`
	Featured          *bool    `json:"featured"`
	Published         *bool    `json:"published"`
	Weight            *Money   `json:"weight"`
	Dimensions        *string  `json:"dimensions"`
	Tags              []string `json:"tags"`
	MetaTitle         *string  `json:"metaTitle"`
	MetaDescription   *string  `json:"metaDescription"`
}

func (in *InsertProduct) Validate() []ErrorDetail {
	var details []ErrorDetail
	if !minLen(in.Name, 2) {
		details = append(details, tooSmall("name", "Le nom doit contenir au moins 2 caractères"))
	}
	if !minLen(in.Slug, 2) {
		details = append(details, tooSmall("slug", "Le slug doit contenir au moins 2 caractères"))
	}
	if !in.Price.Valid() {
		details = append(details, invalid("price", "Le prix doit être un nombre décimal valide"))
	}
	if in.Stock != nil && *in.Stock < 0 {
		details = append(details, invalid("stock", "Le stock ne peut pas être négatif"))
	}
	if in.CompareAtPrice != nil && *in.CompareAtPrice != "" && !in.CompareAtPrice.Valid() {
		details = append(details, invalid("compareAtPrice", "Le prix comparé doit être un nombre décimal valide"))
	}
	return details
}

func (in *InsertProduct) Model() *Product {
	p := &Product{
		Name:              in.Name,
		Slug:              in.Slug,
		Description:       in.Description,
		ShortDescription:  in.ShortDescription,
		Price:             string(in.Price),
		CompareAtPrice:    orNil(in.CompareAtPrice),
		Cost:              orNil(in.Cost),
		SKU:               in.SKU,
		Barcode:           in.Barcode,
		LowStockThreshold: 5,
		CategoryID:        in.CategoryID,
		Images:            pq.StringArray(in.Images),
		Published:         true,
		Weight:            orNil(in.Weight),
		Dimensions:        in.Dimensions,
		Tags:              pq.StringArray(in.Tags),
		MetaTitle:         in.MetaTitle,
		MetaDescription:   in.MetaDescription,
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.LowStockThreshold != nil {
		p.LowStockThreshold = *in.LowStockThreshold
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.Published != nil {
		p.Published = *in.Published
	}
	if p.Images == nil {
		p.Images = pq.StringArray{}
	}
	if p.Tags == nil {
		p.Tags = pq.StringArray{}
	}
	return p
}
