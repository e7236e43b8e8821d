package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gallery is one image of the public gallery. ProductID is a weak
// reference to a product.
type Gallery struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	ImageURL     string    `gorm:"column:image_url;not null" json:"imageUrl"`
	Caption      *string   `gorm:"size:255" json:"caption"`
	ProductID    *string   `gorm:"size:36" json:"productId"`
	DisplayOrder int       `gorm:"default:0" json:"displayOrder"`
	Published    bool      `gorm:"default:true" json:"published"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (g *Gallery) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

// InsertGallery is the creation payload for a gallery item.
type InsertGallery struct {
	ImageURL     string  `json:"imageUrl"`
	Caption      *string `json:"caption"`
	ProductID    *string `json:"productId"`
	DisplayOrder *int    `json:"displayOrder"`
	Published    *bool   `json:"published"`
}

func (in *InsertGallery) Validate() []ErrorDetail {
	var details []ErrorDetail
	if in.ImageURL == "" {
		details = append(details, required("imageUrl", "L'URL de l'image est requise"))
	}
	return details
}

func (in *InsertGallery) Model() *Gallery {
	g := &Gallery{
		ImageURL:  in.ImageURL,
		Caption:   in.Caption,
		ProductID: in.ProductID,
		Published: true,
	}
	if in.DisplayOrder != nil {
		g.DisplayOrder = *in.DisplayOrder
	}
	if in.Published != nil {
		g.Published = *in.Published
	}
	return g
}
