package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups products. ParentID is a weak self-reference allowing an
// optional tree; no cycle detection, no foreign-key constraint.
type Category struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:255;not null;unique" json:"name"`
	Slug        string    `gorm:"size:255;not null;unique" json:"slug"`
	Description *string   `gorm:"type:text" json:"description"`
	Image       *string   `json:"image"`
	ParentID    *string   `gorm:"size:36" json:"parentId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// InsertCategory is the creation payload for a category.
type InsertCategory struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	ParentID    *string `json:"parentId"`
}

func (in *InsertCategory) Validate() []ErrorDetail {
	var details []ErrorDetail
	if !minLen(in.Name, 2) {
		details = append(details, tooSmall("name", "Le nom doit contenir au moins 2 caractères"))
	}
	if !minLen(in.Slug, 2) {
		details = append(details, tooSmall("slug", "Le slug doit contenir au moins 2 caractères"))
	}
	return details
}

func (in *InsertCategory) Model() *Category {
	return &Category{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Image:       in.Image,
		ParentID:    in.ParentID,
	}
}
