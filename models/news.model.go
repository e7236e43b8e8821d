package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// News is an article shown on the public site when published. Date is
// free-text, not a structured date.
type News struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Category  string    `gorm:"size:100;not null" json:"category"`
	Date      string    `gorm:"size:100;not null" json:"date"`
	Image     *string   `json:"image"`
	Excerpt   string    `gorm:"type:text;not null" json:"excerpt"`
	Published bool      `gorm:"default:true" json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// InsertNews is the creation payload for a news article.
type InsertNews struct {
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Date      string  `json:"date"`
	Image     *string `json:"image"`
	Excerpt   string  `json:"excerpt"`
	Published *bool   `json:"published"`
}

func (in *InsertNews) Validate() []ErrorDetail {
	var details []ErrorDetail
	if !minLen(in.Title, 2) {
		details = append(details, tooSmall("title", "Le titre doit contenir au moins 2 caractères"))
	}
	if !minLen(in.Category, 2) {
		details = append(details, tooSmall("category", "La catégorie doit contenir au moins 2 caractères"))
	}
	if in.Date == "" {
		details = append(details, required("date", "La date est requise"))
	}
	if in.Excerpt == "" {
		details = append(details, required("excerpt", "L'extrait est requis"))
	}
	return details
}

func (in *InsertNews) Model() *News {
	n := &News{
		Title:     in.Title,
		Category:  in.Category,
		Date:      in.Date,
		Image:     in.Image,
		Excerpt:   in.Excerpt,
		Published: true,
	}
	if in.Published != nil {
		n.Published = *in.Published
	}
	return n
}
