package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactSubmission is a write-once contact form entry. Listed newest-first
// to authenticated callers only.
type ContactSubmission struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     *string   `gorm:"size:50" json:"phone"`
	Service   *string   `gorm:"size:100" json:"service"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func (c *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// InsertContact is the creation payload for a contact submission.
type InsertContact struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Service *string `json:"service"`
	Message string  `json:"message"`
}

func (in *InsertContact) Validate() []ErrorDetail {
	var details []ErrorDetail
	if !minLen(in.Name, 2) {
		details = append(details, tooSmall("name", "Le nom doit contenir au moins 2 caractères"))
	}
	if !validEmail(in.Email) {
		details = append(details, invalid("email", "Email invalide"))
	}
	if !minLen(in.Message, 10) {
		details = append(details, tooSmall("message", "Le message doit contenir au moins 10 caractères"))
	}
	return details
}

func (in *InsertContact) Model() *ContactSubmission {
	return &ContactSubmission{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Service: in.Service,
		Message: in.Message,
	}
}
