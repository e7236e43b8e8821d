package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is a shop customer record managed from the backoffice.
type Customer struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Email      string    `gorm:"size:255;not null;unique" json:"email"`
	FirstName  string    `gorm:"size:100;not null" json:"firstName"`
	LastName   string    `gorm:"size:100;not null" json:"lastName"`
	Phone      *string   `gorm:"size:50" json:"phone"`
	Company    *string   `gorm:"size:255" json:"company"`
	Address    *string   `gorm:"type:text" json:"address"`
	City       *string   `gorm:"size:100" json:"city"`
	PostalCode *string   `gorm:"size:20" json:"postalCode"`
	Country    string    `gorm:"size:100;default:'France'" json:"country"`
	Notes      *string   `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// InsertCustomer is the creation payload for a customer.
type InsertCustomer struct {
	Email      string  `json:"email"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Phone      *string `json:"phone"`
	Company    *string `json:"company"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postalCode"`
	Country    string  `json:"country"`
	Notes      *string `json:"notes"`
}

func (in *InsertCustomer) Validate() []ErrorDetail {
	var details []ErrorDetail
	if !validEmail(in.Email) {
		details = append(details, invalid("email", "Email invalide"))
	}
	if !minLen(in.FirstName, 2) {
		details = append(details, tooSmall("firstName", "Le prénom doit contenir au moins 2 caractères"))
	}
	if !minLen(in.LastName, 2) {
		details = append(details, tooSmall("lastName", "Le nom doit contenir au moins 2 caractères"))
	}
	return details
}

func (in *InsertCustomer) Model() *Customer {
	c := &Customer{
		Email:      in.Email,
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Phone:      in.Phone,
		Company:    in.Company,
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.PostalCode,
		Country:    in.Country,
		Notes:      in.Notes,
	}
	if c.Country == "" {
		c.Country = "France"
	}
	return c
}
