package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a backoffice account. Passwords are stored as bcrypt hashes,
// never returned in JSON.
type User struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Username string `gorm:"size:100;not null;unique" json:"username"`
	Password string `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
