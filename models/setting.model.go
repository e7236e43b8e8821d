package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Setting is a key/value store for site feature flags (e.g. the snow
// effect toggle). Values are caller-encoded strings.
type Setting struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Key       string    `gorm:"size:100;not null;unique" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Setting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// InsertSetting is the upsert payload for a setting.
type InsertSetting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (in *InsertSetting) Validate() []ErrorDetail {
	var details []ErrorDetail
	if in.Key == "" {
		details = append(details, required("key", "La clé est requise"))
	}
	if in.Value == "" {
		details = append(details, required("value", "La valeur est requise"))
	}
	return details
}
