package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UUIDModel uygulama tarafında üretilen UUID birincil anahtarı.
type UUIDModel struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"id"`
}

// BeforeCreate ID boşsa yeni bir UUID atar.
func (m *UUIDModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// BaseModel zaman damgalı tablolar için ortak alanlar.
type BaseModel struct {
	UUIDModel
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
