package models

// Form bir kullanıcıya ait geri bildirim formudur.
// Soru sayısı sıfıra indiğinde Closed zorunlu olarak true olur.
type Form struct {
	BaseModel
	UserID      string  `gorm:"type:varchar(36);index;not null" json:"user_id"`
	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	Closed      bool    `gorm:"not null" json:"closed"`
	IsPublic    bool    `gorm:"not null" json:"is_public"`

	// GORM İlişkileri
	User      *User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Questions []Question `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"questions,omitempty"`
	Responses []Response `gorm:"foreignKey:FormID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
