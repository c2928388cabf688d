package models

// User form sahibidir.
type User struct {
	BaseModel
	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	Email      string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password   string `gorm:"type:varchar(255);not null" json:"-"`
	IsVerified bool   `gorm:"not null" json:"is_verified"`
}
