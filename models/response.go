package models

import "time"

// Response bir formun tek gönderimidir; oluşturulduktan sonra değişmez.
type Response struct {
	UUIDModel
	FormID    string    `gorm:"type:varchar(36);index;not null" json:"form_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Answers []Answer `gorm:"foreignKey:ResponseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"answers,omitempty"`
}

// Answer bir gönderimdeki tek cevap. Metin ve seçenek alanlarından biri dolu olur.
type Answer struct {
	UUIDModel
	ResponseID string    `gorm:"type:varchar(36);index;not null" json:"response_id"`
	QuestionID string    `gorm:"type:varchar(36);index;not null" json:"question_id"`
	AnswerText *string   `gorm:"type:text" json:"answer_text"`
	OptionID   *string   `gorm:"type:varchar(36);index" json:"option_id"`
	Position   int       `gorm:"not null" json:"-"` // gönderimdeki sıra
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`

	Question *Question `gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Option   *Option   `gorm:"foreignKey:OptionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
