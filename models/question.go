package models

type QuestionType string

const (
	QuestionTypeText     QuestionType = "text"
	QuestionTypeEmail    QuestionType = "email"
	QuestionTypeNumber   QuestionType = "number"
	QuestionTypeDate     QuestionType = "date"
	QuestionTypeCheckbox QuestionType = "checkbox"
	QuestionTypeURL      QuestionType = "url"
)

// IsValid tanımlı soru tiplerinden biri mi?
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeText, QuestionTypeEmail, QuestionTypeNumber,
		QuestionTypeDate, QuestionTypeCheckbox, QuestionTypeURL:
		return true
	}
	return false
}

// Question formun sıralı sorusudur. Tipi oluşturulduktan sonra değişmez.
type Question struct {
	BaseModel
	FormID       string       `gorm:"type:varchar(36);index;not null" json:"form_id"`
	QuestionText string       `gorm:"type:text;not null" json:"question_text"`
	QuestionType QuestionType `gorm:"type:varchar(20);not null" json:"question_type"`
	IsRequired   bool         `gorm:"not null" json:"is_required"`
	OrderIndex   int          `gorm:"not null" json:"order_index"`

	Options []Option `gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"options"`
}

// Option yalnızca checkbox sorularına aittir.
type Option struct {
	UUIDModel
	QuestionID string `gorm:"type:varchar(36);index;not null" json:"-"`
	OptionText string `gorm:"type:text;not null" json:"option_text"`
	OrderIndex int    `gorm:"not null" json:"order_index"`
}
