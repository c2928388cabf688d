package services

import (
	"fmt"
	"strings"

	"anket.link/models"

	"github.com/go-playground/validator/v10"
)

var answerValidate = validator.New()

// answerTextTags soru tipine göre cevap metninin doğrulama etiketi.
var answerTextTags = map[models.QuestionType]string{
	models.QuestionTypeEmail:  "email",
	models.QuestionTypeNumber: "numeric",
	models.QuestionTypeURL:    "url",
	models.QuestionTypeDate:   "datetime=2006-01-02",
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

func hasOption(s *string) bool {
	return s != nil && *s != ""
}

// CheckRequiredCoverage her zorunlu sorunun en az bir dolu cevabı olduğunu doğrular.
func CheckRequiredCoverage(questions []models.Question, answers []AnswerInput) error {
	answered := make(map[string]bool, len(answers))
	for _, a := range answers {
		if hasText(a.AnswerText) || hasOption(a.OptionID) {
			answered[a.QuestionID] = true
		}
	}
	for _, q := range questions {
		if q.IsRequired && !answered[q.ID] {
			return fmt.Errorf("%w: zorunlu soru cevaplanmadı: %s", ErrResponseInvalidInput, q.ID)
		}
	}
	return nil
}

// ValidateAnswer tek bir cevabı sorusunun tipine göre doğrular.
func ValidateAnswer(q *models.Question, a AnswerInput) error {
	if q == nil {
		return fmt.Errorf("%w: soru bu forma ait değil: %s", ErrResponseInvalidInput, a.QuestionID)
	}

	if q.QuestionType == models.QuestionTypeCheckbox {
		if !hasOption(a.OptionID) {
			return fmt.Errorf("%w: checkbox sorusu için seçenek zorunludur: %s", ErrResponseInvalidInput, q.ID)
		}
		for _, o := range q.Options {
			if o.ID == *a.OptionID {
				return nil
			}
		}
		return fmt.Errorf("%w: seçenek bu soruya ait değil: %s", ErrResponseInvalidInput, *a.OptionID)
	}

	if hasOption(a.OptionID) {
		return fmt.Errorf("%w: %s tipindeki soru seçenek kabul etmez: %s", ErrResponseInvalidInput, q.QuestionType, q.ID)
	}
	if !hasText(a.AnswerText) {
		return fmt.Errorf("%w: cevap boş olamaz: %s", ErrResponseInvalidInput, q.ID)
	}
	if tag, ok := answerTextTags[q.QuestionType]; ok {
		if err := answerValidate.Var(strings.TrimSpace(*a.AnswerText), tag); err != nil {
			return fmt.Errorf("%w: cevap %s biçiminde değil: %s", ErrResponseInvalidInput, q.QuestionType, q.ID)
		}
	}
	return nil
}
