package services

import (
	"time"

	"anket.link/models"
	"anket.link/pkg/optional"
	"anket.link/pkg/queryparams"
)

// --- Girdiler ---

type OptionInput struct {
	ID         *string
	OptionText string
	OrderIndex int
}

type QuestionInput struct {
	QuestionText string
	QuestionType models.QuestionType
	IsRequired   *bool // yoksa true
	OrderIndex   int
	Options      []OptionInput
}

type CreateFormInput struct {
	Title       string
	Description *string
	Questions   []QuestionInput
}

// FormPatch yalnızca gönderilen alanları taşır.
type FormPatch struct {
	Title       optional.Value[string]
	Description optional.Value[string]
	IsPublic    optional.Value[bool]
	Closed      optional.Value[bool]
}

func (p FormPatch) IsEmpty() bool {
	return !p.Title.IsSet() && !p.Description.IsSet() && !p.IsPublic.IsSet() && !p.Closed.IsSet()
}

type QuestionPatch struct {
	QuestionText optional.Value[string]
	IsRequired   optional.Value[bool]
	OrderIndex   optional.Value[int]
	Options      optional.Value[[]OptionInput]
}

func (p QuestionPatch) IsEmpty() bool {
	return !p.QuestionText.IsSet() && !p.IsRequired.IsSet() && !p.OrderIndex.IsSet() && !p.Options.IsSet()
}

type AnswerInput struct {
	QuestionID string
	AnswerText *string
	OptionID   *string
}

// --- Görünümler ---

type OptionView struct {
	ID         string `json:"id"`
	OptionText string `json:"option_text"`
	OrderIndex int    `json:"order_index"`
}

type QuestionView struct {
	ID           string              `json:"id"`
	QuestionText string              `json:"question_text"`
	QuestionType models.QuestionType `json:"question_type"`
	IsRequired   bool                `json:"is_required"`
	OrderIndex   int                 `json:"order_index"`
	Options      []OptionView        `json:"options"`
}

// FormView doldurma ekranının gördüğü form. Kapalı formda yalnızca ID ve Closed dolu olur.
type FormView struct {
	ID          string         `json:"id"`
	Title       string         `json:"title,omitempty"`
	Description *string        `json:"description,omitempty"`
	Closed      bool           `json:"closed"`
	Questions   []QuestionView `json:"questions,omitempty"`
}

// FormDetailView sahibin düzenleme ekranı.
type FormDetailView struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Closed      bool           `json:"closed"`
	IsPublic    bool           `json:"is_public"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Questions   []QuestionView `json:"questions"`
}

type AnswerView struct {
	ID         string  `json:"id"`
	QuestionID string  `json:"question_id"`
	AnswerText *string `json:"answer_text"`
	OptionID   *string `json:"option_id"`
	OptionText *string `json:"option_text"`
}

type ResponseView struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	Answers   []AnswerView `json:"answers"`
}

type ResponsePage struct {
	Responses []ResponseView             `json:"responses"`
	Meta      queryparams.PaginationMeta `json:"pagination"`
}

func newQuestionView(q models.Question) QuestionView {
	view := QuestionView{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		QuestionType: q.QuestionType,
		IsRequired:   q.IsRequired,
		OrderIndex:   q.OrderIndex,
		Options:      make([]OptionView, 0, len(q.Options)),
	}
	if q.QuestionType != models.QuestionTypeCheckbox {
		return view
	}
	for _, o := range q.Options {
		view.Options = append(view.Options, OptionView{ID: o.ID, OptionText: o.OptionText, OrderIndex: o.OrderIndex})
	}
	return view
}

func newQuestionViews(questions []models.Question) []QuestionView {
	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, newQuestionView(q))
	}
	return views
}
