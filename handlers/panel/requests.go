package handlers

import (
	"anket.link/models"
	"anket.link/pkg/optional"
	"anket.link/services"
)

type CreateOptionRequest struct {
	OptionText string `json:"option_text" validate:"required,max=500"`
	OrderIndex int    `json:"order_index" validate:"gte=0"`
}

type CreateQuestionRequest struct {
	QuestionText string                `json:"question_text" validate:"required,min=2"`
	QuestionType string                `json:"question_type" validate:"required,oneof=text email number date checkbox url"`
	IsRequired   *bool                 `json:"is_required"`
	OrderIndex   int                   `json:"order_index" validate:"gte=0"`
	Options      []CreateOptionRequest `json:"options" validate:"omitempty,dive"`
}

type CreateFormRequest struct {
	Title       string                  `json:"title" validate:"required,min=2,max=255"`
	Description *string                 `json:"description" validate:"omitempty,max=5000"`
	Questions   []CreateQuestionRequest `json:"questions" validate:"omitempty,dive"`
}

func (r CreateFormRequest) toInput() services.CreateFormInput {
	input := services.CreateFormInput{
		Title:       r.Title,
		Description: r.Description,
		Questions:   make([]services.QuestionInput, 0, len(r.Questions)),
	}
	for _, q := range r.Questions {
		question := services.QuestionInput{
			QuestionText: q.QuestionText,
			QuestionType: models.QuestionType(q.QuestionType),
			IsRequired:   q.IsRequired,
			OrderIndex:   q.OrderIndex,
		}
		for _, o := range q.Options {
			question.Options = append(question.Options, services.OptionInput{OptionText: o.OptionText, OrderIndex: o.OrderIndex})
		}
		input.Questions = append(input.Questions, question)
	}
	return input
}

type PatchFormRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	IsPublic    *bool   `json:"is_public"`
	Closed      *bool   `json:"closed"`
}

func (r PatchFormRequest) toPatch() services.FormPatch {
	return services.FormPatch{
		Title:       optional.FromPtr(r.Title),
		Description: optional.FromPtr(r.Description),
		IsPublic:    optional.FromPtr(r.IsPublic),
		Closed:      optional.FromPtr(r.Closed),
	}
}

type PatchOptionRequest struct {
	ID         *string `json:"id"`
	OptionText string  `json:"option_text" validate:"required,max=500"`
	OrderIndex int     `json:"order_index" validate:"gte=0"`
}

type PatchQuestionRequest struct {
	QuestionText *string               `json:"question_text" validate:"omitempty,min=2"`
	IsRequired   *bool                 `json:"is_required"`
	OrderIndex   *int                  `json:"order_index" validate:"omitempty,gte=0"`
	Options      *[]PatchOptionRequest `json:"options" validate:"omitempty,dive"`
}

func (r PatchQuestionRequest) toPatch() services.QuestionPatch {
	patch := services.QuestionPatch{
		QuestionText: optional.FromPtr(r.QuestionText),
		IsRequired:   optional.FromPtr(r.IsRequired),
		OrderIndex:   optional.FromPtr(r.OrderIndex),
	}
	if r.Options != nil {
		options := make([]services.OptionInput, 0, len(*r.Options))
		for _, o := range *r.Options {
			options = append(options, services.OptionInput{ID: o.ID, OptionText: o.OptionText, OrderIndex: o.OrderIndex})
		}
		patch.Options = optional.Some(options)
	}
	return patch
}
