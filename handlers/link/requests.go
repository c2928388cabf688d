package handlers

import "anket.link/services"

type AnswerRequest struct {
	QuestionID string  `json:"question_id" validate:"required"`
	AnswerText *string `json:"answer_text" validate:"omitempty,max=10000"`
	OptionID   *string `json:"option_id"`
}

type SubmitResponseRequest struct {
	Answers []AnswerRequest `json:"answers" validate:"required,min=1,dive"`
}

func (r SubmitResponseRequest) toAnswers() []services.AnswerInput {
	answers := make([]services.AnswerInput, 0, len(r.Answers))
	for _, a := range r.Answers {
		answers = append(answers, services.AnswerInput{
			QuestionID: a.QuestionID,
			AnswerText: a.AnswerText,
			OptionID:   a.OptionID,
		})
	}
	return answers
}
