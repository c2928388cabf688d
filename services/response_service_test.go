package services

import (
	"context"
	"testing"

	"anket.link/models"
	"anket.link/pkg/optional"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSubmitResponseStoresAnswers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	form := env.createPublicForm(t, sampleFormInput())
	box := form.Questions[2]

	id, err := env.responses.SubmitResponse(ctx, form.ID, []AnswerInput{
		{QuestionID: form.Questions[0].ID, AnswerText: strPtr("Ayşe")},
		{QuestionID: box.ID, OptionID: &box.Options[0].ID},
		{QuestionID: box.ID, OptionID: &box.Options[1].ID},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	page, err := env.responses.ListResponses(ctx, form.ID, env.ownerID, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Responses, 1)

	answers := page.Responses[0].Answers
	require.Len(t, answers, 3)
	assert.Equal(t, "Ayşe", *answers[0].AnswerText)
	assert.Nil(t, answers[0].OptionID)
	assert.Nil(t, answers[0].OptionText)
	assert.Nil(t, answers[1].AnswerText)
	assert.Equal(t, "Kırmızı", *answers[1].OptionText)
	assert.Equal(t, "Mavi", *answers[2].OptionText)
}

func TestSubmitResponseMissingRequiredCommitsNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	form := env.createPublicForm(t, sampleFormInput())

	_, err := env.responses.SubmitResponse(ctx, form.ID, []AnswerInput{
		{QuestionID: form.Questions[0].ID, AnswerText: strPtr("Ayşe")},
	})
	require.ErrorIs(t, err, ErrResponseInvalidInput)
	assert.Contains(t, err.Error(), form.Questions[2].ID)

	assert.Zero(t, env.count(t, &models.Response{}))
	assert.Zero(t, env.count(t, &models.Answer{}))
}

func TestSubmitResponseInvalidAnswerRollsBack(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	form := env.createPublicForm(t, sampleFormInput())
	box := form.Questions[2]

	_, err := env.responses.SubmitResponse(ctx, form.ID, []AnswerInput{
		{QuestionID: form.Questions[0].ID, AnswerText: strPtr("Ayşe")},
		{QuestionID: form.Questions[1].ID, AnswerText: strPtr("e-posta değil")},
		{QuestionID: box.ID, OptionID: &box.Options[0].ID},
	})
	assert.ErrorIs(t, err, ErrResponseInvalidInput)

	_, err = env.responses.SubmitResponse(ctx, form.ID, []AnswerInput{
		{QuestionID: form.Questions[0].ID, AnswerText: strPtr("Ayşe")},
		{QuestionID: "baska-formun-sorusu", AnswerText: strPtr("x")},
		{QuestionID: box.ID, OptionID: &box.Options[0].ID},
	})
	assert.ErrorIs(t, err, ErrResponseInvalidInput)

	assert.Zero(t, env.count(t, &models.Response{}))
}

func TestSubmitResponseRollsBackAfterPartialWrites(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	form := env.createPublicForm(t, sampleFormInput())
	box := form.Questions[2]

	// yanıt satırı ve ilk cevap yazıldıktan sonra ikinci cevap başarısız olur
	env.beforeInsert(t, "answers", func(tx *gorm.DB) {
		if a, ok := tx.Statement.Dest.(*models.Answer); ok && a.Position == 1 {
			_ = tx.AddError(errInjectedWrite)
		}
	})

	_, err := env.responses.SubmitResponse(ctx, form.ID, []AnswerInput{
		{QuestionID: form.Questions[0].ID, AnswerText: strPtr("Ayşe")},
		{QuestionID: box.ID, OptionID: &box.Options[0].ID},
		{QuestionID: box.ID, OptionID: &box.Options[1].ID},
	})
	assert.ErrorIs(t, err, ErrResponseSubmitFailed)
	assert.Equal(t, KindInternal, KindOf(err))

	assert.Zero(t, env.count(t, &models.Response{}))
	assert.Zero(t, env.count(t, &models.Answer{}))
}

func TestSubmitResponseOptionRemovedBeforeInsert(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	form := env.createPublicForm(t, sampleFormInput())
	box := form.Questions[2]

	// doğrulamadan sonra, cevap eklenmeden hemen önce seçenek silinir
	env.beforeInsert(t, "answers", func(tx *gorm.DB) {
		a, ok := tx.Statement.Dest.(*models.Answer)
		if !ok || a.OptionID == nil {
			return
		}
		if err := tx.Session(&gorm.Session{NewDB: true}).Exec("DELETE FROM options WHERE id = ?", *a.OptionID).Error; err != nil {
			_ = tx.AddError(err)
		}
	})

	_, err := env.responses.SubmitResponse(ctx, form.ID, []AnswerInput{
		{QuestionID: form.Questions[0].ID, AnswerText: strPtr("Ayşe")},
		{QuestionID: box.ID, OptionID: &box.Options[0].ID},
	})
	require.ErrorIs(t, err, ErrResponseInvalidInput)
	assert.Contains(t, err.Error(), "artık mevcut değil")

	assert.Zero(t, env.count(t, &models.Response{}))
	assert.Zero(t, env.count(t, &models.Answer{}))
	// silme de geri alınır
	assert.EqualValues(t, 2, env.count(t, &models.Option{}))
}

func TestSubmitResponseStoresTrimmedText(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	form := env.createPublicForm(t, CreateFormInput{
		Title: "Puan",
		Questions: []QuestionInput{
			{QuestionText: "Kaç puan?", QuestionType: models.QuestionTypeNumber},
			{QuestionText: "Yorum", QuestionType: models.QuestionTypeText, IsRequired: boolPtr(false), OrderIndex: 1},
		},
	})

	_, err := env.responses.SubmitResponse(ctx, form.ID, []AnswerInput{
		{QuestionID: form.Questions[0].ID, AnswerText: strPtr(" 7 ")},
		{QuestionID: form.Questions[1].ID, AnswerText: strPtr("  çok iyi\n")},
	})
	require.NoError(t, err)

	page, err := env.responses.ListResponses(ctx, form.ID, env.ownerID, 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Responses, 1)
	answers := page.Responses[0].Answers
	require.Len(t, answers, 2)
	assert.Equal(t, "7", *answers[0].AnswerText)
	assert.Equal(t, "çok iyi", *answers[1].AnswerText)
}

func TestSubmitResponseVisibility(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	privateID, err := env.forms.CreateForm(ctx, env.ownerID, sampleFormInput())
	require.NoError(t, err)
	_, err = env.responses.SubmitResponse(ctx, privateID, []AnswerInput{{QuestionID: "q", AnswerText: strPtr("x")}})
	assert.ErrorIs(t, err, ErrFormNotFound)

	_, err = env.responses.SubmitResponse(ctx, "olmayan", []AnswerInput{{QuestionID: "q", AnswerText: strPtr("x")}})
	assert.ErrorIs(t, err, ErrFormNotFound)

	form := env.createPublicForm(t, sampleFormInput())
	_, err = env.forms.PatchForm(ctx, form.ID, env.ownerID, FormPatch{Closed: optional.Some(true)})
	require.NoError(t, err)

	_, err = env.responses.SubmitResponse(ctx, form.ID, []AnswerInput{{QuestionID: form.Questions[0].ID, AnswerText: strPtr("x")}})
	assert.ErrorIs(t, err, ErrFormClosed)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestListResponsesPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	form := env.createPublicForm(t, CreateFormInput{
		Title:     "Tek soru",
		Questions: []QuestionInput{{QuestionText: "Not", QuestionType: models.QuestionTypeNumber}},
	})

	for i := 0; i < 45; i++ {
		_, err := env.responses.SubmitResponse(ctx, form.ID, []AnswerInput{
			{QuestionID: form.Questions[0].ID, AnswerText: strPtr("7")},
		})
		require.NoError(t, err)
	}

	first, err := env.responses.ListResponses(ctx, form.ID, env.ownerID, 1, 20)
	require.NoError(t, err)
	assert.Len(t, first.Responses, 20)
	assert.EqualValues(t, 45, first.Meta.Total)
	assert.Equal(t, 3, first.Meta.TotalPages)
	assert.Equal(t, 20, first.Meta.Count)

	last, err := env.responses.ListResponses(ctx, form.ID, env.ownerID, 3, 20)
	require.NoError(t, err)
	assert.Len(t, last.Responses, 5)
	assert.Equal(t, 5, last.Meta.Count)

	beyond, err := env.responses.ListResponses(ctx, form.ID, env.ownerID, 4, 20)
	require.NoError(t, err)
	assert.Empty(t, beyond.Responses)

	// sayfalar arası tekrar yok, en yeni önce
	seen := map[string]bool{}
	for page := 1; page <= 3; page++ {
		p, err := env.responses.ListResponses(ctx, form.ID, env.ownerID, page, 20)
		require.NoError(t, err)
		for _, r := range p.Responses {
			assert.False(t, seen[r.ID])
			seen[r.ID] = true
		}
	}
	assert.Len(t, seen, 45)
	assert.False(t, first.Responses[0].CreatedAt.Before(first.Responses[19].CreatedAt))
}

func TestListResponsesRequiresOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	form := env.createPublicForm(t, sampleFormInput())

	_, err := env.responses.ListResponses(ctx, form.ID, env.otherID, 1, 20)
	assert.ErrorIs(t, err, ErrFormNotFound)

	_, err = env.responses.ListResponses(ctx, "olmayan", env.ownerID, 1, 20)
	assert.ErrorIs(t, err, ErrFormNotFound)

	empty, err := env.responses.ListResponses(ctx, form.ID, env.ownerID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, empty.Responses)
	assert.Equal(t, 1, empty.Meta.Page)
	assert.Equal(t, 20, empty.Meta.Limit)
	assert.Zero(t, empty.Meta.TotalPages)
}
