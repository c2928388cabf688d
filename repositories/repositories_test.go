package repositories

import (
	"context"
	"testing"

	"anket.link/models"
	"anket.link/pkg/queryparams"
	"anket.link/pkg/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test", Email: email, Password: "x"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func seedForm(t *testing.T, db *gorm.DB, ownerID, title string) *models.Form {
	t.Helper()
	form := &models.Form{UserID: ownerID, Title: title, IsPublic: true}
	require.NoError(t, NewFormRepository(db).Create(context.Background(), form))
	return form
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	db := testdb.Open(t)
	seedUser(t, db, "a@b.c")

	err := NewUserRepository(db).Create(context.Background(), &models.User{Name: "B", Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestFormRepositoryOwnerScoping(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	owner := seedUser(t, db, "owner@b.c")
	other := seedUser(t, db, "other@b.c")
	form := seedForm(t, db, owner.ID, "Anket")
	repo := NewFormRepository(db)

	err := repo.UpdateByOwner(ctx, form.ID, other.ID, map[string]interface{}{"title": "Başka"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.UpdateByOwner(ctx, form.ID, owner.ID, map[string]interface{}{"title": "Yeni"}))
	got, err := repo.FindByID(ctx, form.ID)
	require.NoError(t, err)
	assert.Equal(t, "Yeni", got.Title)

	assert.ErrorIs(t, repo.DeleteByOwner(ctx, form.ID, other.ID), ErrNotFound)
	require.NoError(t, repo.DeleteByOwner(ctx, form.ID, owner.ID))
	_, err = repo.FindByID(ctx, form.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFormRepositoryCreateWithUnknownOwner(t *testing.T) {
	db := testdb.Open(t)
	err := NewFormRepository(db).Create(context.Background(), &models.Form{UserID: "yok", Title: "Anket"})
	assert.Error(t, err)
}

func TestFindAllByOwnerPaginatedCountsResponses(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	owner := seedUser(t, db, "owner@b.c")
	first := seedForm(t, db, owner.ID, "Birinci")
	seedForm(t, db, owner.ID, "İkinci")

	responses := NewResponseRepository(db)
	for i := 0; i < 3; i++ {
		require.NoError(t, responses.Create(ctx, &models.Response{FormID: first.ID}))
	}

	params := queryparams.DefaultListParams("created_at")
	items, total, err := NewFormRepository(db).FindAllByOwnerPaginated(ctx, owner.ID, params)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 2)

	counts := map[string]int64{}
	for _, item := range items {
		counts[item.ID] = item.ResponseCount
	}
	assert.EqualValues(t, 3, counts[first.ID])

	empty, total, err := NewFormRepository(db).FindAllByOwnerPaginated(ctx, "kimse", params)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, empty)
}

func TestQuestionRepositoryOwnershipAndOptions(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	owner := seedUser(t, db, "owner@b.c")
	form := seedForm(t, db, owner.ID, "Anket")

	questions := NewQuestionRepository(db)
	q := &models.Question{FormID: form.ID, QuestionText: "Renk?", QuestionType: models.QuestionTypeCheckbox, IsRequired: true}
	require.NoError(t, questions.Create(ctx, q))

	options := NewOptionRepositoryTx(db)
	require.NoError(t, options.CreateBatch(ctx, []models.Option{
		{QuestionID: q.ID, OptionText: "Mavi", OrderIndex: 1},
		{QuestionID: q.ID, OptionText: "Kırmızı", OrderIndex: 0},
	}))

	own, err := questions.FindOwnership(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, own.OwnerID)
	assert.Equal(t, form.ID, own.FormID)
	assert.Equal(t, models.QuestionTypeCheckbox, own.QuestionType)

	_, err = questions.FindOwnership(ctx, "yok")
	assert.ErrorIs(t, err, ErrNotFound)

	loaded, err := questions.FindByIDWithOptions(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Options, 2)
	assert.Equal(t, "Kırmızı", loaded.Options[0].OptionText)

	ids, err := options.FindIDsByQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	require.NoError(t, options.DeleteByIDs(ctx, q.ID, ids[:1]))
	ids, err = options.FindIDsByQuestion(ctx, q.ID)
	require.NoError(t, err)
	assert.Len(t, ids, 1)

	count, err := questions.CountByForm(ctx, form.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestAnswerRepositoryResolvesOptionText(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	owner := seedUser(t, db, "owner@b.c")
	form := seedForm(t, db, owner.ID, "Anket")

	text := &models.Question{FormID: form.ID, QuestionText: "Ad", QuestionType: models.QuestionTypeText}
	box := &models.Question{FormID: form.ID, QuestionText: "Renk", QuestionType: models.QuestionTypeCheckbox}
	require.NoError(t, NewQuestionRepository(db).Create(ctx, text))
	require.NoError(t, NewQuestionRepository(db).Create(ctx, box))
	opt := models.Option{QuestionID: box.ID, OptionText: "Mavi"}
	opts := []models.Option{opt}
	require.NoError(t, NewOptionRepositoryTx(db).CreateBatch(ctx, opts))

	response := &models.Response{FormID: form.ID}
	require.NoError(t, NewResponseRepository(db).Create(ctx, response))

	name := "Ayşe"
	answers := NewAnswerRepository(db)
	require.NoError(t, answers.Create(ctx, &models.Answer{ResponseID: response.ID, QuestionID: text.ID, AnswerText: &name, Position: 0}))
	require.NoError(t, answers.Create(ctx, &models.Answer{ResponseID: response.ID, QuestionID: box.ID, OptionID: &opts[0].ID, Position: 1}))

	rows, err := answers.FindByResponseIDs(ctx, []string{response.ID})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, text.ID, rows[0].QuestionID)
	assert.Nil(t, rows[0].OptionText)
	require.NotNil(t, rows[1].OptionText)
	assert.Equal(t, "Mavi", *rows[1].OptionText)

	missing := "yok"
	err = answers.Create(ctx, &models.Answer{ResponseID: response.ID, QuestionID: box.ID, OptionID: &missing, Position: 2})
	assert.Error(t, err)
}
