package services

import (
	"context"
	"errors"
	"testing"

	"anket.link/models"
	"anket.link/pkg/optional"
	"anket.link/pkg/testdb"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db        *gorm.DB
	forms     IFormService
	questions IQuestionService
	responses IResponseService
	ownerID   string
	otherID   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testdb.Open(t)

	owner := models.User{Name: "Sahip", Email: "owner@example.com", Password: "x"}
	other := models.User{Name: "Diğer", Email: "other@example.com", Password: "x"}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&other).Error)

	return &testEnv{
		db:        db,
		forms:     NewFormService(db),
		questions: NewQuestionService(db),
		responses: NewResponseService(db),
		ownerID:   owner.ID,
		otherID:   other.ID,
	}
}

func boolPtr(b bool) *bool { return &b }

// sampleFormInput metin, e-posta ve checkbox sorusu içeren bir form girdisi.
func sampleFormInput() CreateFormInput {
	return CreateFormInput{
		Title: "Memnuniyet Anketi",
		Questions: []QuestionInput{
			{QuestionText: "Adınız", QuestionType: models.QuestionTypeText, OrderIndex: 0},
			{QuestionText: "E-posta", QuestionType: models.QuestionTypeEmail, IsRequired: boolPtr(false), OrderIndex: 1},
			{
				QuestionText: "Favori renk",
				QuestionType: models.QuestionTypeCheckbox,
				OrderIndex:   2,
				Options: []OptionInput{
					{OptionText: "Kırmızı", OrderIndex: 0},
					{OptionText: "Mavi", OrderIndex: 1},
				},
			},
		},
	}
}

// createPublicForm formu oluşturur, herkese açar ve sahip görünümünü döndürür.
func (e *testEnv) createPublicForm(t *testing.T, input CreateFormInput) *FormDetailView {
	t.Helper()
	ctx := context.Background()

	id, err := e.forms.CreateForm(ctx, e.ownerID, input)
	require.NoError(t, err)

	_, err = e.forms.PatchForm(ctx, id, e.ownerID, FormPatch{IsPublic: optional.Some(true)})
	require.NoError(t, err)

	detail, err := e.forms.GetFormDetail(ctx, id, e.ownerID)
	require.NoError(t, err)
	return detail
}

func (e *testEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}

var errInjectedWrite = errors.New("yazma hatası (test)")

// beforeInsert verilen tabloya yapılan her eklemeden hemen önce fn'i çalıştırır.
// fn tx.AddError ile eklemeyi başarısız kılabilir.
func (e *testEnv) beforeInsert(t *testing.T, table string, fn func(tx *gorm.DB)) {
	t.Helper()
	err := e.db.Callback().Create().Before("gorm:create").Register("test:before_insert_"+table, func(tx *gorm.DB) {
		if tx.Statement.Schema == nil || tx.Statement.Schema.Table != table {
			return
		}
		fn(tx)
	})
	require.NoError(t, err)
}
