package repositories

import (
	"context"
	"time"

	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuestionOwnership soru ile formunun sahibini tek satırda taşır.
type QuestionOwnership struct {
	QuestionID   string
	FormID       string
	QuestionType models.QuestionType
	OwnerID      string
}

// IQuestionRepository soru veritabanı işlemleri için arayüz.
type IQuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	FindOwnership(ctx context.Context, id string) (*QuestionOwnership, error)
	FindByIDWithOptions(ctx context.Context, id string) (*models.Question, error)
	FindByFormWithOptions(ctx context.Context, formID string) ([]models.Question, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	CountByForm(ctx context.Context, formID string) (int64, error)
}

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) IQuestionRepository {
	return &QuestionRepository{db: db}
}

func NewQuestionRepositoryTx(tx *gorm.DB) IQuestionRepository {
	return &QuestionRepository{db: tx}
}

func (r *QuestionRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func orderedOptions(db *gorm.DB) *gorm.DB {
	return db.Order("options.order_index ASC").Order("options.id ASC")
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	err := translateError(r.getDB(ctx).Omit(clause.Associations).Create(question).Error)
	if err != nil && !isKnown(err) {
		configslog.Log.Error("QuestionRepository.Create: DB error", zap.String("form_id", question.FormID), zap.Error(err))
	}
	return err
}

// FindOwnership sorunun formunu ve form sahibini getirir.
func (r *QuestionRepository) FindOwnership(ctx context.Context, id string) (*QuestionOwnership, error) {
	var row QuestionOwnership
	result := r.getDB(ctx).Table("questions").
		Select("questions.id AS question_id, questions.form_id, questions.question_type, forms.user_id AS owner_id").
		Joins("JOIN forms ON forms.id = questions.form_id").
		Where("questions.id = ?", id).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		configslog.Log.Error("QuestionRepository.FindOwnership: DB error", zap.String("id", id), zap.Error(result.Error))
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (r *QuestionRepository) FindByIDWithOptions(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := translateError(r.getDB(ctx).Preload("Options", orderedOptions).Where("id = ?", id).First(&question).Error)
	if err != nil {
		if !isKnown(err) {
			configslog.Log.Error("QuestionRepository.FindByIDWithOptions: DB error", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}
	return &question, nil
}

// FindByFormWithOptions formun sorularını order_index sırasıyla, seçenekleriyle birlikte getirir.
func (r *QuestionRepository) FindByFormWithOptions(ctx context.Context, formID string) ([]models.Question, error) {
	questions := make([]models.Question, 0)
	err := r.getDB(ctx).
		Preload("Options", orderedOptions).
		Where("form_id = ?", formID).
		Order("order_index ASC").Order("created_at ASC").Order("id ASC").
		Find(&questions).Error
	if err != nil {
		configslog.Log.Error("QuestionRepository.FindByFormWithOptions: DB error", zap.String("form_id", formID), zap.Error(err))
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	result := r.getDB(ctx).Model(&models.Question{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		configslog.Log.Error("QuestionRepository.Update: DB error", zap.String("id", id), zap.Error(result.Error))
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete soruyu siler; seçenekler ve cevaplar cascade ile silinir.
func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	result := r.getDB(ctx).Where("id = ?", id).Delete(&models.Question{})
	if result.Error != nil {
		configslog.Log.Error("QuestionRepository.Delete: DB error", zap.String("id", id), zap.Error(result.Error))
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *QuestionRepository) CountByForm(ctx context.Context, formID string) (int64, error) {
	var count int64
	if err := r.getDB(ctx).Model(&models.Question{}).Where("form_id = ?", formID).Count(&count).Error; err != nil {
		configslog.Log.Error("QuestionRepository.CountByForm: DB error", zap.String("form_id", formID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

var _ IQuestionRepository = (*QuestionRepository)(nil)
