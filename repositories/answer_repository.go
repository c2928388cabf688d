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

// AnswerRow seçenek metni çözülmüş cevap satırı.
type AnswerRow struct {
	ID         string
	ResponseID string
	QuestionID string
	AnswerText *string
	OptionID   *string
	OptionText *string
	CreatedAt  time.Time
}

// IAnswerRepository cevap veritabanı işlemleri için arayüz.
type IAnswerRepository interface {
	Create(ctx context.Context, answer *models.Answer) error
	FindByResponseIDs(ctx context.Context, responseIDs []string) ([]AnswerRow, error)
}

type AnswerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) IAnswerRepository {
	return &AnswerRepository{db: db}
}

func NewAnswerRepositoryTx(tx *gorm.DB) IAnswerRepository {
	return &AnswerRepository{db: tx}
}

func (r *AnswerRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create tek bir cevap ekler; seçenek veya soru yoksa ErrReferenceNotFound döner.
func (r *AnswerRepository) Create(ctx context.Context, answer *models.Answer) error {
	err := translateError(r.getDB(ctx).Omit(clause.Associations).Create(answer).Error)
	if err != nil && !isKnown(err) {
		configslog.Log.Error("AnswerRepository.Create: DB error", zap.String("response_id", answer.ResponseID), zap.Error(err))
	}
	return err
}

// FindByResponseIDs verilen yanıtların cevaplarını ekleme sırasıyla getirir.
func (r *AnswerRepository) FindByResponseIDs(ctx context.Context, responseIDs []string) ([]AnswerRow, error) {
	rows := make([]AnswerRow, 0)
	if len(responseIDs) == 0 {
		return rows, nil
	}
	err := r.getDB(ctx).Table("answers").
		Select("answers.id, answers.response_id, answers.question_id, answers.answer_text, answers.option_id, options.option_text, answers.created_at").
		Joins("LEFT JOIN options ON options.id = answers.option_id").
		Where("answers.response_id IN ?", responseIDs).
		Order("answers.position ASC").Order("answers.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		configslog.Log.Error("AnswerRepository.FindByResponseIDs: DB error", zap.Int("count", len(responseIDs)), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

var _ IAnswerRepository = (*AnswerRepository)(nil)
