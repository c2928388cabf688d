package repositories

import (
	"context"

	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IOptionRepository checkbox seçenekleri için arayüz.
type IOptionRepository interface {
	CreateBatch(ctx context.Context, options []models.Option) error
	FindIDsByQuestion(ctx context.Context, questionID string) ([]string, error)
	Update(ctx context.Context, questionID, id string, optionText string, orderIndex int) error
	DeleteByIDs(ctx context.Context, questionID string, ids []string) error
}

type OptionRepository struct {
	db *gorm.DB
}

// NewOptionRepositoryTx seçenek yazımları yalnızca soru/form transaction'ları içinde yapılır.
func NewOptionRepositoryTx(tx *gorm.DB) IOptionRepository {
	return &OptionRepository{db: tx}
}

func (r *OptionRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *OptionRepository) CreateBatch(ctx context.Context, options []models.Option) error {
	if len(options) == 0 {
		return nil
	}
	err := translateError(r.getDB(ctx).Create(&options).Error)
	if err != nil && !isKnown(err) {
		configslog.Log.Error("OptionRepository.CreateBatch: DB error", zap.Int("count", len(options)), zap.Error(err))
	}
	return err
}

func (r *OptionRepository) FindIDsByQuestion(ctx context.Context, questionID string) ([]string, error) {
	ids := make([]string, 0)
	if err := r.getDB(ctx).Model(&models.Option{}).Where("question_id = ?", questionID).Pluck("id", &ids).Error; err != nil {
		configslog.Log.Error("OptionRepository.FindIDsByQuestion: DB error", zap.String("question_id", questionID), zap.Error(err))
		return nil, err
	}
	return ids, nil
}

// Update seçeneği yerinde günceller; ID korunur, cevap referansları bozulmaz.
func (r *OptionRepository) Update(ctx context.Context, questionID, id string, optionText string, orderIndex int) error {
	result := r.getDB(ctx).Model(&models.Option{}).
		Where("id = ? AND question_id = ?", id, questionID).
		Updates(map[string]interface{}{"option_text": optionText, "order_index": orderIndex})
	if result.Error != nil {
		configslog.Log.Error("OptionRepository.Update: DB error", zap.String("id", id), zap.Error(result.Error))
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OptionRepository) DeleteByIDs(ctx context.Context, questionID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.getDB(ctx).Where("question_id = ? AND id IN ?", questionID, ids).Delete(&models.Option{}).Error
	if err != nil {
		configslog.Log.Error("OptionRepository.DeleteByIDs: DB error", zap.String("question_id", questionID), zap.Strings("ids", ids), zap.Error(err))
		return translateError(err)
	}
	return nil
}

var _ IOptionRepository = (*OptionRepository)(nil)
