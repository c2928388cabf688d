package repositories

import (
	"context"

	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IResponseRepository yanıt (gönderim) veritabanı işlemleri için arayüz.
type IResponseRepository interface {
	Create(ctx context.Context, response *models.Response) error
	CountByForm(ctx context.Context, formID string) (int64, error)
	FindPageByForm(ctx context.Context, formID string, offset, limit int) ([]models.Response, error)
}

type ResponseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) IResponseRepository {
	return &ResponseRepository{db: db}
}

func NewResponseRepositoryTx(tx *gorm.DB) IResponseRepository {
	return &ResponseRepository{db: tx}
}

func (r *ResponseRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *ResponseRepository) Create(ctx context.Context, response *models.Response) error {
	err := translateError(r.getDB(ctx).Omit(clause.Associations).Create(response).Error)
	if err != nil && !isKnown(err) {
		configslog.Log.Error("ResponseRepository.Create: DB error", zap.String("form_id", response.FormID), zap.Error(err))
	}
	return err
}

func (r *ResponseRepository) CountByForm(ctx context.Context, formID string) (int64, error) {
	var count int64
	if err := r.getDB(ctx).Model(&models.Response{}).Where("form_id = ?", formID).Count(&count).Error; err != nil {
		configslog.Log.Error("ResponseRepository.CountByForm: DB error", zap.String("form_id", formID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

// FindPageByForm yanıtları en yeniden eskiye sayfalı getirir.
func (r *ResponseRepository) FindPageByForm(ctx context.Context, formID string, offset, limit int) ([]models.Response, error) {
	responses := make([]models.Response, 0)
	err := r.getDB(ctx).
		Where("form_id = ?", formID).
		Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&responses).Error
	if err != nil {
		configslog.Log.Error("ResponseRepository.FindPageByForm: DB error", zap.String("form_id", formID), zap.Error(err))
		return nil, err
	}
	return responses, nil
}

var _ IResponseRepository = (*ResponseRepository)(nil)
