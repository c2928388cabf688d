package repositories

import (
	"context"
	"time"

	"anket.link/configs/configslog"
	"anket.link/models"
	"anket.link/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FormListItem sahip listesinde dönen form satırı.
type FormListItem struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	Closed        bool      `json:"closed"`
	IsPublic      bool      `json:"is_public"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	ResponseCount int64     `json:"response_count"`
}

// IFormRepository form veritabanı işlemleri için arayüz.
type IFormRepository interface {
	Create(ctx context.Context, form *models.Form) error
	FindByID(ctx context.Context, id string) (*models.Form, error)
	FindByIDForUpdate(ctx context.Context, id string) (*models.Form, error)
	FindAllByOwnerPaginated(ctx context.Context, ownerID string, params queryparams.ListParams) ([]FormListItem, int64, error)
	UpdateByOwner(ctx context.Context, id, ownerID string, updates map[string]interface{}) error
	DeleteByOwner(ctx context.Context, id, ownerID string) error
	SetClosed(ctx context.Context, id string, closed bool) error
}

// FormRepository IFormRepository arayüzünü uygular.
type FormRepository struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) IFormRepository {
	return &FormRepository{db: db}
}

// NewFormRepositoryTx transaction içinde kullanılacak repository döndürür.
func NewFormRepositoryTx(tx *gorm.DB) IFormRepository {
	return &FormRepository{db: tx}
}

func (r *FormRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create yalnızca form satırını ekler; sorular ayrı eklenir.
func (r *FormRepository) Create(ctx context.Context, form *models.Form) error {
	err := translateError(r.getDB(ctx).Omit(clause.Associations).Create(form).Error)
	if err != nil && !isKnown(err) {
		configslog.Log.Error("FormRepository.Create: DB error", zap.String("user_id", form.UserID), zap.Error(err))
	}
	return err
}

func (r *FormRepository) FindByID(ctx context.Context, id string) (*models.Form, error) {
	var form models.Form
	if err := translateError(r.getDB(ctx).Where("id = ?", id).First(&form).Error); err != nil {
		if !isKnown(err) {
			configslog.Log.Error("FormRepository.FindByID: DB error", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}
	return &form, nil
}

// FindByIDForUpdate form satırını transaction sonuna kadar kilitler (SELECT ... FOR UPDATE).
// Aynı formun soru sayısına bağlı kararlar bu kilit altında verilir.
// Yalnızca NewFormRepositoryTx ile kullanılmalıdır.
func (r *FormRepository) FindByIDForUpdate(ctx context.Context, id string) (*models.Form, error) {
	var form models.Form
	if err := translateError(lockFormQuery(r.getDB(ctx), id).First(&form).Error); err != nil {
		if !isKnown(err) {
			configslog.Log.Error("FormRepository.FindByIDForUpdate: DB error", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}
	return &form, nil
}

func lockFormQuery(db *gorm.DB, id string) *gorm.DB {
	return db.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id)
}

var formSortColumns = map[string]string{
	"created_at": "forms.created_at",
	"updated_at": "forms.updated_at",
	"title":      "forms.title",
}

// FindAllByOwnerPaginated kullanıcının formlarını yanıt sayılarıyla birlikte listeler.
func (r *FormRepository) FindAllByOwnerPaginated(ctx context.Context, ownerID string, params queryparams.ListParams) ([]FormListItem, int64, error) {
	var total int64
	base := r.getDB(ctx).Model(&models.Form{}).Where("forms.user_id = ?", ownerID)
	if err := base.Count(&total).Error; err != nil {
		configslog.Log.Error("FormRepository.FindAllByOwnerPaginated: count error", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, 0, err
	}

	items := make([]FormListItem, 0)
	if total == 0 {
		return items, 0, nil
	}

	sortColumn, ok := formSortColumns[params.SortBy]
	if !ok {
		sortColumn = formSortColumns["created_at"]
	}

	err := r.getDB(ctx).Model(&models.Form{}).
		Select("forms.id, forms.user_id, forms.title, forms.description, forms.closed, forms.is_public, forms.created_at, forms.updated_at, (SELECT COUNT(*) FROM responses WHERE responses.form_id = forms.id) AS response_count").
		Where("forms.user_id = ?", ownerID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: sortColumn, Raw: true}, Desc: params.OrderBy != "asc"}).
		Order("forms.id DESC").
		Offset(params.CalculateOffset()).
		Limit(params.PerPage).
		Scan(&items).Error
	if err != nil {
		configslog.Log.Error("FormRepository.FindAllByOwnerPaginated: DB error", zap.String("owner_id", ownerID), zap.Error(err))
		return nil, 0, err
	}
	return items, total, nil
}

// UpdateByOwner yalnızca verilen kolonları günceller; eşleşen satır yoksa ErrNotFound.
func (r *FormRepository) UpdateByOwner(ctx context.Context, id, ownerID string, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	result := r.getDB(ctx).Model(&models.Form{}).Where("id = ? AND user_id = ?", id, ownerID).Updates(updates)
	if result.Error != nil {
		configslog.Log.Error("FormRepository.UpdateByOwner: DB error", zap.String("id", id), zap.Error(result.Error))
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByOwner formu siler; sorular, seçenekler ve yanıtlar cascade ile silinir.
func (r *FormRepository) DeleteByOwner(ctx context.Context, id, ownerID string) error {
	result := r.getDB(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Form{})
	if result.Error != nil {
		configslog.Log.Error("FormRepository.DeleteByOwner: DB error", zap.String("id", id), zap.Error(result.Error))
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FormRepository) SetClosed(ctx context.Context, id string, closed bool) error {
	result := r.getDB(ctx).Model(&models.Form{}).Where("id = ?", id).
		Updates(map[string]interface{}{"closed": closed, "updated_at": time.Now()})
	if result.Error != nil {
		configslog.Log.Error("FormRepository.SetClosed: DB error", zap.String("id", id), zap.Error(result.Error))
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IFormRepository = (*FormRepository)(nil)
