package repositories

import (
	"context"

	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IUserRepository kullanıcı veritabanı işlemleri için arayüz.
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) IUserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create e-posta zaten kayıtlıysa ErrDuplicate döner.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := translateError(r.getDB(ctx).Create(user).Error)
	if err != nil && !isKnown(err) {
		configslog.Log.Error("UserRepository.Create: DB error", zap.String("email", user.Email), zap.Error(err))
	}
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := translateError(r.getDB(ctx).Where("id = ?", id).First(&user).Error); err != nil {
		if !isKnown(err) {
			configslog.Log.Error("UserRepository.FindByID: DB error", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := translateError(r.getDB(ctx).Where("email = ?", email).First(&user).Error); err != nil {
		if !isKnown(err) {
			configslog.Log.Error("UserRepository.FindByEmail: DB error", zap.String("email", email), zap.Error(err))
		}
		return nil, err
	}
	return &user, nil
}

var _ IUserRepository = (*UserRepository)(nil)
