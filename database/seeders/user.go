package seeders

import (
	"errors"

	"anket.link/configs"
	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DemoUserEmail = "demo@anket.link"
	DemoUserName  = "Demo Kullanıcı"
)

// SeedDemoUser demo kullanıcısını yoksa oluşturur ve döndürür.
// Şifre SEED_DEMO_PASSWORD ortam değişkeninden okunur.
func SeedDemoUser(db *gorm.DB) (*models.User, error) {
	var existing models.User
	err := db.Where("email = ?", DemoUserEmail).First(&existing).Error
	if err == nil {
		configslog.SLog.Debugf("Demo kullanıcı '%s' zaten mevcut, oluşturma atlanıyor.", DemoUserEmail)
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		configslog.Log.Error("Demo kullanıcı kontrol edilirken veritabanı hatası", zap.String("email", DemoUserEmail), zap.Error(err))
		return nil, err
	}

	password := configs.GetEnv("SEED_DEMO_PASSWORD", "demo12345")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:       DemoUserName,
		Email:      DemoUserEmail,
		Password:   string(hash),
		IsVerified: true,
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("Demo kullanıcı oluşturulamadı", zap.String("email", DemoUserEmail), zap.Error(err))
		return nil, err
	}

	configslog.SLog.Infof("Demo kullanıcı oluşturuldu (ID: %s, E-posta: %s).", user.ID, user.Email)
	return &user, nil
}
