package migrations

import (
	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateFormsTables forms, questions ve options tablolarını birlikte oluşturur;
// cascade kısıtları çocuk tablolara bu sayede eklenir.
func MigrateFormsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating forms, questions & options tables...")
	err := db.AutoMigrate(&models.Form{}, &models.Question{}, &models.Option{})
	if err != nil {
		configslog.Log.Error("Failed to migrate forms, questions & options tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Forms, questions & options tables migrated successfully")
	return nil
}
