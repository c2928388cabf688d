package seeders

import (
	"anket.link/configs/configslog"
	"anket.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DemoFormTitle = "Etkinlik Geri Bildirimi"

// SeedDemoForm demo kullanıcısı için herkese açık örnek bir form oluşturur.
// Kullanıcının aynı başlıkta formu varsa işlem atlanır.
func SeedDemoForm(db *gorm.DB, owner *models.User) error {
	var count int64
	if err := db.Model(&models.Form{}).Where("user_id = ? AND title = ?", owner.ID, DemoFormTitle).Count(&count).Error; err != nil {
		configslog.Log.Error("Demo form kontrol edilirken veritabanı hatası", zap.String("user_id", owner.ID), zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Debugf("Demo form '%s' zaten mevcut, oluşturma atlanıyor.", DemoFormTitle)
		return nil
	}

	description := "Etkinliğimizi değerlendirmeniz için kısa bir anket."
	form := models.Form{
		UserID:      owner.ID,
		Title:       DemoFormTitle,
		Description: &description,
		IsPublic:    true,
		Questions: []models.Question{
			{QuestionText: "Adınız", QuestionType: models.QuestionTypeText, IsRequired: true, OrderIndex: 0},
			{QuestionText: "E-posta adresiniz", QuestionType: models.QuestionTypeEmail, IsRequired: false, OrderIndex: 1},
			{QuestionText: "Etkinliğe kaç puan verirsiniz? (1-10)", QuestionType: models.QuestionTypeNumber, IsRequired: true, OrderIndex: 2},
			{
				QuestionText: "Hangi oturumlara katıldınız?",
				QuestionType: models.QuestionTypeCheckbox,
				IsRequired:   true,
				OrderIndex:   3,
				Options: []models.Option{
					{OptionText: "Açılış", OrderIndex: 0},
					{OptionText: "Panel", OrderIndex: 1},
					{OptionText: "Atölye", OrderIndex: 2},
				},
			},
		},
	}

	// İlişkiler GORM tarafından sırayla eklenir
	if err := db.Create(&form).Error; err != nil {
		configslog.Log.Error("Demo form oluşturulamadı", zap.String("user_id", owner.ID), zap.Error(err))
		return err
	}

	configslog.SLog.Infof("Demo form oluşturuldu (ID: %s, Soru: %d).", form.ID, len(form.Questions))
	return nil
}
