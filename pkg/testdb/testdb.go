// Package testdb testler için yabancı anahtarları açık, migrasyonu yapılmış
// dosya tabanlı bir SQLite veritabanı açar.
package testdb

import (
	"path/filepath"
	"testing"

	"anket.link/configs/configsdatabase"
	"anket.link/database"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Open migrasyonları uygulanmış bir veritabanı döndürür.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db := OpenEmpty(t)
	if err := database.RunMigrationsInOrder(db); err != nil {
		t.Fatalf("migrasyon başarısız: %v", err)
	}
	return db
}

// OpenEmpty tablosuz bir veritabanı döndürür.
func OpenEmpty(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "anket.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         configsdatabase.NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("sqlite açılamadı: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB alınamadı: %v", err)
	}
	// Tek bağlantı: transaction dışı okumalar kilitlenmesin
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
