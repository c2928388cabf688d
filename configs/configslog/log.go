package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış loglama için, SLog printf tarzı loglama için kullanılır.
// InitLogger çağrılana kadar ikisi de no-op'tur.
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger APP_ENV'e göre production (JSON) veya development (konsol) logger kurar.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		panic("logger başlatılamadı: " + err.Error())
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger tamponlanmış log kayıtlarını boşaltır.
func SyncLogger() {
	_ = Log.Sync()
}
